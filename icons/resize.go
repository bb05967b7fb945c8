package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/amalfra/etag/v3"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

type Filter string

const (
	FilterLanczos    Filter = "lanczos"
	FilterCatmullRom Filter = "catmullrom"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterLanczos, FilterCatmullRom:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q (want %s or %s)", s, FilterLanczos, FilterCatmullRom)
}

// Resize scales img to exactly size x size. The aspect ratio is not kept.
func (f Filter) Resize(img image.Image, size int) image.Image {
	if f == FilterCatmullRom {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
		return dst
	}
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output is a written file together with a weak ETag of its content.
type Output struct {
	Target
	ETag string
}

// ResizeAndSave decodes inputPath, scales it to size x size and writes the
// PNG to outputPath, replacing any existing file.
func ResizeAndSave(inputPath, outputPath string, size int, filter Filter) (Output, error) {
	out := Output{Target: Target{Path: outputPath, Size: size}}

	data, err := renderPNG(inputPath, size, filter)
	if err != nil {
		return out, err
	}
	if err = writeFile(outputPath, data); err != nil {
		return out, err
	}
	out.ETag = etag.Generate(string(data), true)
	return out, nil
}

func renderPNG(inputPath string, size int, filter Filter) ([]byte, error) {
	src, err := Decode(inputPath)
	if err != nil {
		return nil, err
	}
	data, err := EncodePNG(filter.Resize(ToNRGBA(src), size))
	if err != nil {
		return nil, fmt.Errorf("%w: encode png: %w", ErrWrite, err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}
