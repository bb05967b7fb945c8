package icons

import (
	"bytes"
	"fmt"

	"iconkit/utils"

	"github.com/amalfra/etag/v3"
	"github.com/hymkor/trash-go"
	ico "github.com/sergeymakinen/go-ico"
)

// Generator writes the icon set. With Trash set, an existing output is
// moved to the trash before it is replaced.
type Generator struct {
	Filter  Filter
	Favicon bool
	Trash   bool
	Log     *utils.Logger
}

// CreateIcons writes the icon set for inputPath. Work stops at the first
// failure; files written before it are left in place.
func (g *Generator) CreateIcons(inputPath, outputDir string) ([]Output, error) {
	if err := utils.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWrite, outputDir, err)
	}

	filter := g.Filter
	if filter == "" {
		filter = FilterLanczos
	}
	log := g.Log
	if log == nil {
		log = &utils.Logger{ID: "iconset"}
	}

	var outputs []Output
	for _, t := range Plan(outputDir, g.Favicon) {
		data, err := render(inputPath, t, filter)
		if err != nil {
			return outputs, err
		}
		// The old file is only moved away once its replacement is in memory.
		if err = g.trashExisting(t.Path); err != nil {
			return outputs, err
		}
		if err = writeFile(t.Path, data); err != nil {
			return outputs, err
		}
		out := Output{Target: t, ETag: etag.Generate(string(data), true)}
		outputs = append(outputs, out)
		log.Printf("Created %s %s", out.Path, out.ETag)
	}
	return outputs, nil
}

// render produces the file content for t without touching the filesystem
// beyond reading inputPath.
func render(inputPath string, t Target, filter Filter) ([]byte, error) {
	switch t.Kind {
	case KindMask:
		return []byte(MaskIconSVG), nil
	case KindFavicon:
		return renderFavicon(inputPath, filter)
	}
	return renderPNG(inputPath, t.Size, filter)
}

func (g *Generator) trashExisting(path string) error {
	if !g.Trash || !utils.FileExists(path) {
		return nil
	}
	if err := trash.Throw(path); err != nil {
		return fmt.Errorf("trash %s: %w", path, err)
	}
	return nil
}

func renderFavicon(inputPath string, filter Filter) ([]byte, error) {
	src, err := Decode(inputPath)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err = ico.Encode(&buf, filter.Resize(ToNRGBA(src), FaviconSize)); err != nil {
		return nil, fmt.Errorf("%w: encode ico: %w", ErrWrite, err)
	}
	return buf.Bytes(), nil
}
