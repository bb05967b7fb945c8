package icons

import (
	"fmt"
	"path/filepath"
)

// Sizes is the square edge length of every numbered icon, in output order.
var Sizes = []int{16, 32, 48, 72, 96, 128, 144, 152, 192, 384, 512}

const (
	TouchIconSize = 180
	FaviconSize   = 32

	// MaxSize is the largest entry in Sizes; SVG input is rasterised at this size.
	MaxSize = 512

	DefaultOutputDir = "public/icons"

	TouchIconName = "apple-touch-icon.png"
	MaskIconName  = "mask-icon.svg"
	FaviconName   = "favicon.ico"
)

// MaskIconSVG is written verbatim to mask-icon.svg. It is a placeholder:
// the image reference does not follow the input file name.
const MaskIconSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="512" height="512" viewBox="0 0 512 512" xmlns="http://www.w3.org/2000/svg">
    <image href="cast.png" width="512" height="512"/>
</svg>`

type Kind int

const (
	KindIcon Kind = iota
	KindTouch
	KindMask
	KindFavicon
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindTouch:
		return "touch"
	case KindMask:
		return "mask"
	case KindFavicon:
		return "favicon"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Target is one file the generator will write. Size is 0 for the mask icon.
type Target struct {
	Kind Kind
	Path string
	Size int
}

// IconName returns the file name of a numbered icon, e.g. icon-48x48.png.
func IconName(size int) string {
	return fmt.Sprintf("icon-%dx%d.png", size, size)
}

// Plan lists every output for outputDir in write order. The touch icon,
// mask icon and favicon go one level above outputDir.
func Plan(outputDir string, favicon bool) []Target {
	parent := filepath.Dir(outputDir)
	targets := make([]Target, 0, len(Sizes)+3)
	for _, s := range Sizes {
		targets = append(targets, Target{Kind: KindIcon, Path: filepath.Join(outputDir, IconName(s)), Size: s})
	}
	targets = append(targets,
		Target{Kind: KindTouch, Path: filepath.Join(parent, TouchIconName), Size: TouchIconSize},
		Target{Kind: KindMask, Path: filepath.Join(parent, MaskIconName)},
	)
	if favicon {
		targets = append(targets, Target{Kind: KindFavicon, Path: filepath.Join(parent, FaviconName), Size: FaviconSize})
	}
	return targets
}
