package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"iconkit/icons"
	"iconkit/utils"
)

type config struct {
	input     string
	outputDir string
	filter    icons.Filter
	favicon   bool
	trash     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	c, err := parseArgs(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stdout, err)
		return 2
	}

	log := &utils.Logger{ID: "iconset", Out: stdout}

	if !utils.FileExists(c.input) {
		log.Errorf("Error: Input file %s does not exist", c.input)
		return 1
	}

	g := &icons.Generator{
		Filter:  c.filter,
		Favicon: c.favicon,
		Trash:   c.trash,
		Log:     log,
	}
	if _, err = g.CreateIcons(c.input, c.outputDir); err != nil {
		log.Errorf("Error: %v", err)
		return 1
	}
	log.Print("Icon creation completed!")
	return 0
}

// parseArgs accepts flags on either side of the input path.
func parseArgs(args []string, output io.Writer) (config, error) {
	var c config
	var filter string

	fs := flag.NewFlagSet("iconset", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&c.outputDir, "output-dir", icons.DefaultOutputDir, "icon output directory")
	fs.StringVar(&filter, "filter", string(icons.FilterLanczos), "resampling filter: lanczos or catmullrom")
	fs.BoolVar(&c.favicon, "favicon", false, "also write favicon.ico next to apple-touch-icon.png")
	fs.BoolVar(&c.trash, "trash", false, "move existing outputs to the trash before overwriting")
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: iconset <input> [--output-dir <dir>] [--filter lanczos|catmullrom] [--favicon] [--trash]")
		fs.PrintDefaults()
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return c, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	switch len(positional) {
	case 0:
		fs.Usage()
		return c, errors.New("missing input image")
	case 1:
		c.input = positional[0]
	default:
		fs.Usage()
		return c, fmt.Errorf("expected one input image, got %d", len(positional))
	}

	var err error
	if c.filter, err = icons.ParseFilter(filter); err != nil {
		return c, err
	}
	return c, nil
}
