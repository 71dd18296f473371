// Command demo renders a built-in sample document at several widths to show
// how tables shrink and panels wrap as the terminal narrows.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/termkit/config"
	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/widgets"
)

//go:embed sample.yaml
var sample []byte

func main() {
	widthsFlag := flag.String("widths", "100,60,36", "Comma-separated render widths")
	colorFlag := flag.String("color", "auto", "Color mode: auto, always or never")
	file := flag.String("file", "", "Render this document instead of the built-in sample")
	flag.Parse()

	if err := run(*widthsFlag, *colorFlag, *file); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func run(widthsFlag, colorFlag, file string) error {
	widths, err := parseWidths(widthsFlag)
	if err != nil {
		return err
	}
	mode, err := color.ParseMode(colorFlag)
	if err != nil {
		return err
	}
	color.Apply(mode)

	doc, err := loadDocument(file)
	if err != nil {
		return err
	}
	ws, err := doc.Build()
	if err != nil {
		return err
	}

	fmt.Println("=== termkit demo ===")
	for _, w := range widths {
		fmt.Println()
		fmt.Println(widgets.RenderString(widgets.Rule{Title: fmt.Sprintf("width %d", w), Border: widgets.BorderASCII}, w))
		for _, r := range ws {
			fmt.Println(widgets.RenderString(r, w))
		}
	}
	return nil
}

func loadDocument(file string) (*config.Document, error) {
	if file != "" {
		return config.LoadDocument(file)
	}
	return config.ParseDocument(sample)
}

// parseWidths parses "100,60,36" into widths, rejecting anything below 1.
func parseWidths(s string) ([]int, error) {
	var widths []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil || w < 1 {
			return nil, fmt.Errorf("invalid width %q", part)
		}
		widths = append(widths, w)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no widths given")
	}
	return widths, nil
}
