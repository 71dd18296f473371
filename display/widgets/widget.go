// Package widgets renders tables, panels and rules into lines of text.
//
// Every widget is a plain value configured through its fields. Render takes
// the ambient width (usually the terminal's column count) and returns the
// output lines without trailing newlines. Rendering has no side effects, so
// the same widget can be rendered concurrently at different widths.
package widgets

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/termkit/display/layout"
	"gitlab.com/tinyland/lab/termkit/display/text"
)

// Renderable is anything that lays itself out at a given width.
type Renderable interface {
	Render(width int) []string
}

// RenderString joins the lines of r rendered at width with newlines.
func RenderString(r Renderable, width int) string {
	return strings.Join(r.Render(width), "\n")
}

// Alignment controls text alignment within a column or line.
type Alignment int

const (
	// AlignLeft aligns text to the left (default).
	AlignLeft Alignment = iota
	// AlignRight aligns text to the right.
	AlignRight
	// AlignCenter centers text within the column.
	AlignCenter
)

// String returns the config name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// ParseAlignment maps a config name to an Alignment. Empty means left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	default:
		return AlignLeft, fmt.Errorf("widgets: unknown alignment %q", s)
	}
}

// align pads s to width according to a.
func align(s string, width int, a Alignment) string {
	switch a {
	case AlignRight:
		return text.PadLeft(s, width)
	case AlignCenter:
		return text.Center(s, width)
	default:
		return text.PadRight(s, width)
	}
}

// ambient normalizes a caller-supplied width, treating unknown (<1) as the
// fallback terminal width.
func ambient(width int) int {
	if width < 1 {
		return layout.FallbackWidth
	}
	return width
}
