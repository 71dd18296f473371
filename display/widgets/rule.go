package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/text"
)

// Rule is a horizontal line with an optional title.
type Rule struct {
	// Title is embedded in the line, surrounded by one space on each side.
	Title string
	// Align places the title. Center is the default for DefaultRule.
	Align Alignment
	// Border selects the horizontal glyph.
	Border BorderStyle
	// TitleColor paints the title.
	TitleColor lipgloss.Color
	// LineColor paints the line segments on either side of the title.
	LineColor lipgloss.Color
	// Width fixes the rule width. 0 uses the ambient width.
	Width int
}

// DefaultRule returns a square rule with a centered title.
func DefaultRule(title string) Rule {
	return Rule{
		Title:  title,
		Align:  AlignCenter,
		Border: BorderSquare,
	}
}

// Render draws the rule for the given ambient width. It always returns a
// single line.
func (r Rule) Render(width int) []string {
	w := ambient(width)
	if r.Width > 0 {
		w = r.Width
	}
	h := string(r.Border.Glyphs().Horizontal)
	line := func(n int) string {
		if n <= 0 {
			return ""
		}
		return color.Paint(r.LineColor, strings.Repeat(h, n))
	}

	title := text.SingleLine(r.Title)
	room := w - 4
	if title == "" || room < 1 {
		return []string{line(w)}
	}
	if text.VisibleLength(title) > room {
		if room <= 3 {
			return []string{line(w)}
		}
		title = text.Truncate(title, room, text.EllipsisEnd)
	}

	label := " " + color.PaintBold(r.TitleColor, title) + " "
	rest := w - text.VisibleLength(label)
	var left int
	switch r.Align {
	case AlignLeft:
		left = 1
	case AlignRight:
		left = rest - 1
	default:
		left = rest / 2
	}
	return []string{line(left) + label + line(rest-left)}
}
