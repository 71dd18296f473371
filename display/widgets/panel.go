package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/text"
)

// Panel draws a border around a block of text with an optional header
// label embedded in the top edge.
type Panel struct {
	// Content is the body text. It may carry SGR codes and hyperlinks.
	Content string
	// Header is centered in the top border when there is room for it.
	Header string
	// HeaderColor paints the header label.
	HeaderColor lipgloss.Color
	// Border selects the glyph set.
	Border BorderStyle
	// BorderColor paints the border glyphs.
	BorderColor lipgloss.Color
	// Padding is the number of blank columns between the border and the
	// content on each side.
	Padding int
	// VerticalPadding is the number of blank rows above and below the
	// content.
	VerticalPadding int
	// Expand stretches the panel to the full target width. Otherwise the
	// panel is as narrow as its content allows.
	Expand bool
	// Width fixes the target width. 0 uses the ambient width.
	Width int
	// Raw splits Content on newlines and truncates long lines instead of
	// word wrapping them.
	Raw bool
}

// DefaultPanel returns a rounded panel with one column of padding.
func DefaultPanel(content string) Panel {
	return Panel{
		Content: content,
		Border:  BorderRounded,
		Padding: 1,
	}
}

// Render lays the panel out for the given ambient width.
func (p Panel) Render(width int) []string {
	target := ambient(width)
	if p.Width > 0 {
		target = p.Width
	}

	// Two border columns and at least one content column must fit before
	// any padding does.
	pad := min(max(p.Padding, 0), max((target-3)/2, 0))
	maxInner := max(target-2-2*pad, 1)

	var body []string
	if p.Raw {
		for _, line := range text.SplitLines(p.Content) {
			body = append(body, text.Truncate(line, maxInner, text.EllipsisEnd))
		}
	} else {
		body = text.Wrap(p.Content, maxInner)
	}

	inner := maxInner
	if !p.Expand && p.Width == 0 {
		inner = 1
		for _, line := range body {
			inner = max(inner, text.VisibleLength(line))
		}
		if p.Header != "" {
			// label plus a space and a horizontal glyph on each side
			inner = max(inner, text.VisibleLength(text.SingleLine(p.Header))+4-2*pad)
		}
		inner = min(inner, maxInner)
	}
	span := inner + 2*pad

	g := p.Border.Glyphs()
	h := string(g.Horizontal)
	v := color.Paint(p.BorderColor, string(g.Vertical))
	blank := v + strings.Repeat(" ", span) + v
	margin := strings.Repeat(" ", pad)

	lines := make([]string, 0, len(body)+2*p.VerticalPadding+2)
	lines = append(lines, p.top(g, span))
	for range max(p.VerticalPadding, 0) {
		lines = append(lines, blank)
	}
	for _, line := range body {
		lines = append(lines, v+margin+text.PadRight(line, inner)+margin+v)
	}
	for range max(p.VerticalPadding, 0) {
		lines = append(lines, blank)
	}
	lines = append(lines, color.Paint(p.BorderColor, string(g.BottomLeft)+strings.Repeat(h, span)+string(g.BottomRight)))
	return lines
}

// top draws the upper border, embedding the header when at least four
// columns of content fit beside the corners.
func (p Panel) top(g Glyphs, span int) string {
	h := string(g.Horizontal)
	plain := color.Paint(p.BorderColor, string(g.TopLeft)+strings.Repeat(h, span)+string(g.TopRight))

	room := span - 4
	if p.Header == "" || room < 1 {
		return plain
	}
	header := text.SingleLine(p.Header)
	if text.VisibleLength(header) > room {
		if room <= 3 {
			return plain
		}
		header = text.Truncate(header, room, text.EllipsisEnd)
	}

	label := " " + color.PaintBold(p.HeaderColor, header) + " "
	rest := span - text.VisibleLength(label)
	if rest < 2 {
		return plain
	}
	left := rest / 2
	return color.Paint(p.BorderColor, string(g.TopLeft)+strings.Repeat(h, left)) +
		label +
		color.Paint(p.BorderColor, strings.Repeat(h, rest-left)+string(g.TopRight))
}
