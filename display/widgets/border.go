package widgets

import (
	"fmt"
	"strings"
)

// BorderStyle selects the glyph set used for borders and rules.
type BorderStyle int

const (
	// BorderNone draws no visible border.
	BorderNone BorderStyle = iota
	// BorderASCII uses + - | for terminals without box drawing.
	BorderASCII
	// BorderSquare uses sharp corner box-drawing characters.
	BorderSquare
	// BorderRounded uses rounded corner box-drawing characters.
	BorderRounded
	// BorderHeavy uses thick box-drawing characters.
	BorderHeavy
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble
)

// Glyphs is the full set of characters needed to draw a bordered grid.
type Glyphs struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
	TopJoin, BottomJoin, LeftJoin, RightJoin   rune
	Cross                                      rune
}

var glyphSets = map[BorderStyle]Glyphs{
	BorderNone: {
		TopLeft: ' ', TopRight: ' ', BottomLeft: ' ', BottomRight: ' ',
		Horizontal: ' ', Vertical: ' ',
		TopJoin: ' ', BottomJoin: ' ', LeftJoin: ' ', RightJoin: ' ', Cross: ' ',
	},
	BorderASCII: {
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		Horizontal: '-', Vertical: '|',
		TopJoin: '+', BottomJoin: '+', LeftJoin: '+', RightJoin: '+', Cross: '+',
	},
	BorderSquare: {
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
		TopJoin: '┬', BottomJoin: '┴', LeftJoin: '├', RightJoin: '┤', Cross: '┼',
	},
	BorderRounded: {
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
		TopJoin: '┬', BottomJoin: '┴', LeftJoin: '├', RightJoin: '┤', Cross: '┼',
	},
	BorderHeavy: {
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃',
		TopJoin: '┳', BottomJoin: '┻', LeftJoin: '┣', RightJoin: '┫', Cross: '╋',
	},
	BorderDouble: {
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║',
		TopJoin: '╦', BottomJoin: '╩', LeftJoin: '╠', RightJoin: '╣', Cross: '╬',
	},
}

var borderNames = map[BorderStyle]string{
	BorderNone:    "none",
	BorderASCII:   "ascii",
	BorderSquare:  "square",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// Glyphs returns the glyph set for b. Unknown styles fall back to square.
func (b BorderStyle) Glyphs() Glyphs {
	if g, ok := glyphSets[b]; ok {
		return g
	}
	return glyphSets[BorderSquare]
}

// String returns the config name of the style.
func (b BorderStyle) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorderStyle maps a config name to a BorderStyle.
func ParseBorderStyle(s string) (BorderStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for b, n := range borderNames {
		if n == name {
			return b, nil
		}
	}
	return BorderNone, fmt.Errorf("widgets: unknown border style %q", s)
}

// hline draws a horizontal border across cells of the given widths, each
// widened by pad on both sides, joined by join and capped by left and right.
func (g Glyphs) hline(left, join, right rune, widths []int, pad int) string {
	var b strings.Builder
	b.WriteRune(left)
	h := string(g.Horizontal)
	for i, w := range widths {
		if i > 0 {
			b.WriteRune(join)
		}
		b.WriteString(strings.Repeat(h, w+2*pad))
	}
	b.WriteRune(right)
	return b.String()
}
