package text

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
)

// EllipsisMode selects where Truncate places the "..." marker.
type EllipsisMode int

const (
	// EllipsisEnd keeps the head of the text (default).
	EllipsisEnd EllipsisMode = iota
	// EllipsisStart keeps the tail of the text.
	EllipsisStart
	// EllipsisMiddle keeps both ends, the head getting the odd column.
	EllipsisMiddle
)

const ellipsis = "..."

// String returns the config name of the mode.
func (m EllipsisMode) String() string {
	switch m {
	case EllipsisStart:
		return "start"
	case EllipsisMiddle:
		return "middle"
	default:
		return "end"
	}
}

// ParseEllipsisMode maps a config name to an EllipsisMode. The empty
// string selects EllipsisEnd.
func ParseEllipsisMode(s string) (EllipsisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "end":
		return EllipsisEnd, nil
	case "start":
		return EllipsisStart, nil
	case "middle":
		return EllipsisMiddle, nil
	default:
		return EllipsisEnd, fmt.Errorf("text: unknown ellipsis mode %q", s)
	}
}

// Truncate shortens s to at most maxWidth visible columns, marking the cut
// with "...". Text that already fits is returned unchanged. A maxWidth of 3
// or less leaves no room for content and yields maxWidth dots.
//
// Escape sequences are kept in their original order, including those that
// sat inside the removed run, so styles and hyperlinks stay balanced.
func Truncate(s string, maxWidth int, mode EllipsisMode) string {
	if maxWidth <= 0 {
		return ""
	}
	if maxWidth <= len(ellipsis) {
		return strings.Repeat(".", maxWidth)
	}
	n := ansi.VisibleLength(s)
	if n <= maxWidth {
		return s
	}

	keep := maxWidth - len(ellipsis)
	head := keep
	switch mode {
	case EllipsisStart:
		head = 0
	case EllipsisMiddle:
		head = (keep + 1) / 2
	}
	tailStart := n - (keep - head)

	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for _, seg := range ansi.Scan(s) {
		if seg.Kind == ansi.Escape {
			b.WriteString(seg.Text)
			continue
		}
		for _, r := range seg.Text {
			if pos == head {
				b.WriteString(ellipsis)
			}
			if pos < head || pos >= tailStart {
				b.WriteRune(r)
			}
			pos++
		}
	}
	return b.String()
}
