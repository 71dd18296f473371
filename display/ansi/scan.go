// Package ansi splits terminal strings into escape sequences and visible
// text so callers can measure, pad and cut styled output by what the user
// actually sees.
//
// Two escape forms are recognized:
//   - SGR color/style codes: ESC [ <digits and semicolons> m
//   - OSC 8 hyperlinks: ESC ]8;; <target> terminated by ESC \ or BEL
//
// Anything else, including a malformed or unterminated opener, is visible
// text. Width is counted in runes; double-width characters are not special.
package ansi

import (
	"strings"
	"unicode/utf8"
)

// SegmentKind tags a Segment as visible text or an escape sequence.
type SegmentKind int

const (
	// Visible is printable text that occupies columns.
	Visible SegmentKind = iota
	// Escape is a zero-width control sequence.
	Escape
)

// String returns the name of the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case Visible:
		return "visible"
	case Escape:
		return "escape"
	default:
		return "unknown"
	}
}

// Segment is a contiguous run of the scanned string.
type Segment struct {
	Kind SegmentKind
	Text string
}

const (
	esc = '\x1b'
	bel = '\a'

	hyperlinkPrefix = "\x1b]8;;"
)

// Scan partitions s into alternating visible and escape segments.
// Concatenating the Text of every segment reproduces s exactly. Adjacent
// visible runs are merged, escape sequences are always one segment each.
func Scan(s string) []Segment {
	if s == "" {
		return nil
	}

	var segs []Segment
	start := 0
	for i := 0; i < len(s); {
		if s[i] != esc {
			i++
			continue
		}
		end := sequenceEnd(s, i)
		if end < 0 {
			i++
			continue
		}
		if start < i {
			segs = append(segs, Segment{Kind: Visible, Text: s[start:i]})
		}
		segs = append(segs, Segment{Kind: Escape, Text: s[i:end]})
		i = end
		start = end
	}
	if start < len(s) {
		segs = append(segs, Segment{Kind: Visible, Text: s[start:]})
	}
	return segs
}

// sequenceEnd returns the index just past the escape sequence starting at
// s[i], or -1 if s[i:] does not begin a recognized, terminated sequence.
func sequenceEnd(s string, i int) int {
	if i+1 >= len(s) {
		return -1
	}
	switch s[i+1] {
	case '[':
		j := i + 2
		for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
			j++
		}
		if j < len(s) && s[j] == 'm' {
			return j + 1
		}
	case ']':
		if !strings.HasPrefix(s[i:], hyperlinkPrefix) {
			return -1
		}
		for j := i + len(hyperlinkPrefix); j < len(s); j++ {
			switch s[j] {
			case bel:
				return j + 1
			case esc:
				if j+1 < len(s) && s[j+1] == '\\' {
					return j + 2
				}
			case '\n':
				// Targets never span lines; treat the opener as text.
				return -1
			}
		}
	}
	return -1
}

// StripEscapes returns s with every recognized escape sequence removed.
func StripEscapes(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range Scan(s) {
		if seg.Kind == Visible {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// VisibleLength returns the number of runes in s outside escape sequences.
func VisibleLength(s string) int {
	if s == "" {
		return 0
	}
	if strings.IndexByte(s, esc) < 0 {
		return utf8.RuneCountInString(s)
	}
	n := 0
	for _, seg := range Scan(s) {
		if seg.Kind == Visible {
			n += utf8.RuneCountInString(seg.Text)
		}
	}
	return n
}

// IsReset reports whether seq is an SGR sequence that clears all styling.
func IsReset(seq string) bool {
	return seq == "\x1b[0m" || seq == "\x1b[m"
}

// IsSGR reports whether seq is a complete SGR color/style sequence.
func IsSGR(seq string) bool {
	return strings.HasPrefix(seq, "\x1b[") && sequenceEnd(seq, 0) == len(seq)
}

// HyperlinkTarget returns the target of an OSC 8 sequence. An empty target
// with ok true means seq closes a hyperlink.
func HyperlinkTarget(seq string) (target string, ok bool) {
	if !strings.HasPrefix(seq, hyperlinkPrefix) || sequenceEnd(seq, 0) != len(seq) {
		return "", false
	}
	body := strings.TrimPrefix(seq, hyperlinkPrefix)
	switch {
	case strings.HasSuffix(body, "\x1b\\"):
		body = strings.TrimSuffix(body, "\x1b\\")
	case strings.HasSuffix(body, "\a"):
		body = strings.TrimSuffix(body, "\a")
	}
	return body, true
}
