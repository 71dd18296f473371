// Package text measures, pads, wraps and truncates strings that may carry
// SGR color codes and OSC 8 hyperlinks. Every width in this package is a
// visible width: escape sequences count as zero columns.
package text

import (
	"strings"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
)

// VisibleLength returns the width of s with escape sequences ignored.
func VisibleLength(s string) int {
	return ansi.VisibleLength(s)
}

// PadRight pads s with spaces on the right to the given visible width.
func PadRight(s string, width int) string {
	return PadRightWith(s, width, ' ')
}

// PadLeft pads s with spaces on the left to the given visible width.
func PadLeft(s string, width int) string {
	return PadLeftWith(s, width, ' ')
}

// Center pads s on both sides to the given visible width. An odd amount of
// padding puts the extra column on the right.
func Center(s string, width int) string {
	return CenterWith(s, width, ' ')
}

// PadRightWith is PadRight with a custom pad rune. Input that is already
// at least width wide is returned unchanged.
func PadRightWith(s string, width int, pad rune) string {
	n := width - ansi.VisibleLength(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// PadLeftWith is PadLeft with a custom pad rune.
func PadLeftWith(s string, width int, pad rune) string {
	n := width - ansi.VisibleLength(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// CenterWith is Center with a custom pad rune.
func CenterWith(s string, width int, pad rune) string {
	n := width - ansi.VisibleLength(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// SingleLine replaces tabs and line breaks with single spaces so s occupies
// one row whose width VisibleLength reports exactly. Escape sequences are
// left intact.
func SingleLine(s string) string {
	return lineBreaks.Replace(s)
}
