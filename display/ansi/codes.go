package ansi

import "fmt"

// SGR codes recognized by the scanner.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// HyperlinkClose ends the hyperlink opened by Link.
	HyperlinkClose = hyperlinkPrefix + "\x1b\\"
)

// Colorize wraps value in code and a trailing Reset when enabled.
func Colorize(enabled bool, value, code string) string {
	if !enabled || value == "" || code == "" {
		return value
	}
	return code + value + Reset
}

// Link returns text wrapped in an OSC 8 hyperlink escape sequence.
// Terminals without OSC 8 support show the text with no visible artifacts.
// An empty url returns text unchanged.
func Link(url, text string) string {
	if url == "" {
		return text
	}
	return fmt.Sprintf("\x1b]8;;%s\x1b\\%s%s", url, text, HyperlinkClose)
}
