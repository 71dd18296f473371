package layout

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// FallbackWidth is used when no terminal width can be determined, for
// example when output is redirected to a file.
const FallbackWidth = 80

var getSize = term.GetSize

// DetectTerminalWidth returns the column count of the terminal on stdout.
// It tries TTY detection first, then the COLUMNS environment variable, and
// finally FallbackWidth.
func DetectTerminalWidth() int {
	return detectWidth(os.Stdout.Fd(), os.Getenv("COLUMNS"))
}

func detectWidth(fd uintptr, columns string) int {
	if w, _, err := getSize(fd); err == nil && w > 0 {
		return w
	}
	if columns != "" {
		if w, err := strconv.Atoi(columns); err == nil && w > 0 {
			return w
		}
	}
	return FallbackWidth
}
