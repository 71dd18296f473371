// Package color decides whether output is styled and paints text with
// lipgloss colors.
//
// It implements the NO_COLOR specification (https://no-color.org/) and
// automatic pipe/redirect detection. When color is disabled, lipgloss is
// set to the Ascii profile so every Paint call produces plain text.
package color

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode is the user's color preference.
type Mode int

const (
	// ModeAuto colors output only on a terminal without NO_COLOR.
	ModeAuto Mode = iota
	// ModeAlways colors output even when redirected.
	ModeAlways
	// ModeNever disables color.
	ModeNever
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode maps a flag or config value to a Mode. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "on":
		return ModeAlways, nil
	case "never", "off":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("color: unknown mode %q (want auto, always or never)", s)
	}
}

// ShouldDisableColor returns true if color output should be suppressed.
// This happens when:
//   - The NO_COLOR environment variable is set (any value, per https://no-color.org/)
//   - stdout is not a terminal (pipe or redirect)
func ShouldDisableColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}
	return false
}

// Apply configures the global lipgloss renderer for mode and reports
// whether color is enabled.
func Apply(mode Mode) bool {
	switch mode {
	case ModeNever:
		ForceDisable()
		return false
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
		return true
	}
	if ShouldDisableColor() {
		ForceDisable()
		return false
	}
	return true
}

// ForceDisable sets the lipgloss color profile to Ascii, unconditionally
// disabling all color output. This is useful for tests.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Enabled reports whether the current profile emits color.
func Enabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// textStyle is the base of every paint style. Callers measure text before
// painting it, so lipgloss must not expand tabs or pad lines into a block.
func textStyle() lipgloss.Style {
	return lipgloss.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
}

// Paint renders s in the foreground color c. An empty color or string is
// returned unchanged. Painting never makes s wider.
func Paint(c lipgloss.Color, s string) string {
	if c == "" || s == "" {
		return s
	}
	return textStyle().Foreground(c).Render(s)
}

// PaintBold is Paint with bold weight, used for titles.
func PaintBold(c lipgloss.Color, s string) string {
	if s == "" {
		return s
	}
	style := textStyle().Bold(true)
	if c != "" {
		style = style.Foreground(c)
	}
	return style.Render(s)
}
