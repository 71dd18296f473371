package color

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
)

func withNoColor(t *testing.T, value string, set bool) {
	t.Helper()
	orig, hadOrig := os.LookupEnv("NO_COLOR")
	t.Cleanup(func() {
		if hadOrig {
			os.Setenv("NO_COLOR", orig)
		} else {
			os.Unsetenv("NO_COLOR")
		}
	})
	if set {
		os.Setenv("NO_COLOR", value)
	} else {
		os.Unsetenv("NO_COLOR")
	}
}

func withProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	lipgloss.SetColorProfile(p)
}

func TestShouldDisableColor_NOCOLORSet(t *testing.T) {
	for _, val := range []string{"", "1", "true", "anything"} {
		withNoColor(t, val, true)
		if !ShouldDisableColor() {
			t.Errorf("ShouldDisableColor() = false with NO_COLOR=%q, want true", val)
		}
	}
}

func TestShouldDisableColor_NOCOLORUnset(t *testing.T) {
	withNoColor(t, "", false)

	// In test environments, stdout is typically not a terminal, so
	// ShouldDisableColor may return true due to pipe detection.
	_ = ShouldDisableColor()
}

func TestApply_Modes(t *testing.T) {
	withProfile(t, termenv.ANSI)

	if Apply(ModeNever) {
		t.Error("Apply(ModeNever) should report color disabled")
	}
	if Enabled() {
		t.Error("profile should be Ascii after ModeNever")
	}
	if !Apply(ModeAlways) {
		t.Error("Apply(ModeAlways) should report color enabled")
	}
	if !Enabled() {
		t.Error("profile should emit color after ModeAlways")
	}
}

func TestApply_AutoRespectsNOCOLOR(t *testing.T) {
	withProfile(t, termenv.ANSI)
	withNoColor(t, "1", true)

	if Apply(ModeAuto) {
		t.Error("Apply(ModeAuto) should return false when NO_COLOR is set")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"ALWAYS", ModeAlways},
		{"on", ModeAlways},
		{"never", ModeNever},
		{" off ", ModeNever},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if ModeNever.String() != "never" || ModeAuto.String() != "auto" {
		t.Error("unexpected mode names")
	}
}

func TestPaint_Disabled(t *testing.T) {
	withProfile(t, termenv.Ascii)

	if got := Paint(lipgloss.Color("1"), "error"); got != "error" {
		t.Errorf("Paint with color disabled = %q, want plain text", got)
	}
	if got := PaintBold(lipgloss.Color("1"), "title"); got != "title" {
		t.Errorf("PaintBold with color disabled = %q, want plain text", got)
	}
}

func TestPaint_Enabled(t *testing.T) {
	withProfile(t, termenv.ANSI)

	got := Paint(lipgloss.Color("1"), "error")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected SGR sequence, got %q", got)
	}
	if ansi.StripEscapes(got) != "error" {
		t.Errorf("painted text should strip back to the input, got %q", ansi.StripEscapes(got))
	}
	if ansi.VisibleLength(got) != 5 {
		t.Errorf("VisibleLength = %d, want 5", ansi.VisibleLength(got))
	}
}

func TestPaint_Passthrough(t *testing.T) {
	if got := Paint("", "plain"); got != "plain" {
		t.Errorf("empty color should pass through, got %q", got)
	}
	if got := Paint(lipgloss.Color("2"), ""); got != "" {
		t.Errorf("empty text should pass through, got %q", got)
	}
}

func TestPaint_NeverWidensText(t *testing.T) {
	for _, p := range []termenv.Profile{termenv.Ascii, termenv.ANSI, termenv.TrueColor} {
		withProfile(t, p)

		if got := ansi.StripEscapes(PaintBold(lipgloss.Color("1"), "a\tb")); got != "a\tb" {
			t.Errorf("profile %v: tab expanded to %q", p, got)
		}
		if got := ansi.StripEscapes(Paint(lipgloss.Color("1"), "a\tb")); got != "a\tb" {
			t.Errorf("profile %v: tab expanded to %q", p, got)
		}
		if got := ansi.StripEscapes(PaintBold("", "two\nlines")); got != "twolines" {
			t.Errorf("profile %v: multi-line text rendered as %q", p, got)
		}
	}
}
