package widgets

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
	"gitlab.com/tinyland/lab/termkit/display/color"
)

func TestPanel_FitsContent(t *testing.T) {
	assertLines(t, DefaultPanel("hello").Render(80), []string{
		"╭───────╮",
		"│ hello │",
		"╰───────╯",
	})
}

func TestPanel_Header(t *testing.T) {
	p := DefaultPanel("hello")
	p.Header = "Hi"
	assertLines(t, p.Render(80), []string{
		"╭─ Hi ──╮",
		"│ hello │",
		"╰───────╯",
	})
}

func TestPanel_HeaderWidensNarrowContent(t *testing.T) {
	p := DefaultPanel("x")
	p.Header = "Status"
	assertLines(t, p.Render(80), []string{
		"╭─ Status ─╮",
		"│ x        │",
		"╰──────────╯",
	})
}

func TestPanel_HeaderTruncated(t *testing.T) {
	p := DefaultPanel("x")
	p.Header = "A very long header"
	p.Width = 12
	lines := plain(p.Render(80))
	if lines[0] != "╭─ A v... ─╮" {
		t.Errorf("top = %q", lines[0])
	}
}

func TestPanel_HeaderDroppedWhenCramped(t *testing.T) {
	p := DefaultPanel("x")
	p.Header = "Header"
	p.Width = 8
	lines := plain(p.Render(80))
	if lines[0] != "╭──────╮" {
		t.Errorf("top = %q", lines[0])
	}
}

func TestPanel_Wraps(t *testing.T) {
	p := DefaultPanel("aaaa bbbb")
	p.Width = 8
	assertLines(t, p.Render(80), []string{
		"╭──────╮",
		"│ aaaa │",
		"│ bbbb │",
		"╰──────╯",
	})
}

func TestPanel_Raw(t *testing.T) {
	p := DefaultPanel("abcdefgh\nxy")
	p.Raw = true
	p.Width = 8
	p.Border = BorderASCII
	assertLines(t, p.Render(80), []string{
		"+------+",
		"| a... |",
		"| xy   |",
		"+------+",
	})
}

func TestPanel_VerticalPadding(t *testing.T) {
	p := DefaultPanel("hi")
	p.VerticalPadding = 1
	p.Border = BorderDouble
	assertLines(t, p.Render(80), []string{
		"╔════╗",
		"║    ║",
		"║ hi ║",
		"║    ║",
		"╚════╝",
	})
}

func TestPanel_ExpandFillsWidth(t *testing.T) {
	p := DefaultPanel("short")
	p.Expand = true
	for _, l := range p.Render(30) {
		if n := ansi.VisibleLength(l); n != 30 {
			t.Errorf("line %q is %d wide, want 30", ansi.StripEscapes(l), n)
		}
	}
}

func TestPanel_CarriesStyleAcrossWrappedLines(t *testing.T) {
	p := DefaultPanel(ansi.Red + "one two three" + ansi.Reset)
	p.Width = 9
	lines := p.Render(80)
	for _, l := range lines[1 : len(lines)-1] {
		if !strings.Contains(l, ansi.Red) {
			t.Errorf("wrapped line lost its color: %q", l)
		}
	}
}

func TestPanel_TinyWidths(t *testing.T) {
	content := "The " + ansi.Bold + "quick" + ansi.Reset + " brown fox " +
		ansi.Link("https://example.com", "jumps") + " over the lazy dog"
	for width := 3; width <= 60; width++ {
		for _, expand := range []bool{false, true} {
			p := DefaultPanel(content)
			p.Header = "Fox"
			p.Expand = expand
			for i, l := range p.Render(width) {
				if n := ansi.VisibleLength(l); n > width {
					t.Fatalf("width %d expand %v line %d is %d wide: %q", width, expand, i, n, ansi.StripEscapes(l))
				}
			}
		}
	}
}

func TestPanel_HeaderWithTab(t *testing.T) {
	want := []string{
		"╭─ a b ─╮",
		"│ x     │",
		"╰───────╯",
	}
	p := DefaultPanel("x")
	p.Header = "a\tb"
	assertLines(t, p.Render(80), want)

	p.Width = 9
	assertLines(t, p.Render(80), want)
}

func TestPanel_PaintedHeaderKeepsWidth(t *testing.T) {
	color.Apply(color.ModeAlways)
	t.Cleanup(color.ForceDisable)

	for _, header := range []string{"a\tb", "two\nlines", "tab\tand\nnewline"} {
		for width := 3; width <= 30; width++ {
			p := DefaultPanel("body")
			p.Header = header
			p.HeaderColor = "#FF0000"
			p.BorderColor = "#888888"
			p.Expand = true
			lines := p.Render(width)
			for i, l := range lines {
				if n := ansi.VisibleLength(l); n > width {
					t.Fatalf("header %q width %d line %d is %d wide: %q", header, width, i, n, ansi.StripEscapes(l))
				}
				if strings.ContainsAny(l, "\t\n") {
					t.Fatalf("header %q width %d line %d spans rows: %q", header, width, i, l)
				}
			}
		}
	}
}

func TestPanel_RawClosesStylePerLine(t *testing.T) {
	p := DefaultPanel(ansi.Red + "aaaa\nbb")
	p.Raw = true
	p.Width = 8
	p.Border = BorderASCII
	lines := p.Render(80)
	assertLines(t, lines, []string{
		"+------+",
		"| aaaa |",
		"| bb   |",
		"+------+",
	})
	for _, l := range lines[1:3] {
		if !strings.Contains(l, ansi.Red) {
			t.Errorf("raw line lost its color: %q", l)
		}
		if last := l[strings.LastIndex(l, "\x1b"):]; !strings.HasPrefix(last, ansi.Reset) {
			t.Errorf("raw line leaves its style open before the border: %q", l)
		}
	}

	p.Content = ansi.Link("https://example.com", "ab\ncd")
	for _, l := range p.Render(80)[1:3] {
		if !strings.HasPrefix(l[strings.LastIndex(l, "\x1b]8;;"):], ansi.HyperlinkClose) {
			t.Errorf("raw line leaves its hyperlink open before the border: %q", l)
		}
	}
}
