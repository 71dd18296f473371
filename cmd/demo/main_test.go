package main

import (
	"testing"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
)

func TestParseWidths(t *testing.T) {
	got, err := parseWidths(" 100, 60,,36 ")
	if err != nil {
		t.Fatalf("parseWidths: %v", err)
	}
	if len(got) != 3 || got[0] != 100 || got[1] != 60 || got[2] != 36 {
		t.Errorf("parseWidths = %v", got)
	}

	for _, bad := range []string{"", "  , ", "80,abc", "0", "-4"} {
		if _, err := parseWidths(bad); err == nil {
			t.Errorf("parseWidths(%q) should fail", bad)
		}
	}
}

func TestSampleFitsEveryDemoWidth(t *testing.T) {
	doc, err := loadDocument("")
	if err != nil {
		t.Fatalf("sample document: %v", err)
	}
	ws, err := doc.Build()
	if err != nil {
		t.Fatalf("sample document: %v", err)
	}
	if len(ws) != 6 {
		t.Fatalf("expected 6 blocks, got %d", len(ws))
	}
	for _, w := range []int{100, 60, 36} {
		for _, r := range ws {
			for _, line := range r.Render(w) {
				if n := ansi.VisibleLength(line); n > w {
					t.Errorf("line %q is %d wide at %d", ansi.StripEscapes(line), n, w)
				}
			}
		}
	}
}
