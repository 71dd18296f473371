package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/text"
	"gitlab.com/tinyland/lab/termkit/display/widgets"
)

const sample = `
width: 60
color: never
blocks:
  - rule:
      title: Report
      border: heavy
      align: left
  - panel:
      header: Notes
      content: "hello world"
      padding: 2
      expand: true
  - table:
      title: Hosts
      border: rounded
      show_header: false
      columns:
        - {header: Name, min_width: 6}
        - {header: Load, align: right, ellipsis: middle}
      rows:
        - [alpha, "0.5"]
        - [beta]
  - gauge: {label: Disk, percent: 42}
  - sparkline: {label: cpu, data: [1, 2, 3]}
`

func TestDefaultDocument(t *testing.T) {
	doc := DefaultDocument()
	if doc.Width != 0 {
		t.Errorf("expected Width=0, got %d", doc.Width)
	}
	if doc.Color != "auto" {
		t.Errorf("expected Color=auto, got %s", doc.Color)
	}
	if len(doc.Blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(doc.Blocks))
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("default document should validate: %v", err)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(sample))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Width != 60 {
		t.Errorf("expected Width=60, got %d", doc.Width)
	}
	mode, err := doc.ColorMode()
	if err != nil || mode != color.ModeNever {
		t.Errorf("ColorMode = %v, %v", mode, err)
	}
	if len(doc.Blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d", len(doc.Blocks))
	}
	wantKinds := []string{"rule", "panel", "table", "gauge", "sparkline"}
	for i, want := range wantKinds {
		if got := doc.Blocks[i].Kind(); got != want {
			t.Errorf("block %d kind = %q, want %q", i, got, want)
		}
	}
	if p := doc.Blocks[1].Panel; p.Padding == nil || *p.Padding != 2 {
		t.Errorf("panel padding not parsed: %+v", p)
	}
}

func TestParseDocument_Empty(t *testing.T) {
	doc, err := ParseDocument([]byte("  \n"))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.Color != "auto" {
		t.Errorf("expected defaults, got %+v", doc)
	}
}

func TestParseDocument_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseDocument([]byte("blocks:\n  - rule: {titel: typo}\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.HasPrefix(err.Error(), "config: parse:") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestParseDocument_InvalidYAML(t *testing.T) {
	if _, err := ParseDocument([]byte("blocks: [")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestBuild(t *testing.T) {
	doc, err := ParseDocument([]byte(sample))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	out, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 widgets, got %d", len(out))
	}

	rule, ok := out[0].(widgets.Rule)
	if !ok {
		t.Fatalf("block 0 is %T", out[0])
	}
	if rule.Border != widgets.BorderHeavy || rule.Align != widgets.AlignLeft {
		t.Errorf("rule = %+v", rule)
	}

	panel := out[1].(widgets.Panel)
	if panel.Border != widgets.BorderRounded || panel.Padding != 2 || !panel.Expand {
		t.Errorf("panel = %+v", panel)
	}

	table := out[2].(*widgets.Table)
	if table.Border != widgets.BorderRounded || table.ShowHeader || !table.Shrink {
		t.Errorf("table = %+v", table)
	}
	if table.Columns[1].Align != widgets.AlignRight || table.Columns[1].Ellipsis != text.EllipsisMiddle {
		t.Errorf("column = %+v", table.Columns[1])
	}
	if table.Columns[0].MinWidth != 6 {
		t.Errorf("min width = %d", table.Columns[0].MinWidth)
	}

	gauge := out[3].(widgets.Gauge)
	if !gauge.ShowPercent || gauge.Warning != 70 || gauge.Danger != 90 {
		t.Errorf("gauge defaults not applied: %+v", gauge)
	}

	for i, r := range out {
		for _, line := range r.Render(doc.Width) {
			if n := text.VisibleLength(line); n > doc.Width {
				t.Errorf("block %d line %q is %d wide", i, line, n)
			}
		}
	}
}

func TestValidate_JoinsAllProblems(t *testing.T) {
	doc := &Document{
		Width: -1,
		Color: "sometimes",
		Blocks: []Block{
			{},
			{Rule: &RuleBlock{}, Panel: &PanelBlock{}},
			{Table: &TableBlock{Border: "wavy"}},
			{Table: &TableBlock{Columns: []ColumnBlock{{Header: "a", Align: "up", Ellipsis: "both"}}}},
			{Sparkline: &SparklineBlock{Min: 5, Max: 1}},
		},
	}
	err := doc.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"width must be non-negative",
		"color:",
		"blocks[0]: block must define exactly one",
		"blocks[1]: block must define exactly one",
		"blocks[2]: table.columns must not be empty",
		"table.border: widgets: unknown border style",
		"blocks[3]: table.columns[0].align:",
		"table.columns[0].ellipsis: text: unknown ellipsis mode",
		"blocks[4]: sparkline: min 5 exceeds max 1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}

	if _, err := doc.Build(); err == nil || !strings.HasPrefix(err.Error(), "config: invalid document:") {
		t.Errorf("Build error = %v", err)
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveAndLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.yaml")
	pad := 0
	doc := DefaultDocument()
	doc.Width = 40
	doc.Blocks = append(doc.Blocks,
		Block{Rule: &RuleBlock{Title: "Saved"}},
		Block{Panel: &PanelBlock{Content: "body", Padding: &pad}},
	)

	if err := SaveDocument(doc, path); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	loaded, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if loaded.Width != 40 || len(loaded.Blocks) != 2 {
		t.Fatalf("loaded = %+v", loaded)
	}
	if loaded.Blocks[0].Rule.Title != "Saved" {
		t.Errorf("rule title = %q", loaded.Blocks[0].Rule.Title)
	}
	if p := loaded.Blocks[1].Panel.Padding; p == nil || *p != 0 {
		t.Errorf("explicit zero padding lost: %v", p)
	}
}

func TestValidate_RejectsNonFiniteNumbers(t *testing.T) {
	doc, err := ParseDocument([]byte(`
blocks:
  - gauge: {label: Disk, percent: .nan}
  - gauge: {label: Load, percent: 10, warning: .inf}
  - sparkline: {data: [1, .nan, 3]}
  - sparkline: {data: [1], min: -.inf, max: 1}
`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	err = doc.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		"blocks[0]: gauge.percent must be a finite number, got NaN",
		"blocks[1]: gauge.warning must be a finite number, got +Inf",
		"blocks[2]: sparkline.data[1] must be a finite number, got NaN",
		"blocks[3]: sparkline: min and max must be finite numbers",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}
