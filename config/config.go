// Package config parses termkit documents.
//
// A document is a YAML file holding an optional width and color mode and an
// ordered list of blocks. Each block names exactly one widget:
//
//	width: 0
//	color: auto
//	blocks:
//	  - rule: {title: Report}
//	  - panel: {header: Notes, content: "hello"}
//	  - table:
//	      columns: [{header: Name}, {header: Age, align: right}]
//	      rows: [[Alice, "30"]]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Document is a sequence of blocks rendered top to bottom.
type Document struct {
	// Width fixes the render width. 0 detects the terminal width.
	Width int `yaml:"width"`
	// Color is the color mode: "auto", "always" or "never".
	Color string `yaml:"color"`
	// Blocks are rendered in order, separated by nothing.
	Blocks []Block `yaml:"blocks"`
}

// Block holds exactly one widget definition.
type Block struct {
	Rule      *RuleBlock      `yaml:"rule,omitempty"`
	Panel     *PanelBlock     `yaml:"panel,omitempty"`
	Table     *TableBlock     `yaml:"table,omitempty"`
	Gauge     *GaugeBlock     `yaml:"gauge,omitempty"`
	Sparkline *SparklineBlock `yaml:"sparkline,omitempty"`
}

// RuleBlock configures a horizontal rule.
type RuleBlock struct {
	Title      string `yaml:"title,omitempty"`
	Align      string `yaml:"align,omitempty"`
	Border     string `yaml:"border,omitempty"`
	TitleColor string `yaml:"title_color,omitempty"`
	LineColor  string `yaml:"line_color,omitempty"`
	Width      int    `yaml:"width,omitempty"`
}

// PanelBlock configures a bordered panel.
type PanelBlock struct {
	Header      string `yaml:"header,omitempty"`
	HeaderColor string `yaml:"header_color,omitempty"`
	Content     string `yaml:"content"`
	Border      string `yaml:"border,omitempty"`
	BorderColor string `yaml:"border_color,omitempty"`
	// Padding defaults to 1 when omitted.
	Padding         *int `yaml:"padding,omitempty"`
	VerticalPadding int  `yaml:"vertical_padding,omitempty"`
	Expand          bool `yaml:"expand,omitempty"`
	Raw             bool `yaml:"raw,omitempty"`
	Width           int  `yaml:"width,omitempty"`
}

// TableBlock configures a table.
type TableBlock struct {
	Title       string `yaml:"title,omitempty"`
	Caption     string `yaml:"caption,omitempty"`
	TitleColor  string `yaml:"title_color,omitempty"`
	Border      string `yaml:"border,omitempty"`
	BorderColor string `yaml:"border_color,omitempty"`
	Expand      bool   `yaml:"expand,omitempty"`
	// Shrink and ShowHeader default to true when omitted.
	Shrink            *bool         `yaml:"shrink,omitempty"`
	ShowHeader        *bool         `yaml:"show_header,omitempty"`
	ShowRowSeparators bool          `yaml:"show_row_separators,omitempty"`
	Width             int           `yaml:"width,omitempty"`
	Columns           []ColumnBlock `yaml:"columns"`
	Rows              [][]string    `yaml:"rows"`
}

// ColumnBlock configures one table column.
type ColumnBlock struct {
	Header      string `yaml:"header"`
	Align       string `yaml:"align,omitempty"`
	MinWidth    int    `yaml:"min_width,omitempty"`
	MaxWidth    int    `yaml:"max_width,omitempty"`
	HeaderColor string `yaml:"header_color,omitempty"`
	Ellipsis    string `yaml:"ellipsis,omitempty"`
}

// GaugeBlock configures a percentage bar.
type GaugeBlock struct {
	Label   string  `yaml:"label,omitempty"`
	Percent float64 `yaml:"percent"`
	// ShowPercent defaults to true when omitted.
	ShowPercent *bool `yaml:"show_percent,omitempty"`
	// Warning and Danger default to 70 and 90 when zero.
	Warning float64 `yaml:"warning,omitempty"`
	Danger  float64 `yaml:"danger,omitempty"`
	Width   int     `yaml:"width,omitempty"`
}

// SparklineBlock configures a one-line chart.
type SparklineBlock struct {
	Label string    `yaml:"label,omitempty"`
	Data  []float64 `yaml:"data"`
	Min   float64   `yaml:"min,omitempty"`
	Max   float64   `yaml:"max,omitempty"`
	Color string    `yaml:"color,omitempty"`
	Width int       `yaml:"width,omitempty"`
}

// DefaultDocument returns an empty document that detects width and color.
func DefaultDocument() *Document {
	return &Document{
		Width:  0,
		Color:  "auto",
		Blocks: []Block{},
	}
}

// ParseDocument decodes YAML into a document, merging with defaults.
// Unknown keys are rejected so that typos surface instead of being ignored.
func ParseDocument(data []byte) (*Document, error) {
	doc := DefaultDocument()
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return doc, nil
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseDocument(data)
}

// SaveDocument writes doc to path as YAML, creating parent directories.
func SaveDocument(doc *Document, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
