package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/text"
	"gitlab.com/tinyland/lab/termkit/display/widgets"
)

// Kind returns the name of the widget the block defines, or "" when the
// block defines none or several.
func (b Block) Kind() string {
	var kinds []string
	if b.Rule != nil {
		kinds = append(kinds, "rule")
	}
	if b.Panel != nil {
		kinds = append(kinds, "panel")
	}
	if b.Table != nil {
		kinds = append(kinds, "table")
	}
	if b.Gauge != nil {
		kinds = append(kinds, "gauge")
	}
	if b.Sparkline != nil {
		kinds = append(kinds, "sparkline")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// ColorMode parses the document's color setting.
func (d *Document) ColorMode() (color.Mode, error) {
	return color.ParseMode(d.Color)
}

// Validate reports every problem in the document at once.
func (d *Document) Validate() error {
	var errs []error
	if d.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be non-negative, got %d", d.Width))
	}
	if _, err := d.ColorMode(); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	for i, b := range d.Blocks {
		if _, err := b.build(); err != nil {
			errs = append(errs, fmt.Errorf("blocks[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Build turns the blocks into widgets, in document order.
func (d *Document) Build() ([]widgets.Renderable, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid document: %w", err)
	}
	out := make([]widgets.Renderable, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		r, _ := b.build()
		out = append(out, r)
	}
	return out, nil
}

func (b Block) build() (widgets.Renderable, error) {
	switch b.Kind() {
	case "rule":
		return b.Rule.build()
	case "panel":
		return b.Panel.build()
	case "table":
		return b.Table.build()
	case "gauge":
		return b.Gauge.build()
	case "sparkline":
		return b.Sparkline.build()
	default:
		return nil, errors.New("block must define exactly one of rule, panel, table, gauge or sparkline")
	}
}

// border parses name, keeping def when name is empty.
func border(name string, def widgets.BorderStyle) (widgets.BorderStyle, error) {
	if name == "" {
		return def, nil
	}
	return widgets.ParseBorderStyle(name)
}

func (r *RuleBlock) build() (widgets.Renderable, error) {
	rule := widgets.DefaultRule(r.Title)
	rule.TitleColor = lipgloss.Color(r.TitleColor)
	rule.LineColor = lipgloss.Color(r.LineColor)
	rule.Width = r.Width

	var errs []error
	var err error
	if rule.Border, err = border(r.Border, rule.Border); err != nil {
		errs = append(errs, fmt.Errorf("rule.border: %w", err))
	}
	if r.Align != "" {
		if rule.Align, err = widgets.ParseAlignment(r.Align); err != nil {
			errs = append(errs, fmt.Errorf("rule.align: %w", err))
		}
	}
	if r.Width < 0 {
		errs = append(errs, fmt.Errorf("rule.width must be non-negative, got %d", r.Width))
	}
	return rule, errors.Join(errs...)
}

func (p *PanelBlock) build() (widgets.Renderable, error) {
	panel := widgets.DefaultPanel(p.Content)
	panel.Header = p.Header
	panel.HeaderColor = lipgloss.Color(p.HeaderColor)
	panel.BorderColor = lipgloss.Color(p.BorderColor)
	panel.VerticalPadding = p.VerticalPadding
	panel.Expand = p.Expand
	panel.Raw = p.Raw
	panel.Width = p.Width
	if p.Padding != nil {
		panel.Padding = *p.Padding
	}

	var errs []error
	var err error
	if panel.Border, err = border(p.Border, panel.Border); err != nil {
		errs = append(errs, fmt.Errorf("panel.border: %w", err))
	}
	if panel.Padding < 0 {
		errs = append(errs, fmt.Errorf("panel.padding must be non-negative, got %d", panel.Padding))
	}
	if p.VerticalPadding < 0 {
		errs = append(errs, fmt.Errorf("panel.vertical_padding must be non-negative, got %d", p.VerticalPadding))
	}
	if p.Width < 0 {
		errs = append(errs, fmt.Errorf("panel.width must be non-negative, got %d", p.Width))
	}
	return panel, errors.Join(errs...)
}

func (t *TableBlock) build() (widgets.Renderable, error) {
	var errs []error
	if len(t.Columns) == 0 {
		errs = append(errs, errors.New("table.columns must not be empty"))
	}

	cols := make([]widgets.Column, len(t.Columns))
	for i, c := range t.Columns {
		col := widgets.Column{
			Header:      c.Header,
			MinWidth:    c.MinWidth,
			MaxWidth:    c.MaxWidth,
			HeaderColor: lipgloss.Color(c.HeaderColor),
		}
		var err error
		if col.Align, err = widgets.ParseAlignment(c.Align); err != nil {
			errs = append(errs, fmt.Errorf("table.columns[%d].align: %w", i, err))
		}
		if col.Ellipsis, err = text.ParseEllipsisMode(c.Ellipsis); err != nil {
			errs = append(errs, fmt.Errorf("table.columns[%d].ellipsis: %w", i, err))
		}
		if c.MinWidth < 0 || c.MaxWidth < 0 {
			errs = append(errs, fmt.Errorf("table.columns[%d]: widths must be non-negative", i))
		}
		cols[i] = col
	}

	table := widgets.DefaultTable(cols...)
	table.Rows = t.Rows
	table.Title = t.Title
	table.Caption = t.Caption
	table.TitleColor = lipgloss.Color(t.TitleColor)
	table.BorderColor = lipgloss.Color(t.BorderColor)
	table.Expand = t.Expand
	table.ShowRowSeparators = t.ShowRowSeparators
	table.Width = t.Width
	if t.Shrink != nil {
		table.Shrink = *t.Shrink
	}
	if t.ShowHeader != nil {
		table.ShowHeader = *t.ShowHeader
	}

	var err error
	if table.Border, err = border(t.Border, table.Border); err != nil {
		errs = append(errs, fmt.Errorf("table.border: %w", err))
	}
	if t.Width < 0 {
		errs = append(errs, fmt.Errorf("table.width must be non-negative, got %d", t.Width))
	}
	return table, errors.Join(errs...)
}

func (g *GaugeBlock) build() (widgets.Renderable, error) {
	gauge := widgets.DefaultGauge(g.Label, g.Percent)
	gauge.Width = g.Width
	if g.ShowPercent != nil {
		gauge.ShowPercent = *g.ShowPercent
	}
	if g.Warning != 0 {
		gauge.Warning = g.Warning
	}
	if g.Danger != 0 {
		gauge.Danger = g.Danger
	}
	var errs []error
	for _, f := range []struct {
		name string
		v    float64
	}{{"percent", g.Percent}, {"warning", g.Warning}, {"danger", g.Danger}} {
		if !finite(f.v) {
			errs = append(errs, fmt.Errorf("gauge.%s must be a finite number, got %v", f.name, f.v))
		}
	}
	if g.Width < 0 {
		errs = append(errs, fmt.Errorf("gauge.width must be non-negative, got %d", g.Width))
	}
	return gauge, errors.Join(errs...)
}

func (s *SparklineBlock) build() (widgets.Renderable, error) {
	spark := widgets.Sparkline{
		Data:  s.Data,
		Min:   s.Min,
		Max:   s.Max,
		Label: s.Label,
		Color: lipgloss.Color(s.Color),
		Width: s.Width,
	}
	var errs []error
	for i, v := range s.Data {
		if !finite(v) {
			errs = append(errs, fmt.Errorf("sparkline.data[%d] must be a finite number, got %v", i, v))
		}
	}
	switch {
	case !finite(s.Min) || !finite(s.Max):
		errs = append(errs, fmt.Errorf("sparkline: min and max must be finite numbers, got %v and %v", s.Min, s.Max))
	case s.Min > s.Max:
		errs = append(errs, fmt.Errorf("sparkline: min %v exceeds max %v", s.Min, s.Max))
	}
	if s.Width < 0 {
		errs = append(errs, fmt.Errorf("sparkline.width must be non-negative, got %d", s.Width))
	}
	return spark, errors.Join(errs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
