package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/text"
)

// Gauge is a horizontal bar filled in proportion to a percentage.
//
//	Disk ████████░░░░░░░░  50%
type Gauge struct {
	// Label is shown to the left of the bar.
	Label string
	// Percent is the value from 0 to 100. Out-of-range values are clamped
	// and NaN counts as 0.
	Percent float64
	// ShowPercent appends the value as "XX%".
	ShowPercent bool
	// Warning is the percentage at which the bar turns yellow.
	Warning float64
	// Danger is the percentage at which the bar turns red.
	Danger float64
	// Filled and Empty are the bar glyphs.
	Filled, Empty rune
	// Width fixes the total gauge width. 0 uses the ambient width.
	Width int
}

// DefaultGauge returns a block-character gauge with 70/90 thresholds.
func DefaultGauge(label string, percent float64) Gauge {
	return Gauge{
		Label:       label,
		Percent:     percent,
		ShowPercent: true,
		Warning:     70,
		Danger:      90,
		Filled:      '█',
		Empty:       '░',
	}
}

// gaugeColor picks the fill color for percent.
func gaugeColor(percent, warning, danger float64) lipgloss.Color {
	switch {
	case danger > 0 && percent >= danger:
		return lipgloss.Color("#EF4444")
	case warning > 0 && percent >= warning:
		return lipgloss.Color("#EAB308")
	default:
		return lipgloss.Color("#22C55E")
	}
}

// Render draws the gauge on one line. The bar takes whatever width the
// label and percentage leave, and the label is truncated when the bar would
// get narrower than one column.
func (g Gauge) Render(width int) []string {
	w := ambient(width)
	if g.Width > 0 {
		w = g.Width
	}
	percent := g.Percent
	if math.IsNaN(percent) {
		percent = 0
	}
	percent = math.Max(0, math.Min(100, percent))

	suffix := ""
	if g.ShowPercent {
		suffix = fmt.Sprintf(" %3.0f%%", percent)
		if len(suffix) >= w {
			suffix = ""
		}
	}
	label := text.SingleLine(g.Label)
	if label != "" {
		room := w - len(suffix) - 2
		if room < 1 {
			label = ""
		} else if text.VisibleLength(label) > room {
			label = text.Truncate(label, room, text.EllipsisEnd)
		}
	}
	prefix := ""
	if label != "" {
		prefix = label + " "
	}

	bar := max(w-text.VisibleLength(prefix)-len(suffix), 0)
	filled := int(math.Round(percent / 100 * float64(bar)))

	fill, empty := g.Filled, g.Empty
	if fill == 0 {
		fill = '█'
	}
	if empty == 0 {
		empty = '░'
	}
	return []string{prefix +
		color.Paint(gaugeColor(percent, g.Warning, g.Danger), strings.Repeat(string(fill), filled)) +
		strings.Repeat(string(empty), bar-filled) +
		suffix}
}
