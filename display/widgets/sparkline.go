package widgets

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/text"
)

// sparkBlocks holds the eight block heights, lowest first.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline is a one-line chart of a numeric series.
type Sparkline struct {
	// Data points to render, most recent last.
	Data []float64
	// Min and Max fix the scale. When equal the series is auto-scaled.
	Min, Max float64
	// Label is shown before the chart.
	Label string
	// Color paints the chart glyphs.
	Color lipgloss.Color
	// Width fixes the total width. 0 uses the ambient width.
	Width int
}

// Render draws the most recent points that fit after the label. A series
// shorter than the available width is drawn at its natural length. NaN and
// infinite points are skipped, and a non-finite scale falls back to
// auto-scaling.
func (s Sparkline) Render(width int) []string {
	w := ambient(width)
	if s.Width > 0 {
		w = s.Width
	}

	prefix := ""
	if s.Label != "" {
		label := text.SingleLine(s.Label)
		if text.VisibleLength(label)+2 > w {
			label = text.Truncate(label, w-2, text.EllipsisEnd)
		}
		if label != "" {
			prefix = label + " "
		}
	}

	room := w - text.VisibleLength(prefix)
	data := finite(s.Data)
	if room < len(data) {
		data = data[len(data)-max(room, 0):]
	}
	if len(data) == 0 {
		return []string{strings.TrimRight(prefix, " ")}
	}

	lo, hi := s.Min, s.Max
	if lo == hi || !isFinite(lo) || !isFinite(hi) {
		lo, hi = data[0], data[0]
		for _, v := range data {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	runes := make([]rune, len(data))
	for i, v := range data {
		if lo == hi {
			runes[i] = sparkBlocks[len(sparkBlocks)/2]
			continue
		}
		n := math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
		runes[i] = sparkBlocks[min(int(n*float64(len(sparkBlocks)-1)), len(sparkBlocks)-1)]
	}
	return []string{prefix + color.Paint(s.Color, string(runes))}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finite returns data without its NaN and infinite points.
func finite(data []float64) []float64 {
	for _, v := range data {
		if !isFinite(v) {
			return slices.DeleteFunc(slices.Clone(data), func(v float64) bool { return !isFinite(v) })
		}
	}
	return data
}
