package widgets

import (
	"math"
	"testing"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name  string
		spark Sparkline
		width int
		want  string
	}{
		{name: "ramp", spark: Sparkline{Data: []float64{0, 1, 2, 3, 4, 5, 6, 7}}, width: 80, want: "▁▂▃▄▅▆▇█"},
		{name: "flat", spark: Sparkline{Data: []float64{3, 3, 3}}, width: 80, want: "▅▅▅"},
		{name: "keeps recent points", spark: Sparkline{Data: []float64{0, 7, 0, 7}}, width: 2, want: "▁█"},
		{name: "fixed scale", spark: Sparkline{Data: []float64{5, 10}, Min: 0, Max: 10}, width: 80, want: "▄█"},
		{name: "clamped to scale", spark: Sparkline{Data: []float64{-5, 50}, Min: 0, Max: 10}, width: 80, want: "▁█"},
		{name: "label", spark: Sparkline{Data: []float64{0, 7}, Label: "cpu"}, width: 80, want: "cpu ▁█"},
		{name: "label leaves room", spark: Sparkline{Data: []float64{0, 1, 7}, Label: "cpu"}, width: 6, want: "cpu ▁█"},
		{name: "empty", spark: Sparkline{Label: "idle"}, width: 80, want: "idle"},
		{name: "nan skipped", spark: Sparkline{Data: []float64{0, math.NaN(), 7}}, width: 80, want: "▁█"},
		{name: "infinity skipped", spark: Sparkline{Data: []float64{math.Inf(1), 0, 7, math.Inf(-1)}}, width: 80, want: "▁█"},
		{name: "only nan", spark: Sparkline{Data: []float64{math.NaN()}, Label: "cpu"}, width: 80, want: "cpu"},
		{name: "non-finite scale", spark: Sparkline{Data: []float64{0, 7}, Min: math.Inf(-1), Max: 10}, width: 80, want: "▁█"},
		{name: "flattened label", spark: Sparkline{Data: []float64{0, 7}, Label: "c\tu"}, width: 80, want: "c u ▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.spark.Render(tt.width)
			if len(got) != 1 {
				t.Fatalf("expected one line, got %q", got)
			}
			if s := ansi.StripEscapes(got[0]); s != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}
}

func TestSparkline_NeverExceedsWidth(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i % 13)
	}
	s := Sparkline{Data: data, Label: "requests"}
	for width := 1; width <= 120; width++ {
		if n := ansi.VisibleLength(s.Render(width)[0]); n > width {
			t.Errorf("width %d: got %d columns", width, n)
		}
	}
}
