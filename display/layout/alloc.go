// Package layout decides how wide each column of a table is allowed to be.
//
// A column starts at its natural width (the widest header or cell, clamped
// to the column's maximum). When the row is narrower than the target and
// expansion is on, the spare columns are shared out evenly. When it is
// wider and shrinking is on, columns give up width in proportion to how far
// they sit above their minimum.
package layout

import "gitlab.com/tinyland/lab/termkit/display/ansi"

// DefaultMinWidth is the narrowest a column shrinks to by default. It leaves
// room for one character plus an ellipsis.
const DefaultMinWidth = 4

// ColumnSpec carries the sizing inputs of one column. Min of 0 selects
// DefaultMinWidth and Max of 0 means unbounded.
type ColumnSpec struct {
	Natural int
	Min     int
	Max     int
}

// limits returns the effective minimum and maximum. A minimum above the
// maximum wins.
func (c ColumnSpec) limits() (lo, hi int) {
	lo = c.Min
	if lo <= 0 {
		lo = DefaultMinWidth
	}
	hi = c.Max
	if hi > 0 && hi < lo {
		hi = lo
	}
	return lo, hi
}

// Request describes one allocation.
type Request struct {
	// Columns holds the per-column inputs in display order.
	Columns []ColumnSpec
	// Overhead is the width taken by borders, padding and separators.
	Overhead int
	// Target is the total width the row should occupy.
	Target int
	// Expand grows bordered rows that are narrower than Target.
	Expand bool
	// Shrink narrows rows that are wider than Target.
	Shrink bool
	// Bordered reports whether the row is drawn with a border.
	Bordered bool
}

// Overhead returns the fixed width consumed around n columns. A bordered
// row spends one glyph per edge and one space of padding on each side of a
// cell; a borderless row separates cells with two-space gutters.
func Overhead(n int, bordered bool) int {
	if n <= 0 {
		return 0
	}
	if bordered {
		return 3*n + 1
	}
	return 2 * (n - 1)
}

// NaturalWidths measures every column as the widest visible header or cell,
// clamped to the column's maximum. Rows shorter than headers contribute
// nothing to the missing columns.
func NaturalWidths(headers []string, rows [][]string, specs []ColumnSpec) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		w := ansi.VisibleLength(h)
		for _, row := range rows {
			if i < len(row) {
				if n := ansi.VisibleLength(row[i]); n > w {
					w = n
				}
			}
		}
		if i < len(specs) {
			if _, hi := specs[i].limits(); hi > 0 && w > hi {
				w = hi
			}
		}
		widths[i] = w
	}
	return widths
}

// Allocate returns the width of each column. Shrinking is best effort:
// when the target cannot be met even with every column at its minimum the
// result is wider than the target.
func Allocate(req Request) []int {
	widths := make([]int, len(req.Columns))
	total := req.Overhead
	for i, c := range req.Columns {
		w := c.Natural
		if _, hi := c.limits(); hi > 0 && w > hi {
			w = hi
		}
		if w < 0 {
			w = 0
		}
		widths[i] = w
		total += w
	}
	if len(widths) == 0 {
		return widths
	}

	switch {
	case req.Expand && req.Bordered && total < req.Target:
		expand(widths, req.Target-total)
	case req.Shrink && total > req.Target:
		shrink(widths, req.Columns, total-req.Target)
	}
	return widths
}

// expand shares extra columns evenly, the leftmost columns taking the
// remainder one unit each.
func expand(widths []int, extra int) {
	n := len(widths)
	each, rest := extra/n, extra%n
	for i := range widths {
		widths[i] += each
		if i < rest {
			widths[i]++
		}
	}
}

// shrink removes up to excess columns in proportion to each column's
// distance above its minimum. Each share is rounded up and taken against
// the pool still unallocated, so rounding slack falls on later columns.
func shrink(widths []int, cols []ColumnSpec, excess int) {
	slack := make([]int, len(widths))
	pool := 0
	for i, w := range widths {
		lo, _ := cols[i].limits()
		if s := w - lo; s > 0 {
			slack[i] = s
			pool += s
		}
	}
	if pool == 0 {
		return
	}
	remaining := min(excess, pool)
	for i, s := range slack {
		if s == 0 || remaining == 0 {
			continue
		}
		share := (remaining*s + pool - 1) / pool
		share = min(share, s, remaining)
		widths[i] -= share
		remaining -= share
		pool -= s
	}
}
