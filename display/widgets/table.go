package widgets

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/termkit/display/color"
	"gitlab.com/tinyland/lab/termkit/display/layout"
	"gitlab.com/tinyland/lab/termkit/display/text"
)

// Column defines a single table column.
type Column struct {
	// Header is the header text.
	Header string
	// Align controls text alignment within the column.
	Align Alignment
	// MinWidth is the narrowest the column shrinks to. 0 selects
	// layout.DefaultMinWidth.
	MinWidth int
	// MaxWidth caps the column's natural width. 0 means unbounded.
	MaxWidth int
	// HeaderColor paints the header text. Empty leaves it unstyled.
	HeaderColor lipgloss.Color
	// Ellipsis places the "..." marker when a cell is cut.
	Ellipsis text.EllipsisMode
}

// Table is a grid of cells with an optional header, title and caption.
type Table struct {
	// Columns defines the table structure.
	Columns []Column
	// Rows is the table data. Missing cells render empty, extra cells are
	// ignored.
	Rows [][]string
	// Border selects the glyph set. BorderNone lays cells out with two-space
	// gutters and no rules.
	Border BorderStyle
	// BorderColor paints the border glyphs.
	BorderColor lipgloss.Color
	// ShowHeader controls whether the header row is displayed.
	ShowHeader bool
	// ShowRowSeparators draws a rule between data rows.
	ShowRowSeparators bool
	// Expand grows a bordered table to fill the target width.
	Expand bool
	// Shrink narrows columns when the table is wider than the target width.
	Shrink bool
	// Width fixes the target width. 0 uses the ambient width.
	Width int
	// Title is centered above the table.
	Title string
	// Caption is centered below the table.
	Caption string
	// TitleColor paints the title and caption.
	TitleColor lipgloss.Color
}

// DefaultTable returns a square-bordered table with a header that shrinks to
// fit its target width.
func DefaultTable(columns ...Column) *Table {
	return &Table{
		Columns:    columns,
		Border:     BorderSquare,
		ShowHeader: true,
		Shrink:     true,
	}
}

// AddColumn appends a column.
func (t *Table) AddColumn(c Column) *Table {
	t.Columns = append(t.Columns, c)
	return t
}

// InsertColumn inserts c before index i, shifting the cells of existing
// rows so they stay under their headers. i is clamped to the valid range.
// Rows are copied before they change, so slices passed to AddRow are never
// written to.
func (t *Table) InsertColumn(i int, c Column) *Table {
	i = min(max(i, 0), len(t.Columns))
	t.Columns = slices.Insert(slices.Clone(t.Columns), i, c)
	rows := slices.Clone(t.Rows)
	for r, row := range rows {
		if i <= len(row) {
			rows[r] = slices.Insert(slices.Clone(row), i, "")
		}
	}
	t.Rows = rows
	return t
}

// RemoveColumn deletes column i together with its cells. It reports
// whether i named a column.
func (t *Table) RemoveColumn(i int) bool {
	if i < 0 || i >= len(t.Columns) {
		return false
	}
	t.Columns = slices.Delete(slices.Clone(t.Columns), i, i+1)
	rows := slices.Clone(t.Rows)
	for r, row := range rows {
		if i < len(row) {
			rows[r] = slices.Delete(slices.Clone(row), i, i+1)
		}
	}
	t.Rows = rows
	return true
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) *Table {
	t.Rows = append(t.Rows, cells)
	return t
}

// Render lays the table out for the given ambient width.
func (t *Table) Render(width int) []string {
	n := len(t.Columns)
	if n == 0 {
		return nil
	}

	target := ambient(width)
	if t.Width > 0 {
		target = t.Width
	}
	bordered := t.Border != BorderNone

	headers := make([]string, n)
	specs := make([]layout.ColumnSpec, n)
	for i, c := range t.Columns {
		if t.ShowHeader {
			headers[i] = text.SingleLine(c.Header)
		}
		specs[i] = layout.ColumnSpec{Min: c.MinWidth, Max: c.MaxWidth}
	}
	rows := t.normalizedRows()

	for i, w := range layout.NaturalWidths(headers, rows, specs) {
		specs[i].Natural = w
	}
	overhead := layout.Overhead(n, bordered)
	widths := layout.Allocate(layout.Request{
		Columns:  specs,
		Overhead: overhead,
		Target:   target,
		Expand:   t.Expand,
		Shrink:   t.Shrink,
		Bordered: bordered,
	})
	total := overhead
	for _, w := range widths {
		total += w
	}

	var lines []string
	if t.Title != "" {
		lines = append(lines, t.banner(t.Title, total))
	}

	g := t.Border.Glyphs()
	if bordered {
		lines = append(lines, t.paintBorder(g.hline(g.TopLeft, g.TopJoin, g.TopRight, widths, 1)))
	}
	if t.ShowHeader {
		cells := make([]string, n)
		for i, c := range t.Columns {
			cells[i] = fitCell(color.Paint(c.HeaderColor, headers[i]), widths[i], c)
		}
		lines = append(lines, t.row(cells, g))
		if bordered {
			lines = append(lines, t.paintBorder(g.hline(g.LeftJoin, g.Cross, g.RightJoin, widths, 1)))
		}
	}
	for r, row := range rows {
		if r > 0 && t.ShowRowSeparators && bordered {
			lines = append(lines, t.paintBorder(g.hline(g.LeftJoin, g.Cross, g.RightJoin, widths, 1)))
		}
		cells := make([]string, n)
		for i, c := range t.Columns {
			cells[i] = fitCell(row[i], widths[i], c)
		}
		lines = append(lines, t.row(cells, g))
	}
	if bordered {
		lines = append(lines, t.paintBorder(g.hline(g.BottomLeft, g.BottomJoin, g.BottomRight, widths, 1)))
	}

	if t.Caption != "" {
		lines = append(lines, t.banner(t.Caption, total))
	}
	return lines
}

// normalizedRows returns rows padded or cut to the column count, with
// tabs and newlines flattened so every cell stays on one line.
func (t *Table) normalizedRows() [][]string {
	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = text.SingleLine(row[i])
			}
		}
		rows[r] = cells
	}
	return rows
}

// fitCell truncates s to width using the column's ellipsis mode, then
// aligns it.
func fitCell(s string, width int, c Column) string {
	if text.VisibleLength(s) > width {
		s = text.Truncate(s, width, c.Ellipsis)
	}
	return align(s, width, c.Align)
}

func (t *Table) row(cells []string, g Glyphs) string {
	if t.Border == BorderNone {
		return strings.Join(cells, "  ")
	}
	v := t.paintBorder(string(g.Vertical))
	return v + " " + strings.Join(cells, " "+v+" ") + " " + v
}

func (t *Table) paintBorder(s string) string {
	return color.Paint(t.BorderColor, s)
}

// banner centers a title or caption over the table width.
func (t *Table) banner(s string, width int) string {
	s = text.SingleLine(s)
	if text.VisibleLength(s) > width {
		s = text.Truncate(s, width, text.EllipsisEnd)
	}
	return text.Center(color.PaintBold(t.TitleColor, s), width)
}
