// Package table implements the spreadsheet-like tabular data model: tables
// of run-length compressed rows and cells, merged-region bookkeeping, named
// ranges, and bulk rectangular operations.
//
// Width and height are computed, never stored: width is the maximum stored
// row width across all rows, height the sum of row repeat-counts. A row may
// be shorter than the table width; missing trailing cells are implicitly
// empty.
//
// Nothing here is safe for concurrent use. Callers sharing one Table across
// goroutines must serialize access with a single exclusive lock around the
// whole table.
package table

import (
	"iter"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/xerrors"
)

// Table is one sheet: a run-sequence of rows, a run-sequence of column
// declarations, and a span registry. Named ranges live on the owning
// [Document].
type Table struct {
	name    string
	rows    runs[*Row]
	columns runs[*Column]
	spans   *SpanRegistry
	doc     *Document // nil while free-standing
}

// NewTable creates a free-standing empty table.
func NewTable(name string) *Table {
	return &Table{
		name:    name,
		rows:    newRuns((*Row).Clone),
		columns: newRuns((*Column).Clone),
		spans:   newSpanRegistry(),
	}
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Rename changes the table name. When the table is attached to a document
// the document index is updated; named ranges still referring to the old
// name become stale and fail at use time.
func (t *Table) Rename(name string) error {
	if t.doc != nil {
		return t.doc.renameTable(t, name)
	}
	t.name = name
	return nil
}

// Spans returns the table's span registry.
func (t *Table) Spans() *SpanRegistry { return t.spans }

// Height returns the number of logical rows (sum of row repeat-counts).
func (t *Table) Height() int { return t.rows.Size() }

// Width returns the maximum stored row width. Cost is proportional to the
// number of row runs.
func (t *Table) Width() int {
	w := 0
	for row := range t.rows.Elems() {
		if row != nil && row.Width() > w {
			w = row.Width()
		}
	}
	return w
}

// Size returns (width, height).
func (t *Table) Size() (width, height int) {
	return t.Width(), t.Height()
}

// rowAt returns the stored row at y without materializing, or nil.
func (t *Table) rowAt(y int) *Row {
	row, _ := t.rows.Get(y)
	return row
}

// materializeRow returns a row at y safe for in-place mutation, padding the
// table with empty rows when y is beyond the last run. A row shared across a
// repeated run is split off and cloned first.
func (t *Table) materializeRow(y int) *Row {
	if y >= t.rows.Size() {
		row := NewRow()
		t.rows.Set(y, row, nil)
		return row
	}
	idx, _ := t.rows.locate(y)
	run := t.rows.list[idx]
	if run.Count == 1 && run.Elem != nil {
		return run.Elem
	}
	row := run.Elem.Clone()
	if row == nil {
		row = NewRow()
	}
	t.rows.Set(y, row, nil)
	return row
}

// cellAt returns the stored cell at p, ignoring span state. Nil means empty.
func (t *Table) cellAt(p coord.Pos) *Cell {
	row := t.rowAt(p.Row)
	if row == nil {
		return nil
	}
	return row.Cell(p.Col)
}

// setCellRaw stores c at p, ignoring span state.
func (t *Table) setCellRaw(p coord.Pos, c *Cell) {
	t.materializeRow(p.Row).SetCell(p.Col, c)
}

// GetCell returns a detached copy of the cell at ref (string address or
// coord.Pos). Reading a covered cell fails with a range-shape error until
// its span is cleared.
func (t *Table) GetCell(ref any) (*Cell, error) {
	p, err := coord.ResolvePos(ref)
	if err != nil {
		return nil, err
	}
	if t.spans.IsCovered(p) {
		return nil, xerrors.ErrorKV(xerrors.CodeRangeShape, "cell is covered by a span region",
			xerrors.KeyTableName, t.name,
			xerrors.KeyCellPos, p,
		)
	}
	c := t.cellAt(p).Clone()
	if c == nil {
		c = NewCell(EmptyValue())
	}
	return c, nil
}

// SetCell stores a copy of c at ref, padding with empty rows as needed.
// Covered cells are not writable through this path.
func (t *Table) SetCell(ref any, c *Cell) error {
	p, err := coord.ResolvePos(ref)
	if err != nil {
		return err
	}
	if t.spans.IsCovered(p) {
		return xerrors.ErrorKV(xerrors.CodeRangeShape, "cell is covered by a span region",
			xerrors.KeyTableName, t.name,
			xerrors.KeyCellPos, p,
		)
	}
	t.setCellRaw(p, c.Clone())
	return nil
}

// GetValue returns the typed value at ref.
func (t *Table) GetValue(ref any) (Value, error) {
	c, err := t.GetCell(ref)
	if err != nil {
		return Value{}, err
	}
	return c.Value, nil
}

// SetValue stores a value at ref, preserving nothing else of the previous
// cell.
func (t *Table) SetValue(ref any, v Value) error {
	return t.SetCell(ref, NewCell(v))
}

// GetRow returns a detached copy of the row at y; mutating it has no effect
// unless written back via [Table.SetRow]. Use [Table.RowRef] for efficient
// in-place editing.
func (t *Table) GetRow(y int) (*Row, error) {
	if y < 0 || y >= coord.MaxRows {
		return nil, xerrors.Errorf(xerrors.CodeOutOfBounds, "row %d out of bounds", y)
	}
	row := t.rowAt(y).Clone()
	if row == nil {
		row = NewRow()
	}
	return row, nil
}

// RowRef returns a live reference to the row at y, padding the table when y
// is beyond the last row.
func (t *Table) RowRef(y int) (*Row, error) {
	if y < 0 || y >= coord.MaxRows {
		return nil, xerrors.Errorf(xerrors.CodeOutOfBounds, "row %d out of bounds", y)
	}
	return t.materializeRow(y), nil
}

// SetRow stores a copy of row at y.
func (t *Table) SetRow(y int, row *Row) error {
	if y < 0 || y >= coord.MaxRows {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "row %d out of bounds", y)
	}
	t.rows.Set(y, row.Clone(), nil)
	return nil
}

// AppendRow adds count copies of row at the bottom of the table. Like
// SetRow, the table keeps its own copy.
func (t *Table) AppendRow(row *Row, count int) {
	t.rows.Append(row.Clone(), count)
}

// RowRuns returns the compressed (row, count) runs in order.
func (t *Table) RowRuns() iter.Seq2[*Row, int] {
	return t.rows.Runs()
}

// Rows returns a lazy (index, row) sequence, unfolding row runs one logical
// row at a time. Rows may be nil (implicitly empty).
func (t *Table) Rows() iter.Seq2[int, *Row] {
	return t.rows.All()
}

// GetColumn returns the column declaration at x, or nil.
func (t *Table) GetColumn(x int) *Column {
	col, _ := t.columns.Get(x)
	return col
}

// SetColumn stores a column declaration at x.
func (t *Table) SetColumn(x int, col *Column) error {
	if x < 0 || x >= coord.MaxCols {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "column %d out of bounds", x)
	}
	t.columns.Set(x, col.Clone(), nil)
	return nil
}

// AppendColumn adds count copies of a column declaration.
func (t *Table) AppendColumn(col *Column, count int) {
	t.columns.Append(col.Clone(), count)
}

// ColumnRuns returns the compressed (column, count) declaration runs.
func (t *Table) ColumnRuns() iter.Seq2[*Column, int] {
	return t.columns.Runs()
}

// ColumnCount returns the number of declared columns.
func (t *Table) ColumnCount() int { return t.columns.Size() }

// GetValues returns the values of a rectangular range in row-major order.
// Covered cells read as empty.
func (t *Table) GetValues(ref any) ([][]Value, error) {
	r, err := coord.ResolveRange(ref)
	if err != nil {
		return nil, err
	}
	out := make([][]Value, r.Height())
	for y := 0; y < r.Height(); y++ {
		out[y] = make([]Value, r.Width())
		for x := 0; x < r.Width(); x++ {
			p := coord.Pos{Col: r.Start.Col + x, Row: r.Start.Row + y}
			if t.spans.IsCovered(p) {
				continue
			}
			if c := t.cellAt(p); c != nil {
				out[y][x] = c.Value
			}
		}
	}
	return out, nil
}

// SetValues fills a rectangular range with matrix values in row-major order,
// padding with empties or truncating the matrix to the range shape.
func (t *Table) SetValues(ref any, matrix [][]Value) error {
	r, err := coord.ResolveRange(ref)
	if err != nil {
		return err
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			var v Value
			if y < len(matrix) && x < len(matrix[y]) {
				v = matrix[y][x]
			}
			p := coord.Pos{Col: r.Start.Col + x, Row: r.Start.Row + y}
			if t.spans.IsCovered(p) {
				continue
			}
			if v.IsEmpty() && t.cellAt(p) == nil {
				continue
			}
			t.setCellRaw(p, NewCell(v))
		}
	}
	return nil
}

// isStrippable reports whether position p may be dropped by RStrip: the
// stored cell is empty and the position is not part of a span region.
func (t *Table) isStrippable(p coord.Pos) bool {
	if _, ok := t.spans.RegionAt(p); ok {
		return false
	}
	return t.cellAt(p).IsEmpty()
}

// RStrip removes trailing empty rows and trailing empty cells within the
// remaining rows. With aggressive it additionally drops interior columns
// that are empty in every remaining row. Cells that were non-empty before
// the call keep their values; with aggressive their column coordinates may
// shift left.
func (t *Table) RStrip(aggressive bool) {
	// trailing rows
	height := t.Height()
	for height > 0 {
		y := height - 1
		row := t.rowAt(y)
		keep := false
		if !row.IsEmpty() {
			keep = true
		} else {
			for x := 0; x < row.Width(); x++ {
				if !t.isStrippable(coord.Pos{Col: x, Row: y}) {
					keep = true
					break
				}
			}
			// an empty row inside a span region still counts
			if !keep {
				for _, region := range t.spans.Regions() {
					if y >= region.Anchor.Row && y <= region.Anchor.Row+region.Height-1 {
						keep = true
						break
					}
				}
			}
		}
		if keep {
			break
		}
		height--
	}
	t.rows.Truncate(height)

	// trailing cells per remaining row
	for y := 0; y < height; y++ {
		row := t.rowAt(y)
		if row == nil {
			continue
		}
		keepWidth := 0
		for x := 0; x < row.Width(); x++ {
			if !t.isStrippable(coord.Pos{Col: x, Row: y}) {
				keepWidth = x + 1
			}
		}
		if keepWidth < row.Width() {
			t.materializeRow(y).Truncate(keepWidth)
		}
	}

	width := t.Width()
	t.columns.Truncate(width)

	if !aggressive {
		return
	}
	// interior columns empty in every remaining row
	for x := width - 1; x >= 0; x-- {
		empty := true
		for y := 0; y < t.Height(); y++ {
			if !t.isStrippable(coord.Pos{Col: x, Row: y}) {
				empty = false
				break
			}
		}
		if empty {
			_ = t.DeleteColumn(x) // x is in bounds by construction
		}
	}
}

// OptimizeWidth folds consecutive value-and-style-equal cell runs and row
// runs into compressed runs prior to serialization. It never changes the
// result of any GetCell call.
func (t *Table) OptimizeWidth() {
	for row := range t.rows.Elems() {
		if row != nil {
			row.Optimize()
		}
	}
	t.rows.Fold((*Row).Equal)
	t.columns.Fold((*Column).Equal)
}

// Transpose swaps row and column roles: a pre-image coordinate (x, y) maps
// to (y, x). Span regions are remapped consistently; named ranges anchored
// in the table are left untouched.
func (t *Table) Transpose() {
	width, height := t.Size()
	rows := newRuns((*Row).Clone)
	for x := 0; x < width; x++ {
		row := NewRow()
		// column style becomes row style and vice versa
		if col := t.GetColumn(x); col != nil {
			row.Style = col.Style
		}
		for y := 0; y < height; y++ {
			if c := t.cellAt(coord.Pos{Col: x, Row: y}); c != nil {
				row.SetCell(y, c.Clone())
			}
		}
		rows.Append(row, 1)
	}
	columns := newRuns((*Column).Clone)
	for y := 0; y < height; y++ {
		if r := t.rowAt(y); r != nil && r.Style != "" {
			columns.Set(y, &Column{Style: r.Style}, nil)
		}
	}
	spans := newSpanRegistry()
	t.spans.regions.Each(func(_ interface{}, v interface{}) {
		region := v.(SpanRegion)
		spans.regions.Put(
			coord.Pos{Col: region.Anchor.Row, Row: region.Anchor.Col},
			SpanRegion{
				Anchor: coord.Pos{Col: region.Anchor.Row, Row: region.Anchor.Col},
				Width:  region.Height,
				Height: region.Width,
			})
	})
	t.rows = rows
	t.spans = spans
	t.columns = columns
	t.OptimizeWidth()
}

// Clone returns a deep, detached copy of the table. The copy is
// free-standing even if the original is attached to a document.
func (t *Table) Clone() *Table {
	return &Table{
		name:    t.name,
		rows:    t.rows.Clone(),
		columns: t.columns.Clone(),
		spans:   t.spans.clone(),
	}
}
