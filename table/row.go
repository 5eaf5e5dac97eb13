package table

import "iter"

// Row is a run-length compressed sequence of cells plus an opaque row style.
// A row's stored width may be shorter than the owning table's width; missing
// trailing cells are implicitly empty.
type Row struct {
	Style string
	cells runs[*Cell]
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{cells: newRuns((*Cell).Clone)}
}

// Width returns the stored logical width, trailing implicit empties
// excluded. A nil row has width 0.
func (r *Row) Width() int {
	if r == nil {
		return 0
	}
	return r.cells.Size()
}

// Cell returns the stored cell at x, or nil when x is empty or beyond the
// last run. The returned pointer must not be mutated; see [Cell].
func (r *Row) Cell(x int) *Cell {
	if r == nil {
		return nil
	}
	c, _ := r.cells.Get(x)
	return c
}

// SetCell stores c at x, padding with empty cells when x is beyond the last
// run.
func (r *Row) SetCell(x int, c *Cell) {
	r.cells.Set(x, c, nil)
}

// AppendCell adds count copies of c at the end of the row.
func (r *Row) AppendCell(c *Cell, count int) {
	r.cells.Append(c, count)
}

// InsertCells inserts count copies of c at x, shifting following cells right.
func (r *Row) InsertCells(x int, c *Cell, count int) {
	r.cells.InsertRun(x, c, count, nil)
}

// DeleteCells removes count cells starting at x, shifting following cells
// left.
func (r *Row) DeleteCells(x, count int) {
	r.cells.DeleteRange(x, count)
}

// Truncate keeps only the first n cells.
func (r *Row) Truncate(n int) {
	r.cells.Truncate(n)
}

// Cells returns a lazy (index, cell) sequence over stored positions.
func (r *Row) Cells() iter.Seq2[int, *Cell] {
	return r.cells.All()
}

// CellRuns returns the compressed (cell, count) runs in order.
func (r *Row) CellRuns() iter.Seq2[*Cell, int] {
	return r.cells.Runs()
}

// IsEmpty reports whether every stored cell is empty and the row carries no
// style.
func (r *Row) IsEmpty() bool {
	if r == nil {
		return true
	}
	if r.Style != "" {
		return false
	}
	for c := range r.cells.Elems() {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// LastNonEmpty returns the largest x holding a non-empty cell, or -1.
func (r *Row) LastNonEmpty() int {
	last := -1
	for x, c := range r.cells.All() {
		if !c.IsEmpty() {
			last = x
		}
	}
	return last
}

// Optimize folds consecutive equal cell runs. It never changes the result of
// any Cell call.
func (r *Row) Optimize() {
	r.cells.Fold((*Cell).Equal)
}

// Clone returns a detached deep copy. Clone of nil is nil.
func (r *Row) Clone() *Row {
	if r == nil {
		return nil
	}
	return &Row{
		Style: r.Style,
		cells: r.cells.Clone(),
	}
}

// Equal compares style and cell content position by position. Rows of
// different stored widths are only equal if the extra tail is all empty.
func (r *Row) Equal(o *Row) bool {
	if r == nil || o == nil {
		return r.IsEmpty() && o.IsEmpty()
	}
	if r.Style != o.Style {
		return false
	}
	w := max(r.Width(), o.Width())
	for x := 0; x < w; x++ {
		if !r.Cell(x).Equal(o.Cell(x)) {
			return false
		}
	}
	return true
}
