package table

import (
	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/xerrors"
)

// ExtractSubrange returns a new detached table holding copies of the cells
// of the range, rebased to (0,0). Span regions fully contained in the range
// are carried over; named ranges are not.
func (t *Table) ExtractSubrange(ref any) (*Table, error) {
	r, err := coord.ResolveRange(ref)
	if err != nil {
		return nil, err
	}
	out := NewTable(t.name)
	for y := 0; y < r.Height(); y++ {
		row := NewRow()
		src := t.rowAt(r.Start.Row + y)
		if src != nil {
			row.Style = src.Style
			for x := 0; x < r.Width(); x++ {
				if c := src.Cell(r.Start.Col + x); c != nil {
					row.SetCell(x, c.Clone())
				}
			}
		}
		out.rows.Append(row, 1)
	}
	for x := 0; x < r.Width(); x++ {
		if col := t.GetColumn(r.Start.Col + x); col != nil {
			out.columns.Set(x, col.Clone(), nil)
		}
	}
	for _, region := range t.spans.Regions() {
		rebased := SpanRegion{
			Anchor: coord.Pos{
				Col: region.Anchor.Col - r.Start.Col,
				Row: region.Anchor.Row - r.Start.Row,
			},
			Width:  region.Width,
			Height: region.Height,
		}
		if r.Contains(region.Range().Start) && r.Contains(region.Range().End) {
			out.spans.regions.Put(rebased.Anchor, rebased)
		}
	}
	out.OptimizeWidth()
	return out, nil
}

// GetCells returns detached copies of whole cells (value, text, style,
// formula) for a rectangular range, row-major. Implicitly empty positions
// are nil.
func (t *Table) GetCells(ref any) ([][]*Cell, error) {
	r, err := coord.ResolveRange(ref)
	if err != nil {
		return nil, err
	}
	out := make([][]*Cell, r.Height())
	for y := 0; y < r.Height(); y++ {
		out[y] = make([]*Cell, r.Width())
		for x := 0; x < r.Width(); x++ {
			p := coord.Pos{Col: r.Start.Col + x, Row: r.Start.Row + y}
			out[y][x] = t.cellAt(p).Clone()
		}
	}
	return out, nil
}

// SetCells bulk-copies whole cells with origin as the top-left target,
// preserving style and type. Nil matrix entries clear the target position.
func (t *Table) SetCells(origin any, matrix [][]*Cell) error {
	p, err := coord.ResolvePos(origin)
	if err != nil {
		return err
	}
	for y, rowCells := range matrix {
		for x, c := range rowCells {
			target := coord.Pos{Col: p.Col + x, Row: p.Row + y}
			if err := coord.CheckPos(target); err != nil {
				return err
			}
			if c == nil && t.cellAt(target) == nil {
				continue
			}
			t.setCellRaw(target, c.Clone())
		}
	}
	return nil
}

// shiftRowsFrom applies a row insertion (delta=+1) or deletion (delta=-1) at
// index y to span regions and named ranges targeting this table.
func (t *Table) shiftRowsFrom(y, delta int) {
	regions := t.spans.Regions()
	t.spans = newSpanRegistry()
	for _, region := range regions {
		switch {
		case region.Anchor.Row >= y+max(0, -delta):
			region.Anchor.Row += delta
		case delta > 0 && y > region.Anchor.Row && y <= region.Anchor.Row+region.Height-1:
			region.Height += delta
		case delta < 0 && y >= region.Anchor.Row && y <= region.Anchor.Row+region.Height-1:
			region.Height += delta
		}
		if region.Height >= 1 && region.Width*region.Height >= 2 {
			t.spans.regions.Put(region.Anchor, region)
		}
	}
	if t.doc == nil {
		return
	}
	for _, nr := range t.doc.NamedRanges() {
		if nr.TableName != t.name {
			continue
		}
		r := nr.Range
		if r.Start.Row >= y {
			r.Start.Row += delta
			r.End.Row += delta
		} else if r.End.Row >= y {
			r.End.Row += delta
		}
		if r.Start.Row < 0 {
			r.Start.Row = 0
		}
		if r.End.Row < r.Start.Row {
			r.End.Row = r.Start.Row
		}
		nr.Range = r
	}
}

// shiftColsFrom is the column analog of shiftRowsFrom.
func (t *Table) shiftColsFrom(x, delta int) {
	regions := t.spans.Regions()
	t.spans = newSpanRegistry()
	for _, region := range regions {
		switch {
		case region.Anchor.Col >= x+max(0, -delta):
			region.Anchor.Col += delta
		case delta > 0 && x > region.Anchor.Col && x <= region.Anchor.Col+region.Width-1:
			region.Width += delta
		case delta < 0 && x >= region.Anchor.Col && x <= region.Anchor.Col+region.Width-1:
			region.Width += delta
		}
		if region.Width >= 1 && region.Width*region.Height >= 2 {
			t.spans.regions.Put(region.Anchor, region)
		}
	}
	if t.doc == nil {
		return
	}
	for _, nr := range t.doc.NamedRanges() {
		if nr.TableName != t.name {
			continue
		}
		r := nr.Range
		if r.Start.Col >= x {
			r.Start.Col += delta
			r.End.Col += delta
		} else if r.End.Col >= x {
			r.End.Col += delta
		}
		if r.Start.Col < 0 {
			r.Start.Col = 0
		}
		if r.End.Col < r.Start.Col {
			r.End.Col = r.Start.Col
		}
		nr.Range = r
	}
}

// InsertRow inserts one empty row at y, shifting all higher-indexed rows,
// span regions, and named ranges down. Regions straddling y grow by one row.
func (t *Table) InsertRow(y int) error {
	if y < 0 || y >= coord.MaxRows {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "row %d out of bounds", y)
	}
	if y < t.rows.Size() {
		t.rows.InsertRun(y, NewRow(), 1, nil)
	} else {
		t.rows.Set(y, NewRow(), nil)
	}
	t.shiftRowsFrom(y, +1)
	return nil
}

// DeleteRow removes the row at y, shifting all higher-indexed rows, span
// regions, and named ranges up. Regions straddling y shrink by one row; a
// region reduced to a single cell is dissolved.
func (t *Table) DeleteRow(y int) error {
	if y < 0 || y >= t.rows.Size() {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "row %d out of bounds (height %d)", y, t.rows.Size())
	}
	t.rows.DeleteRange(y, 1)
	t.shiftRowsFrom(y, -1)
	return nil
}

// InsertColumn inserts one empty column at x in every stored row wide enough
// to reach it, plus the column declarations, shifting span regions and named
// ranges right.
func (t *Table) InsertColumn(x int) error {
	if x < 0 || x >= coord.MaxCols {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "column %d out of bounds", x)
	}
	for row := range t.rows.Elems() {
		if row != nil && row.Width() > x {
			row.InsertCells(x, nil, 1)
		}
	}
	if x < t.columns.Size() {
		t.columns.InsertRun(x, nil, 1, nil)
	}
	t.shiftColsFrom(x, +1)
	return nil
}

// DeleteColumn removes the column at x from every stored row wide enough to
// reach it, plus the column declarations, shifting span regions and named
// ranges left.
func (t *Table) DeleteColumn(x int) error {
	if x < 0 || x >= t.Width() {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "column %d out of bounds (width %d)", x, t.Width())
	}
	for row := range t.rows.Elems() {
		if row != nil && row.Width() > x {
			row.DeleteCells(x, 1)
		}
	}
	if x < t.columns.Size() {
		t.columns.DeleteRange(x, 1)
	}
	t.shiftColsFrom(x, -1)
	return nil
}
