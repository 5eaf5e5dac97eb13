package store

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/valyala/fastjson"

	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// WriteJSON writes the table as a JSON array of arrays. Rows are padded to
// the grid width; empty cells emit null. Date and duration cells emit their
// canonical text form.
func WriteJSON(w io.Writer, tbl *table.Table, pretty bool) error {
	var arena fastjson.Arena
	grid := arena.NewArray()
	width := tbl.Width()
	for y, row := range tbl.Rows() {
		jsonRow := arena.NewArray()
		for x := 0; x < width; x++ {
			jsonRow.SetArrayItem(x, jsonValue(&arena, row.Cell(x)))
		}
		grid.SetArrayItem(y, jsonRow)
	}

	out := grid.MarshalTo(nil)
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return xerrors.Wrapf(err, "failed to indent JSON output")
		}
		out = buf.Bytes()
	}
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return xerrors.Wrapf(err, "failed to write JSON output")
	}
	return nil
}

func jsonValue(arena *fastjson.Arena, c *table.Cell) *fastjson.Value {
	if c.IsEmpty() {
		return arena.NewNull()
	}
	v := c.Value
	switch v.Kind() {
	case table.KindInt:
		return arena.NewNumberInt(int(v.Int()))
	case table.KindFloat:
		return arena.NewNumberFloat64(v.Float())
	case table.KindBool:
		if v.Bool() {
			return arena.NewTrue()
		}
		return arena.NewFalse()
	default:
		// strings, dates and durations all emit canonical text
		return arena.NewString(c.DisplayText())
	}
}
