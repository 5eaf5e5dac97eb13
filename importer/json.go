package importer

import (
	"io"

	"github.com/valyala/fastjson"

	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// ReadJSON reads a JSON array-of-arrays grid into a table. Numbers without
// a fractional part become integer cells, JSON null becomes an empty cell.
func ReadJSON(r io.Reader, tableName string, options ...Option) (*table.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Wrapf(err, "failed to read JSON input")
	}
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, xerrors.Wrapf(err, "failed to parse JSON")
	}
	rows, err := v.Array()
	if err != nil {
		return nil, xerrors.Wrapf(err, "JSON grid must be an array of arrays")
	}

	tbl := table.NewTable(tableName)
	for y, rowVal := range rows {
		fields, err := rowVal.Array()
		if err != nil {
			return nil, xerrors.Wrapf(err, "JSON row %d is not an array", y)
		}
		row := table.NewRow()
		for x, field := range fields {
			cell, err := jsonCell(field)
			if err != nil {
				return nil, xerrors.Wrapf(err, "bad JSON value at row %d col %d", y, x)
			}
			if cell != nil {
				row.SetCell(x, cell)
			}
		}
		if pad := len(fields) - row.Width(); pad > 0 {
			row.AppendCell(nil, pad)
		}
		tbl.AppendRow(row, 1)
	}
	tbl.OptimizeWidth()
	return tbl, nil
}

func jsonCell(v *fastjson.Value) (*table.Cell, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeString:
		s, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		if len(s) == 0 {
			return nil, nil
		}
		return table.NewCell(table.StringValue(string(s))), nil
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return table.NewCell(table.IntValue(i)), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return table.NewCell(table.FloatValue(f)), nil
	case fastjson.TypeTrue:
		return table.NewCell(table.BoolValue(true)), nil
	case fastjson.TypeFalse:
		return table.NewCell(table.BoolValue(false)), nil
	default:
		return nil, xerrors.Errorf(xerrors.CodeUnknown, "unsupported JSON value type: %s", v.Type())
	}
}
