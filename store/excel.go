package store

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// WriteExcel writes the document as an xlsx workbook: one worksheet per
// table, merged cells for span regions, and workbook-scoped defined names
// for named ranges.
func WriteExcel(w io.Writer, doc *table.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, tbl := range doc.Tables() {
		name := tbl.Name()
		if i == 0 {
			// rename the default sheet instead of leaving it behind
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return xerrors.WrapKV(err, xerrors.KeyTableName, name)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return xerrors.WrapKV(err, xerrors.KeyTableName, name)
			}
		}
		if err := writeExcelSheet(f, tbl); err != nil {
			return xerrors.WrapKV(err, xerrors.KeyTableName, name)
		}
	}

	for _, nr := range doc.NamedRanges() {
		refersTo := "'" + nr.TableName + "'!" + excelRangeRef(nr.Range)
		err := f.SetDefinedName(&excelize.DefinedName{
			Name:     nr.Name,
			RefersTo: refersTo,
		})
		if err != nil {
			return xerrors.WrapKV(err, xerrors.KeyNamedName, nr.Name)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return xerrors.Wrapf(err, "failed to write xlsx output")
	}
	return nil
}

func writeExcelSheet(f *excelize.File, tbl *table.Table) error {
	name := tbl.Name()
	for y, row := range tbl.Rows() {
		if row == nil {
			continue
		}
		for x, cell := range row.Cells() {
			if cell.IsEmpty() {
				continue
			}
			axis := coord.FormatAddress(coord.Pos{Col: x, Row: y})
			if cell.Formula != "" {
				if err := f.SetCellFormula(name, axis, cell.Formula); err != nil {
					return err
				}
				continue
			}
			if err := f.SetCellValue(name, axis, excelValue(cell)); err != nil {
				return err
			}
		}
	}
	for _, region := range tbl.Spans().Regions() {
		r := region.Range()
		err := f.MergeCell(name, coord.FormatAddress(r.Start), coord.FormatAddress(r.End))
		if err != nil {
			return err
		}
	}
	return nil
}

func excelValue(c *table.Cell) any {
	v := c.Value
	switch v.Kind() {
	case table.KindInt:
		return v.Int()
	case table.KindFloat:
		return v.Float()
	case table.KindBool:
		return v.Bool()
	case table.KindDate:
		return v.Date()
	default:
		return c.DisplayText()
	}
}

// excelRangeRef renders a range with absolute endpoints, e.g. "$A$1:$C$10".
func excelRangeRef(r coord.Range) string {
	ref := "$" + coord.LetterAxis(r.Start.Col) + "$" + strconv.Itoa(r.Start.Row+1)
	if !r.Single() {
		ref += ":$" + coord.LetterAxis(r.End.Col) + "$" + strconv.Itoa(r.End.Row+1)
	}
	return ref
}
