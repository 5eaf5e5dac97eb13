package store

import (
	"encoding/csv"
	"io"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// WriteCSV writes the table as CSV text. Every record is padded to the
// table's grid width, and cells render their display text. Cells covered by
// a span render as empty fields.
func WriteCSV(w io.Writer, tbl *table.Table, dialect format.Dialect) error {
	writer := csv.NewWriter(w)
	writer.Comma = dialect.Comma
	writer.UseCRLF = dialect.UseCRLF

	width := tbl.Width()
	spans := tbl.Spans()
	record := make([]string, width)
	for y, row := range tbl.Rows() {
		for x := 0; x < width; x++ {
			if spans.IsCovered(coord.Pos{Col: x, Row: y}) {
				record[x] = ""
				continue
			}
			record[x] = row.Cell(x).DisplayText()
		}
		if err := writer.Write(record); err != nil {
			return xerrors.Wrapf(err, "failed to write CSV row %d", y)
		}
	}
	writer.Flush()
	return writer.Error()
}
