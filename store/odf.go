package store

import (
	"io"
	"strconv"
	"strings"

	"github.com/subchen/go-xmldom"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

const (
	officeNS = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	tableNS  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	textNS   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
)

// WriteODF writes the document as a flat OpenDocument spreadsheet (.fods).
// Repeated rows and cells are compressed with number-rows-repeated and
// number-columns-repeated; rows touched by a span are always written one by
// one so that covered-table-cell elements land on the right coordinates.
func WriteODF(w io.Writer, doc *table.Document) error {
	dom := xmldom.NewDocument("office:document")
	root := dom.Root
	root.SetAttributeValue("xmlns:office", officeNS)
	root.SetAttributeValue("xmlns:table", tableNS)
	root.SetAttributeValue("xmlns:text", textNS)
	root.SetAttributeValue("office:version", "1.3")
	root.SetAttributeValue("office:mimetype", "application/vnd.oasis.opendocument.spreadsheet")

	sheet := root.CreateNode("office:body").CreateNode("office:spreadsheet")
	for _, tbl := range doc.Tables() {
		writeODFTable(sheet, tbl)
	}
	if ranges := doc.NamedRanges(); len(ranges) > 0 {
		ne := sheet.CreateNode("table:named-expressions")
		for _, nr := range ranges {
			node := ne.CreateNode("table:named-range")
			node.SetAttributeValue("table:name", nr.Name)
			node.SetAttributeValue("table:base-cell-address",
				odfCellAddress(nr.TableName, nr.Range.Start))
			node.SetAttributeValue("table:cell-range-address",
				odfRangeAddress(nr.TableName, nr.Range))
		}
	}

	if _, err := io.WriteString(w, dom.XMLPretty()); err != nil {
		return xerrors.Wrapf(err, "failed to write ODF output")
	}
	return nil
}

func writeODFTable(sheet *xmldom.Node, tbl *table.Table) {
	tn := sheet.CreateNode("table:table")
	tn.SetAttributeValue("table:name", tbl.Name())

	width := tbl.Width()
	declared := 0
	for col, count := range tbl.ColumnRuns() {
		node := tn.CreateNode("table:table-column")
		if count > 1 {
			node.SetAttributeValue("table:number-columns-repeated", strconv.Itoa(count))
		}
		if col != nil {
			if col.Style != "" {
				node.SetAttributeValue("table:style-name", col.Style)
			}
			if col.DefaultCellStyle != "" {
				node.SetAttributeValue("table:default-cell-style-name", col.DefaultCellStyle)
			}
		}
		declared += count
	}
	if declared < width {
		node := tn.CreateNode("table:table-column")
		if pad := width - declared; pad > 1 {
			node.SetAttributeValue("table:number-columns-repeated", strconv.Itoa(pad))
		}
	}

	spans := tbl.Spans()
	y := 0
	for row, count := range tbl.RowRuns() {
		if spanTouchesRows(spans, y, count) {
			for i := 0; i < count; i++ {
				writeODFRow(tn, tbl, row, y+i, 1)
			}
		} else {
			writeODFRow(tn, tbl, row, y, count)
		}
		y += count
	}
}

// spanTouchesRows reports whether any span region intersects rows
// [y, y+count).
func spanTouchesRows(spans *table.SpanRegistry, y, count int) bool {
	for _, region := range spans.Regions() {
		if region.Anchor.Row < y+count && y < region.Anchor.Row+region.Height {
			return true
		}
	}
	return false
}

func writeODFRow(tn *xmldom.Node, tbl *table.Table, row *table.Row, y, repeat int) {
	rn := tn.CreateNode("table:table-row")
	if repeat > 1 {
		rn.SetAttributeValue("table:number-rows-repeated", strconv.Itoa(repeat))
	}
	if row != nil && row.Style != "" {
		rn.SetAttributeValue("table:style-name", row.Style)
	}

	spans := tbl.Spans()
	width := tbl.Width()
	x := 0
	for x < width {
		p := coord.Pos{Col: x, Row: y}
		region, inSpan := spans.RegionAt(p)
		switch {
		case inSpan && region.Anchor == p:
			cn := writeODFCell(rn, row.Cell(x), 1)
			cn.SetAttributeValue("table:number-columns-spanned", strconv.Itoa(region.Width))
			cn.SetAttributeValue("table:number-rows-spanned", strconv.Itoa(region.Height))
			x++
		case inSpan:
			run := 1
			for x+run < width && spans.IsCovered(coord.Pos{Col: x + run, Row: y}) {
				run++
			}
			cn := rn.CreateNode("table:covered-table-cell")
			if run > 1 {
				cn.SetAttributeValue("table:number-columns-repeated", strconv.Itoa(run))
			}
			x += run
		default:
			cell := row.Cell(x)
			run := 1
			for x+run < width {
				next := coord.Pos{Col: x + run, Row: y}
				if _, ok := spans.RegionAt(next); ok || !cell.Equal(row.Cell(x+run)) {
					break
				}
				run++
			}
			writeODFCell(rn, cell, run)
			x += run
		}
	}
	if width == 0 {
		rn.CreateNode("table:table-cell")
	}
}

func writeODFCell(rn *xmldom.Node, cell *table.Cell, repeat int) *xmldom.Node {
	cn := rn.CreateNode("table:table-cell")
	if repeat > 1 {
		cn.SetAttributeValue("table:number-columns-repeated", strconv.Itoa(repeat))
	}
	if cell == nil {
		return cn
	}
	if cell.Style != "" {
		cn.SetAttributeValue("table:style-name", cell.Style)
	}
	if cell.Formula != "" {
		cn.SetAttributeValue("table:formula", cell.Formula)
	}

	v := cell.Value
	switch v.Kind() {
	case table.KindInt, table.KindFloat:
		cn.SetAttributeValue("office:value-type", "float")
		cn.SetAttributeValue("office:value", v.Text())
	case table.KindBool:
		cn.SetAttributeValue("office:value-type", "boolean")
		cn.SetAttributeValue("office:boolean-value", v.Text())
	case table.KindDate:
		cn.SetAttributeValue("office:value-type", "date")
		cn.SetAttributeValue("office:date-value", v.Text())
	case table.KindDuration:
		cn.SetAttributeValue("office:value-type", "time")
		cn.SetAttributeValue("office:time-value", v.Text())
	case table.KindString:
		cn.SetAttributeValue("office:value-type", "string")
	}
	if text := cell.DisplayText(); text != "" {
		for _, line := range strings.Split(text, "\n") {
			cn.CreateNode("text:p").Text = line
		}
	}
	return cn
}

// odfCellAddress renders a position as an absolute OpenDocument cell
// address, e.g. "$Sheet1.$D$11".
func odfCellAddress(tableName string, p coord.Pos) string {
	return "$" + quoteSheetName(tableName) +
		".$" + coord.LetterAxis(p.Col) + "$" + strconv.Itoa(p.Row+1)
}

func odfRangeAddress(tableName string, r coord.Range) string {
	addr := odfCellAddress(tableName, r.Start)
	if !r.Single() {
		addr += ":$" + coord.LetterAxis(r.End.Col) + "$" + strconv.Itoa(r.End.Row+1)
	}
	return addr
}

func quoteSheetName(name string) string {
	if strings.ContainsAny(name, " .:'") {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return name
}
