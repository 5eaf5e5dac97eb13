package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/subchen/go-xmldom"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// pendingSpan remembers a span declaration seen on an anchor cell until the
// whole table has been built and the registry can be populated.
type pendingSpan struct {
	anchor coord.Pos
	width  int
	height int
}

// ReadODF reads a flat OpenDocument spreadsheet (.fods) into a document,
// including column declarations, repeated rows and cells, spans, and named
// ranges.
func ReadODF(r io.Reader, options ...Option) (*table.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Wrapf(err, "failed to read ODF input")
	}
	dom, err := xmldom.ParseXML(string(data))
	if err != nil {
		return nil, xerrors.Wrapf(err, "failed to parse ODF XML")
	}
	body := childNamed(dom.Root, "body")
	if body == nil {
		return nil, xerrors.ErrorKV(xerrors.CodeUnknown, "ODF document has no office:body")
	}
	sheet := childNamed(body, "spreadsheet")
	if sheet == nil {
		return nil, xerrors.ErrorKV(xerrors.CodeUnknown, "ODF document has no office:spreadsheet")
	}

	doc := table.NewDocument()
	for _, tn := range childrenNamed(sheet, "table") {
		tbl, err := parseODFTable(tn)
		if err != nil {
			return nil, err
		}
		if err := doc.AddTable(tbl); err != nil {
			return nil, err
		}
	}
	if ne := childNamed(sheet, "named-expressions"); ne != nil {
		for _, nr := range childrenNamed(ne, "named-range") {
			name := attrNamed(nr, "name")
			addr := attrNamed(nr, "cell-range-address")
			tableName, rng, err := parseRangeAddress(addr)
			if err != nil {
				return nil, xerrors.WrapKV(err, xerrors.KeyNamedName, name)
			}
			if err := doc.SetNamedRange(name, rng, tableName); err != nil {
				return nil, err
			}
		}
	}
	return doc, nil
}

func parseODFTable(tn *xmldom.Node) (*table.Table, error) {
	name := attrNamed(tn, "name")
	tbl := table.NewTable(name)
	var spans []pendingSpan

	for _, cn := range childrenNamed(tn, "table-column") {
		repeat := repeatCount(cn, "number-columns-repeated", coord.MaxCols)
		col := &table.Column{
			Style:            attrNamed(cn, "style-name"),
			DefaultCellStyle: attrNamed(cn, "default-cell-style-name"),
		}
		tbl.AppendColumn(col, repeat)
	}

	y := 0
	for _, rn := range childrenNamed(tn, "table-row") {
		repeat := repeatCount(rn, "number-rows-repeated", coord.MaxRows-y)
		row := table.NewRow()
		row.Style = attrNamed(rn, "style-name")
		x := 0
		for _, cn := range rn.Children {
			switch localName(cn.Name) {
			case "table-cell":
				colRepeat := repeatCount(cn, "number-columns-repeated", coord.MaxCols-x)
				cell := parseODFCell(cn)
				if cell != nil {
					for i := 0; i < colRepeat; i++ {
						row.SetCell(x+i, cell)
					}
				}
				if w, h := spannedSize(cn); w > 1 || h > 1 {
					spans = append(spans, pendingSpan{
						anchor: coord.Pos{Col: x, Row: y},
						width:  w,
						height: h,
					})
				}
				x += colRepeat
			case "covered-table-cell":
				// coverage is reconstructed from the anchor's span attributes
				x += repeatCount(cn, "number-columns-repeated", coord.MaxCols-x)
			}
		}
		if pad := x - row.Width(); pad > 0 {
			row.AppendCell(nil, pad)
		}
		tbl.AppendRow(row, repeat)
		y += repeat
	}

	for _, s := range spans {
		rng := coord.NewRangeWH(s.anchor, s.width, s.height)
		if err := tbl.SetSpan(rng, false); err != nil {
			return nil, xerrors.WrapKV(err, xerrors.KeyTableName, name)
		}
	}
	// writers commonly pad with huge repeated empty rows and columns;
	// stripping splits row runs, so fold them back for compact re-emission
	tbl.RStrip(false)
	tbl.OptimizeWidth()
	return tbl, nil
}

func parseODFCell(n *xmldom.Node) *table.Cell {
	style := attrNamed(n, "style-name")
	formula := attrNamed(n, "formula")
	text := cellText(n)

	var val table.Value
	switch attrNamed(n, "value-type") {
	case "float", "currency", "percentage":
		raw := attrNamed(n, "value")
		if !strings.ContainsAny(raw, ".eE") {
			if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
				val = table.IntValue(i)
				break
			}
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			val = table.FloatValue(f)
		}
	case "boolean":
		val = table.BoolValue(attrNamed(n, "boolean-value") == "true")
	case "date":
		raw := attrNamed(n, "date-value")
		if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
			val = table.DateValue(t)
		} else if t, err := time.Parse("2006-01-02", raw); err == nil {
			val = table.DateValue(t)
		}
	case "time":
		if d, err := table.ParseISODuration(attrNamed(n, "time-value")); err == nil {
			val = table.DurationValue(d)
		}
	case "string":
		if sv := attrNamed(n, "string-value"); sv != "" {
			val = table.StringValue(sv)
		} else if text != "" {
			val = table.StringValue(text)
			text = ""
		}
	default:
		if text != "" {
			val = table.StringValue(text)
			text = ""
		}
	}

	if val.Kind() == table.KindEmpty && text == "" && style == "" && formula == "" {
		return nil
	}
	cell := table.NewCell(val)
	cell.Style = style
	cell.Formula = formula
	if text != "" && text != val.Text() {
		cell.Text = text
	}
	return cell
}

// cellText joins the text:p children of a cell, one paragraph per line.
func cellText(n *xmldom.Node) string {
	var parts []string
	for _, p := range childrenNamed(n, "p") {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n")
}

func spannedSize(n *xmldom.Node) (w, h int) {
	w = repeatCount(n, "number-columns-spanned", coord.MaxCols)
	h = repeatCount(n, "number-rows-spanned", coord.MaxRows)
	return w, h
}

func repeatCount(n *xmldom.Node, name string, max int) int {
	raw := attrNamed(n, name)
	if raw == "" {
		return 1
	}
	c, err := strconv.Atoi(raw)
	if err != nil || c < 1 {
		return 1
	}
	if c > max {
		return max
	}
	return c
}

// parseRangeAddress parses an OpenDocument cell-range-address, e.g.
// "$Sheet1.$D$11:$E$12". The table name of the first endpoint governs; the
// second endpoint may repeat or omit it.
func parseRangeAddress(addr string) (string, coord.Range, error) {
	first, second, _ := strings.Cut(addr, ":")
	tableName, start, err := parseCellAddress(first)
	if err != nil {
		return "", coord.Range{}, err
	}
	end := start
	if second != "" {
		_, end, err = parseCellAddress(second)
		if err != nil {
			return "", coord.Range{}, err
		}
	}
	return tableName, coord.NewRange(start, end), nil
}

func parseCellAddress(addr string) (string, coord.Pos, error) {
	addr = strings.ReplaceAll(addr, "$", "")
	tableName := ""
	if i := strings.LastIndex(addr, "."); i >= 0 {
		tableName = strings.Trim(addr[:i], "'")
		addr = addr[i+1:]
	}
	pos, err := coord.ParseAddress(addr)
	if err != nil {
		return "", coord.Pos{}, err
	}
	return tableName, pos, nil
}

// localName strips any namespace prefix from an element or attribute name.
func localName(name string) string {
	if i := strings.LastIndex(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}

func childNamed(n *xmldom.Node, local string) *xmldom.Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if localName(c.Name) == local {
			return c
		}
	}
	return nil
}

func childrenNamed(n *xmldom.Node, local string) []*xmldom.Node {
	if n == nil {
		return nil
	}
	var out []*xmldom.Node
	for _, c := range n.Children {
		if localName(c.Name) == local {
			out = append(out, c)
		}
	}
	return out
}

func attrNamed(n *xmldom.Node, local string) string {
	for _, a := range n.Attributes {
		if localName(a.Name) == local {
			return a.Value
		}
	}
	return ""
}
