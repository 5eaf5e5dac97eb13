package importer

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

var (
	intRegexp   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatRegexp = regexp.MustCompile(`^[+-]?([0-9]+\.[0-9]*|\.[0-9]+|[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// inferCell converts one CSV field into a typed cell. Inference is
// deliberately conservative: empty, integer, or decimal/exponent patterns;
// everything else stays a string. Dates and booleans are never inferred from
// plain text. Inference never fails; an unparseable numeric field degrades
// to a string cell.
func inferCell(field string) *table.Cell {
	if field == "" {
		return nil
	}
	if intRegexp.MatchString(field) {
		if i, err := strconv.ParseInt(field, 10, 64); err == nil {
			return table.NewCell(table.IntValue(i))
		}
		// out of int64 range, keep the precision float gives us
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return table.NewCell(table.FloatValue(f))
		}
	} else if floatRegexp.MatchString(field) {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return table.NewCell(table.FloatValue(f))
		}
	}
	return table.NewCell(table.StringValue(field))
}

// decodeReader wraps r so the CSV reader always sees UTF-8.
func decodeReader(r io.Reader, enc string) (io.Reader, error) {
	switch strings.ToLower(enc) {
	case "", "utf-8", "utf8":
		// pass through, but drop a leading BOM if present
		return transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder())), nil
	case "utf-16le":
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case "utf-16be":
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	default:
		return nil, xerrors.Errorf(xerrors.CodeUnknown, "unsupported encoding: %s", enc)
	}
}

// ReadCSV reads CSV text into a table, one logical row per line. Field
// types are inferred per [inferCell].
func ReadCSV(r io.Reader, tableName string, options ...Option) (*table.Table, error) {
	opts := parseOptions(options...)
	decoded, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(decoded)
	reader.Comma = opts.Dialect.Comma
	reader.FieldsPerRecord = -1 // rows may have different widths
	reader.LazyQuotes = true

	tbl := table.NewTable(tableName)
	y := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, xerrors.Wrapf(err, "failed to read CSV row %d", y)
		}
		row := table.NewRow()
		for x, field := range record {
			if cell := inferCell(field); cell != nil {
				row.SetCell(x, cell)
			}
		}
		// keep the stored width equal to the field count
		if pad := len(record) - row.Width(); pad > 0 {
			row.AppendCell(nil, pad)
		}
		tbl.AppendRow(row, 1)
		y++
	}
	tbl.OptimizeWidth()
	return tbl, nil
}
