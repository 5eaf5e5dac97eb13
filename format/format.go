// Package format declares the file formats sheet can read and write, plus
// the CSV dialect shared by the importer and the store.
package format

import "path/filepath"

type Format string

// File format
const (
	UnknownFormat Format = "unknown"
	CSV           Format = "csv"
	JSON          Format = "json"
	// ODF is the flat (single file) OpenDocument spreadsheet XML.
	ODF   Format = "fods"
	Excel Format = "xlsx"
)

// File format extension
const (
	UnknownExt string = ".unknown"
	CSVExt     string = ".csv"
	JSONExt    string = ".json"
	ODFExt     string = ".fods"
	ExcelExt   string = ".xlsx"
)

// GetFormat returns the file's format by filename extension.
func GetFormat(filename string) Format {
	return Ext2Format(filepath.Ext(filename))
}

func Ext2Format(ext string) Format {
	switch ext {
	case CSVExt:
		return CSV
	case JSONExt:
		return JSON
	case ODFExt:
		return ODF
	case ExcelExt:
		return Excel
	default:
		return UnknownFormat
	}
}

func Format2Ext(fmt Format) string {
	switch fmt {
	case CSV:
		return CSVExt
	case JSON:
		return JSONExt
	case ODF:
		return ODFExt
	case Excel:
		return ExcelExt
	default:
		return UnknownExt
	}
}

var InputFormats = []Format{CSV, JSON, ODF}
var OutputFormats = []Format{CSV, JSON, ODF, Excel}

func Amongst(fmt Format, formats []Format) bool {
	for _, f := range formats {
		if f == fmt {
			return true
		}
	}
	return false
}

// IsInputFormat checks whether fmt belongs to [InputFormats].
func IsInputFormat(fmt Format) bool {
	return Amongst(fmt, InputFormats)
}

// IsOutputFormat checks whether fmt belongs to [OutputFormats].
func IsOutputFormat(fmt Format) bool {
	return Amongst(fmt, OutputFormats)
}
