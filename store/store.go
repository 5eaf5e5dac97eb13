// Package store writes a document to different formats: CSV, JSON, flat
// ODF, and xlsx.
package store

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/log"
	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// Store writes doc to files in the specified directory and format. CSV and
// JSON produce one file per table, named after the table; ODF and xlsx
// produce a single file holding the whole document.
func Store(doc *table.Document, dir string, fmt format.Format, options ...Option) error {
	opts := ParseOptions(options...)
	if !format.IsOutputFormat(fmt) {
		return xerrors.ErrorKV(xerrors.CodeUnknown, "unsupported output format",
			xerrors.KeyReason, string(fmt)+" is not writable")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return xerrors.Wrapf(err, "failed to create dir %s", dir)
	}

	switch fmt {
	case format.CSV, format.JSON:
		for _, tbl := range doc.Tables() {
			var buf bytes.Buffer
			var err error
			if fmt == format.CSV {
				err = WriteCSV(&buf, tbl, opts.Dialect)
			} else {
				err = WriteJSON(&buf, tbl, opts.Pretty)
			}
			if err != nil {
				return xerrors.WrapKV(err, xerrors.KeyTableName, tbl.Name())
			}
			if err := writeFile(dir, tbl.Name()+format.Format2Ext(fmt), buf.Bytes()); err != nil {
				return err
			}
		}
		return nil
	default:
		name := opts.Name
		if name == "" {
			name = "document"
		}
		var buf bytes.Buffer
		var err error
		if fmt == format.ODF {
			err = WriteODF(&buf, doc)
		} else {
			err = WriteExcel(&buf, doc)
		}
		if err != nil {
			return err
		}
		return writeFile(dir, name+format.Format2Ext(fmt), buf.Bytes())
	}
}

func writeFile(dir, filename string, out []byte) error {
	fpath := filepath.Join(dir, filename)
	if err := os.WriteFile(fpath, out, 0644); err != nil {
		return xerrors.Wrapf(err, "failed to write file %s", fpath)
	}
	log.Infof("%18s: %s", "generated file", filename)
	return nil
}
