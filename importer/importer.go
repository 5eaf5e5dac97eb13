// Package importer reads tabular data files into the in-memory document
// model. CSV and JSON files carry one table each; flat ODF files carry a
// whole document with named ranges.
package importer

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/log"
	"github.com/sheetio/sheet/table"
	"github.com/sheetio/sheet/xerrors"
)

// Import reads one file into a document, dispatching on the filename
// extension.
func Import(filename string, options ...Option) (*table.Document, error) {
	opts := parseOptions(options...)
	fmt := format.GetFormat(filename)
	if !format.IsInputFormat(fmt) {
		return nil, xerrors.ErrorKV(xerrors.CodeUnknown, "unsupported input file",
			xerrors.KeyReason, "format "+string(fmt)+" is not readable")
	}
	log.Debugf("import %s file: %s", fmt, filename)

	f, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Wrapf(err, "failed to open %s", filename)
	}
	defer f.Close()

	tableName := opts.TableName
	if tableName == "" {
		base := filepath.Base(filename)
		tableName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	switch fmt {
	case format.CSV:
		tbl, err := ReadCSV(f, tableName, options...)
		if err != nil {
			return nil, xerrors.WrapKV(err, xerrors.KeyTableName, tableName)
		}
		return singleTableDocument(tbl)
	case format.JSON:
		tbl, err := ReadJSON(f, tableName, options...)
		if err != nil {
			return nil, xerrors.WrapKV(err, xerrors.KeyTableName, tableName)
		}
		return singleTableDocument(tbl)
	default:
		return ReadODF(f, options...)
	}
}

func singleTableDocument(tbl *table.Table) (*table.Document, error) {
	doc := table.NewDocument()
	if err := doc.AddTable(tbl); err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportAll reads the given files concurrently and merges their tables and
// named ranges into one document, preserving the input order.
func ImportAll(filenames []string, options ...Option) (*table.Document, error) {
	docs := make([]*table.Document, len(filenames))
	var eg errgroup.Group
	for i, filename := range filenames {
		eg.Go(func() error {
			doc, err := Import(filename, options...)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := table.NewDocument()
	for _, doc := range docs {
		for _, tbl := range doc.Tables() {
			if err := merged.AddTable(tbl); err != nil {
				return nil, err
			}
		}
		for _, nr := range doc.NamedRanges() {
			if err := merged.SetNamedRange(nr.Name, nr.Range, nr.TableName); err != nil {
				return nil, err
			}
		}
	}
	return merged, nil
}
