// Package sheet is the top-level facade: it reads tabular data files into
// the in-memory document model and writes them back out in any supported
// format.
package sheet

import (
	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/importer"
	"github.com/sheetio/sheet/options"
	"github.com/sheetio/sheet/store"
	"github.com/sheetio/sheet/table"
)

// Load reads the given files into one document. CSV and JSON files each
// contribute one table named after the file; ODF files contribute all their
// tables and named ranges.
func Load(filenames []string, setters ...options.Option) (*table.Document, error) {
	opts := options.ParseOptions(setters...)
	return importer.ImportAll(filenames,
		importer.Dialect(options.Dialect(opts.Input.Comma, false)),
		importer.Encoding(opts.Input.Encoding),
	)
}

// Convert reads the given files and stores the merged document to outdir in
// the given output format.
func Convert(filenames []string, outdir string, fmt format.Format, setters ...options.Option) error {
	opts := options.ParseOptions(setters...)
	doc, err := Load(filenames, setters...)
	if err != nil {
		return err
	}
	return store.Store(doc, outdir, fmt,
		store.Dialect(options.Dialect(opts.Output.Comma, opts.Output.CRLF)),
		store.Pretty(opts.Output.Pretty),
	)
}
