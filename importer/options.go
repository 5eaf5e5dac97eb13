package importer

import "github.com/sheetio/sheet/format"

// Options tweak how files are read. Options follow the design of
// Functional Options (https://github.com/tmrts/go-patterns/blob/master/idiom/functional-options.md).
type Options struct {
	// TableName overrides the table name derived from the filename.
	// Only meaningful for single-table formats (CSV, JSON).
	TableName string
	// Dialect is the CSV dialect. Default: [format.DefaultDialect].
	Dialect format.Dialect
	// Encoding is the CSV byte encoding: "utf-8" (default, BOM tolerated),
	// "utf-16le", or "utf-16be".
	Encoding string
}

// Option is the functional option type.
type Option func(*Options)

// TableName overrides the table name derived from the filename.
func TableName(name string) Option {
	return func(opts *Options) {
		opts.TableName = name
	}
}

// Dialect sets the CSV dialect.
func Dialect(d format.Dialect) Option {
	return func(opts *Options) {
		opts.Dialect = d
	}
}

// Encoding sets the CSV byte encoding.
func Encoding(enc string) Option {
	return func(opts *Options) {
		opts.Encoding = enc
	}
}

func parseOptions(setters ...Option) *Options {
	opts := &Options{
		Dialect: format.DefaultDialect(),
	}
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
