package store

import "github.com/sheetio/sheet/format"

type Options struct {
	// Specify output file name (without file extension).
	//
	// Default: "".
	Name string
	// Output pretty format of JSON, with multiline and indent.
	//
	// Default: false.
	Pretty bool
	// Dialect controls the CSV field separator and line terminator.
	//
	// Default: comma fields, CRLF line endings.
	Dialect format.Dialect
}

// Option is the functional option type.
type Option func(*Options)

// newDefault returns a default Options.
func newDefault() *Options {
	return &Options{
		Dialect: format.DefaultDialect(),
	}
}

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	opts := newDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}

// Name specifies the output file name (without file extension).
func Name(v string) Option {
	return func(opts *Options) {
		opts.Name = v
	}
}

// Pretty specifies whether to prettify JSON output with multiline and
// indent.
func Pretty(v bool) Option {
	return func(opts *Options) {
		opts.Pretty = v
	}
}

// Dialect specifies the CSV dialect for output.
func Dialect(v format.Dialect) Option {
	return func(opts *Options) {
		opts.Dialect = v
	}
}
