// Package options defines the conversion options shared by the sheetc
// command and library callers.
package options

import (
	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/log"
)

type Options struct {
	// Log options.
	Log *log.Option `yaml:"log"`
	// Input options.
	Input *InputOption `yaml:"input"`
	// Output options.
	Output *OutputOption `yaml:"output"`
}

type InputOption struct {
	// CSV field separator.
	//
	// Default: ",".
	Comma string `yaml:"comma"`
	// Character encoding of CSV input: utf-8, utf-16le, or utf-16be.
	//
	// Default: "utf-8".
	Encoding string `yaml:"encoding"`
}

type OutputOption struct {
	// CSV field separator.
	//
	// Default: ",".
	Comma string `yaml:"comma"`
	// Terminate CSV records with \r\n instead of \n.
	//
	// Default: true.
	CRLF bool `yaml:"crlf"`
	// Pretty prints JSON output with multiline and indent.
	//
	// Default: false.
	Pretty bool `yaml:"pretty"`
}

// NewDefault returns a default Options.
func NewDefault() *Options {
	return &Options{
		Log: &log.Option{
			Mode:  "FULL",
			Level: "INFO",
			Sink:  "CONSOLE",
		},
		Input: &InputOption{
			Comma:    ",",
			Encoding: "utf-8",
		},
		Output: &OutputOption{
			Comma: ",",
			CRLF:  true,
		},
	}
}

// Dialect converts a yaml comma/crlf pair to a CSV dialect. An empty or
// invalid comma falls back to the default.
func Dialect(comma string, crlf bool) format.Dialect {
	d := format.Dialect{Comma: ',', UseCRLF: crlf}
	if r := []rune(comma); len(r) == 1 {
		d.Comma = r[0]
	}
	return d
}

// Option is the functional option type.
type Option func(*Options)

// ParseOptions parses functional options and merge them to default Options.
func ParseOptions(setters ...Option) *Options {
	opts := NewDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}

// Log sets the log options. A nil value keeps the default.
func Log(o *log.Option) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Log = o
		}
	}
}

// Input sets the input options. A nil value keeps the default.
func Input(o *InputOption) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Input = o
		}
	}
}

// Output sets the output options. A nil value keeps the default.
func Output(o *OutputOption) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Output = o
		}
	}
}
