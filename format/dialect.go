package format

// Dialect describes how CSV text is laid out. The zero value is not valid;
// use [DefaultDialect].
type Dialect struct {
	// Comma is the field separator.
	Comma rune `yaml:"comma"`
	// UseCRLF terminates lines with \r\n on write, the common spreadsheet
	// convention. Readers accept both endings regardless.
	UseCRLF bool `yaml:"useCRLF"`
}

// DefaultDialect is the common spreadsheet dialect: comma-separated, CRLF
// line ends, fields containing comma, quote, or line breaks quoted with
// doubled internal quotes.
func DefaultDialect() Dialect {
	return Dialect{
		Comma:   ',',
		UseCRLF: true,
	}
}
