package table

// Column is a column declaration: styles only, no cell data.
type Column struct {
	Style            string // opaque column style name
	DefaultCellStyle string // opaque default cell style for the column
}

// Clone returns a copy. Clone of nil is nil.
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// IsDefault reports whether the declaration carries no styles. A nil
// *Column is a valid default declaration.
func (c *Column) IsDefault() bool {
	return c == nil || (c.Style == "" && c.DefaultCellStyle == "")
}

// Equal compares the declared styles.
func (c *Column) Equal(o *Column) bool {
	if c.IsDefault() && o.IsDefault() {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.Style == o.Style && c.DefaultCellStyle == o.DefaultCellStyle
}
