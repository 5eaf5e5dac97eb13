package table

// Cell is one cell of a table: a typed value, an optional display text, an
// opaque style name, and an opaque (never evaluated) formula.
//
// A nil *Cell is a valid empty cell. Stored cells are treated as immutable:
// mutations go through [Table.SetCell], which replaces the stored pointer,
// so one cell may safely back a whole repeated run.
type Cell struct {
	Value   Value
	Text    string // display text; overrides the canonical value rendering
	Style   string // opaque style name, stored without validation
	Formula string // opaque formula text
}

// NewCell returns a cell holding v.
func NewCell(v Value) *Cell {
	return &Cell{Value: v}
}

// IsEmpty reports whether the cell carries no value, text, style, or formula.
func (c *Cell) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Value.IsEmpty() && c.Text == "" && c.Style == "" && c.Formula == ""
}

// DisplayText returns the display text if present, else the canonical value
// rendering.
func (c *Cell) DisplayText() string {
	if c == nil {
		return ""
	}
	if c.Text != "" {
		return c.Text
	}
	return c.Value.Text()
}

// Clone returns a detached copy. Clone of nil is nil.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// Equal compares value, text, style, and formula. Two empty cells are equal
// regardless of nil-ness.
func (c *Cell) Equal(o *Cell) bool {
	if c.IsEmpty() && o.IsEmpty() {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.Value.Equal(o.Value) &&
		c.Text == o.Text &&
		c.Style == o.Style &&
		c.Formula == o.Formula
}
