package table

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/xerrors"
)

// Document owns an ordered collection of tables plus the named ranges
// aliasing regions inside them. Table names and named-range names are each
// unique within the document.
type Document struct {
	tables []*Table
	byName map[string]*Table
	named  *treemap.Map // name -> *NamedRange, ordered by name
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		byName: make(map[string]*Table),
		named:  treemap.NewWith(utils.StringComparator),
	}
}

// AddTable attaches a free-standing table to the document.
func (d *Document) AddTable(t *Table) error {
	if t.doc != nil {
		return xerrors.Errorf(xerrors.CodeUnknown, "table %q is already attached to a document", t.name)
	}
	if _, ok := d.byName[t.name]; ok {
		return xerrors.Errorf(xerrors.CodeUnknown, "duplicate table name %q", t.name)
	}
	t.doc = d
	d.tables = append(d.tables, t)
	d.byName[t.name] = t
	return nil
}

// GetTable returns the table with the given name.
func (d *Document) GetTable(name string) (*Table, bool) {
	t, ok := d.byName[name]
	return t, ok
}

// Tables returns the tables in document order.
func (d *Document) Tables() []*Table {
	return d.tables
}

// RemoveTable detaches the named table. Named ranges targeting it are kept
// and become stale: they fail at use time, never at removal time.
func (d *Document) RemoveTable(name string) bool {
	t, ok := d.byName[name]
	if !ok {
		return false
	}
	delete(d.byName, name)
	for i, other := range d.tables {
		if other == t {
			d.tables = append(d.tables[:i], d.tables[i+1:]...)
			break
		}
	}
	t.doc = nil
	return true
}

func (d *Document) renameTable(t *Table, name string) error {
	if name == t.name {
		return nil
	}
	if _, ok := d.byName[name]; ok {
		return xerrors.Errorf(xerrors.CodeUnknown, "duplicate table name %q", name)
	}
	delete(d.byName, t.name)
	t.name = name
	d.byName[name] = t
	return nil
}

// NamedRange is a document-unique alias for a rectangular region in one
// table. The target table is resolved lazily on every use, so a range whose
// table was renamed or removed fails at use time, never at registration
// time.
type NamedRange struct {
	doc       *Document
	Name      string
	TableName string
	Range     coord.Range
}

// SetNamedRange registers name -> (tableName, range). The range is not
// validated against current table bounds, only its own shape.
func (d *Document) SetNamedRange(name string, ref any, tableName string) error {
	r, err := coord.ResolveRange(ref)
	if err != nil {
		return err
	}
	if name == "" {
		return xerrors.Errorf(xerrors.CodeUnknown, "named range name must not be empty")
	}
	if _, ok := d.named.Get(name); ok {
		return xerrors.ErrorKV(xerrors.CodeUnknown, "duplicate named range",
			xerrors.KeyNamedName, name)
	}
	d.named.Put(name, &NamedRange{
		doc:       d,
		Name:      name,
		TableName: tableName,
		Range:     r,
	})
	return nil
}

// GetNamedRange returns the handle registered under name.
func (d *Document) GetNamedRange(name string) (*NamedRange, error) {
	v, ok := d.named.Get(name)
	if !ok {
		return nil, xerrors.ErrorKV(xerrors.CodeNameResolution, "named range not found",
			xerrors.KeyNamedName, name)
	}
	return v.(*NamedRange), nil
}

// RemoveNamedRange deletes the registration. It reports whether the name
// existed.
func (d *Document) RemoveNamedRange(name string) bool {
	if _, ok := d.named.Get(name); !ok {
		return false
	}
	d.named.Remove(name)
	return true
}

// NamedRanges returns all registrations in name order.
func (d *Document) NamedRanges() []*NamedRange {
	out := make([]*NamedRange, 0, d.named.Size())
	d.named.Each(func(_ interface{}, v interface{}) {
		out = append(out, v.(*NamedRange))
	})
	return out
}

// resolve returns the target table, failing when it was removed or renamed.
func (nr *NamedRange) resolve() (*Table, error) {
	t, ok := nr.doc.GetTable(nr.TableName)
	if !ok {
		return nil, xerrors.ErrorKV(xerrors.CodeNameResolution, "target table missing or renamed",
			xerrors.KeyNamedName, nr.Name,
			xerrors.KeyTableName, nr.TableName,
		)
	}
	return t, nil
}

// GetValue reads the single cell the range aliases. It fails with a
// range-shape error when the range covers more than one cell.
func (nr *NamedRange) GetValue() (Value, error) {
	t, err := nr.resolve()
	if err != nil {
		return Value{}, err
	}
	if !nr.Range.Single() {
		return Value{}, xerrors.ErrorKV(xerrors.CodeRangeShape, "named range is not a single cell",
			xerrors.KeyNamedName, nr.Name,
			xerrors.KeyRange, nr.Range,
		)
	}
	return t.GetValue(nr.Range.Start)
}

// SetValue writes the single cell the range aliases; same shape rule as
// [NamedRange.GetValue].
func (nr *NamedRange) SetValue(v Value) error {
	t, err := nr.resolve()
	if err != nil {
		return err
	}
	if !nr.Range.Single() {
		return xerrors.ErrorKV(xerrors.CodeRangeShape, "named range is not a single cell",
			xerrors.KeyNamedName, nr.Name,
			xerrors.KeyRange, nr.Range,
		)
	}
	return t.SetValue(nr.Range.Start, v)
}

// GetValues reads the whole aliased rectangle, any shape.
func (nr *NamedRange) GetValues() ([][]Value, error) {
	t, err := nr.resolve()
	if err != nil {
		return nil, err
	}
	return t.GetValues(nr.Range)
}

// SetValues writes the whole aliased rectangle, any shape.
func (nr *NamedRange) SetValues(matrix [][]Value) error {
	t, err := nr.resolve()
	if err != nil {
		return err
	}
	return t.SetValues(nr.Range, matrix)
}
