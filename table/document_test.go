package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/xerrors"
)

func newDocWithTable(t *testing.T, name string) (*Document, *Table) {
	t.Helper()
	doc := NewDocument()
	tbl := NewTable(name)
	require.NoError(t, doc.AddTable(tbl))
	return doc, tbl
}

func TestAddTableUnique(t *testing.T) {
	doc, _ := newDocWithTable(t, "Sheet1")
	assert.Error(t, doc.AddTable(NewTable("Sheet1")))
	require.NoError(t, doc.AddTable(NewTable("Sheet2")))
	assert.Len(t, doc.Tables(), 2)
}

func TestNamedRangeSingleCell(t *testing.T) {
	doc, tbl := newDocWithTable(t, "Sheet1")
	require.NoError(t, doc.SetNamedRange("total", coord.Pos{Col: 3, Row: 10}, "Sheet1"))

	nr, err := doc.GetNamedRange("total")
	require.NoError(t, err)
	require.NoError(t, nr.SetValue(IntValue(42)))

	v, err := tbl.GetValue(coord.Pos{Col: 3, Row: 10})
	require.NoError(t, err)
	assert.Equal(t, IntValue(42), v)

	got, err := nr.GetValue()
	require.NoError(t, err)
	assert.Equal(t, IntValue(42), got)
}

func TestNamedRangeShapeGuard(t *testing.T) {
	doc, _ := newDocWithTable(t, "Sheet1")
	require.NoError(t, doc.SetNamedRange("block", "A1:B2", "Sheet1"))

	nr, err := doc.GetNamedRange("block")
	require.NoError(t, err)

	_, err = nr.GetValue()
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))
	err = nr.SetValue(IntValue(1))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))

	// any shape works through the matrix accessors
	require.NoError(t, nr.SetValues([][]Value{{IntValue(1), IntValue(2)}}))
	got, err := nr.GetValues()
	require.NoError(t, err)
	assert.Equal(t, IntValue(2), got[0][1])
}

func TestNamedRangeUniqueAcrossDocument(t *testing.T) {
	doc, _ := newDocWithTable(t, "Sheet1")
	require.NoError(t, doc.AddTable(NewTable("Sheet2")))
	require.NoError(t, doc.SetNamedRange("total", "A1", "Sheet1"))
	// same name on another table still collides
	assert.Error(t, doc.SetNamedRange("total", "B2", "Sheet2"))
}

func TestNamedRangeLateResolution(t *testing.T) {
	doc, tbl := newDocWithTable(t, "Sheet1")
	// registration does not validate the target table at all
	require.NoError(t, doc.SetNamedRange("ghost", "A1", "NoSuchTable"))

	nr, err := doc.GetNamedRange("ghost")
	require.NoError(t, err)
	_, err = nr.GetValue()
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeNameResolution))

	// a rename makes existing registrations stale
	require.NoError(t, doc.SetNamedRange("total", "A1", "Sheet1"))
	require.NoError(t, tbl.Rename("Data"))
	nr, err = doc.GetNamedRange("total")
	require.NoError(t, err)
	_, err = nr.GetValue()
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeNameResolution))
}

func TestNamedRangeRemovedTable(t *testing.T) {
	doc, _ := newDocWithTable(t, "Sheet1")
	require.NoError(t, doc.SetNamedRange("total", "A1", "Sheet1"))
	assert.True(t, doc.RemoveTable("Sheet1"))

	nr, err := doc.GetNamedRange("total")
	require.NoError(t, err, "registration survives table removal")
	err = nr.SetValue(IntValue(1))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeNameResolution))
}

func TestGetNamedRangeUnknown(t *testing.T) {
	doc := NewDocument()
	_, err := doc.GetNamedRange("nope")
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeNameResolution))
}

func TestNamedRangesOrdered(t *testing.T) {
	doc, _ := newDocWithTable(t, "Sheet1")
	require.NoError(t, doc.SetNamedRange("zebra", "A1", "Sheet1"))
	require.NoError(t, doc.SetNamedRange("alpha", "B2", "Sheet1"))

	names := []string{}
	for _, nr := range doc.NamedRanges() {
		names = append(names, nr.Name)
	}
	assert.Equal(t, []string{"alpha", "zebra"}, names)

	assert.True(t, doc.RemoveNamedRange("zebra"))
	assert.False(t, doc.RemoveNamedRange("zebra"))
}
