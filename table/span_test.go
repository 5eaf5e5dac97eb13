package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/xerrors"
)

func textGrid(t *testing.T, texts ...string) *Table {
	t.Helper()
	tbl := NewTable("s")
	require.NoError(t, tbl.SetValues("A1:B2", [][]Value{
		{StringValue(texts[0]), StringValue(texts[1])},
		{StringValue(texts[2]), StringValue(texts[3])},
	}))
	return tbl
}

func TestSetSpanCoversCells(t *testing.T) {
	tbl := textGrid(t, "a", "b", "c", "d")
	require.NoError(t, tbl.SetSpan("A1:B2", false))

	// anchor stays readable
	c, err := tbl.GetCell("A1")
	require.NoError(t, err)
	assert.Equal(t, "a", c.Value.Str())

	// covered cells are not addressable through the value path
	_, err = tbl.GetCell("B1")
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))
	err = tbl.SetCell("B2", NewCell(IntValue(1)))
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))

	assert.True(t, tbl.Spans().IsCovering(coord.Pos{Col: 0, Row: 0}))
	assert.True(t, tbl.Spans().IsCovered(coord.Pos{Col: 1, Row: 1}))
	assert.False(t, tbl.Spans().IsCovered(coord.Pos{Col: 0, Row: 0}))
}

func TestSetSpanOverlapFails(t *testing.T) {
	tbl := textGrid(t, "a", "b", "c", "d")
	require.NoError(t, tbl.SetSpan("A1:B1", false))

	err := tbl.SetSpan("B1:B2", false)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeOverlap))
	assert.Equal(t, 1, tbl.Spans().Len())
}

func TestSetSpanSingleCellRejected(t *testing.T) {
	tbl := textGrid(t, "a", "b", "c", "d")
	err := tbl.SetSpan("A1", false)
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))
}

func TestClearSpanRestoresValues(t *testing.T) {
	tbl := textGrid(t, "a", "b", "c", "d")
	require.NoError(t, tbl.SetSpan("A1:B2", false))

	// any coordinate inside the region dissolves it
	require.NoError(t, tbl.ClearSpan("B2"))

	for addr, want := range map[string]string{"A1": "a", "B1": "b", "A2": "c", "B2": "d"} {
		c, err := tbl.GetCell(addr)
		require.NoError(t, err, addr)
		assert.Equal(t, want, c.Value.Str(), addr)
	}
}

func TestClearSpanWithoutRegion(t *testing.T) {
	tbl := textGrid(t, "a", "b", "c", "d")
	err := tbl.ClearSpan("A1")
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))
}

func TestSetSpanMergeConcatenatesTexts(t *testing.T) {
	tbl := textGrid(t, "a", "b", "c", "d")
	require.NoError(t, tbl.SetSpan(coord.NewRangeWH(coord.Pos{}, 2, 2), true))

	c, err := tbl.GetCell("A1")
	require.NoError(t, err)
	assert.Equal(t, "a b c d", c.Value.Str(), "row-major concatenation")

	_, err = tbl.GetCell("B1")
	require.Error(t, err)
	assert.True(t, xerrors.Is(err, xerrors.CodeRangeShape))

	// merge is irreversible: covered values are gone after clearing
	require.NoError(t, tbl.ClearSpan("A1"))
	c, err = tbl.GetCell("B1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestSpanRegionsOrdered(t *testing.T) {
	tbl := NewTable("s")
	require.NoError(t, tbl.SetValues("A1:F6", nil))
	require.NoError(t, tbl.SetSpan("E5:F6", false))
	require.NoError(t, tbl.SetSpan("A1:B2", false))
	require.NoError(t, tbl.SetSpan("D1:E2", false))

	regions := tbl.Spans().Regions()
	require.Len(t, regions, 3)
	assert.Equal(t, coord.Pos{Col: 0, Row: 0}, regions[0].Anchor)
	assert.Equal(t, coord.Pos{Col: 3, Row: 0}, regions[1].Anchor)
	assert.Equal(t, coord.Pos{Col: 4, Row: 4}, regions[2].Anchor)
}
