package store

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/importer"
	"github.com/sheetio/sheet/table"
)

func TestWriteJSON(t *testing.T) {
	tbl := table.NewTable("t")
	mustSetValues(t, tbl, "A1:D2", [][]table.Value{
		{table.IntValue(1), table.FloatValue(2.5), table.StringValue("x"), table.BoolValue(true)},
		{table.StringValue("y"), table.EmptyValue(), table.EmptyValue(), table.EmptyValue()},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl, false))
	assert.Equal(t, `[[1,2.5,"x",true],["y",null,null,null]]`+"\n", buf.String())
}

func TestWriteJSONPretty(t *testing.T) {
	tbl := table.NewTable("t")
	mustSetValues(t, tbl, "A1:A1", [][]table.Value{{table.IntValue(1)}})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl, true))
	assert.True(t, strings.Contains(buf.String(), "\n"))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n"))
}

func TestJSONRoundTrip(t *testing.T) {
	tbl := table.NewTable("t")
	mustSetValues(t, tbl, "A1:C2", [][]table.Value{
		{table.IntValue(7), table.StringValue("a"), table.BoolValue(false)},
		{table.FloatValue(-0.25), table.EmptyValue(), table.StringValue("b")},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, tbl, false))

	back, err := importer.ReadJSON(&buf, "t")
	require.NoError(t, err)
	assert.Equal(t, tbl.Width(), back.Width())
	assert.Equal(t, tbl.Height(), back.Height())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			p := coord.Pos{Col: x, Row: y}
			want, err := tbl.GetCell(p)
			require.NoError(t, err)
			got, err := back.GetCell(p)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "cell %s", p)
		}
	}
}
