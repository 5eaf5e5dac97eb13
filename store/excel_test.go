package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sheetio/sheet/table"
)

func TestWriteExcel(t *testing.T) {
	doc := table.NewDocument()

	first := table.NewTable("First")
	mustSetValues(t, first, "A1:B2", [][]table.Value{
		{table.IntValue(7), table.StringValue("x")},
		{table.FloatValue(1.5), table.BoolValue(true)},
	})
	require.NoError(t, first.SetSpan("A1:B1", false))
	require.NoError(t, doc.AddTable(first))

	second := table.NewTable("Second")
	mustSetValues(t, second, "A1:A1", [][]table.Value{{table.StringValue("y")}})
	require.NoError(t, doc.AddTable(second))

	require.NoError(t, doc.SetNamedRange("alpha", "A1:B2", "First"))

	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"First", "Second"}, f.GetSheetList())

	v, err := f.GetCellValue("First", "A1")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	v, err = f.GetCellValue("Second", "A1")
	require.NoError(t, err)
	assert.Equal(t, "y", v)

	merged, err := f.GetMergeCells("First")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "B1", merged[0].GetEndAxis())

	names := f.GetDefinedName()
	require.Len(t, names, 1)
	assert.Equal(t, "alpha", names[0].Name)
	assert.Equal(t, "'First'!$A$1:$B$2", names[0].RefersTo)
}
