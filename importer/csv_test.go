package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/table"
)

func TestInferCell(t *testing.T) {
	tests := []struct {
		field string
		kind  table.Kind
	}{
		{"", table.KindEmpty},
		{"0", table.KindInt},
		{"123", table.KindInt},
		{"+7", table.KindInt},
		{"-42", table.KindInt},
		{"007", table.KindInt},
		{"3.14", table.KindFloat},
		{".5", table.KindFloat},
		{"1e3", table.KindFloat},
		{"-2.5E-1", table.KindFloat},
		// 20 digits, beyond int64
		{"99999999999999999999", table.KindFloat},
		{"abc", table.KindString},
		{"12abc", table.KindString},
		{"1.2.3", table.KindString},
		// dates and booleans are never inferred from text
		{"2023-01-01", table.KindString},
		{"true", table.KindString},
		{"TRUE", table.KindString},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			cell := inferCell(tc.field)
			if tc.kind == table.KindEmpty {
				assert.Nil(t, cell)
				return
			}
			require.NotNil(t, cell)
			assert.Equal(t, tc.kind, cell.Value.Kind())
		})
	}
}

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("1,2\r\n3,4\r\n"), "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", tbl.Name())
	assert.Equal(t, 2, tbl.Width())
	assert.Equal(t, 2, tbl.Height())

	v, err := tbl.GetValue("B2")
	require.NoError(t, err)
	assert.Equal(t, table.KindInt, v.Kind())
	assert.EqualValues(t, 4, v.Int())
}

func TestReadCSVRaggedRows(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\nd\n"), "t")
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Width())
	assert.Equal(t, 2, tbl.Height())

	values, err := tbl.GetValues("A1:C2")
	require.NoError(t, err)
	assert.Equal(t, "c", values[0][2].Str())
	assert.Equal(t, table.KindEmpty, values[1][1].Kind())
}

func TestReadCSVDialect(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("x;1\ny;2\n"), "t",
		Dialect(format.Dialect{Comma: ';'}))
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Width())

	v, err := tbl.GetValue("B1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, v.Int())
}

func TestReadCSVUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, err := enc.String("name,score\nalice,10\n")
	require.NoError(t, err)

	tbl, err := ReadCSV(strings.NewReader(raw), "t", Encoding("utf-16le"))
	require.NoError(t, err)

	v, err := tbl.GetValue("A2")
	require.NoError(t, err)
	assert.Equal(t, "alice", v.Str())
}
