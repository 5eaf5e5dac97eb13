package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetio/sheet/table"
)

func TestReadJSON(t *testing.T) {
	input := `[[1, 2.5, "x", true, null], ["y"]]`
	tbl, err := ReadJSON(strings.NewReader(input), "grid")
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.Width())
	assert.Equal(t, 2, tbl.Height())

	tests := []struct {
		ref  string
		kind table.Kind
	}{
		{"A1", table.KindInt},
		{"B1", table.KindFloat},
		{"C1", table.KindString},
		{"D1", table.KindBool},
		{"E1", table.KindEmpty},
		{"A2", table.KindString},
		{"B2", table.KindEmpty},
	}
	for _, tc := range tests {
		v, err := tbl.GetValue(tc.ref)
		require.NoError(t, err)
		assert.Equal(t, tc.kind, v.Kind(), "ref %s", tc.ref)
	}

	v, err := tbl.GetValue("B1")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Float())
}

func TestReadJSONNotAGrid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"a": 1}`), "t")
	assert.Error(t, err)

	_, err = ReadJSON(strings.NewReader(`[1, 2]`), "t")
	assert.Error(t, err)

	_, err = ReadJSON(strings.NewReader(`[[{}]]`), "t")
	assert.Error(t, err)
}
