package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/importer"
	"github.com/sheetio/sheet/table"
)

func TestConvert(t *testing.T) {
	indir := t.TempDir()
	outdir := t.TempDir()
	csvPath := filepath.Join(indir, "scores.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("alice,10\r\nbob,20\r\n"), 0644))

	require.NoError(t, Convert([]string{csvPath}, outdir, format.ODF))

	out := filepath.Join(outdir, "document.fods")
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	doc, err := importer.ReadODF(f)
	require.NoError(t, err)
	tbl, ok := doc.GetTable("scores")
	require.True(t, ok)
	assert.Equal(t, 2, tbl.Height())

	v, err := tbl.GetValue("B2")
	require.NoError(t, err)
	assert.Equal(t, table.KindInt, v.Kind())
	assert.EqualValues(t, 20, v.Int())
}

func TestLoadMergesFiles(t *testing.T) {
	indir := t.TempDir()
	a := filepath.Join(indir, "a.csv")
	b := filepath.Join(indir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte("1\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("[[2]]"), 0644))

	doc, err := Load([]string{a, b})
	require.NoError(t, err)
	assert.Len(t, doc.Tables(), 2)
}
