// SPDX-License-Identifier: MIT

package tablecsv_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vowelspace/corpus"
	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/tablecsv"
	"github.com/katalvlaran/vowelspace/trajectory"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := tablecsv.Write(&buf, [][]string{
		{"poem", "lineNumber", "ZNorm"},
		{"a, b.txt", "Line 1", "NULL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "poem,lineNumber,ZNorm\n\"a, b.txt\",Line 1,NULL\n", buf.String())
}

func TestWrite_Ragged(t *testing.T) {
	var buf bytes.Buffer
	err := tablecsv.Write(&buf, [][]string{{"a", "b"}, {"c"}})
	assert.ErrorIs(t, err, tablecsv.ErrRaggedRecords)
	assert.Zero(t, buf.Len())
}

func TestRead_Ragged(t *testing.T) {
	_, err := tablecsv.Read(bytes.NewBufferString("a,b\nc\n"))
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statOutput", "out.csv")
	recs := [][]string{{"x", "y"}, {"1", "2"}}

	require.NoError(t, tablecsv.WriteFile(path, recs))

	got, err := tablecsv.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, recs, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, tablecsv.FilePerm, info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file left behind")
}

// TestWriteFile_FailureLeavesNothing: a rejected table neither creates nor
// replaces the target.
func TestWriteFile_FailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	err := tablecsv.WriteFile(path, [][]string{{"a", "b"}, {"c"}})
	require.ErrorIs(t, err, tablecsv.ErrRaggedRecords)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	err = tablecsv.WriteFile(path, [][]string{{"a", "b"}, {"c"}})
	require.Error(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// TestCorpusRoundTrip writes an aggregated corpus and parses it back.
func TestCorpusRoundTrip(t *testing.T) {
	poems := corpus.MapResolver{
		"one": {"la.mu", "ʃi rə", "bo ɛ", "a"},
		"two": {"tra la", "mi"},
	}
	a, err := corpus.New(corpus.Settings{
		Classifier: phonetic.ThreeWay(),
		Windowing:  trajectory.AdjacentPairs,
	}, poems)
	require.NoError(t, err)
	orig, err := a.Aggregate(context.Background(), []string{"one", "two"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, tablecsv.WriteFile(path, orig.Records()))

	recs, err := tablecsv.ReadFile(path)
	require.NoError(t, err)
	back, err := corpus.ParseTable(recs)
	require.NoError(t, err)

	require.Len(t, back.Rows, len(orig.Rows))
	for i := range orig.Rows {
		assert.Equal(t, orig.Rows[i].Poem, back.Rows[i].Poem)
		assert.Equal(t, orig.Rows[i].Line, back.Rows[i].Line)
		for k, v := range orig.Rows[i].Values {
			assert.InDelta(t, v, back.Rows[i].Values[k], 1e-9)
		}
		assert.Equal(t, orig.Rows[i].ZNorm.Valid, back.Rows[i].ZNorm.Valid)
		assert.InDelta(t, orig.Rows[i].ZNorm.Value, back.Rows[i].ZNorm.Value, 1e-9)
	}
}
