// SPDX-License-Identifier: MIT

package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vowelspace/corpus"
	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/source"
	"github.com/katalvlaran/vowelspace/text"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-IPAMusic.txt", "la\n")
	writeFile(t, dir, "a-IPAMusic.txt", "mi\n")
	writeFile(t, dir, "a-IPA.txt", "mi\n")
	writeFile(t, dir, "notes.md", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub-IPAMusic.txt"), 0o755))

	names, err := source.Discover(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-IPAMusic.txt", "b-IPAMusic.txt"}, names)

	names, err = source.Discover(dir, "*.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.md"}, names)

	names, err = source.Discover(dir, "*.csv")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDiscover_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "")

	_, err := source.Discover(filepath.Join(dir, "file.txt"), "")
	assert.ErrorIs(t, err, source.ErrNotDirectory)

	_, err = source.Discover(filepath.Join(dir, "missing"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = source.Discover(dir, "[")
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.txt", "\uFEFFla.mu\r\n\r\nʃi rə\nlast")

	lines, err := source.ReadLines(dir, "p.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"la.mu", "", "ʃi rə", "last"}, lines)

	_, err = source.ReadLines(dir, "missing.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLines_Empty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.txt", "")

	lines, err := source.ReadLines(dir, "p.txt")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestDir_Resolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.txt", "la\nmi\n\n\nrə\n")
	ctx := context.Background()

	tests := []struct {
		name string
		d    source.Dir
		want []string
	}{
		{"lines", source.Dir{Path: dir}, []string{"la", "mi", "", "", "rə"}},
		{"stanzas", source.Dir{Path: dir, Segmentation: text.SegmentStanza}, []string{"la mi ", "rə "}},
		{"song", source.Dir{Path: dir, Segmentation: text.SegmentSong}, []string{"la mi rə "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := tc.d.Resolve(ctx, "p.txt")
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.Lines())
		})
	}
}

func TestDir_ResolveStressedOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.txt", "la'mi.'rə\nbo\n'ʃa'ti")

	d := source.Dir{Path: dir, StressedOnly: true, Vowels: phonetic.ThreeWay().Symbols()}
	u, err := d.Resolve(context.Background(), "p.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"iə", "ai"}, u.Lines())
}

func TestDir_ResolveStressedStanzas(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "p.txt", "'la\n'mi\n\n'rə\n'lo\n\nbo\n")
	vowels := phonetic.ThreeWay().Symbols()

	tests := []struct {
		name string
		seg  text.Segmentation
		want []string
	}{
		{"stanzas", text.SegmentStanza, []string{"ai", "əo"}},
		{"song", text.SegmentSong, []string{"aiəo"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := source.Dir{Path: dir, Segmentation: tc.seg, StressedOnly: true, Vowels: vowels}
			u, err := d.Resolve(context.Background(), "p.txt")
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.Lines())
		})
	}
}

func TestDir_ResolveErrors(t *testing.T) {
	d := source.Dir{Path: t.TempDir()}

	_, err := d.Resolve(context.Background(), "ghost.txt")
	assert.ErrorIs(t, err, corpus.ErrUnknownPoem)
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Resolve(ctx, "ghost.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDir_WithAggregator wires a directory corpus through the aggregator.
func TestDir_WithAggregator(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-IPAMusic.txt", "la\nmi\nrə\n")
	writeFile(t, dir, "a-IPAMusic.txt", "rə\n")

	names, err := source.Discover(dir, "")
	require.NoError(t, err)

	a, err := corpus.New(corpus.Settings{Classifier: phonetic.ThreeWay()}, source.Dir{Path: dir})
	require.NoError(t, err)
	tbl, err := a.Aggregate(context.Background(), names)
	require.NoError(t, err)

	assert.Equal(t, []string{"a-IPAMusic.txt", "b-IPAMusic.txt"}, tbl.Poems())
	require.Len(t, tbl.Rows, 4)
	assert.True(t, tbl.Rows[3].DistFromPrev.Valid)
}
