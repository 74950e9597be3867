// SPDX-License-Identifier: MIT

package text_test

import (
	"testing"

	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var poem = []string{"la mu", "rə", "", "", "bo", "", "ʃi"}

func TestStanzas(t *testing.T) {
	assert.Equal(t, []string{"la mu rə ", "bo ", "ʃi "}, text.Stanzas(poem))
	assert.Nil(t, text.Stanzas([]string{"", ""}))
}

func TestWholeSong(t *testing.T) {
	assert.Equal(t, []string{"la mu rə bo ʃi "}, text.WholeSong(poem))
	assert.Equal(t, []string{""}, text.WholeSong(nil))
}

func TestStressedVowelsOnly(t *testing.T) {
	vowels := phonetic.ThreeWay().Symbols()
	lines := []string{
		"'la.mu.'rə", // a, ə
		"la.mu",      // no stress mark: dropped
		"'tra.la'",   // a; trailing mark finds nothing
		"'str.'ba.i", // first vowel after the second mark only
	}

	assert.Equal(t, []string{"aə", "a", "a"}, text.StressedVowelsOnly(lines, vowels))
}

func TestSegment(t *testing.T) {
	assert.Equal(t, poem, text.Segment(poem, text.SegmentLine))
	assert.Equal(t, text.Stanzas(poem), text.Segment(poem, text.SegmentStanza))
	assert.Equal(t, text.WholeSong(poem), text.Segment(poem, text.SegmentSong))
}

func TestParseSegmentation(t *testing.T) {
	tests := []struct {
		in    string
		want  text.Segmentation
		label string
	}{
		{"", text.SegmentLine, "Line"},
		{"line", text.SegmentLine, "Line"},
		{"Stanza", text.SegmentStanza, "Stanza"},
		{"song", text.SegmentSong, "Song"},
	}
	for _, tt := range tests {
		got, err := text.ParseSegmentation(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.label, got.Label())
	}

	_, err := text.ParseSegmentation("verse")
	assert.Error(t, err)

	assert.Equal(t, "stanza", text.SegmentStanza.String())
	assert.Equal(t, "Segmentation(9)", text.Segmentation(9).String())
	assert.Equal(t, "Line", text.Segmentation(9).Label())
}
