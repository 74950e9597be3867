// SPDX-License-Identifier: MIT

package text

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vowelspace/phonetic"
)

// StressMark opens a stressed syllable in the transcription.
const StressMark = '\''

// Segmentation selects the analysis module of a poem.
type Segmentation int

const (
	// SegmentLine analyzes every text line on its own.
	SegmentLine Segmentation = iota
	// SegmentStanza joins the lines of each blank-line separated stanza.
	SegmentStanza
	// SegmentSong joins every non-empty line into one.
	SegmentSong
)

var segmentationNames = [...]string{"line", "stanza", "song"}

var segmentationLabels = [...]string{"Line", "Stanza", "Song"}

// String returns the configuration name ("line", "stanza", "song").
func (s Segmentation) String() string {
	if s < 0 || int(s) >= len(segmentationNames) {
		return fmt.Sprintf("Segmentation(%d)", int(s))
	}

	return segmentationNames[s]
}

// Label returns the row-label prefix used for this module ("Line", ...).
func (s Segmentation) Label() string {
	if s < 0 || int(s) >= len(segmentationLabels) {
		return DefaultModuleLabel
	}

	return segmentationLabels[s]
}

// ParseSegmentation parses a configuration name; "" means SegmentLine.
func ParseSegmentation(name string) (Segmentation, error) {
	if name == "" {
		return SegmentLine, nil
	}
	for i, n := range segmentationNames {
		if strings.EqualFold(n, name) {
			return Segmentation(i), nil
		}
	}

	return SegmentLine, fmt.Errorf("text: unknown segmentation %q", name)
}

// Segment regroups lines according to s. Unknown values behave as SegmentLine.
func Segment(lines []string, s Segmentation) []string {
	switch s {
	case SegmentStanza:
		return Stanzas(lines)
	case SegmentSong:
		return WholeSong(lines)
	default:
		out := make([]string, len(lines))
		copy(out, lines)

		return out
	}
}

// Stanzas joins each run of non-empty lines into one line, every source
// line followed by a single space. Blank lines separate stanzas; runs of
// blank lines collapse, so no empty stanza is produced.
func Stanzas(lines []string) []string {
	var (
		out []string
		b   strings.Builder
	)
	for _, line := range lines {
		if line == "" {
			if b.Len() > 0 {
				out = append(out, b.String())
				b.Reset()
			}
			continue
		}
		b.WriteString(line)
		b.WriteByte(' ')
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}

	return out
}

// WholeSong joins every non-empty line into a single line, each followed by
// a space. A poem without text yields one empty line.
func WholeSong(lines []string) []string {
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte(' ')
	}

	return []string{b.String()}
}

// StressedVowelsOnly keeps, for every line, the first vowel following each
// stress mark. Lines left without a stressed vowel are dropped.
func StressedVowelsOnly(lines []string, vowels []phonetic.Symbol) []string {
	isVowel := make(map[rune]struct{}, len(vowels))
	for _, v := range vowels {
		isVowel[rune(v)] = struct{}{}
	}

	var out []string
	for _, line := range lines {
		var b strings.Builder
		stressed := false
		for _, r := range line {
			if r == StressMark {
				stressed = true
			}
			if _, ok := isVowel[r]; ok && stressed {
				b.WriteRune(r)
				stressed = false
			}
		}
		if b.Len() > 0 {
			out = append(out, b.String())
		}
	}

	return out
}
