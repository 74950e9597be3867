// SPDX-License-Identifier: MIT

// Package source finds poem transcriptions on disk and reads them as lines.
//
// A corpus is a flat directory of UTF-8 text files, one poem per file, one
// transcribed line per text line. Dir adapts such a directory to
// corpus.Resolver.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/vowelspace/corpus"
	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/text"
)

// DefaultPattern selects the music-aligned IPA transcriptions.
const DefaultPattern = "*IPAMusic.txt"

const bom = "\uFEFF"

// maxLine bounds a single transcription line.
const maxLine = 1 << 20

// ErrNotDirectory indicates a corpus path that exists but is not a directory.
var ErrNotDirectory = errors.New("source: not a directory")

// Discover returns the names (not full paths) of the regular files in dir
// whose name matches pattern, sorted lexically. An empty pattern means
// DefaultPattern.
//
// Errors:
//   - ErrNotDirectory (wrapped) if dir is not a directory.
//   - filepath.ErrBadPattern if pattern is malformed.
//   - the underlying fs error if dir cannot be read.
func Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("source: pattern %q: %w", pattern, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir) // sorted by name
	if err != nil {
		return nil, fmt.Errorf("source: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

// ReadLines reads dir/name as UTF-8 lines. Line terminators (\n or \r\n) are
// stripped and a leading byte-order mark is dropped; every other character,
// blank lines included, is kept.
func ReadLines(dir, name string) ([]string, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	lines, err := scanLines(f)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", name, err)
	}

	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, bom)
		}
		lines = append(lines, line)
	}

	return lines, sc.Err()
}

// Dir serves poems from a directory. The zero Segmentation analyzes every
// line on its own.
type Dir struct {
	// Path is the corpus directory.
	Path string
	// Segmentation regroups the lines before analysis.
	Segmentation text.Segmentation
	// StressedOnly reduces every segment to its stressed vowels. Segments
	// without one are dropped.
	StressedOnly bool
	// Vowels recognized after a stress mark; required when StressedOnly.
	Vowels []phonetic.Symbol
}

var _ corpus.Resolver = Dir{}

// Resolve reads the poem named id.
//
// Errors:
//   - corpus.ErrUnknownPoem (wrapped together with fs.ErrNotExist) when the
//     file does not exist.
//   - ctx.Err() if ctx is already done.
func (d Dir) Resolve(ctx context.Context, id string) (*text.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := ReadLines(d.Path, id)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", corpus.ErrUnknownPoem, err)
	}
	if err != nil {
		return nil, err
	}

	// Blank lines separate stanzas, so segment before filtering.
	lines = text.Segment(lines, d.Segmentation)
	if d.StressedOnly {
		lines = text.StressedVowelsOnly(lines, d.Vowels)
	}

	return text.NewUnit(lines), nil
}
