// SPDX-License-Identifier: MIT

package text

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/vowelspace/phonetic"
)

var (
	// ErrUnknownSymbol indicates a frequency request for a symbol that never
	// occurs in the unit.
	ErrUnknownSymbol = errors.New("text: symbol does not occur in text")

	// ErrDegenerateCategorization indicates a non-empty line without any
	// symbol whose category is in use, so its probability vector is undefined.
	ErrDegenerateCategorization = errors.New("text: line has no categorizable symbols")
)

// Unit is one poem's lines, as analyzed. It is safe for concurrent use.
type Unit struct {
	lines []string

	once    sync.Once
	symbols []phonetic.Symbol       // distinct, first-seen order
	counts  map[phonetic.Symbol]int // whole-text tally
}

// NewUnit copies lines into a new Unit.
func NewUnit(lines []string) *Unit {
	cp := make([]string, len(lines))
	copy(cp, lines)

	return &Unit{lines: cp}
}

// Len returns the number of lines, empty ones included.
func (u *Unit) Len() int { return len(u.lines) }

// Lines returns a copy of the lines.
func (u *Unit) Lines() []string {
	out := make([]string, len(u.lines))
	copy(out, u.lines)

	return out
}

// index tallies every symbol once, on first use.
func (u *Unit) index() {
	u.once.Do(func() {
		u.counts = make(map[phonetic.Symbol]int)
		for _, line := range u.lines {
			for _, r := range line {
				s := phonetic.Symbol(r)
				if _, seen := u.counts[s]; !seen {
					u.symbols = append(u.symbols, s)
				}
				u.counts[s]++
			}
		}
	})
}

// SymbolSet returns the distinct symbols across all lines in first-seen
// order. The returned slice is a copy.
func (u *Unit) SymbolSet() []phonetic.Symbol {
	u.index()
	out := make([]phonetic.Symbol, len(u.symbols))
	copy(out, u.symbols)

	return out
}

// SymbolFrequency returns how often s occurs across all lines.
//
// Errors:
//   - ErrUnknownSymbol (wrapped with the symbol) if s never occurs.
func (u *Unit) SymbolFrequency(s phonetic.Symbol) (int, error) {
	u.index()
	n, ok := u.counts[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, rune(s))
	}

	return n, nil
}

// SymbolCounts returns a copy of the whole-text symbol tally.
func (u *Unit) SymbolCounts() map[phonetic.Symbol]int {
	u.index()
	out := make(map[phonetic.Symbol]int, len(u.counts))
	for s, n := range u.counts {
		out[s] = n
	}

	return out
}

// toSymbols splits a line into symbols.
func toSymbols(line string) []phonetic.Symbol {
	out := make([]phonetic.Symbol, 0, len(line))
	for _, r := range line {
		out = append(out, phonetic.Symbol(r))
	}

	return out
}
