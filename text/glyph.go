// SPDX-License-Identifier: MIT

package text

import (
	"strconv"

	"github.com/katalvlaran/vowelspace/phonetic"
)

// GlyphHeader is the label of the first column of a glyph table.
const GlyphHeader = "Phoneme"

// GlyphRow holds the raw symbol counts of one line.
type GlyphRow struct {
	Label  string
	Counts []int // aligned with GlyphTable.Symbols
}

// GlyphTable is a per-line raw symbol count table.
type GlyphTable struct {
	Symbols []phonetic.Symbol
	Rows    []GlyphRow
}

// Header returns [Phoneme, <symbols...>].
func (g *GlyphTable) Header() []string {
	out := make([]string, 0, len(g.Symbols)+1)
	out = append(out, GlyphHeader)
	for _, s := range g.Symbols {
		out = append(out, s.String())
	}

	return out
}

// Records renders the table as string records, header first.
func (g *GlyphTable) Records() [][]string {
	out := make([][]string, 0, len(g.Rows)+1)
	out = append(out, g.Header())
	for _, r := range g.Rows {
		rec := make([]string, 0, len(r.Counts)+1)
		rec = append(rec, r.Label)
		for _, n := range r.Counts {
			rec = append(rec, strconv.Itoa(n))
		}
		out = append(out, rec)
	}

	return out
}

// GlyphTable counts every symbol per line, one column per entry of
// SymbolSet. Unlike the probability table, empty lines are kept as
// all-zero rows. An empty label falls back to DefaultModuleLabel.
func (u *Unit) GlyphTable(label string) *GlyphTable {
	if label == "" {
		label = DefaultModuleLabel
	}
	syms := u.SymbolSet()
	col := make(map[phonetic.Symbol]int, len(syms))
	for i, s := range syms {
		col[s] = i
	}

	g := &GlyphTable{Symbols: syms, Rows: make([]GlyphRow, 0, len(u.lines))}
	for i, line := range u.lines {
		counts := make([]int, len(syms))
		for _, r := range line {
			counts[col[phonetic.Symbol(r)]]++
		}
		g.Rows = append(g.Rows, GlyphRow{Label: label + " " + strconv.Itoa(i+1), Counts: counts})
	}

	return g
}
