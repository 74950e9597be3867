// SPDX-License-Identifier: MIT

package text

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/vowelspace/phonetic"
)

// DefaultModuleLabel prefixes row labels of line-level tables.
const DefaultModuleLabel = "Line"

// TableOption configures CategoryProbabilityTable.
type TableOption func(*tableOptions)

type tableOptions struct {
	moduleLabel string
}

// WithModuleLabel sets the row-label prefix ("Line", "Stanza", "Song", ...).
// An empty label keeps the default.
func WithModuleLabel(label string) TableOption {
	return func(o *tableOptions) {
		if label != "" {
			o.moduleLabel = label
		}
	}
}

// ProbabilityRow is the category-probability vector of one line.
type ProbabilityRow struct {
	// Label is "<module label> <Index>".
	Label string
	// Index is the 1-based position of the line in the unit.
	Index int
	// Values holds one probability per category, in table column order.
	Values []float64
	// PhonemeTotal counts the line's symbols outside the ignore set.
	PhonemeTotal int
	// MemberTotal counts the tallied symbols whose category is in use;
	// it is the denominator of Values.
	MemberTotal int
}

// ProbabilityTable is the per-line category-probability table of a unit.
type ProbabilityTable struct {
	// Categories are the column labels, in Classifier.CategoriesInUse order.
	Categories []phonetic.Category
	// Rows holds one entry per non-empty line, in line order.
	Rows []ProbabilityRow
}

// Header returns the category labels as strings.
func (t *ProbabilityTable) Header() []string {
	out := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		out[i] = string(c)
	}

	return out
}

// Width returns the number of category columns.
func (t *ProbabilityTable) Width() int { return len(t.Categories) }

// Len returns the number of data rows.
func (t *ProbabilityTable) Len() int { return len(t.Rows) }

// CategoryProbabilityTable computes one probability vector per non-empty line.
//
// Implementation:
//   - Stage 1: resolve the category columns once from c.CategoriesInUse().
//   - Stage 2: for each non-empty line, scan symbols left to right: count the
//     phoneme total (symbols not ignored) and tally categories, skipping
//     symbols suppressed by the diphthong rule.
//   - Stage 3: divide every category tally by the member total.
//
// Errors:
//   - ErrDegenerateCategorization (wrapped with the row label) when a
//     non-empty line has a zero member total.
//
// Complexity: O(total symbols + rows·categories).
func (u *Unit) CategoryProbabilityTable(c *phonetic.Classifier, opts ...TableOption) (*ProbabilityTable, error) {
	o := tableOptions{moduleLabel: DefaultModuleLabel}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cats := c.CategoriesInUse()
	col := make(map[phonetic.Category]int, len(cats))
	for i, cat := range cats {
		col[cat] = i
	}

	t := &ProbabilityTable{Categories: cats}
	tally := make([]int, len(cats))
	for i, line := range u.lines {
		if line == "" {
			continue
		}
		label := o.moduleLabel + " " + strconv.Itoa(i+1)

		for k := range tally {
			tally[k] = 0
		}
		phonemes, members := 0, 0
		syms := toSymbols(line)
		for j, s := range syms {
			if !c.Ignored(s) {
				phonemes++
			}
			cat, ok := c.CategoryOf(s)
			if !ok || c.Suppressed(syms, j) {
				continue
			}
			if k, inUse := col[cat]; inUse {
				tally[k]++
				members++
			}
		}
		if members == 0 {
			return nil, fmt.Errorf("%s: %w", label, ErrDegenerateCategorization)
		}

		values := make([]float64, len(cats))
		for k, n := range tally {
			values[k] = float64(n) / float64(members)
		}
		t.Rows = append(t.Rows, ProbabilityRow{
			Label:        label,
			Index:        i + 1,
			Values:       values,
			PhonemeTotal: phonemes,
			MemberTotal:  members,
		})
	}

	return t, nil
}
