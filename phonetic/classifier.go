// SPDX-License-Identifier: MIT

package phonetic

import "slices"

// Symbol is a single phonetic transcription character.
type Symbol rune

// String returns the symbol as a one-rune string.
func (s Symbol) String() string { return string(rune(s)) }

// Category is a label shared by a group of symbols, e.g. "open".
type Category string

// Assignment binds one symbol to one category.
type Assignment struct {
	Symbol   Symbol
	Category Category
}

// Classifier maps symbols to categories. It is immutable after NewClassifier
// and safe for concurrent use.
type Classifier struct {
	categoryOf map[Symbol]Category
	symbols    []Symbol   // mapped symbols, declaration order
	categories []Category // distinct categories, first-seen order
	ignore     map[Symbol]struct{}
	suppress   bool
	lengthMark Symbol
}

// NewClassifier builds a Classifier from opts applied over the defaults
// (no mapping, empty ignore set, suppression on, length mark ':').
func NewClassifier(opts ...Option) *Classifier {
	o := gatherOptions(opts...)

	c := &Classifier{
		categoryOf: make(map[Symbol]Category, len(o.assignments)),
		ignore:     make(map[Symbol]struct{}, len(o.ignore)),
		suppress:   o.suppress,
		lengthMark: o.lengthMark,
	}
	for _, s := range o.ignore {
		c.ignore[s] = struct{}{}
	}

	// Later assignments relabel a symbol but keep its first position.
	for _, a := range o.assignments {
		if _, seen := c.categoryOf[a.Symbol]; !seen {
			c.symbols = append(c.symbols, a.Symbol)
		}
		c.categoryOf[a.Symbol] = a.Category
	}

	seen := make(map[Category]struct{})
	for _, s := range c.symbols {
		cat := c.categoryOf[s]
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		c.categories = append(c.categories, cat)
	}

	return c
}

// CategoriesInUse returns the distinct categories of the mapping in
// first-seen order. The returned slice is a copy.
func (c *Classifier) CategoriesInUse() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)

	return out
}

// Symbols returns the mapped symbols in declaration order.
func (c *Classifier) Symbols() []Symbol {
	out := make([]Symbol, len(c.symbols))
	copy(out, c.symbols)

	return out
}

// Assignments returns the mapping as ordered pairs.
func (c *Classifier) Assignments() []Assignment {
	out := make([]Assignment, len(c.symbols))
	for i, s := range c.symbols {
		out[i] = Assignment{Symbol: s, Category: c.categoryOf[s]}
	}

	return out
}

// CategoryOf reports the category of s, if any.
func (c *Classifier) CategoryOf(s Symbol) (Category, bool) {
	cat, ok := c.categoryOf[s]

	return cat, ok
}

// InUse reports whether cat is one of CategoriesInUse.
func (c *Classifier) InUse(cat Category) bool {
	for _, k := range c.categories {
		if k == cat {
			return true
		}
	}

	return false
}

// Ignored reports whether s is excluded from phoneme totals.
func (c *Classifier) Ignored(s Symbol) bool {
	_, ok := c.ignore[s]

	return ok
}

// IgnoreSet returns the ignored symbols in ascending code-point order.
func (c *Classifier) IgnoreSet() []Symbol {
	out := make([]Symbol, 0, len(c.ignore))
	for s := range c.ignore {
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}

// SuppressesDiphthongs reports whether the diphthong-suppression rule is on.
func (c *Classifier) SuppressesDiphthongs() bool { return c.suppress }

// LengthMark returns the symbol that triggers diphthong suppression.
func (c *Classifier) LengthMark() Symbol { return c.lengthMark }

// Suppressed reports whether the category tally of line[i] is skipped.
// The lookback position is i-1; at i == 0 there is nothing to look back at
// and the symbol is never suppressed.
func (c *Classifier) Suppressed(line []Symbol, i int) bool {
	if !c.suppress || i < 1 || i > len(line)-1 {
		return false
	}

	return line[i-1] == c.lengthMark
}
