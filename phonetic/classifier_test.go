// SPDX-License-Identifier: MIT

package phonetic_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbols(s string) []phonetic.Symbol {
	out := make([]phonetic.Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, phonetic.Symbol(r))
	}

	return out
}

// TestNewClassifier_Defaults checks the zero-option classifier.
func TestNewClassifier_Defaults(t *testing.T) {
	c := phonetic.NewClassifier()

	assert.Empty(t, c.CategoriesInUse())
	assert.Empty(t, c.IgnoreSet())
	assert.True(t, c.SuppressesDiphthongs(), "suppression defaults to on")
	assert.Equal(t, phonetic.Symbol(':'), c.LengthMark())

	_, ok := c.CategoryOf('a')
	assert.False(t, ok)
}

// TestCategoriesInUse_FirstSeenOrder pins the column order to declaration order.
func TestCategoriesInUse_FirstSeenOrder(t *testing.T) {
	c := phonetic.NewClassifier(
		phonetic.WithCategory('u', "close"),
		phonetic.WithCategory('a', "open"),
		phonetic.WithCategory('i', "close"),
		phonetic.WithCategory('ə', "neutral"),
	)

	assert.Equal(t, []phonetic.Category{"close", "open", "neutral"}, c.CategoriesInUse())
	assert.Equal(t, symbols("uaiə"), c.Symbols())

	// Repeated calls are stable and return copies.
	got := c.CategoriesInUse()
	got[0] = "mutated"
	assert.Equal(t, []phonetic.Category{"close", "open", "neutral"}, c.CategoriesInUse())
}

// TestNewClassifier_Relabel keeps a relabeled symbol's first position.
func TestNewClassifier_Relabel(t *testing.T) {
	c := phonetic.NewClassifier(
		phonetic.WithCategory('a', "open"),
		phonetic.WithCategory('e', "close"),
		phonetic.WithCategory('a', "neutral"),
	)

	cat, ok := c.CategoryOf('a')
	require.True(t, ok)
	assert.Equal(t, phonetic.Category("neutral"), cat)
	assert.Equal(t, []phonetic.Category{"neutral", "close"}, c.CategoriesInUse())
	assert.False(t, c.InUse("open"), "a label no symbol carries any more is not in use")
	assert.Equal(t, []phonetic.Assignment{{Symbol: 'a', Category: "neutral"}, {Symbol: 'e', Category: "close"}}, c.Assignments())
}

func TestWithCategory_PanicsOnEmptyLabel(t *testing.T) {
	assert.Panics(t, func() { phonetic.WithCategory('a', "") })
	assert.Panics(t, func() {
		phonetic.WithCategories(phonetic.Assignment{Symbol: 'a', Category: ""})
	})
}

func TestIgnored(t *testing.T) {
	c := phonetic.NewClassifier(phonetic.WithIgnore(' ', '.'), phonetic.WithIgnore(':'))

	assert.True(t, c.Ignored(' '))
	assert.True(t, c.Ignored(':'))
	assert.False(t, c.Ignored('a'))
	assert.Equal(t, symbols(" .:"), c.IgnoreSet(), "ignore set is reported in code-point order")
}

// TestSuppressed covers the one-symbol lookback and its edges.
func TestSuppressed(t *testing.T) {
	line := symbols("a:ei:")
	c := phonetic.NewClassifier()

	tests := []struct {
		i    int
		want bool
	}{
		{0, false}, // no lookback; never suppressed
		{1, false}, // ':' follows 'a'
		{2, true},  // 'e' follows ':'
		{3, false},
		{4, false},
		{5, false}, // out of range
		{-1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Suppressed(line, tt.i), "position %d", tt.i)
	}

	off := phonetic.NewClassifier(phonetic.WithDiphthongSuppression(false))
	assert.False(t, off.Suppressed(line, 2), "disabled rule never suppresses")

	custom := phonetic.NewClassifier(phonetic.WithLengthMark('ː'))
	assert.False(t, custom.Suppressed(line, 2))
	assert.True(t, custom.Suppressed(symbols("aːe"), 2))
}

// TestSuppressed_FirstSymbolAfterTrailingMark guards against wrap-around
// lookback: a line ending in the length mark does not suppress its first symbol.
func TestSuppressed_FirstSymbolAfterTrailingMark(t *testing.T) {
	c := phonetic.NewClassifier()
	assert.False(t, c.Suppressed(symbols("ea:"), 0))
}

func TestBuiltinSchemes(t *testing.T) {
	three := phonetic.ThreeWay()
	assert.Equal(t, []phonetic.Category{phonetic.Open, phonetic.Close, phonetic.Neutral}, three.CategoriesInUse())
	assert.Len(t, three.Symbols(), 14)
	for _, s := range phonetic.ReferenceIgnore {
		assert.True(t, three.Ignored(s))
	}
	cat, ok := three.CategoryOf('ɔ')
	require.True(t, ok)
	assert.Equal(t, phonetic.Open, cat)

	five := phonetic.FiveWay()
	assert.Equal(t,
		[]phonetic.Category{phonetic.Open, phonetic.CloseMid, phonetic.OpenMid, phonetic.Neutral, phonetic.Close},
		five.CategoriesInUse())

	c, ok := phonetic.Scheme(phonetic.SchemeThreeWay, phonetic.WithDiphthongSuppression(false))
	require.True(t, ok)
	assert.False(t, c.SuppressesDiphthongs(), "extra options apply after the scheme defaults")

	_, ok = phonetic.Scheme("seven")
	assert.False(t, ok)
}

func TestLoadScheme(t *testing.T) {
	doc := `
ignore: [".", ":", " "]
length_mark: "ː"
suppress_diphthongs: false
categories:
  ə: neutral
  a: open
  "y": close
  "I": close
  ɔ: open
`
	c, err := phonetic.LoadScheme(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []phonetic.Category{"neutral", "open", "close"}, c.CategoriesInUse())
	assert.Equal(t, symbols("əayIɔ"), c.Symbols())
	assert.Equal(t, phonetic.Symbol('ː'), c.LengthMark())
	assert.False(t, c.SuppressesDiphthongs())
	assert.True(t, c.Ignored('.'))
}

func TestLoadScheme_DefaultsWhenOmitted(t *testing.T) {
	c, err := phonetic.LoadScheme(strings.NewReader("categories:\n  a: open\n"))
	require.NoError(t, err)

	assert.True(t, c.SuppressesDiphthongs())
	assert.Equal(t, phonetic.DefaultLengthMark, c.LengthMark())
	assert.Empty(t, c.IgnoreSet())
}

func TestLoadScheme_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"syntax":          "categories: [",
		"no categories":   "ignore: [' ']\n",
		"list categories": "categories: [a, e]\n",
		"multi-rune key":  "categories:\n  ai: open\n",
		"empty label":     "categories:\n  a: ''\n",
		"bad ignore":      "ignore: ['..']\ncategories:\n  a: open\n",
		"bad length mark": "length_mark: '::'\ncategories:\n  a: open\n",
		"nested category": "categories:\n  a: {x: 1}\n",
		"misspelled key":  "suppress_diphtongs: false\ncategories:\n  a: open\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := phonetic.LoadScheme(strings.NewReader(doc))
			assert.ErrorIs(t, err, phonetic.ErrInvalidScheme)
		})
	}
}

func TestLoadSchemeFile_Missing(t *testing.T) {
	_, err := phonetic.LoadSchemeFile(t.TempDir() + "/nope.yaml")
	assert.Error(t, err)
}
