// SPDX-License-Identifier: MIT

// Package phonetic classifies IPA symbols into vowel categories.
//
// A Classifier bundles three things:
//   - a partial mapping Symbol → Category (unmapped symbols have no category),
//   - an ignore set (punctuation, whitespace, the length mark) excluded from
//     phoneme totals,
//   - the diphthong-suppression rule: when enabled, a symbol that directly
//     follows the length mark ':' is not tallied, so the second element of a
//     long vowel or diphthong transcription does not count twice.
//
// Category order:
//
//	The categories in play are the distinct values of the mapping, in the
//	order each value is first seen while walking the symbols in declaration
//	order. That order is fixed at construction and is the column order of
//	every table built from the classifier.
//
// ⚙️ Usage:
//
//	c := phonetic.NewClassifier(
//	  phonetic.WithIgnore('.', ':', ' '),
//	  phonetic.WithCategory('a', "open"),
//	  phonetic.WithCategory('i', "close"),
//	  phonetic.WithCategory('ə', "neutral"),
//	)
//	c.CategoriesInUse() // [open close neutral]
//
// Built-in schemes ThreeWay and FiveWay reproduce the reference
// configurations; LoadScheme reads a YAML scheme whose key order defines the
// category order.
package phonetic
