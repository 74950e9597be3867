// SPDX-License-Identifier: MIT

// Package text wraps the lines of one poem and derives per-line symbol
// statistics from them.
//
// A Unit is an ordered, immutable sequence of lines. From it you can ask:
//   - SymbolSet / SymbolFrequency / SymbolCounts — whole-text symbol tallies;
//   - GlyphTable — raw per-line counts, one column per distinct symbol;
//   - CategoryProbabilityTable — per-line category-probability vectors
//     under a phonetic.Classifier.
//
// Category-probability vector (one per non-empty line):
//
//	value[c] = tally[c] / memberTotal
//
//	tally[c]     — symbols of category c, minus those suppressed by the
//	               diphthong rule;
//	memberTotal  — Σ tally over the categories in use.
//
// Empty lines produce no row. Row labels keep the original 1-based line
// position ("Line 1", "Line 3", ...), so skipping a line never renumbers the
// lines after it. A non-empty line without a single categorizable symbol
// fails with ErrDegenerateCategorization.
//
// Segment regroups raw lines before analysis: per stanza, whole song, or
// stressed vowels only.
package text
