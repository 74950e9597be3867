// SPDX-License-Identifier: MIT

// Package trajectory turns a category-probability table into a path through
// the vowel space and annotates every step of that path.
//
// Algorithm outline:
//  1. Every row (open, close, neutral) becomes a space.Point (x, y, z).
//  2. Centroid and population standard deviation are computed once over
//     all points of the poem.
//  3. Each row is re-emitted as
//     [lineLabel, values..., distFromPrev, ZNorm]
//     where distFromPrev is the Euclidean distance to the preceding line's
//     point and ZNorm = distFromPrev / stddev.
//
// Missing values:
//
//	A Measure that is not Valid renders as NULL. The first line never has
//	a predecessor. Under LaggedPairs (the default, compatible with the
//	reference tables) the second line is NULL as well; AdjacentPairs fills
//	it in. ZNorm is NULL whenever distFromPrev is, and when the standard
//	deviation is zero.
//
// Errors:
//   - ErrMalformedRow — the table does not have exactly three categories,
//     or a row does not have exactly three values.
//   - space.ErrEmptyInput (wrapped) — the table has no rows.
package trajectory
