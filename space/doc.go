// SPDX-License-Identifier: MIT

// Package space provides the geometric primitives of the vowel space:
// points in three dimensions, Euclidean distance, centroid and the
// population standard deviation of a point cloud around its centroid.
//
// 🚀 What is the vowel space?
//
//	Every analyzed line of a poem is reduced to a category-probability
//	vector (open, close, neutral). Read positionally, that vector is a
//	point (x, y, z) inside the unit simplex; successive lines trace a
//	trajectory through it.
//
// ✨ Key features:
//   - Distance: Euclidean distance, symmetric, zero on identical points
//   - Centroid: coordinate-wise arithmetic mean
//   - PopulationStdDev: √(Σ d(pᵢ, c)² / n), population (not sample) variance
//   - PointFromVector: copy-in constructor with a strict width check
//
// ⚙️ Usage:
//
//	pts := []space.Point{{X: 1}, {Y: 1}, {Z: 1}}
//	c, err := space.Centroid(pts)          // (⅓, ⅓, ⅓)
//	sd, err := space.PopulationStdDev(pts) // ≈ 0.8165
//	d := space.Distance(pts[0], pts[1])    // √2
//
// Errors:
//   - ErrEmptyInput — statistics requested over zero points.
//   - ErrDimension  — a vector does not carry exactly three coordinates.
//
// Complexity: every aggregate is O(n) time and O(1) extra memory.
package space
