// SPDX-License-Identifier: MIT

package space

import (
	"errors"
	"fmt"
	"math"
)

// Dim is the dimensionality of the vowel space.
const Dim = 3

var (
	// ErrEmptyInput indicates that statistics were requested over zero points.
	ErrEmptyInput = errors.New("space: input must contain at least one point")

	// ErrDimension indicates that a vector does not carry exactly Dim values.
	ErrDimension = errors.New("space: vector must have exactly 3 coordinates")
)

// Point is a position in the three-dimensional vowel space.
// Points are plain values: copying a Point never aliases its source.
type Point struct {
	X, Y, Z float64
}

// PointFromVector copies the three values of v into a new Point.
// Returns ErrDimension (wrapped with the observed width) if len(v) != Dim.
func PointFromVector(v []float64) (Point, error) {
	if len(v) != Dim {
		return Point{}, fmt.Errorf("%w: got %d", ErrDimension, len(v))
	}

	return Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Coords returns the coordinates as an array in x, y, z order.
func (p Point) Coords() [Dim]float64 {
	return [Dim]float64{p.X, p.Y, p.Z}
}

// String renders the point as "(x, y, z)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Distance returns the Euclidean distance between p and q.
// The result is NaN only if a coordinate of p or q is NaN.
func Distance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Centroid returns the coordinate-wise arithmetic mean of points.
//
// Errors:
//   - ErrEmptyInput if points is empty.
//
// Complexity: O(n) time, O(1) memory.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrEmptyInput
	}

	var sx, sy, sz float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
		sz += p.Z
	}
	n := float64(len(points))

	return Point{X: sx / n, Y: sy / n, Z: sz / n}, nil
}

// PopulationStdDev returns √(Σ d(pᵢ, c)² / n), where c is the centroid of
// points and n = len(points).
//
// Errors:
//   - ErrEmptyInput if points is empty.
//
// Complexity: O(n) time (two passes), O(1) memory.
func PopulationStdDev(points []Point) (float64, error) {
	c, err := Centroid(points)
	if err != nil {
		return 0, err
	}

	return stdDevAround(points, c), nil
}

// Spread computes the centroid and the population standard deviation in one
// call, sharing the centroid pass.
//
// Errors:
//   - ErrEmptyInput if points is empty.
func Spread(points []Point) (Point, float64, error) {
	c, err := Centroid(points)
	if err != nil {
		return Point{}, 0, err
	}

	return c, stdDevAround(points, c), nil
}

// stdDevAround assumes len(points) > 0.
func stdDevAround(points []Point, c Point) float64 {
	var sum, d float64
	for _, p := range points {
		d = Distance(p, c)
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(points)))
}
