// SPDX-License-Identifier: MIT

package trajectory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vowelspace/space"
	"github.com/katalvlaran/vowelspace/text"
)

var (
	// ErrMalformedRow indicates a table or row width other than three.
	ErrMalformedRow = errors.New("trajectory: rows must have exactly 3 values")

	// ErrNilTable indicates a nil probability table.
	ErrNilTable = errors.New("trajectory: table is nil")
)

// Option configures Analyze.
type Option func(*options)

type options struct {
	windowing Windowing
}

// WithWindowing selects the distance windowing (default LaggedPairs).
func WithWindowing(w Windowing) Option {
	return func(o *options) {
		o.windowing = w
	}
}

// Analyze builds the annotated trajectory of t.
//
// Implementation:
//   - Stage 1 (Validate): t has three categories; every row three values.
//   - Stage 2 (Points): copy each row into a space.Point.
//   - Stage 3 (Stats): centroid and population stddev, once per table.
//   - Stage 4 (Annotate): distance to the previous point from the first
//     measured row on (see Windowing), z-normalized by the stddev.
//
// Errors:
//   - ErrNilTable, ErrMalformedRow, or wrapped space.ErrEmptyInput.
//
// Complexity: O(n) time and memory for n rows.
func Analyze(t *text.ProbabilityTable, opts ...Option) (*Analysis, error) {
	o := options{windowing: LaggedPairs}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if t == nil {
		return nil, ErrNilTable
	}
	if t.Width() != space.Dim {
		return nil, fmt.Errorf("%w: table has %d categories", ErrMalformedRow, t.Width())
	}

	points := make([]space.Point, len(t.Rows))
	for i, r := range t.Rows {
		p, err := space.PointFromVector(r.Values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", r.Label, ErrMalformedRow, err)
		}
		points[i] = p
	}

	centroid, sd, err := space.Spread(points)
	if err != nil {
		return nil, fmt.Errorf("trajectory: %w", err)
	}

	a := &Analysis{
		Categories: append(t.Categories[:0:0], t.Categories...),
		Stats:      Stats{Centroid: centroid, StdDev: sd, N: len(points)},
		Rows:       make([]Row, len(t.Rows)),
	}
	first := o.windowing.firstMeasured()
	for i, r := range t.Rows {
		row := Row{
			Label:  r.Label,
			Index:  r.Index,
			Values: append([]float64(nil), r.Values...),
			Point:  points[i],
		}
		if i >= first {
			d := space.Distance(points[i], points[i-1])
			row.DistFromPrev = Some(d)
			if sd != 0 {
				row.ZNorm = Some(d / sd)
			}
		}
		a.Rows[i] = row
	}

	return a, nil
}
