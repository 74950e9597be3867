// SPDX-License-Identifier: MIT

package trajectory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/space"
)

// Output header labels.
const (
	HeaderLineNumber   = "lineNumber"
	HeaderDistFromPrev = "distFromPrev"
	HeaderZNorm        = "ZNorm"

	// NullText is how an invalid Measure renders.
	NullText = "NULL"
)

// Windowing selects which rows receive a distance-from-previous value.
//
//   - LaggedPairs   — rows 1 and 2 are NULL, rows k ≥ 3 get d(pₖ, pₖ₋₁).
//     Matches the reference output tables.
//   - AdjacentPairs — only row 1 is NULL, rows k ≥ 2 get d(pₖ, pₖ₋₁).
type Windowing int

const (
	// LaggedPairs leaves the first two rows without a distance.
	LaggedPairs Windowing = iota

	// AdjacentPairs leaves only the first row without a distance.
	AdjacentPairs
)

var windowingNames = [...]string{"lagged", "adjacent"}

// String returns the configuration name ("lagged", "adjacent").
func (w Windowing) String() string {
	if w < 0 || int(w) >= len(windowingNames) {
		return fmt.Sprintf("Windowing(%d)", int(w))
	}

	return windowingNames[w]
}

// ParseWindowing parses a configuration name; "" means LaggedPairs.
func ParseWindowing(name string) (Windowing, error) {
	if name == "" {
		return LaggedPairs, nil
	}
	for i, n := range windowingNames {
		if strings.EqualFold(n, name) {
			return Windowing(i), nil
		}
	}

	return LaggedPairs, fmt.Errorf("trajectory: unknown windowing %q", name)
}

// firstMeasured is the 0-based index of the first row that gets a distance.
func (w Windowing) firstMeasured() int {
	if w == AdjacentPairs {
		return 1
	}

	return 2
}

// Measure is a float that may be missing (NULL).
type Measure struct {
	Value float64
	Valid bool
}

// Some wraps v as a valid Measure.
func Some(v float64) Measure { return Measure{Value: v, Valid: true} }

// Null returns the missing Measure.
func Null() Measure { return Measure{} }

// String renders NULL or the shortest decimal that round-trips Value.
func (m Measure) String() string {
	if !m.Valid {
		return NullText
	}

	return strconv.FormatFloat(m.Value, 'g', -1, 64)
}

// Stats are the trajectory statistics of one poem.
type Stats struct {
	Centroid space.Point
	StdDev   float64
	N        int // number of points
}

// Row is one annotated line of the trajectory.
type Row struct {
	Label        string
	Index        int       // 1-based line position in the source unit
	Values       []float64 // the line's probability vector, copied
	Point        space.Point
	DistFromPrev Measure
	ZNorm        Measure
}

// Analysis is the annotated trajectory of one poem.
type Analysis struct {
	Categories []phonetic.Category
	Stats      Stats
	Rows       []Row
}

// Header returns [lineNumber, <categories...>, distFromPrev, ZNorm].
func (a *Analysis) Header() []string {
	out := make([]string, 0, len(a.Categories)+3)
	out = append(out, HeaderLineNumber)
	for _, c := range a.Categories {
		out = append(out, string(c))
	}

	return append(out, HeaderDistFromPrev, HeaderZNorm)
}
