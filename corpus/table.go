// SPDX-License-Identifier: MIT

package corpus

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/trajectory"
)

// HeaderPoem labels the poem-identifier column.
const HeaderPoem = "poem"

// ErrMalformedTable indicates records that do not form a corpus table.
var ErrMalformedTable = errors.New("corpus: malformed table")

// Row is one analyzed line tagged with its poem.
type Row struct {
	Poem         string
	Line         string
	Values       []float64
	DistFromPrev trajectory.Measure
	ZNorm        trajectory.Measure
}

// Table is the concatenated corpus dataset.
type Table struct {
	Categories []phonetic.Category
	Rows       []Row
	// Skipped lists poems dropped under the Skip policy, in input order.
	Skipped []*PoemError
}

// Header returns [poem, lineNumber, <categories...>, distFromPrev, ZNorm].
func (t *Table) Header() []string {
	out := make([]string, 0, len(t.Categories)+4)
	out = append(out, HeaderPoem, trajectory.HeaderLineNumber)
	for _, c := range t.Categories {
		out = append(out, string(c))
	}

	return append(out, trajectory.HeaderDistFromPrev, trajectory.HeaderZNorm)
}

// Poems returns the distinct poem identifiers of Rows in order.
func (t *Table) Poems() []string {
	var out []string
	for i, r := range t.Rows {
		if i == 0 || t.Rows[i-1].Poem != r.Poem {
			out = append(out, r.Poem)
		}
	}

	return out
}

// Records renders the table as string records: one header, then one record
// per row. Numbers use the shortest decimal that round-trips exactly;
// missing measures render as NULL.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header())
	for _, r := range t.Rows {
		rec := make([]string, 0, len(r.Values)+4)
		rec = append(rec, r.Poem, r.Line)
		for _, v := range r.Values {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rec = append(rec, r.DistFromPrev.String(), r.ZNorm.String())
		out = append(out, rec)
	}

	return out
}

// ParseTable is the inverse of Records.
//
// Errors:
//   - ErrMalformedTable (wrapped) if the header is missing or misshapen, a
//     record has the wrong width, or a cell is not a number (or NULL where a
//     measure is expected).
func ParseTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header", ErrMalformedTable)
	}
	h := records[0]
	if len(h) < 4 || h[0] != HeaderPoem || h[1] != trajectory.HeaderLineNumber ||
		h[len(h)-2] != trajectory.HeaderDistFromPrev || h[len(h)-1] != trajectory.HeaderZNorm {
		return nil, fmt.Errorf("%w: unexpected header %q", ErrMalformedTable, h)
	}

	t := &Table{}
	for _, c := range h[2 : len(h)-2] {
		t.Categories = append(t.Categories, phonetic.Category(c))
	}
	width := len(h)
	for n, rec := range records[1:] {
		if len(rec) != width {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrMalformedTable, n+1, len(rec), width)
		}
		r := Row{Poem: rec[0], Line: rec[1], Values: make([]float64, 0, width-4)}
		for _, cell := range rec[2 : width-2] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedTable, n+1, err)
			}
			r.Values = append(r.Values, v)
		}
		var err error
		if r.DistFromPrev, err = parseMeasure(rec[width-2]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedTable, n+1, err)
		}
		if r.ZNorm, err = parseMeasure(rec[width-1]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedTable, n+1, err)
		}
		t.Rows = append(t.Rows, r)
	}

	return t, nil
}

func parseMeasure(cell string) (trajectory.Measure, error) {
	if cell == trajectory.NullText {
		return trajectory.Null(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return trajectory.Measure{}, err
	}

	return trajectory.Some(v), nil
}
