// SPDX-License-Identifier: MIT

// Package corpus runs the per-poem pipeline over a whole collection and
// concatenates the results into one table.
//
// For every poem identifier, in input order:
//
//	Resolver.Resolve(id) → *text.Unit
//	Unit.CategoryProbabilityTable(classifier) → *text.ProbabilityTable
//	trajectory.Analyze(table) → *trajectory.Analysis
//
// The combined Table has a single header
//
//	[poem, lineNumber, <categories...>, distFromPrev, ZNorm]
//
// followed by every poem's rows, each prefixed with its poem identifier,
// poem-major and line-minor. Trajectory statistics are computed per poem and
// never shared between poems.
//
// Concurrency:
//
//	WithConcurrency(n) lets up to n poems be analyzed at once. Results are
//	slotted by input position, so the output order never depends on n.
//
// Failures:
//
//	Under Abort (default) the first failing poem ends the run and no table
//	is returned. Under Skip the poem is logged, recorded in Table.Skipped,
//	and the run goes on. Errors carry the poem as *PoemError.
package corpus
