// SPDX-License-Identifier: MIT

package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vowelspace/metric"
	"github.com/katalvlaran/vowelspace/space"
	"github.com/katalvlaran/vowelspace/text"
	"github.com/katalvlaran/vowelspace/trajectory"
)

var (
	// ErrNilResolver indicates that no Resolver was supplied.
	ErrNilResolver = errors.New("corpus: resolver is nil")

	// ErrNilClassifier indicates Settings without a classifier.
	ErrNilClassifier = errors.New("corpus: classifier is nil")

	// ErrUnknownPoem indicates a poem identifier the resolver cannot find.
	ErrUnknownPoem = errors.New("corpus: unknown poem")
)

// PoemError ties an analysis failure to its poem.
type PoemError struct {
	Poem string
	Err  error
}

func (e *PoemError) Error() string { return fmt.Sprintf("poem %q: %v", e.Poem, e.Err) }

// Unwrap returns the underlying error.
func (e *PoemError) Unwrap() error { return e.Err }

// Resolver yields the text of a poem by identifier.
type Resolver interface {
	Resolve(ctx context.Context, id string) (*text.Unit, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, id string) (*text.Unit, error)

// Resolve calls f(ctx, id).
func (f ResolverFunc) Resolve(ctx context.Context, id string) (*text.Unit, error) {
	return f(ctx, id)
}

// MapResolver serves poems from memory.
type MapResolver map[string][]string

// Resolve returns the lines stored under id, or ErrUnknownPoem.
func (m MapResolver) Resolve(_ context.Context, id string) (*text.Unit, error) {
	lines, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPoem, id)
	}

	return text.NewUnit(lines), nil
}

// Aggregator analyzes poems and concatenates their trajectories.
type Aggregator struct {
	settings Settings
	resolver Resolver
	logger   *slog.Logger
	metrics  *metric.Recorder
	workers  int
}

// New validates s and returns an Aggregator reading poems through r.
//
// Errors:
//   - ErrNilResolver, ErrNilClassifier.
//   - trajectory.ErrMalformedRow (wrapped) if the classifier does not define
//     exactly three categories; checked here so no poem is read in vain.
func New(s Settings, r Resolver, opts ...Option) (*Aggregator, error) {
	if r == nil {
		return nil, ErrNilResolver
	}
	if s.Classifier == nil {
		return nil, ErrNilClassifier
	}
	if n := len(s.Classifier.CategoriesInUse()); n != space.Dim {
		return nil, fmt.Errorf("corpus: classifier defines %d categories: %w", n, trajectory.ErrMalformedRow)
	}

	o := options{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Aggregator{
		settings: s,
		resolver: r,
		logger:   o.logger,
		metrics:  o.metrics,
		workers:  o.concurrency,
	}, nil
}

// Settings returns the aggregator's configuration.
func (a *Aggregator) Settings() Settings { return a.settings }

// Analyze runs the pipeline for a single poem.
func (a *Aggregator) Analyze(ctx context.Context, id string) (*trajectory.Analysis, error) {
	start := time.Now()

	unit, err := a.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	tbl, err := unit.CategoryProbabilityTable(a.settings.Classifier, text.WithModuleLabel(a.settings.moduleLabel()))
	if err != nil {
		return nil, err
	}
	an, err := trajectory.Analyze(tbl, trajectory.WithWindowing(a.settings.Windowing))
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	a.metrics.ObservePoem(len(an.Rows), unit.Len()-tbl.Len(), elapsed)
	a.logger.Debug("poem analyzed",
		"poem", id,
		"rows", len(an.Rows),
		"skipped_lines", unit.Len()-tbl.Len(),
		"stddev", an.Stats.StdDev,
		"elapsed", elapsed,
	)

	return an, nil
}

// Aggregate analyzes ids and returns the combined table in input order.
//
// Errors:
//   - *PoemError wrapping the first failure under Abort.
//   - ctx.Err() if the context ends before all poems are analyzed.
func (a *Aggregator) Aggregate(ctx context.Context, ids []string) (*Table, error) {
	results := make([]*trajectory.Analysis, len(ids))
	failures := make([]*PoemError, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			an, err := a.Analyze(gctx, id)
			if err == nil {
				results[i] = an
				return nil
			}

			a.metrics.PoemFailed()
			perr := &PoemError{Poem: id, Err: err}
			if a.settings.OnError == Skip && gctx.Err() == nil {
				a.logger.Warn("poem skipped", "poem", id, "error", err)
				failures[i] = perr
				return nil
			}

			return perr
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := &Table{Categories: a.settings.Classifier.CategoriesInUse()}
	for i, id := range ids {
		if failures[i] != nil {
			t.Skipped = append(t.Skipped, failures[i])
			continue
		}
		for _, r := range results[i].Rows {
			t.Rows = append(t.Rows, Row{
				Poem:         id,
				Line:         r.Label,
				Values:       r.Values,
				DistFromPrev: r.DistFromPrev,
				ZNorm:        r.ZNorm,
			})
		}
	}
	a.logger.Info("corpus aggregated",
		"poems", len(ids),
		"skipped", len(t.Skipped),
		"rows", len(t.Rows),
	)

	return t, nil
}
