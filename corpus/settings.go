// SPDX-License-Identifier: MIT

package corpus

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/vowelspace/metric"
	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/text"
	"github.com/katalvlaran/vowelspace/trajectory"
)

// FailurePolicy decides what a failing poem does to the run.
type FailurePolicy int

const (
	// Abort stops the run at the first failing poem.
	Abort FailurePolicy = iota
	// Skip drops the failing poem and continues.
	Skip
)

var policyNames = [...]string{"abort", "skip"}

// String returns the configuration name ("abort", "skip").
func (p FailurePolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}

	return policyNames[p]
}

// ParseFailurePolicy parses a configuration name; "" means Abort.
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	if name == "" {
		return Abort, nil
	}
	for i, n := range policyNames {
		if strings.EqualFold(n, name) {
			return FailurePolicy(i), nil
		}
	}

	return Abort, fmt.Errorf("corpus: unknown failure policy %q", name)
}

// Settings is the immutable analysis configuration of one run.
type Settings struct {
	// Classifier must define exactly three categories.
	Classifier *phonetic.Classifier
	// ModuleLabel prefixes row labels; empty means text.DefaultModuleLabel.
	ModuleLabel string
	// Windowing selects which rows get a distance from the previous line.
	Windowing trajectory.Windowing
	// OnError is the failure policy.
	OnError FailurePolicy
}

// DefaultConcurrency analyzes poems one at a time.
const DefaultConcurrency = 1

const panicConcurrency = "corpus: WithConcurrency: n must be >= 1"

// Option configures an Aggregator.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	metrics     *metric.Recorder
	concurrency int
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics attaches a metric recorder (default: none).
func WithMetrics(r *metric.Recorder) Option {
	return func(o *options) {
		o.metrics = r
	}
}

// WithConcurrency bounds how many poems are analyzed at once.
// Panics if n < 1 (programmer error).
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrency)
	}

	return func(o *options) {
		o.concurrency = n
	}
}

func (s Settings) moduleLabel() string {
	if s.ModuleLabel == "" {
		return text.DefaultModuleLabel
	}

	return s.ModuleLabel
}
