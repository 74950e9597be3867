// SPDX-License-Identifier: MIT

// Package metric records per-run analysis metrics with Prometheus.
//
// A Recorder owns a private registry, so several runs (or tests) in one
// process never collide. All methods are safe on a nil *Recorder, which
// records nothing.
package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vowelspace"

// Recorder holds the analysis metrics of one run.
type Recorder struct {
	registry *prometheus.Registry

	PoemsAnalyzed    prometheus.Counter
	PoemsFailed      prometheus.Counter
	LinesAnalyzed    prometheus.Counter
	LinesSkipped     prometheus.Counter
	AnalysisDuration prometheus.Histogram
}

// NewRecorder creates a Recorder with every metric registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		PoemsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poems",
			Name:      "analyzed_total",
			Help:      "Total number of poems analyzed successfully",
		}),
		PoemsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poems",
			Name:      "failed_total",
			Help:      "Total number of poems whose analysis failed",
		}),
		LinesAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lines",
			Name:      "analyzed_total",
			Help:      "Total number of lines emitted as trajectory rows",
		}),
		LinesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lines",
			Name:      "skipped_total",
			Help:      "Total number of empty lines skipped",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "poem",
			Name:      "analysis_duration_seconds",
			Help:      "Per-poem analysis duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	r.registry.MustRegister(
		r.PoemsAnalyzed,
		r.PoemsFailed,
		r.LinesAnalyzed,
		r.LinesSkipped,
		r.AnalysisDuration,
	)

	return r
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObservePoem records one successfully analyzed poem.
func (r *Recorder) ObservePoem(lines, skipped int, d time.Duration) {
	if r == nil {
		return
	}
	r.PoemsAnalyzed.Inc()
	r.LinesAnalyzed.Add(float64(lines))
	r.LinesSkipped.Add(float64(skipped))
	r.AnalysisDuration.Observe(d.Seconds())
}

// PoemFailed records one failed poem.
func (r *Recorder) PoemFailed() {
	if r == nil {
		return
	}
	r.PoemsFailed.Inc()
}

// WriteTextfile writes the current values in the node-exporter textfile
// format. The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metric: write %s: %w", path, err)
	}

	return nil
}
