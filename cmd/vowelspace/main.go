// SPDX-License-Identifier: MIT

// Command vowelspace analyzes a corpus of IPA-transcribed poems and writes
// one CSV with every line's position in open/close/neutral vowel space.
//
//	vowelspace -source texts/ -out statOutput/corpus-3DAnalysisByLine.csv
//
// Flags override the YAML file given with -config, which overrides the
// built-in defaults.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/vowelspace/config"
	"github.com/katalvlaran/vowelspace/corpus"
	"github.com/katalvlaran/vowelspace/metric"
	"github.com/katalvlaran/vowelspace/source"
	"github.com/katalvlaran/vowelspace/tablecsv"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vowelspace", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	configPath := fs.String("config", "", "path to YAML config file")
	sourceDir := fs.String("source", def.SourceDir, "directory of poem transcriptions")
	pattern := fs.String("pattern", def.Pattern, "file name glob selecting poems")
	out := fs.String("out", def.Output, "output CSV path")
	scheme := fs.String("scheme", def.Scheme, `vowel scheme: "three", "five" or a scheme YAML file`)
	unit := fs.String("unit", def.Unit, "analysis unit: line, stanza or song")
	stressed := fs.Bool("stressed-only", def.StressedOnly, "keep only stressed vowels")
	windowing := fs.String("windowing", def.Windowing, "distance windowing: lagged or adjacent")
	concurrency := fs.Int("concurrency", def.Concurrency, "poems analyzed in parallel")
	onError := fs.String("on-error", def.OnError, "failing poem policy: abort or skip")
	metricsFile := fs.String("metrics-file", def.MetricsFile, "write Prometheus metrics to this textfile")
	glyphsDir := fs.String("glyphs-dir", def.GlyphsDir, "also write per-poem symbol count tables here")
	logLevel := fs.String("log-level", def.LogLevel, "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", def.LogFormat, "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "vowelspace: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.SourceDir = *sourceDir
		case "pattern":
			cfg.Pattern = *pattern
		case "out":
			cfg.Output = *out
		case "scheme":
			cfg.Scheme = *scheme
		case "unit":
			cfg.Unit = *unit
		case "stressed-only":
			cfg.StressedOnly = *stressed
		case "windowing":
			cfg.Windowing = *windowing
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "on-error":
			cfg.OnError = *onError
		case "metrics-file":
			cfg.MetricsFile = *metricsFile
		case "glyphs-dir":
			cfg.GlyphsDir = *glyphsDir
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "vowelspace: %v\n", err)
		return 1
	}

	logger := cfg.Logger(stderr).With("run_id", uuid.New().String())
	if err := analyze(ctx, cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(stderr, "vowelspace: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%s successfully created.\n", cfg.Output)

	return 0
}

func analyze(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	start := time.Now()
	logger.Info("starting vowelspace",
		"version", Version,
		"source", cfg.SourceDir,
		"pattern", cfg.Pattern,
		"scheme", cfg.Scheme,
		"unit", cfg.Unit,
		"windowing", cfg.Windowing,
		"concurrency", cfg.Concurrency,
	)

	cl, err := cfg.Classifier()
	if err != nil {
		return err
	}
	names, err := source.Discover(cfg.SourceDir, cfg.Pattern)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logger.Warn("no poems matched", "source", cfg.SourceDir, "pattern", cfg.Pattern)
	}

	rec := metric.NewRecorder()
	agg, err := corpus.New(cfg.Settings(cl), cfg.Resolver(cl),
		corpus.WithLogger(logger),
		corpus.WithMetrics(rec),
		corpus.WithConcurrency(cfg.Concurrency),
	)
	if err != nil {
		return err
	}
	tbl, err := agg.Aggregate(ctx, names)
	if err != nil {
		return err
	}
	if err := tablecsv.WriteFile(cfg.Output, tbl.Records()); err != nil {
		return err
	}

	if cfg.GlyphsDir != "" {
		if err := writeGlyphs(ctx, cfg, cfg.Resolver(cl), names, logger); err != nil {
			return err
		}
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}
	logger.Info("corpus written",
		"output", cfg.Output,
		"poems", len(names)-len(tbl.Skipped),
		"skipped", len(tbl.Skipped),
		"rows", len(tbl.Rows),
		"elapsed", time.Since(start),
	)

	return nil
}

// writeGlyphs writes one raw symbol count table per poem. Poems skipped by
// the analysis still get one: counting symbols cannot fail.
func writeGlyphs(ctx context.Context, cfg config.Config, r corpus.Resolver, names []string, logger *slog.Logger) error {
	label := cfg.Segmentation().Label()
	for _, name := range names {
		u, err := r.Resolve(ctx, name)
		if err != nil {
			return err
		}
		path := cfg.GlyphsPath(name)
		if err := tablecsv.WriteFile(path, u.GlyphTable(label).Records()); err != nil {
			return err
		}
		logger.Debug("glyph table written", "poem", name, "output", path)
	}

	return nil
}
