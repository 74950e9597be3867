// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the vowelspace CLI.
//
// A Config starts from Default(), is overlaid by an optional YAML file and
// the environment, then validated once. The typed accessors turn it into the
// values the analysis packages consume.
//
//	source_dir: texts/
//	pattern: "*IPAMusic.txt"
//	output: statOutput/corpus-3DAnalysisByLine.csv
//	scheme: three            # "three", "five" or a scheme YAML file
//	unit: line               # line | stanza | song
//	stressed_only: false
//	windowing: lagged        # lagged | adjacent
//	concurrency: 1
//	on_error: abort          # abort | skip
//	log_level: info          # debug | info | warn | error
//	log_format: text         # text | json
//	metrics_file: ""
//	glyphs_dir: ""           # per-poem raw symbol counts, when set
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vowelspace/corpus"
	"github.com/katalvlaran/vowelspace/phonetic"
	"github.com/katalvlaran/vowelspace/source"
	"github.com/katalvlaran/vowelspace/text"
	"github.com/katalvlaran/vowelspace/trajectory"
)

// EnvLogLevel overrides Config.LogLevel when set.
const EnvLogLevel = "VOWELSPACE_LOG_LEVEL"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	SourceDir    string `yaml:"source_dir"`
	Pattern      string `yaml:"pattern"`
	Output       string `yaml:"output"`
	Scheme       string `yaml:"scheme"`
	Unit         string `yaml:"unit"`
	StressedOnly bool   `yaml:"stressed_only"`
	Windowing    string `yaml:"windowing"`
	Concurrency  int    `yaml:"concurrency"`
	OnError      string `yaml:"on_error"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	MetricsFile  string `yaml:"metrics_file"`
	GlyphsDir    string `yaml:"glyphs_dir"`
}

// Default returns the reference run: every *IPAMusic.txt under texts/,
// line by line, three-way scheme, one CSV under statOutput/.
func Default() Config {
	return Config{
		SourceDir:   "texts/",
		Pattern:     source.DefaultPattern,
		Output:      filepath.Join("statOutput", "corpus-3DAnalysisByLine.csv"),
		Scheme:      phonetic.SchemeThreeWay,
		Unit:        text.SegmentLine.String(),
		Windowing:   trajectory.LaggedPairs.String(),
		Concurrency: corpus.DefaultConcurrency,
		OnError:     corpus.Abort.String(),
		LogLevel:    "info",
		LogFormat:   FormatText,
	}
}

// Load returns Default() overlaid by the YAML file at path (skipped when path
// is empty) and the environment, validated.
//
// Errors:
//   - the fs error if path cannot be read.
//   - ErrInvalidConfig (wrapped) for unknown keys, bad YAML or failed
//     validation.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := decode(bytes.NewReader(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.SourceDir == "" {
		errs = append(errs, errors.New("source_dir is empty"))
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		errs = append(errs, fmt.Errorf("pattern %q: %w", c.Pattern, err))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is empty"))
	}
	if c.Scheme == "" {
		errs = append(errs, errors.New("scheme is empty"))
	}
	if _, err := text.ParseSegmentation(c.Unit); err != nil {
		errs = append(errs, err)
	}
	if _, err := trajectory.ParseWindowing(c.Windowing); err != nil {
		errs = append(errs, err)
	}
	if _, err := corpus.ParseFailurePolicy(c.OnError); err != nil {
		errs = append(errs, err)
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be >= 1, got %d", c.Concurrency))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		errs = append(errs, fmt.Errorf("log_format %q: want %s or %s", c.LogFormat, FormatText, FormatJSON))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Classifier builds the configured scheme: a built-in name, or else a path
// to a scheme YAML file.
func (c Config) Classifier() (*phonetic.Classifier, error) {
	if cl, ok := phonetic.Scheme(c.Scheme); ok {
		return cl, nil
	}
	cl, err := phonetic.LoadSchemeFile(c.Scheme)
	if err != nil {
		return nil, fmt.Errorf("config: scheme %q: %w", c.Scheme, err)
	}

	return cl, nil
}

// GlyphsPath returns where the glyph table of poem is written, or "" when
// glyph tables are off: the poem name without its extension, suffixed
// "-glyphs.csv", under GlyphsDir.
func (c Config) GlyphsPath(poem string) string {
	if c.GlyphsDir == "" {
		return ""
	}

	return filepath.Join(c.GlyphsDir, strings.TrimSuffix(poem, filepath.Ext(poem))+"-glyphs.csv")
}

// Segmentation returns the parsed analysis unit.
func (c Config) Segmentation() text.Segmentation {
	s, _ := text.ParseSegmentation(c.Unit)

	return s
}

// Settings builds the aggregator settings around cl. c must be valid.
func (c Config) Settings(cl *phonetic.Classifier) corpus.Settings {
	w, _ := trajectory.ParseWindowing(c.Windowing)
	p, _ := corpus.ParseFailurePolicy(c.OnError)

	return corpus.Settings{
		Classifier:  cl,
		ModuleLabel: c.Segmentation().Label(),
		Windowing:   w,
		OnError:     p,
	}
}

// Resolver returns the directory resolver; cl supplies the vowels kept
// under stressed_only.
func (c Config) Resolver(cl *phonetic.Classifier) source.Dir {
	d := source.Dir{
		Path:         c.SourceDir,
		Segmentation: c.Segmentation(),
		StressedOnly: c.StressedOnly,
	}
	if c.StressedOnly {
		d.Vowels = cl.Symbols()
	}

	return d
}

// ParseLogLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Logger builds the run logger writing to w. c must be valid.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := ParseLogLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
