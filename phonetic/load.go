// SPDX-License-Identifier: MIT

package phonetic

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScheme indicates a malformed scheme document.
var ErrInvalidScheme = errors.New("phonetic: invalid scheme")

// schemeDoc is the YAML layout of a scheme file:
//
//	ignore: [".", ":", " "]
//	length_mark: ":"
//	suppress_diphthongs: true
//	categories:
//	  a: open
//	  e: close
//	  ə: neutral
//
// categories is kept as a raw node so its key order survives decoding.
type schemeDoc struct {
	Ignore             []string  `yaml:"ignore"`
	LengthMark         string    `yaml:"length_mark"`
	SuppressDiphthongs *bool     `yaml:"suppress_diphthongs"`
	Categories         yaml.Node `yaml:"categories"`
}

// LoadScheme decodes a YAML scheme from r.
//
// Errors:
//   - ErrInvalidScheme (wrapped) on YAML syntax errors, unknown keys,
//     multi-rune symbols, empty labels, or a missing/empty categories mapping.
func LoadScheme(r io.Reader) (*Classifier, error) {
	var doc schemeDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScheme)
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidScheme, err)
	}

	opts := make([]Option, 0, 4)

	ignore := make([]Symbol, 0, len(doc.Ignore))
	for _, raw := range doc.Ignore {
		s, err := singleSymbol(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: ignore: %v", ErrInvalidScheme, err)
		}
		ignore = append(ignore, s)
	}
	opts = append(opts, WithIgnore(ignore...))

	if doc.LengthMark != "" {
		s, err := singleSymbol(doc.LengthMark)
		if err != nil {
			return nil, fmt.Errorf("%w: length_mark: %v", ErrInvalidScheme, err)
		}
		opts = append(opts, WithLengthMark(s))
	}
	if doc.SuppressDiphthongs != nil {
		opts = append(opts, WithDiphthongSuppression(*doc.SuppressDiphthongs))
	}

	as, err := orderedAssignments(&doc.Categories)
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithCategories(as...))

	return NewClassifier(opts...), nil
}

// LoadSchemeFile opens path and decodes it with LoadScheme.
func LoadSchemeFile(path string) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scheme: %w", err)
	}
	defer f.Close()

	c, err := LoadScheme(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// orderedAssignments walks a mapping node pairwise, preserving key order.
func orderedAssignments(n *yaml.Node) ([]Assignment, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) == 0 {
		return nil, fmt.Errorf("%w: categories must be a non-empty mapping", ErrInvalidScheme)
	}

	as := make([]Assignment, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: categories entries must be scalar", ErrInvalidScheme, k.Line)
		}
		s, err := singleSymbol(k.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidScheme, k.Line, err)
		}
		if v.Value == "" {
			return nil, fmt.Errorf("%w: line %d: empty category for %q", ErrInvalidScheme, k.Line, k.Value)
		}
		as = append(as, Assignment{Symbol: s, Category: Category(v.Value)})
	}

	return as, nil
}

func singleSymbol(raw string) (Symbol, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("symbol %q must be exactly one character", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)

	return Symbol(r), nil
}
