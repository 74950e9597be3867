// SPDX-License-Identifier: MIT

package phonetic

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSuppressDiphthongs enables the diphthong-suppression rule.
	DefaultSuppressDiphthongs = true

	// DefaultLengthMark is the IPA-ASCII length mark that triggers suppression.
	DefaultLengthMark Symbol = ':'
)

// ---------- Internal panic messages ----------

const (
	panicEmptyCategory = "phonetic: WithCategory: category label must be non-empty"
)

// Option configures a Classifier under construction.
type Option func(*options)

// options is the resolved configuration; fields stay unexported so that a
// Classifier can only be shaped through Option values.
type options struct {
	assignments []Assignment
	ignore      []Symbol
	suppress    bool
	lengthMark  Symbol
}

// WithIgnore adds symbols to the ignore set. May be repeated.
func WithIgnore(symbols ...Symbol) Option {
	return func(o *options) {
		o.ignore = append(o.ignore, symbols...)
	}
}

// WithCategory assigns category cat to symbol s.
// Panics if cat is empty (programmer error).
func WithCategory(s Symbol, cat Category) Option {
	if cat == "" {
		panic(panicEmptyCategory)
	}

	return func(o *options) {
		o.assignments = append(o.assignments, Assignment{Symbol: s, Category: cat})
	}
}

// WithCategories appends assignments in the given order.
// Panics if any category is empty (programmer error).
func WithCategories(as ...Assignment) Option {
	for _, a := range as {
		if a.Category == "" {
			panic(panicEmptyCategory)
		}
	}
	cp := make([]Assignment, len(as))
	copy(cp, as)

	return func(o *options) {
		o.assignments = append(o.assignments, cp...)
	}
}

// WithDiphthongSuppression turns the diphthong-suppression rule on or off.
func WithDiphthongSuppression(enabled bool) Option {
	return func(o *options) {
		o.suppress = enabled
	}
}

// WithLengthMark replaces the symbol that triggers diphthong suppression.
func WithLengthMark(s Symbol) Option {
	return func(o *options) {
		o.lengthMark = s
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		suppress:   DefaultSuppressDiphthongs,
		lengthMark: DefaultLengthMark,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
