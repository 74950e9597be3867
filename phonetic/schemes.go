// SPDX-License-Identifier: MIT

package phonetic

// Category labels used by the built-in schemes.
const (
	Open     Category = "open"
	Close    Category = "close"
	Neutral  Category = "neutral"
	OpenMid  Category = "openMid"
	CloseMid Category = "closeMid"
)

// Built-in scheme names, as accepted by Scheme.
const (
	SchemeThreeWay = "three"
	SchemeFiveWay  = "five"
)

// ReferenceIgnore is the ignore set of the reference configuration:
// syllable dot, length mark and space.
var ReferenceIgnore = []Symbol{'.', ':', ' '}

// threeWay is the open/close/neutral mapping, in declaration order.
var threeWay = []Assignment{
	{'a', Open},
	{'e', Close},
	{'ɛ', Open},
	{'ə', Neutral},
	{'i', Close},
	{'I', Close},
	{'o', Close},
	{'ɔ', Open},
	{'ø', Close},
	{'œ', Open},
	{'y', Close},
	{'u', Close},
	{'ʊ', Close},
	{'Y', Close},
}

// fiveWay splits the mid vowels out of open and close.
var fiveWay = []Assignment{
	{'a', Open},
	{'e', CloseMid},
	{'ɛ', OpenMid},
	{'ə', Neutral},
	{'i', Close},
	{'I', Close},
	{'o', CloseMid},
	{'ɔ', OpenMid},
	{'ø', CloseMid},
	{'œ', OpenMid},
	{'y', Close},
	{'u', Close},
	{'ʊ', Close},
	{'Y', Close},
}

// ThreeWay returns the reference open/close/neutral classifier with the
// reference ignore set. Extra opts are applied last.
// CategoriesInUse: [open close neutral].
func ThreeWay(opts ...Option) *Classifier {
	base := []Option{WithIgnore(ReferenceIgnore...), WithCategories(threeWay...)}

	return NewClassifier(append(base, opts...)...)
}

// FiveWay returns the five-way mid-split classifier with the reference
// ignore set. Its categories cannot feed the three-dimensional trajectory
// analysis; it is meant for probability tables only.
// CategoriesInUse: [open closeMid openMid neutral close].
func FiveWay(opts ...Option) *Classifier {
	base := []Option{WithIgnore(ReferenceIgnore...), WithCategories(fiveWay...)}

	return NewClassifier(append(base, opts...)...)
}

// Scheme returns a built-in classifier by name.
func Scheme(name string, opts ...Option) (*Classifier, bool) {
	switch name {
	case SchemeThreeWay:
		return ThreeWay(opts...), true
	case SchemeFiveWay:
		return FiveWay(opts...), true
	default:
		return nil, false
	}
}
