package slug

import (
	"maps"

	"github.com/dmitrymomot/slugmin/pkg/translit"
)

// Option configures an Encoder.
type Option func(*options)

type options struct {
	tr           translit.Transliterator
	replace      map[string]string
	stripChars   string
	reserved     []string
	maxLength    int
	minLength    int
	suffixLength int
	mode         Mode
	preserveCase bool
}

func defaultOptions() *options {
	return &options{
		tr:   nil, // nil = translit.Unidecode()
		mode: Strict,
	}
}

// WithMode selects strict or normal classification rules.
// Default: Strict.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// PreserveCase keeps uppercase ASCII letters as they are.
// Only honored in Normal mode; strict slugs are always lowercase.
// Default: false.
func PreserveCase(preserve bool) Option {
	return func(o *options) {
		o.preserveCase = preserve
	}
}

// WithTransliterator replaces the table used for non-ASCII code points.
// Default: translit.Unidecode().
func WithTransliterator(t translit.Transliterator) Option {
	return func(o *options) {
		o.tr = t
	}
}

// MaxLength limits the slug to n bytes. Slugs are ASCII, so this is also the
// character count. Trailing separators left by the cut are removed.
// Zero or negative means unlimited.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// MinLength pads slugs shorter than n bytes with a hyphen and a random
// suffix of at least 6 characters, long enough to reach n.
// MaxLength wins when both are set and conflict.
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

// WithSuffix appends a hyphen and n random alphanumeric characters.
// With MaxLength the base is shortened so the whole slug still fits.
func WithSuffix(n int) Option {
	return func(o *options) {
		o.suffixLength = n
	}
}

// ReservedSlugs lists slugs that must not be produced as-is. A match
// (case-insensitive) gets a random suffix appended.
func ReservedSlugs(words ...string) Option {
	return func(o *options) {
		o.reserved = append(o.reserved, words...)
	}
}

// StripChars removes every occurrence of the given characters from the input
// before it is encoded.
//
//	slug.Make("Price: $100", slug.StripChars("$:")) // "price-100"
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars += chars
	}
}

// CustomReplace replaces substrings of the input before it is encoded.
// Longer keys are tried first, so {"&&": "and", "&": "n"} is unambiguous.
// Empty keys are ignored. Calling it again merges the maps.
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		if o.replace == nil {
			o.replace = make(map[string]string, len(replacements))
		}
		maps.Copy(o.replace, replacements)
	}
}
