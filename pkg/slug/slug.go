package slug

import (
	"strings"

	"github.com/dmitrymomot/slugmin/pkg/translit"
)

var (
	strictEncoder      = New()
	normalEncoder      = New(WithMode(Normal))
	normalEncoderCased = New(WithMode(Normal), PreserveCase(true))
	defaultTable       = translit.Unidecode()
)

// Slugify converts s to a strict slug: lowercase ASCII letters and digits
// separated by single hyphens, with no leading or trailing hyphen.
//
//	slug.Slugify("My Test String!!!1!1") // "my-test-string-1-1"
//	slug.Slugify("Æúű--cool?")           // "aeuu-cool"
func Slugify(s string) string {
	return strictEncoder.Encode(s)
}

// SlugifyNormal converts s to a lenient slug that also keeps spaces,
// underscores and dots. Letter case is kept when preserveCase is true.
//
//	slug.SlugifyNormal("You & Me", false)   // "you - me"
//	slug.SlugifyNormal("roman.  txt", true) // "roman. txt"
func SlugifyNormal(s string, preserveCase bool) string {
	if preserveCase {
		return normalEncoderCased.Encode(s)
	}
	return normalEncoder.Encode(s)
}

// Make converts s using an Encoder configured with opts.
func Make(s string, opts ...Option) string {
	return New(opts...).Encode(s)
}

// Encoder converts text to slugs with a fixed configuration.
// It is immutable after New and safe for concurrent use.
type Encoder struct {
	tr           translit.Transliterator
	replacer     *strings.Replacer
	stripChars   string
	reserved     map[string]struct{}
	maxLength    int
	minLength    int
	suffixLength int
	mode         Mode
	preserveCase bool
}

// New creates an Encoder. Without options it behaves like Slugify.
func New(opts ...Option) *Encoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	e := &Encoder{
		tr:           o.tr,
		mode:         o.mode,
		preserveCase: o.mode == Normal && o.preserveCase,
		replacer:     newReplacer(o.replace),
		stripChars:   o.stripChars,
		maxLength:    max(o.maxLength, 0),
		minLength:    max(o.minLength, 0),
		suffixLength: max(o.suffixLength, 0),
	}
	if e.tr == nil {
		e.tr = defaultTable
	}
	if len(o.reserved) > 0 {
		e.reserved = make(map[string]struct{}, len(o.reserved))
		for _, word := range o.reserved {
			e.reserved[strings.ToLower(word)] = struct{}{}
		}
	}
	return e
}

// Mode returns the encoder's mode.
func (e *Encoder) Mode() Mode {
	return e.mode
}

// PreservesCase reports whether uppercase ASCII letters are kept.
func (e *Encoder) PreservesCase() bool {
	return e.preserveCase
}

// Encode converts s to a slug. It never fails: characters without an ASCII
// approximation become separators.
func (e *Encoder) Encode(s string) string {
	out := encode(e.prepare(s), e.mode, e.preserveCase, e.tr)
	if e.maxLength == 0 && e.minLength == 0 && e.suffixLength == 0 && e.reserved == nil {
		return out
	}
	return e.finish(out)
}

// Valid reports whether s could have been produced by this encoder's
// classification rules.
func (e *Encoder) Valid(s string) bool {
	if e.mode == Normal {
		return IsNormalSlug(s, e.preserveCase)
	}
	return IsSlug(s)
}
