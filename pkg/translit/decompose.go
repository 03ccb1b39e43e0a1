package translit

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type decomposeTable struct{}

// Decompose returns a table that strips diacritics via NFKD decomposition.
//
// Compatibility characters are folded as well, so 'ﬁ' maps to "fi" and '²'
// to "2". Code points whose decomposition is not pure ASCII have no mapping.
func Decompose() Transliterator {
	return decomposeTable{}
}

func (decomposeTable) Transliterate(r rune) (string, bool) {
	// transform.Chain keeps internal buffers, so a fresh chain per call keeps
	// the table safe for concurrent use.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, string(r))
	if err != nil || s == "" || !IsASCII(s) {
		return "", false
	}
	return s, true
}
