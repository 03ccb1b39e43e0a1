package translit

import "github.com/rainycape/unidecode"

type unidecodeTable struct{}

// Unidecode returns the default table backed by github.com/rainycape/unidecode.
//
// The underlying table stores unmapped code points as empty strings, so an
// empty result is reported as no mapping rather than an empty one.
func Unidecode() Transliterator {
	return unidecodeTable{}
}

func (unidecodeTable) Transliterate(r rune) (string, bool) {
	s := unidecode.Unidecode(string(r))
	if s == "" {
		return "", false
	}
	return s, true
}
