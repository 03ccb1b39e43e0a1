package translit

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Transliterator maps a single code point to an ASCII byte sequence.
//
// The boolean reports whether a mapping exists. A mapping to the empty string
// is valid and means the code point produces no output.
type Transliterator interface {
	Transliterate(r rune) (string, bool)
}

// Func adapts an ordinary function to the Transliterator interface.
type Func func(r rune) (string, bool)

// Transliterate calls f(r).
func (f Func) Transliterate(r rune) (string, bool) {
	return f(r)
}

// Table is a fixed rune-to-string lookup.
type Table map[rune]string

// Transliterate returns the table entry for r.
func (t Table) Transliterate(r rune) (string, bool) {
	s, ok := t[r]
	return s, ok
}

type chain []Transliterator

// Chain returns a Transliterator that asks each table in order and returns the
// first mapping found. Nil tables are skipped.
func Chain(ts ...Transliterator) Transliterator {
	c := make(chain, 0, len(ts))
	for _, t := range ts {
		if t != nil {
			c = append(c, t)
		}
	}
	return c
}

func (c chain) Transliterate(r rune) (string, bool) {
	for _, t := range c {
		if s, ok := t.Transliterate(r); ok {
			return s, true
		}
	}
	return "", false
}

// IsASCII reports whether every byte of s is below utf8.RuneSelf.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

var tables = map[string]func() Transliterator{
	"unidecode": Unidecode,
	"decompose": Decompose,
}

// Names returns the registered table names in sorted order.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the registered table with the given name.
// Matching is case-insensitive and ignores surrounding whitespace.
func ByName(name string) (Transliterator, error) {
	ctor, ok := tables[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownTable, name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}
