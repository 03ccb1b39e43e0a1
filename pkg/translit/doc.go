// Package translit maps single Unicode code points to ASCII approximations.
//
// A Transliterator is the only collaborator the slug encoder needs: given one
// rune it either returns an ASCII replacement or reports that it has none.
// The two outcomes are distinct:
//
//	s, ok := t.Transliterate('é') // "e", true
//	s, ok = t.Transliterate(r)    // "", true  -> rune maps to nothing
//	s, ok = t.Transliterate(r)    // "", false -> no mapping known
//
// # Tables
//
// Unidecode is the default table, backed by github.com/rainycape/unidecode.
// It covers the Basic Multilingual Plane including Cyrillic, Greek and CJK:
//
//	translit.Unidecode().Transliterate('Æ') // "AE", true
//	translit.Unidecode().Transliterate('Ж') // "Zh", true
//
// Decompose only strips diacritics using Unicode NFKD decomposition from
// golang.org/x/text, so it maps 'é' to "e" but has no answer for 'Ж':
//
//	translit.Decompose().Transliterate('ñ') // "n", true
//	translit.Decompose().Transliterate('Ж') // "", false
//
// Table is a plain map for overrides, and Chain combines tables so the first
// one with a mapping wins:
//
//	t := translit.Chain(
//		translit.Table{'€': "euro", 'ß': "ss"},
//		translit.Unidecode(),
//	)
//
// The slug encoder consults a Transliterator for non-ASCII code points only,
// so Table entries for ASCII characters such as '&' have no effect there.
//
// All tables are pure lookups and safe for concurrent use.
package translit
