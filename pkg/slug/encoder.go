package slug

import (
	"unicode/utf8"

	"github.com/dmitrymomot/slugmin/pkg/translit"
)

// scanner holds the collapsing state of a single encoding pass.
type scanner struct {
	buf          []byte
	normal       bool
	preserveCase bool
	prevDash     bool
	prevSpace    bool
	prevDot      bool
}

// encode runs the transliterate-classify-collapse pass over s.
func encode(s string, mode Mode, preserveCase bool, tr translit.Transliterator) string {
	sc := scanner{
		buf:          make([]byte, 0, len(s)),
		normal:       mode == Normal,
		preserveCase: mode == Normal && preserveCase,
		// Start as if a separator was just written so leading ones collapse.
		prevDash:  true,
		prevSpace: true,
	}

	for _, r := range s {
		if r < utf8.RuneSelf {
			sc.push(byte(r))
			continue
		}
		mapped, ok := tr.Transliterate(r)
		if !ok || !translit.IsASCII(mapped) {
			sc.push('-')
			continue
		}
		for i := 0; i < len(mapped); i++ {
			sc.push(mapped[i])
		}
	}

	return string(trimTrailing(sc.buf, sc.normal))
}

func (sc *scanner) push(b byte) {
	switch {
	case 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		sc.word(b)
	case 'A' <= b && b <= 'Z':
		if !sc.preserveCase {
			b += 'a' - 'A'
		}
		sc.word(b)
	case sc.normal && (b == ' ' || b == '_'):
		if !sc.prevSpace {
			sc.buf = append(sc.buf, b)
			sc.prevDash, sc.prevSpace, sc.prevDot = false, true, false
		}
	case sc.normal && b == '.':
		if !sc.prevDot {
			sc.buf = append(sc.buf, b)
			sc.prevDash, sc.prevSpace, sc.prevDot = false, false, true
		}
	default:
		if !sc.prevDash {
			sc.buf = append(sc.buf, '-')
			sc.prevDash, sc.prevSpace, sc.prevDot = true, false, false
		}
	}
}

func (sc *scanner) word(b byte) {
	sc.buf = append(sc.buf, b)
	sc.prevDash, sc.prevSpace, sc.prevDot = false, false, false
}

// trimTrailing drops trailing hyphens, and in normal mode trailing spaces too,
// in any interleaving.
func trimTrailing(b []byte, normal bool) []byte {
	for len(b) > 0 {
		last := b[len(b)-1]
		if last != '-' && !(normal && last == ' ') {
			break
		}
		b = b[:len(b)-1]
	}
	return b
}
