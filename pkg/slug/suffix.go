package slug

import (
	"strings"

	"github.com/dmitrymomot/slugmin/pkg/id"
)

const defaultSuffixLength = 6

// finish applies the length limits, the reserved-word check and the suffix.
func (e *Encoder) finish(out string) string {
	if e.maxLength > 0 && len(out) > e.maxLength {
		out = e.trim(out[:e.maxLength])
	}

	n := e.suffixLength
	if n == 0 && e.isReserved(out) {
		n = defaultSuffixLength
	}
	if len(out) < e.minLength {
		n = max(n, defaultSuffixLength, e.minLength-len(out)-1)
		if out == "" {
			n = max(n, e.minLength)
		}
	}
	if n == 0 {
		return out
	}

	suffix := id.Alphanumeric(n, e.preserveCase)
	if e.maxLength > 0 {
		if n >= e.maxLength {
			return suffix[:e.maxLength]
		}
		if room := e.maxLength - n - 1; len(out) > room {
			out = e.trim(out[:room])
		}
	}
	if out == "" {
		return suffix
	}
	return out + "-" + suffix
}

func (e *Encoder) trim(s string) string {
	return string(trimTrailing([]byte(s), e.mode == Normal))
}

func (e *Encoder) isReserved(s string) bool {
	if e.reserved == nil || s == "" {
		return false
	}
	_, ok := e.reserved[strings.ToLower(s)]
	return ok
}
