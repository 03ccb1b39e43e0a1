package slug

import (
	"cmp"
	"slices"
	"strings"
)

// prepare applies StripChars and CustomReplace to the raw input.
func (e *Encoder) prepare(s string) string {
	if e.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(e.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}
	if e.replacer != nil {
		s = e.replacer.Replace(s)
	}
	return s
}

// newReplacer orders keys longest first, then lexically, so the result does
// not depend on map iteration order.
func newReplacer(replace map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(replace))
	for k := range replace {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, replace[k])
	}
	return strings.NewReplacer(pairs...)
}
