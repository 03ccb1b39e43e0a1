package slug

// IsSlug reports whether s is a strict slug: it matches
// ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty.
func IsSlug(s string) bool {
	prevDash := true
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			prevDash = false
		case c == '-':
			if prevDash {
				return false
			}
			prevDash = true
		default:
			return false
		}
	}
	return s == "" || !prevDash
}

// IsNormalSlug reports whether s has the shape SlugifyNormal produces.
// Uppercase letters are accepted only when preserveCase is true.
func IsNormalSlug(s string, preserveCase bool) bool {
	if s == "" {
		return true
	}
	switch s[0] {
	case '-', ' ', '_':
		return false
	}
	switch s[len(s)-1] {
	case '-', ' ':
		return false
	}

	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		case 'A' <= c && c <= 'Z':
			if !preserveCase {
				return false
			}
		case c == '-', c == '.':
			if prev == c {
				return false
			}
		case c == ' ', c == '_':
			if prev == ' ' || prev == '_' {
				return false
			}
		default:
			return false
		}
		prev = c
	}
	return true
}
