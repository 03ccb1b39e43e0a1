package slug

import (
	"fmt"
	"strings"
)

// Mode selects the classification and collapsing rules of an Encoder.
type Mode uint8

const (
	// Strict emits only lowercase letters, digits and single hyphens.
	Strict Mode = iota
	// Normal also keeps spaces, underscores and dots, and can preserve case.
	Normal
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Normal:
		return "normal"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode name. "lenient" is accepted as an alias for Normal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "normal", "lenient":
		return Normal, nil
	default:
		return Strict, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Strict && m != Normal {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Mode can be
// decoded straight from environment variables or config files.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
