package slug

import "errors"

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("slug: unknown mode")
