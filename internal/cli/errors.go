package cli

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrInvalidConfig wraps environment, dotenv and flag errors.
	ErrInvalidConfig = errors.New("cli: invalid configuration")

	// ErrInvalidSlug is returned by the check command when any input is not a valid slug.
	ErrInvalidSlug = errors.New("cli: invalid slug")
)
