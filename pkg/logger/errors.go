package logger

import "errors"

// Sentinel errors for logger configuration.
var (
	ErrUnknownLevel  = errors.New("logger: unknown level")
	ErrUnknownFormat = errors.New("logger: unknown format")
)
