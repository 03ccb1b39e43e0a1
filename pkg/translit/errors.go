package translit

import "errors"

// ErrUnknownTable is returned by ByName for a name that has no registered table.
var ErrUnknownTable = errors.New("translit: unknown table")
