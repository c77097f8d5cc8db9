package repository

import "errors"

// ErrNotFound is returned when a requested product doesn't exist.
// The service layer translates it so callers don't depend on
// repository internals.
var ErrNotFound = errors.New("not found")
