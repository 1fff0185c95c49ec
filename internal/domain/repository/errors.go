package repository

import "errors"

// Sentinel error kinds returned by store implementations. Handlers map these
// to HTTP status codes in exactly one place.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
