package domain

import "errors"

var (
	// ErrNotFound means no record exists for the requested key.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable wraps backend and I/O failures of a store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidInput marks validation failures on caller-supplied data.
	ErrInvalidInput = errors.New("invalid input")
)
