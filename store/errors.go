package store

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSort is returned for a sort field with an empty name or an unknown direction.
	ErrInvalidSort = errors.New("invalid sort")
)
