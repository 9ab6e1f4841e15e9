package postgre

import "errors"

var (
	// ErrInvalidUUID is returned when a string is not a valid UUID.
	ErrInvalidUUID = errors.New("invalid UUID format")
)
