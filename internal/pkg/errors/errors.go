package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources. Ownership
	// mismatches map to the same sentinel so handlers cannot leak existence.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
