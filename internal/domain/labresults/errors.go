package labresults

import "errors"

var (
	// ErrNotFound is returned when a lab result does not exist or does not
	// belong to the requesting user.
	ErrNotFound = errors.New("lab result not found")

	// ErrValidation wraps all input validation failures.
	ErrValidation = errors.New("invalid lab result")
)
