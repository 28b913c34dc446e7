package medications

import "errors"

var (
	ErrNotFound   = errors.New("medication not found")
	ErrValidation = errors.New("invalid medication")
)
