package symptoms

import "errors"

var (
	ErrNotFound   = errors.New("symptom not found")
	ErrValidation = errors.New("invalid symptom")
)
