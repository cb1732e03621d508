package forms

import "errors"

var (
	ErrNotFound     = errors.New("form not found")
	ErrForbidden    = errors.New("form belongs to another user")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError names the first rule a form draft breaks.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
