package submissions

import "errors"

var (
	ErrNotFound     = errors.New("submission not found")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError names the first required field a submission misses.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
