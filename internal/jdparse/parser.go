// Package jdparse turns free-text job descriptions into the flat
// extraction the form builder overlays onto HR requirements.
package jdparse

import (
	"context"
	"errors"

	"recruit-backend/internal/forms"
)

// ErrParseFailed marks an upstream extraction failure. Caller state is
// left untouched; no partial merge happens.
var ErrParseFailed = errors.New("job description parse failed")

// Parser extracts structured job requirements from free text.
type Parser interface {
	Parse(ctx context.Context, jobDescription string) (forms.Extraction, error)
}
