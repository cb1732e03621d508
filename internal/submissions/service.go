package submissions

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/forms"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/storage/object"
	"recruit-backend/internal/shared/telemetry"
)

// ResumeUpload is an optional resume file attached to a submission.
type ResumeUpload struct {
	FileName string
	Reader   io.Reader
}

// Service implements submission intake.
type Service struct {
	Forms forms.FormsRepo
	Repo  SubmissionsRepo
	Store object.ObjectStore
}

// NewService constructs a Service.
func NewService(formsRepo forms.FormsRepo, repo SubmissionsRepo, store object.ObjectStore) *Service {
	return &Service{Forms: formsRepo, Repo: repo, Store: store}
}

// Submit validates responses against the form schema, stores the resume
// when one was sent, and persists the submission. Upload and insert are
// not atomic; an upload error fails the request before anything is saved.
func (s *Service) Submit(ctx context.Context, formID string, entries []ResponseEntry, resume *ResumeUpload) (Submission, error) {
	form, err := s.Forms.GetByID(ctx, formID)
	if err != nil {
		return Submission{}, err
	}

	if err := validateResponses(form, entries, resume != nil); err != nil {
		return Submission{}, err
	}

	sub := Submission{
		ID:          uuid.NewString(),
		FormID:      form.ID,
		Responses:   entries,
		SubmittedAt: time.Now().UTC(),
	}

	if resume != nil {
		key, size, mimeType, err := s.Store.Save(ctx, resume.FileName, resume.Reader)
		if err != nil {
			return Submission{}, fmt.Errorf("store resume: %w", err)
		}
		sub.ResumeURL = s.Store.PublicURL(key)
		metrics.IncResumesUploaded()
		telemetry.Info("resume.stored", map[string]any{
			"form_id":    form.ID,
			"key":        key,
			"size_bytes": size,
			"mime_type":  mimeType,
		})
	}

	if err := s.Repo.Create(ctx, sub); err != nil {
		return Submission{}, err
	}
	metrics.IncSubmissionsReceived()
	return sub, nil
}

// validateResponses mirrors the builder rules: every required field needs a
// non-empty answer, or an uploaded file for file-typed fields. The first
// missing field blocks the submission and is named in the error.
func validateResponses(form forms.Form, entries []ResponseEntry, hasResume bool) error {
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.FieldID] = entry.Value
	}
	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		if field.Type == forms.FieldFile {
			if !hasResume {
				return &ValidationError{Message: fmt.Sprintf("Please upload your %s", field.Label)}
			}
			continue
		}
		if values[field.ID] == "" {
			return &ValidationError{Message: fmt.Sprintf("Please fill in %s", field.Label)}
		}
	}
	return nil
}
