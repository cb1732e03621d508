package forms

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"recruit-backend/internal/shared/metrics"
)

const publicSlugLen = 6

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service implements form creation and retrieval.
type Service struct {
	Repo FormsRepo
}

// NewService constructs a Service.
func NewService(repo FormsRepo) *Service {
	return &Service{Repo: repo}
}

// Create validates the draft, assigns ids and a public link, and persists
// the form.
func (s *Service) Create(ctx context.Context, ownerID, title, description string, fields []FormField, req HRRequirements) (Form, error) {
	if err := Validate(title, fields); err != nil {
		return Form{}, err
	}
	for _, field := range fields {
		if !IsFieldType(field.Type) {
			return Form{}, fmt.Errorf("%w: unknown field type %q", ErrInvalidInput, field.Type)
		}
	}

	form := Form{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		Title:          title,
		Description:    description,
		Fields:         fields,
		HRRequirements: req,
		PublicLink:     "/form/" + newSlug(),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, form); err != nil {
		return Form{}, err
	}
	metrics.IncFormsCreated()
	return form, nil
}

// Get returns a form by id, restricted to its owner.
func (s *Service) Get(ctx context.Context, ownerID, formID string) (Form, error) {
	form, err := s.Repo.GetByID(ctx, formID)
	if err != nil {
		return Form{}, err
	}
	if form.OwnerID != ownerID {
		return Form{}, ErrForbidden
	}
	return form, nil
}

// List returns the owner's forms, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Form, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// GetPublic returns the form published under the slug.
func (s *Service) GetPublic(ctx context.Context, slug string) (Form, error) {
	return s.Repo.GetByPublicLink(ctx, "/form/"+slug)
}

func newSlug() string {
	buf := make([]byte, publicSlugLen)
	max := big.NewInt(int64(len(slugAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			buf[i] = slugAlphabet[time.Now().UnixNano()%int64(len(slugAlphabet))]
			continue
		}
		buf[i] = slugAlphabet[n.Int64()]
	}
	return string(buf)
}
