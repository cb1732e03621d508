package forms

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of FormsRepo.
type MemoryRepo struct {
	mu    sync.RWMutex
	forms map[string]Form
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{forms: make(map[string]Form)}
}

// Create stores a form.
func (r *MemoryRepo) Create(ctx context.Context, form Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[form.ID] = form
	return nil
}

// GetByID returns a form by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Form, error) {
	if err := ctx.Err(); err != nil {
		return Form{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	form, ok := r.forms[id]
	if !ok {
		return Form{}, ErrNotFound
	}
	return form, nil
}

// GetByPublicLink returns the form published under the given link.
func (r *MemoryRepo) GetByPublicLink(ctx context.Context, publicLink string) (Form, error) {
	if err := ctx.Err(); err != nil {
		return Form{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, form := range r.forms {
		if form.PublicLink == publicLink {
			return form, nil
		}
	}
	return Form{}, ErrNotFound
}

// ListByOwner returns the owner's forms, newest first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Form, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Form
	for _, form := range r.forms {
		if form.OwnerID == ownerID {
			out = append(out, form)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
