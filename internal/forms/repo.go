package forms

import "context"

// FormsRepo defines persistence operations for forms.
type FormsRepo interface {
	Create(ctx context.Context, form Form) error
	GetByID(ctx context.Context, id string) (Form, error)
	GetByPublicLink(ctx context.Context, publicLink string) (Form, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Form, error)
}
