package submissions

import "context"

// SubmissionsRepo defines persistence operations for submissions.
type SubmissionsRepo interface {
	Create(ctx context.Context, sub Submission) error
	// ListByForm returns a form's submissions ordered by the given sort key.
	ListByForm(ctx context.Context, formID, sortKey string) ([]Submission, error)
}
