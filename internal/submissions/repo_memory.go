package submissions

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of SubmissionsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Submission // formId -> submissions
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Submission)}
}

// Create stores a submission. Duplicate payloads produce distinct records.
func (r *MemoryRepo) Create(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[sub.FormID] = append(r.data[sub.FormID], sub)
	return nil
}

// ListByForm returns a form's submissions ordered by the sort key.
func (r *MemoryRepo) ListByForm(ctx context.Context, formID, sortKey string) ([]Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	subs := append([]Submission(nil), r.data[formID]...)
	r.mu.RUnlock()

	Order(subs, sortKey)
	return subs, nil
}

// SetEvaluation attaches an evaluation to a stored submission. The scoring
// job is out of scope; this exists for dev seeding and tests.
func (r *MemoryRepo) SetEvaluation(formID, submissionID string, eval AIEvaluation) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs := r.data[formID]
	for i := range subs {
		if subs[i].ID == submissionID {
			subs[i].Evaluation = &eval
			return true
		}
	}
	return false
}
