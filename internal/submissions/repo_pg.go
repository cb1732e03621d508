package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements SubmissionsRepo using Postgres. Responses and the AI
// evaluation are stored as JSONB; list ordering happens in SQL so score
// sorts stay correct under pagination later.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new submission.
func (r *PGRepo) Create(ctx context.Context, sub Submission) error {
	const query = `
INSERT INTO submissions (id, form_id, responses, resume_url, ai_evaluation, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	responsesJSON, err := json.Marshal(sub.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}

	var resumeURL sql.NullString
	if sub.ResumeURL != "" {
		resumeURL = sql.NullString{String: sub.ResumeURL, Valid: true}
	}
	var evalJSON any
	if sub.Evaluation != nil {
		raw, err := json.Marshal(sub.Evaluation)
		if err != nil {
			return fmt.Errorf("marshal evaluation: %w", err)
		}
		evalJSON = raw
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.FormID,
		responsesJSON,
		resumeURL,
		evalJSON,
		sub.SubmittedAt,
	)
	return err
}

// ListByForm returns a form's submissions ordered by the sort key.
func (r *PGRepo) ListByForm(ctx context.Context, formID, sortKey string) ([]Submission, error) {
	query := `
SELECT id, form_id, responses, resume_url, ai_evaluation, submitted_at
FROM submissions
WHERE form_id = $1
ORDER BY ` + orderByClause(sortKey)

	rows, err := r.DB.QueryContext(ctx, query, formID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		var responsesJSON, evalJSON []byte
		var resumeURL sql.NullString
		if err := rows.Scan(&sub.ID, &sub.FormID, &responsesJSON, &resumeURL, &evalJSON, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		sub.ResumeURL = resumeURL.String
		if len(responsesJSON) > 0 {
			if err := json.Unmarshal(responsesJSON, &sub.Responses); err != nil {
				return nil, fmt.Errorf("unmarshal responses: %w", err)
			}
		}
		if len(evalJSON) > 0 {
			var eval AIEvaluation
			if err := json.Unmarshal(evalJSON, &eval); err != nil {
				return nil, fmt.Errorf("unmarshal evaluation: %w", err)
			}
			sub.Evaluation = &eval
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}
