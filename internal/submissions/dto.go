package submissions

import "time"

// SubmissionResponse is the outward-facing representation of a submission.
type SubmissionResponse struct {
	ID          string          `json:"id"`
	FormID      string          `json:"formId"`
	Responses   []ResponseEntry `json:"responses"`
	ResumeURL   *string         `json:"resumeUrl"`
	Evaluation  *AIEvaluation   `json:"aiEvaluation,omitempty"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// ToResponse converts a submission for API output.
func ToResponse(sub Submission) SubmissionResponse {
	resp := SubmissionResponse{
		ID:          sub.ID,
		FormID:      sub.FormID,
		Responses:   sub.Responses,
		Evaluation:  sub.Evaluation,
		SubmittedAt: sub.SubmittedAt,
	}
	if resp.Responses == nil {
		resp.Responses = []ResponseEntry{}
	}
	if sub.ResumeURL != "" {
		url := sub.ResumeURL
		resp.ResumeURL = &url
	}
	return resp
}
