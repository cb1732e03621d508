package submissions

import "time"

// ResponseEntry is one answer inside a submission, keyed by the form
// field's caller-assigned id.
type ResponseEntry struct {
	FieldID string `json:"fieldId"`
	Value   string `json:"value"`
}

// Breakdown holds the per-category scores of an AI evaluation.
type Breakdown struct {
	SkillsScore         float64 `json:"skills_score"`
	ExperienceScore     float64 `json:"experience_score"`
	EducationScore      float64 `json:"education_score"`
	NoticePeriodScore   float64 `json:"notice_period_score"`
	OverallProfileScore float64 `json:"overall_profile_score"`
	AchievementsScore   float64 `json:"achievements_score"`
	CertificatesScore   float64 `json:"certificates_score"`
	CulturalFitScore    float64 `json:"cultural_fit_score"`
}

// AIEvaluation is the externally computed fitness score attached to a
// submission by an out-of-scope scoring job. This service consumes it but
// never writes it.
type AIEvaluation struct {
	FinalScore        float64           `json:"final_score"`
	Breakdown         Breakdown         `json:"breakdown"`
	DetailedReasoning map[string]string `json:"detailed_reasoning,omitempty"`
}

// Submission is one candidate's application to a form. Created once and
// never mutated here; duplicates are allowed.
type Submission struct {
	ID          string
	FormID      string
	Responses   []ResponseEntry
	ResumeURL   string
	Evaluation  *AIEvaluation
	SubmittedAt time.Time
}

// Response returns the answer for a field id, or "" when absent.
func (s Submission) Response(fieldID string) string {
	for _, entry := range s.Responses {
		if entry.FieldID == fieldID {
			return entry.Value
		}
	}
	return ""
}

// Score returns the named score for a scored submission. The second return
// is false for unscored submissions and unknown keys.
func (s Submission) Score(key string) (float64, bool) {
	if s.Evaluation == nil {
		return 0, false
	}
	switch key {
	case SortFinalScore:
		return s.Evaluation.FinalScore, true
	case SortSkillsScore:
		return s.Evaluation.Breakdown.SkillsScore, true
	case SortExperienceScore:
		return s.Evaluation.Breakdown.ExperienceScore, true
	case SortEducationScore:
		return s.Evaluation.Breakdown.EducationScore, true
	case SortNoticePeriodScore:
		return s.Evaluation.Breakdown.NoticePeriodScore, true
	case SortOverallProfileScore:
		return s.Evaluation.Breakdown.OverallProfileScore, true
	case SortAchievementsScore:
		return s.Evaluation.Breakdown.AchievementsScore, true
	case SortCertificatesScore:
		return s.Evaluation.Breakdown.CertificatesScore, true
	case SortCulturalFitScore:
		return s.Evaluation.Breakdown.CulturalFitScore, true
	}
	return 0, false
}
