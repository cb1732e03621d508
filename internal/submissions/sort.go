package submissions

import "sort"

// Sort keys accepted by the submissions list endpoint. Ordering is
// server-side and load-bearing: the review UI re-fetches on every sort
// change instead of re-sorting locally.
const (
	SortFinalScore          = "final_score"
	SortSkillsScore         = "skills_score"
	SortExperienceScore     = "experience_score"
	SortEducationScore      = "education_score"
	SortNoticePeriodScore   = "notice_period_score"
	SortOverallProfileScore = "overall_profile_score"
	SortAchievementsScore   = "achievements_score"
	SortCertificatesScore   = "certificates_score"
	SortCulturalFitScore    = "cultural_fit_score"
	SortNewest              = "newest"
)

var sortKeys = map[string]bool{
	SortFinalScore:          true,
	SortSkillsScore:         true,
	SortExperienceScore:     true,
	SortEducationScore:      true,
	SortNoticePeriodScore:   true,
	SortOverallProfileScore: true,
	SortAchievementsScore:   true,
	SortCertificatesScore:   true,
	SortCulturalFitScore:    true,
	SortNewest:              true,
}

// NormalizeSortKey maps unknown or empty keys to the default final_score
// ordering.
func NormalizeSortKey(key string) string {
	if sortKeys[key] {
		return key
	}
	return SortFinalScore
}

// Order sorts submissions in place by the given normalized key. Numeric
// keys sort descending with unscored submissions last; newest sorts by
// submission time descending.
func Order(subs []Submission, key string) {
	key = NormalizeSortKey(key)
	if key == SortNewest {
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
		})
		return
	}
	sort.SliceStable(subs, func(i, j int) bool {
		vi, oki := subs[i].Score(key)
		vj, okj := subs[j].Score(key)
		if oki != okj {
			return oki
		}
		if !oki {
			return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
		}
		if vi != vj {
			return vi > vj
		}
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
}

// orderByClause returns the ORDER BY expression for a normalized sort key.
// Scores live inside the ai_evaluation JSONB column; unscored rows sort
// last via NULLS LAST.
func orderByClause(key string) string {
	switch NormalizeSortKey(key) {
	case SortNewest:
		return "submitted_at DESC"
	case SortFinalScore:
		return "(ai_evaluation->>'final_score')::numeric DESC NULLS LAST, submitted_at DESC"
	default:
		return "(ai_evaluation->'breakdown'->>'" + NormalizeSortKey(key) + "')::numeric DESC NULLS LAST, submitted_at DESC"
	}
}
