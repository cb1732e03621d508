// Package review derives filtered candidate views over a form's
// submissions: identity resolution from opaque field ids, score and
// education threshold filters, free-text search, and aggregate metrics.
package review

import (
	"math"
	"strings"

	"recruit-backend/internal/forms"
	"recruit-backend/internal/submissions"
)

// qualifiedThreshold is the final score at or above which a candidate
// counts as qualified in the metrics summary.
const qualifiedThreshold = 70

// Filters holds the review screen's filter state. Zero values disable
// every filter.
type Filters struct {
	MinSkills     float64
	MinExperience float64
	MinEducation  float64
	MinOverall    float64
	Education     string
	Search        string
}

// Identity is a candidate's resolved display fields.
type Identity struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Education string `json:"education"`
}

// ResolveIdentity maps a submission's opaque field ids to semantic roles.
// Fields tagged with a semanticRole win; legacy forms fall back to the
// first field whose label contains a role keyword. A miss yields "".
func ResolveIdentity(form forms.Form, sub submissions.Submission) Identity {
	return Identity{
		Name:      resolveRole(form, sub, forms.RoleName, "name"),
		Email:     resolveRole(form, sub, forms.RoleEmail, "email"),
		Phone:     resolveRole(form, sub, forms.RolePhone, "phone"),
		Education: resolveRole(form, sub, forms.RoleEducation, "education", "degree"),
	}
}

func resolveRole(form forms.Form, sub submissions.Submission, role string, keywords ...string) string {
	for _, field := range form.Fields {
		if field.SemanticRole == role {
			return sub.Response(field.ID)
		}
	}
	for _, field := range form.Fields {
		label := strings.ToLower(field.Label)
		for _, keyword := range keywords {
			if strings.Contains(label, keyword) {
				return sub.Response(field.ID)
			}
		}
	}
	return ""
}

// educationRanks is the fixed ordinal ladder for education filtering.
// Keyword order matters: "high school" must be probed before more generic
// terms so containment checks stay deterministic.
var educationRanks = []struct {
	keyword string
	rank    int
}{
	{"high school", 1},
	{"associate", 2},
	{"bachelor", 3},
	{"master", 4},
	{"phd", 5},
	{"doctorate", 5},
}

// EducationRank maps free text to the ordinal ladder by substring
// containment. Unmatched text ranks 0, as do "Any" and empty filters.
func EducationRank(text string) int {
	lowered := strings.ToLower(text)
	if lowered == "" || lowered == "any" {
		return 0
	}
	best := 0
	for _, entry := range educationRanks {
		if strings.Contains(lowered, entry.keyword) && entry.rank > best {
			best = entry.rank
		}
	}
	return best
}

// Apply runs the filter pipeline over submissions and returns the ones
// that pass every predicate, preserving input order.
func Apply(form forms.Form, subs []submissions.Submission, f Filters) []submissions.Submission {
	out := make([]submissions.Submission, 0, len(subs))
	for _, sub := range subs {
		if !passes(form, sub, f) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func passes(form forms.Form, sub submissions.Submission, f Filters) bool {
	// Unscored submissions pass every score threshold.
	if sub.Evaluation != nil {
		b := sub.Evaluation.Breakdown
		if b.SkillsScore < f.MinSkills ||
			b.ExperienceScore < f.MinExperience ||
			b.EducationScore < f.MinEducation ||
			sub.Evaluation.FinalScore < f.MinOverall {
			return false
		}
	}

	filterRank := EducationRank(f.Education)
	if filterRank > 0 {
		identity := ResolveIdentity(form, sub)
		if EducationRank(identity.Education) < filterRank {
			return false
		}
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		identity := ResolveIdentity(form, sub)
		if !strings.Contains(strings.ToLower(identity.Name), term) &&
			!strings.Contains(strings.ToLower(identity.Email), term) &&
			!strings.Contains(strings.ToLower(identity.Phone), term) {
			return false
		}
	}

	return true
}

// Metrics summarizes a form's submissions for the review dashboard.
type Metrics struct {
	TotalSubmissions int     `json:"totalSubmissions"`
	AvgScore         int     `json:"avgScore"`
	TopScore         float64 `json:"topScore"`
	Qualified        int     `json:"qualified"`
}

// Summarize computes dashboard metrics over the full submission list. The
// average divides the scored sum by the total submission count, so
// unscored submissions drag the average down rather than being excluded.
func Summarize(subs []submissions.Submission) Metrics {
	m := Metrics{TotalSubmissions: len(subs)}
	var sum float64
	for _, sub := range subs {
		if sub.Evaluation == nil {
			continue
		}
		score := sub.Evaluation.FinalScore
		sum += score
		if score > m.TopScore {
			m.TopScore = score
		}
		if score >= qualifiedThreshold {
			m.Qualified++
		}
	}
	if len(subs) > 0 {
		m.AvgScore = int(math.Round(sum / float64(len(subs))))
	}
	return m
}
