package submissions

import (
	"strings"
	"testing"
	"time"
)

func scored(id string, final, skills float64, at time.Time) Submission {
	return Submission{
		ID:          id,
		FormID:      "form-1",
		Evaluation:  &AIEvaluation{FinalScore: final, Breakdown: Breakdown{SkillsScore: skills}},
		SubmittedAt: at,
	}
}

func TestOrderByFinalScorePutsUnscoredLast(t *testing.T) {
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	subs := []Submission{
		{ID: "unscored", FormID: "form-1", SubmittedAt: base.Add(3 * time.Hour)},
		scored("low", 40, 10, base),
		scored("high", 90, 20, base.Add(time.Hour)),
	}

	Order(subs, SortFinalScore)

	want := []string{"high", "low", "unscored"}
	for i, id := range want {
		if subs[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, subs[i].ID, id)
		}
	}
}

func TestOrderByBreakdownKey(t *testing.T) {
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	subs := []Submission{
		scored("a", 90, 10, base),
		scored("b", 40, 80, base),
	}

	Order(subs, SortSkillsScore)

	if subs[0].ID != "b" || subs[1].ID != "a" {
		t.Fatalf("skills_score order wrong: %s, %s", subs[0].ID, subs[1].ID)
	}
}

func TestOrderNewest(t *testing.T) {
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	subs := []Submission{
		scored("old", 100, 0, base),
		{ID: "new", FormID: "form-1", SubmittedAt: base.Add(time.Hour)},
	}

	Order(subs, SortNewest)

	if subs[0].ID != "new" {
		t.Fatalf("newest should lead, got %s", subs[0].ID)
	}
}

func TestNormalizeSortKeyFallsBackToFinalScore(t *testing.T) {
	if got := NormalizeSortKey("drop table"); got != SortFinalScore {
		t.Fatalf("unknown key normalized to %q", got)
	}
	if got := NormalizeSortKey(""); got != SortFinalScore {
		t.Fatalf("empty key normalized to %q", got)
	}
	if got := NormalizeSortKey(SortNewest); got != SortNewest {
		t.Fatalf("newest normalized to %q", got)
	}
}

func TestOrderByClauseUsesWhitelistOnly(t *testing.T) {
	clause := orderByClause("cultural_fit_score; DROP TABLE submissions")
	if !strings.Contains(clause, "final_score") {
		t.Fatalf("non-whitelisted key must fall back, got %q", clause)
	}
	if strings.Contains(clause, "DROP") {
		t.Fatalf("raw input leaked into SQL: %q", clause)
	}
}
