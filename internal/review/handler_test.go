package review_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/bootstrap"
	"recruit-backend/internal/forms"
	"recruit-backend/internal/shared/auth"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/submissions"
)

type listPayload struct {
	Submissions []struct {
		ID        string `json:"id"`
		Candidate struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"candidate"`
	} `json:"submissions"`
	Metrics struct {
		TotalSubmissions int     `json:"totalSubmissions"`
		AvgScore         int     `json:"avgScore"`
		TopScore         float64 `json:"topScore"`
		Qualified        int     `json:"qualified"`
	} `json:"metrics"`
}

func (p listPayload) ids() []string {
	out := make([]string, 0, len(p.Submissions))
	for _, sub := range p.Submissions {
		out = append(out, sub.ID)
	}
	return out
}

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func seedReviewData(t *testing.T, app *bootstrap.App) forms.Form {
	t.Helper()
	form, err := app.FormsService.Create(
		context.Background(),
		"user-1",
		"Backend Engineer Application",
		"",
		[]forms.FormField{
			{ID: "1", Type: forms.FieldText, Label: "Full Name", Required: true, SemanticRole: forms.RoleName},
			{ID: "2", Type: forms.FieldEmail, Label: "Email Address", Required: true, SemanticRole: forms.RoleEmail},
			{ID: "3", Type: forms.FieldText, Label: "Highest Education"},
		},
		forms.HRRequirements{Role: "Backend Engineer"},
	)
	if err != nil {
		t.Fatalf("seed form: %v", err)
	}

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	seed := []submissions.Submission{
		{
			ID: "sub-a", FormID: form.ID, SubmittedAt: base,
			Responses: []submissions.ResponseEntry{
				{FieldID: "1", Value: "Alice Apt"},
				{FieldID: "2", Value: "alice@x.com"},
				{FieldID: "3", Value: "Master of Science"},
			},
			Evaluation: &submissions.AIEvaluation{FinalScore: 80, Breakdown: submissions.Breakdown{SkillsScore: 85}},
		},
		{
			ID: "sub-b", FormID: form.ID, SubmittedAt: base.Add(time.Hour),
			Responses: []submissions.ResponseEntry{
				{FieldID: "1", Value: "Bob Builder"},
				{FieldID: "2", Value: "bob@y.com"},
				{FieldID: "3", Value: "High School"},
			},
			Evaluation: &submissions.AIEvaluation{FinalScore: 40, Breakdown: submissions.Breakdown{SkillsScore: 95}},
		},
		{
			ID: "sub-c", FormID: form.ID, SubmittedAt: base.Add(2 * time.Hour),
			Responses: []submissions.ResponseEntry{
				{FieldID: "1", Value: "Cara Cole"},
				{FieldID: "2", Value: "cara@z.com"},
			},
		},
	}
	for _, sub := range seed {
		if err := app.SubmissionsRepo.Create(context.Background(), sub); err != nil {
			t.Fatalf("seed submission %s: %v", sub.ID, err)
		}
	}
	return form
}

func getSubmissions(t *testing.T, app *bootstrap.App, formID, userID, query string) (*httptest.ResponseRecorder, listPayload) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/submissions/"+formID+query, nil)
	if userID != "" {
		token, err := auth.SignJWT(auth.Claims{Sub: userID})
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		req.Header.Set("x-auth-token", token)
	}
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	var payload listPayload
	if resp.Code == http.StatusOK {
		if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp, payload
}

func TestListSortsByFinalScoreWithUnscoredLast(t *testing.T) {
	app := buildApp(t)
	form := seedReviewData(t, app)

	resp, payload := getSubmissions(t, app, form.ID, "user-1", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}

	got := payload.ids()
	want := []string{"sub-a", "sub-b", "sub-c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if payload.Submissions[0].Candidate.Name != "Alice Apt" {
		t.Fatalf("candidate identity missing: %+v", payload.Submissions[0].Candidate)
	}
}

func TestListSortBySkillsAndNewest(t *testing.T) {
	app := buildApp(t)
	form := seedReviewData(t, app)

	_, bySkills := getSubmissions(t, app, form.ID, "user-1", "?sortBy=skills_score")
	if got := bySkills.ids(); got[0] != "sub-b" || got[1] != "sub-a" || got[2] != "sub-c" {
		t.Fatalf("skills order = %v", got)
	}

	_, byNewest := getSubmissions(t, app, form.ID, "user-1", "?sortBy=newest")
	if got := byNewest.ids(); got[0] != "sub-c" || got[2] != "sub-a" {
		t.Fatalf("newest order = %v", got)
	}
}

func TestListAppliesFiltersWithoutChangingMetrics(t *testing.T) {
	app := buildApp(t)
	form := seedReviewData(t, app)

	resp, payload := getSubmissions(t, app, form.ID, "user-1", "?minOverall=70")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	// Unscored sub-c passes the threshold; sub-b (40) is filtered out.
	got := payload.ids()
	if len(got) != 2 || got[0] != "sub-a" || got[1] != "sub-c" {
		t.Fatalf("filtered ids = %v", got)
	}

	// Metrics describe the whole submission set, not the filtered view.
	if payload.Metrics.TotalSubmissions != 3 {
		t.Fatalf("total = %d", payload.Metrics.TotalSubmissions)
	}
	if payload.Metrics.AvgScore != 40 { // round((80+40)/3)
		t.Fatalf("avgScore = %d", payload.Metrics.AvgScore)
	}
	if payload.Metrics.TopScore != 80 || payload.Metrics.Qualified != 1 {
		t.Fatalf("metrics = %+v", payload.Metrics)
	}
}

func TestListEducationAndSearchFilters(t *testing.T) {
	app := buildApp(t)
	form := seedReviewData(t, app)

	_, byEducation := getSubmissions(t, app, form.ID, "user-1", "?education=Master")
	if got := byEducation.ids(); len(got) != 1 || got[0] != "sub-a" {
		t.Fatalf("education filter ids = %v", got)
	}

	_, bySearch := getSubmissions(t, app, form.ID, "user-1", "?search=bob%40y.com")
	if got := bySearch.ids(); len(got) != 1 || got[0] != "sub-b" {
		t.Fatalf("search filter ids = %v", got)
	}
}

func TestListForbiddenForNonOwner(t *testing.T) {
	app := buildApp(t)
	form := seedReviewData(t, app)

	resp, _ := getSubmissions(t, app, form.ID, "user-2", "")
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
}
