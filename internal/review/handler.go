package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/forms"
	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/submissions"
)

// Handler serves the candidate review endpoint: a form's submissions
// sorted server-side and filtered through the review engine.
type Handler struct {
	Forms *forms.Service
	Repo  submissions.SubmissionsRepo
}

// NewHandler constructs a Handler.
func NewHandler(formsSvc *forms.Service, repo submissions.SubmissionsRepo) *Handler {
	return &Handler{Forms: formsSvc, Repo: repo}
}

// RegisterRoutes attaches the review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/submissions/:formId", h.list)
}

type submissionView struct {
	submissions.SubmissionResponse
	Candidate Identity `json:"candidate"`
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	form, err := h.Forms.Get(c.Request.Context(), userID, c.Param("formId"))
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Form not found", nil)
		case errors.Is(err, forms.ErrForbidden):
			respond.Error(c, http.StatusForbidden, "forbidden", "Not authorized to access this form", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load form", nil)
		}
		return
	}

	sortKey := submissions.NormalizeSortKey(c.Query("sortBy"))
	subs, err := h.Repo.ListByForm(c.Request.Context(), form.ID, sortKey)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load submissions", nil)
		return
	}

	filters := Filters{
		MinSkills:     queryFloat(c, "minSkills"),
		MinExperience: queryFloat(c, "minExp"),
		MinEducation:  queryFloat(c, "minEdu"),
		MinOverall:    queryFloat(c, "minOverall"),
		Education:     c.Query("education"),
		Search:        c.Query("search"),
	}
	filtered := Apply(form, subs, filters)

	views := make([]submissionView, 0, len(filtered))
	for _, sub := range filtered {
		views = append(views, submissionView{
			SubmissionResponse: submissions.ToResponse(sub),
			Candidate:          ResolveIdentity(form, sub),
		})
	}

	respond.OK(c, gin.H{
		"submissions": views,
		"form":        forms.ToResponse(form),
		"metrics":     Summarize(subs),
	})
}

func queryFloat(c *gin.Context, name string) float64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
