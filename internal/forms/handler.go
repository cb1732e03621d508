package forms

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
)

// Handler wires form HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches form routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/forms", h.create)
	rg.GET("/forms", h.list)
	rg.GET("/forms/public/:slug", h.getPublic)
	rg.GET("/forms/:id", h.get)
	rg.GET("/forms/:id/job-description", h.jobDescription)
}

type createFormRequest struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Fields         []FormField    `json:"fields"`
	HRRequirements HRRequirements `json:"hrRequirements"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	form, err := h.Svc.Create(c.Request.Context(), userID, req.Title, req.Description, req.Fields, req.HRRequirements)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.Error(c, http.StatusBadRequest, "validation_error", vErr.Message, nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create form", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, ToResponse(form))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	forms, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list forms", nil)
		return
	}

	out := make([]FormResponse, 0, len(forms))
	for _, form := range forms {
		out = append(out, ToResponse(form))
	}
	respond.OK(c, gin.H{"forms": out})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	form, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.lookupError(c, err)
		return
	}
	respond.OK(c, gin.H{"form": ToResponse(form)})
}

func (h *Handler) jobDescription(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	form, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.lookupError(c, err)
		return
	}
	respond.OK(c, gin.H{
		"jobDescription": form.HRRequirements.JobDescription,
		"hrRequirements": form.HRRequirements,
	})
}

func (h *Handler) getPublic(c *gin.Context) {
	form, err := h.Svc.GetPublic(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Form not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load form", nil)
		return
	}
	respond.OK(c, gin.H{"form": ToResponse(form)})
}

func (h *Handler) lookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Form not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "You do not have access to this form", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load form", nil)
	}
}
