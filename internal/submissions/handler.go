package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/forms"
	"recruit-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the public submission endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the anonymous submit route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submit/:formId", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	raw := c.PostForm("responses")
	if raw == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing form responses", nil)
		return
	}
	var entries []ResponseEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid response format", nil)
		return
	}

	var resume *ResumeUpload
	fileHeader, err := c.FormFile("resume")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file", nil)
			return
		}
		defer file.Close()
		resume = &ResumeUpload{FileName: fileHeader.Filename, Reader: file}
	}

	sub, err := h.Svc.Submit(c.Request.Context(), c.Param("formId"), entries, resume)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.Is(err, forms.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Form not found", nil)
		case errors.As(err, &vErr):
			respond.Error(c, http.StatusBadRequest, "validation_error", vErr.Message, nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Server error during form submission", nil)
		}
		return
	}

	var resumeURL *string
	if sub.ResumeURL != "" {
		url := sub.ResumeURL
		resumeURL = &url
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"message":      "Form submitted successfully",
		"submissionId": sub.ID,
		"resumeUrl":    resumeURL,
	})
}
