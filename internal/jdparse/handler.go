package jdparse

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/forms"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/shared/telemetry"
)

// Handler wires the job-description parse endpoints.
type Handler struct {
	Parser Parser
}

// NewHandler constructs a Handler.
func NewHandler(parser Parser) *Handler {
	return &Handler{Parser: parser}
}

// RegisterRoutes attaches the authenticated parse route to the router
// group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-job-description", h.parse)
}

// RegisterPublicRoutes attaches the anonymous connectivity probe.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/test-jd-parse", h.probe)
}

type parseRequest struct {
	JobDescription string                `json:"jobDescription"`
	HRRequirements *forms.HRRequirements `json:"hrRequirements,omitempty"`
}

type parseResponse struct {
	forms.Extraction
	HRRequirements *forms.HRRequirements `json:"hrRequirements,omitempty"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription is required", nil)
		return
	}

	start := time.Now()
	extraction, err := h.Parser.Parse(c.Request.Context(), req.JobDescription)
	metrics.ObserveJDParseDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncJDParseFailed()
		telemetry.Error("jdparse.failed", map[string]any{
			"request_id":  c.GetString("requestId"),
			"duration_ms": time.Since(start).Milliseconds(),
			"error":       err.Error(),
		})
		respond.Error(c, http.StatusBadGateway, "parse_failed", "Failed to parse job description", nil)
		return
	}

	resp := parseResponse{Extraction: extraction}
	if req.HRRequirements != nil {
		merged := forms.MergeExtraction(*req.HRRequirements, extraction)
		merged.JobDescription = req.JobDescription
		resp.HRRequirements = &merged
	}
	respond.OK(c, resp)
}

type probeRequest struct {
	JobDescription string `json:"jobDescription"`
}

// probe is a connectivity check the builder UI fires before the real
// parse call. It never touches the model.
func (h *Handler) probe(c *gin.Context) {
	var req probeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	respond.OK(c, gin.H{
		"message":       "Test endpoint reachable",
		"receivedChars": len(req.JobDescription),
	})
}
