package accounts

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/users"
)

// Handler wires auth HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches auth routes to the router group. otpLimit guards
// the endpoints that send mail.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, otpLimit gin.HandlerFunc) {
	auth := rg.Group("/auth")
	auth.POST("/register", otpLimit, h.register)
	auth.POST("/generate-otp", otpLimit, h.register)
	auth.POST("/resend-otp", otpLimit, h.register)
	auth.POST("/verify-otp", h.verifyOTP)
	auth.POST("/login", h.login)
	auth.POST("/forgot-password", otpLimit, h.forgotPassword)
	auth.POST("/update-password", h.updatePassword)
}

type emailRequest struct {
	Email string `json:"email"`
}

func (h *Handler) register(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required", nil)
		return
	}

	if err := h.Svc.BeginRegistration(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, users.ErrEmailExists):
			respond.Error(c, http.StatusBadRequest, "email_exists", "User already exists", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to send OTP", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "OTP sent successfully"})
}

type verifyOTPRequest struct {
	Email    string       `json:"email"`
	OTP      string       `json:"otp"`
	UserData Registration `json:"userData"`
}

func (h *Handler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, err := h.Svc.CompleteRegistration(c.Request.Context(), req.Email, req.OTP, req.UserData)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTP):
			respond.Error(c, http.StatusBadRequest, "invalid_otp", "Invalid or expired OTP", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, users.ErrEmailExists):
			respond.Error(c, http.StatusBadRequest, "email_exists", "User already exists", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"message": "Email verified and user registered successfully",
		"user":    toUserResponse(user),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	token, user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusBadRequest, "invalid_credentials", "Invalid credentials", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email is required", nil)
		return
	}

	if err := h.Svc.BeginPasswordReset(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to send OTP", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "OTP sent successfully"})
}

type updatePasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.CompletePasswordReset(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, ErrInvalidOTP):
			respond.Error(c, http.StatusBadRequest, "invalid_otp", "Invalid or expired OTP", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, users.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "User not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update password", nil)
		}
		return
	}

	respond.OK(c, gin.H{"message": "Password updated successfully"})
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u users.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
