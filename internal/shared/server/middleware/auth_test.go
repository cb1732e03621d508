package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/shared/auth"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth())
	r.GET("/api/v1/forms", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c), "email": UserEmailFromContext(c)})
	})
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/api/v1/forms/public/abc123", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := authRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/forms", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "No token, authorization denied") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	r := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms", nil)
	req.Header.Set(TokenHeader, "not-a-jwt")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Token is not valid") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestAuthAcceptsValidTokenAndSetsIdentity(t *testing.T) {
	r := authRouter()

	token, err := auth.SignJWT(auth.Claims{Sub: "user-42", Email: "hr@example.com"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms", nil)
	req.Header.Set(TokenHeader, token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "user-42") {
		t.Fatalf("userId not propagated: %s", resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "hr@example.com") {
		t.Fatalf("email not propagated: %s", resp.Body.String())
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	r := authRouter()

	expired := time.Now().UTC().Add(-time.Hour).Unix()
	token, err := auth.SignJWT(auth.Claims{Sub: "user-42", Exp: expired})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms", nil)
	req.Header.Set(TokenHeader, token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestAuthSkipsPublicPaths(t *testing.T) {
	r := authRouter()

	for _, path := range []string{"/api/v1/health", "/api/v1/forms/public/abc123"} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, resp.Code)
		}
	}
}
