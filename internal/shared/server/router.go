package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/accounts"
	"recruit-backend/internal/forms"
	"recruit-backend/internal/jdparse"
	"recruit-backend/internal/review"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/submissions"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	AccountsHandler    *accounts.Handler
	FormsHandler       *forms.Handler
	SubmissionsHandler *submissions.Handler
	ReviewHandler      *review.Handler
	JDParseHandler     *jdparse.Handler
}

// NewRouter constructs the Gin engine with middleware and routes
// registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	r.GET("/metrics", metrics.Handler())
	if deps.Config.ObjectStoreType == "local" && deps.Config.LocalStoreDir != "" {
		r.Static("/files", deps.Config.LocalStoreDir)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	otpLimit := middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: "OTP",
		Rules: map[string]middleware.RateLimitRule{
			"OTP": {Rate: 0.2, Burst: 5},
		},
	})

	deps.AccountsHandler.RegisterRoutes(api, otpLimit)
	deps.FormsHandler.RegisterRoutes(api)
	deps.SubmissionsHandler.RegisterRoutes(api)
	deps.ReviewHandler.RegisterRoutes(api)
	deps.JDParseHandler.RegisterRoutes(api)
	deps.JDParseHandler.RegisterPublicRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
