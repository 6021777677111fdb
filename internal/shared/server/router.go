package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/screening"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/server/middleware"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h *screening.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	r.GET("/metrics", metrics.Handler())

	// The process endpoint is the expensive one; it alone is rate limited.
	limiter := middleware.NewRateLimiter(time.Now)
	rule := middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst}

	api := r.Group("/api")
	h.RegisterRoutes(api, middleware.RateLimit(rule, limiter))

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
