// Package session serves login, logout and session introspection.
package session

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/digitalmuseum/archive-api/internal/auth"
	"github.com/digitalmuseum/archive-api/internal/config"
	"github.com/digitalmuseum/archive-api/internal/logger"
)

const name = "github.com/digitalmuseum/archive-api/server/routes/session"

var tracer = otel.Tracer(name)

type Handler struct {
	auth      *auth.Service
	rateLimit *config.RateLimitConfig
}

func Create(a *auth.Service, rateLimit *config.RateLimitConfig) *Handler {
	return &Handler{auth: a, rateLimit: rateLimit}
}

func (h *Handler) AddRoutes(e *echo.Echo) {
	sessionGroup := e.Group("/session")

	loginMiddleware := []echo.MiddlewareFunc{}
	if h.rateLimit != nil && h.rateLimit.LoginPerSecond > 0 {
		// Per-IP in-memory limiter. Login is the only credential
		// oracle in the service, so it is the only throttled route.
		loginMiddleware = append(loginMiddleware, middleware.RateLimiterWithConfig(
			middleware.RateLimiterConfig{
				Store: middleware.NewRateLimiterMemoryStoreWithConfig(
					middleware.RateLimiterMemoryStoreConfig{
						Rate:  rate.Limit(h.rateLimit.LoginPerSecond),
						Burst: h.rateLimit.LoginBurst,
					},
				),
			},
		))
	} else {
		logger.Logger.Warn("not configured to rate limit login attempts")
	}

	sessionGroup.POST("/login/", h.Login, loginMiddleware...)
	sessionGroup.POST("/logout/", h.Logout)
	sessionGroup.GET("/me/", h.Me)
}
