package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/digitalmuseum/archive-api/internal/auth"
	"github.com/digitalmuseum/archive-api/internal/logger"
	"github.com/digitalmuseum/archive-api/internal/types"
)

// SessionUser pulls the identity Session left on the context. Nil means
// anonymous.
func SessionUser(c echo.Context) *types.User {
	user, ok := c.Get(UserContextKey).(*types.User)
	if !ok {
		return nil
	}

	return user
}

// RequireRole gates a route group on the ranked role order. Anonymous
// requests get 401 so the client can send the user through login;
// authenticated but under-ranked requests get a calm 403.
func RequireRole(required types.Role) echo.MiddlewareFunc {
	l := logger.Logger.With("requiredRole", required)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "RequireRole", trace.WithAttributes(
				attribute.String("requiredRole", required.String()),
			))
			defer span.End()

			user := SessionUser(c)
			if user == nil {
				l.DebugContext(ctx, "anonymous request to gated route")
				span.SetStatus(codes.Ok, "unauthenticated")
				return echo.NewHTTPError(
					http.StatusUnauthorized,
					types.StringError("authentication required"),
				)
			}

			if !auth.Authorized(user, required) {
				l.DebugContext(ctx, "denying access", "userID", user.ID, "role", user.Role)
				span.SetStatus(codes.Ok, "access denied")
				return echo.NewHTTPError(
					http.StatusForbidden,
					types.StringError("access denied"),
				)
			}

			span.SetStatus(codes.Ok, "granting access")
			return next(c)
		}
	}
}
