package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/codes"
)

// Session resolves an optional bearer token into the session identity.
// It never rejects: public routes pass through anonymous, and the role
// check belongs to RequireRole. Invalid and revoked tokens resolve to
// anonymous rather than an error, matching the soft-failure contract.
func (h *Handler) Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, span := tracer.Start(c.Request().Context(), "Session")
			defer span.End()

			token := BearerToken(c)
			if token == "" {
				span.AddEvent("no bearer token, continuing anonymous")
				span.SetStatus(codes.Ok, "anonymous")
				return next(c)
			}

			user, ok := h.Auth.CurrentUser(token)
			if !ok {
				span.AddEvent("token did not resolve, continuing anonymous")
				span.SetStatus(codes.Ok, "anonymous")
				return next(c)
			}

			c.Set(UserContextKey, user)

			span.SetStatus(codes.Ok, "resolved session")
			return next(c)
		}
	}
}

// BearerToken extracts the raw token from the Authorization header,
// empty when the header is missing or not a bearer scheme.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
