package session

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	servermiddleware "github.com/digitalmuseum/archive-api/cmd/server/internal/middleware"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/auth"
	"github.com/digitalmuseum/archive-api/internal/types"
)

type loginResponse struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

// Login verifies credentials and issues a bearer token. Unknown email
// and wrong secret produce the same generic 401.
func (h *Handler) Login(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Login")
	defer span.End()

	type requestData struct {
		Email  string `json:"email"  validate:"required,email"`
		Secret string `json:"secret" validate:"required"`
	}
	var rdata requestData

	span.AddEvent("parsing request body")
	err := c.Bind(&rdata)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return response.BadRequestError
	}

	span.AddEvent("validating request body")
	err = c.Validate(rdata)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to validate request data")
		span.RecordError(err)
		return echo.NewHTTPError(http.StatusBadRequest, types.ValidationError(err))
	}

	token, user, err := h.auth.Login(ctx, rdata.Email, rdata.Secret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			span.SetStatus(codes.Ok, "failed login attempt")
			return echo.NewHTTPError(
				http.StatusUnauthorized,
				types.StringError("invalid email or secret"),
			)
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to log in")
		return response.InternalServerError
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	span.SetStatus(codes.Ok, "logged in")
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout revokes the presented token. Always 204: revoking a missing,
// expired or already-revoked token is not an error.
func (h *Handler) Logout(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Logout")
	defer span.End()

	h.auth.Logout(servermiddleware.BearerToken(c))

	span.SetStatus(codes.Ok, "logged out")
	return c.NoContent(http.StatusNoContent)
}

// Me reflects the resolved session identity back to the client.
func (h *Handler) Me(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Me")
	defer span.End()

	user := servermiddleware.SessionUser(c)
	if user == nil {
		span.SetStatus(codes.Ok, "anonymous")
		return echo.NewHTTPError(
			http.StatusUnauthorized,
			types.StringError("authentication required"),
		)
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	span.SetStatus(codes.Ok, "resolved session")
	return c.JSON(http.StatusOK, user)
}
