package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ListIdentities returns the configured identity registry. Secret
// hashes never serialize; the Identity JSON tags see to that.
func (h *Handler) ListIdentities(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "ListIdentities")
	defer span.End()

	identities := h.auth.Identities()

	span.SetAttributes(attribute.Int("identity.count", len(identities)))
	span.SetStatus(codes.Ok, "listed identities")
	return c.JSON(http.StatusOK, identities)
}
