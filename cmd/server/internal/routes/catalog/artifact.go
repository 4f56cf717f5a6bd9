package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/search"
)

// SearchArtifacts handles the public faceted search. `q` is free text;
// `type` is an exact object type ("all" disables); `from`/`to` bound
// the collection date. Private artifacts never appear here.
func (h *Handler) SearchArtifacts(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "SearchArtifacts")
	defer span.End()

	query := c.QueryParam("q")
	filters := search.ArtifactFilters{
		ObjectType: c.QueryParam("type"),
		FromDate:   c.QueryParam("from"),
		ToDate:     c.QueryParam("to"),
	}

	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("filter.objectType", filters.ObjectType),
	)

	results := h.store.SearchArtifacts(query, filters)

	span.SetAttributes(attribute.Int("results", len(results)))
	span.SetStatus(codes.Ok, "searched artifacts")
	return c.JSON(http.StatusOK, results)
}

// GetArtifact returns one public artifact. Private artifacts answer
// 404, indistinguishable from absence.
func (h *Handler) GetArtifact(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "GetArtifact")
	defer span.End()

	id := c.Param("artifact_id")
	span.SetAttributes(attribute.String("artifact.id", id))

	artifact, ok := h.store.ArtifactByID(id)
	if !ok || !artifact.IsPublic {
		span.SetStatus(codes.Ok, "artifact absent or private")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "fetched artifact")
	return c.JSON(http.StatusOK, artifact)
}
