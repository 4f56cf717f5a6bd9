package competitions

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/search"
	"github.com/digitalmuseum/archive-api/internal/types"
)

// List serves the public listing. `time`, `type` and `level` are
// multi-value query params; within a dimension selections OR together,
// across dimensions they AND. Drafts and completed competitions are
// never listed.
func (h *Handler) List(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "List")
	defer span.End()

	now, ok := c.Get("time").(time.Time)
	if !ok {
		now = time.Now()
	}

	filters := search.CompetitionFilters{}
	for _, raw := range c.QueryParams()["time"] {
		filters.Times = append(filters.Times, types.TimeCategory(raw))
	}
	for _, raw := range c.QueryParams()["type"] {
		filters.Types = append(filters.Types, types.CompetitionType(raw))
	}
	for _, raw := range c.QueryParams()["level"] {
		filters.Levels = append(filters.Levels, types.CompetitionLevel(raw))
	}

	results := search.Competitions(h.store.Competitions(), now, filters)

	span.SetAttributes(attribute.Int("results", len(results)))
	span.SetStatus(codes.Ok, "listed competitions")
	return c.JSON(http.StatusOK, results)
}

// Get returns one competition. Drafts answer 404; completed
// competitions stay reachable by ID so published results keep working.
func (h *Handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Get")
	defer span.End()

	id := c.Param("competition_id")
	span.SetAttributes(attribute.String("competition.id", id))

	competition, ok := h.store.CompetitionByID(id)
	if !ok || competition.Status == types.CompetitionStatusDraft {
		span.SetStatus(codes.Ok, "competition absent or draft")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "fetched competition")
	return c.JSON(http.StatusOK, competition)
}
