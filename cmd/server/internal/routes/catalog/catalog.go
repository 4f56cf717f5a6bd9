// Package catalog serves the public browsing surface: artifact search,
// news, events and the virtual tour. Nothing here requires a session.
package catalog

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/tour"
)

const name = "github.com/digitalmuseum/archive-api/server/routes/catalog"

var tracer = otel.Tracer(name)

type Handler struct {
	store *store.Store
	tour  *tour.Tour
}

func Create(s *store.Store, t *tour.Tour) *Handler {
	return &Handler{store: s, tour: t}
}

func (h *Handler) AddRoutes(e *echo.Echo) {
	catalogGroup := e.Group("/catalog")
	catalogGroup.GET("/", h.SearchArtifacts)
	catalogGroup.GET("/:artifact_id/", h.GetArtifact)

	newsGroup := e.Group("/news")
	newsGroup.GET("/", h.ListNews)
	newsGroup.GET("/:article_id/", h.GetNews)

	eventsGroup := e.Group("/events")
	eventsGroup.GET("/", h.ListEvents)
	eventsGroup.GET("/:event_id/", h.GetEvent)

	tourGroup := e.Group("/tour")
	tourGroup.GET("/stops/", h.TourStops)
	tourGroup.GET("/stops/:index/", h.TourStop)
	tourGroup.POST("/next/", h.TourNext)
}
