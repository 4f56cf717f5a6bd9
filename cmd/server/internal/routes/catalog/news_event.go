package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
)

func (h *Handler) ListNews(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "ListNews")
	defer span.End()

	articles := h.store.News()

	span.SetAttributes(attribute.Int("results", len(articles)))
	span.SetStatus(codes.Ok, "listed news")
	return c.JSON(http.StatusOK, articles)
}

func (h *Handler) GetNews(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "GetNews")
	defer span.End()

	id := c.Param("article_id")
	span.SetAttributes(attribute.String("news.id", id))

	article, ok := h.store.NewsByID(id)
	if !ok {
		span.SetStatus(codes.Ok, "article absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "fetched article")
	return c.JSON(http.StatusOK, article)
}

func (h *Handler) ListEvents(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "ListEvents")
	defer span.End()

	events := h.store.Events()

	span.SetAttributes(attribute.Int("results", len(events)))
	span.SetStatus(codes.Ok, "listed events")
	return c.JSON(http.StatusOK, events)
}

func (h *Handler) GetEvent(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "GetEvent")
	defer span.End()

	id := c.Param("event_id")
	span.SetAttributes(attribute.String("event.id", id))

	event, ok := h.store.EventByID(id)
	if !ok {
		span.SetStatus(codes.Ok, "event absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "fetched event")
	return c.JSON(http.StatusOK, event)
}
