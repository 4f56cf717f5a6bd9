package admin

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/types"
)

func (h *Handler) CreateNews(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "CreateNews")
	defer span.End()

	type requestData struct {
		Title       string    `json:"title"        validate:"required"`
		Summary     string    `json:"summary"`
		Body        string    `json:"body"         validate:"required"`
		Author      string    `json:"author"       validate:"required"`
		PublishDate time.Time `json:"publish_date" validate:"required"`
		Tags        []string  `json:"tags"`
		Image       string    `json:"image"`
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

	article := h.store.AddNews(ctx, types.NewsArticle{
		Title:       rdata.Title,
		Summary:     rdata.Summary,
		Body:        rdata.Body,
		Author:      rdata.Author,
		PublishDate: rdata.PublishDate,
		Tags:        rdata.Tags,
		Image:       rdata.Image,
	})

	span.SetAttributes(attribute.String("news.id", article.ID))
	span.SetStatus(codes.Ok, "created article")
	return c.JSON(http.StatusCreated, article)
}

func (h *Handler) UpdateNews(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UpdateNews")
	defer span.End()

	newsID := c.Param("news_id")
	span.SetAttributes(attribute.String("news.id", newsID))

	var patch store.NewsPatch

	span.AddEvent("parsing request body")
	err := c.Bind(&patch)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return response.BadRequestError
	}

	article, ok := h.store.UpdateNews(ctx, newsID, patch)
	if !ok {
		span.SetStatus(codes.Ok, "article absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "updated article")
	return c.JSON(http.StatusOK, article)
}

func (h *Handler) DeleteNews(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "DeleteNews")
	defer span.End()

	newsID := c.Param("news_id")
	span.SetAttributes(attribute.String("news.id", newsID))

	if !h.store.DeleteNews(ctx, newsID) {
		span.SetStatus(codes.Ok, "article absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "deleted article")
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateEvent(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "CreateEvent")
	defer span.End()

	type requestData struct {
		Title       string    `json:"title"       validate:"required"`
		Description string    `json:"description"`
		Location    string    `json:"location"    validate:"required"`
		StartTime   time.Time `json:"start_time"  validate:"required"`
		EndTime     time.Time `json:"end_time"    validate:"required,gtfield=StartTime"`
		Image       string    `json:"image"`
		Tags        []string  `json:"tags"`
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

	event := h.store.AddEvent(ctx, types.MuseumEvent{
		Title:       rdata.Title,
		Description: rdata.Description,
		Location:    rdata.Location,
		StartTime:   rdata.StartTime,
		EndTime:     rdata.EndTime,
		Image:       rdata.Image,
		Tags:        rdata.Tags,
	})

	span.SetAttributes(attribute.String("event.id", event.ID))
	span.SetStatus(codes.Ok, "created event")
	return c.JSON(http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UpdateEvent")
	defer span.End()

	eventID := c.Param("event_id")
	span.SetAttributes(attribute.String("event.id", eventID))

	var patch store.EventPatch

	span.AddEvent("parsing request body")
	err := c.Bind(&patch)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return response.BadRequestError
	}

	event, ok := h.store.UpdateEvent(ctx, eventID, patch)
	if !ok {
		span.SetStatus(codes.Ok, "event absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "updated event")
	return c.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "DeleteEvent")
	defer span.End()

	eventID := c.Param("event_id")
	span.SetAttributes(attribute.String("event.id", eventID))

	if !h.store.DeleteEvent(ctx, eventID) {
		span.SetStatus(codes.Ok, "event absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "deleted event")
	return c.NoContent(http.StatusNoContent)
}
