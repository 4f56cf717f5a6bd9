package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/tour"
)

func (h *Handler) TourStops(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "TourStops")
	defer span.End()

	stops := h.tour.Stops()

	span.SetAttributes(attribute.Int("stops", len(stops)))
	span.SetStatus(codes.Ok, "listed tour stops")
	return c.JSON(http.StatusOK, stops)
}

// TourStop jumps the tour to a stop index and returns the resolved
// view: a panorama when one is near enough, the raw coordinate
// otherwise.
func (h *Handler) TourStop(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "TourStop")
	defer span.End()

	rawIndex := c.Param("index")
	span.SetAttributes(attribute.String("index.raw", rawIndex))

	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		span.SetStatus(codes.Ok, "non numeric stop index")
		return response.NotFoundError
	}

	view, err := h.tour.Jump(index)
	if err != nil {
		if errors.Is(err, tour.ErrStopOutOfRange) {
			span.SetStatus(codes.Ok, "stop index out of range")
			return response.NotFoundError
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to jump to stop")
		return response.InternalServerError
	}

	span.SetStatus(codes.Ok, "resolved stop view")
	return c.JSON(http.StatusOK, view)
}

// TourNext advances to the following stop, wrapping at the end. The
// front end's autoplay timer calls this on each tick.
func (h *Handler) TourNext(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "TourNext")
	defer span.End()

	view := h.tour.Next()

	span.SetAttributes(attribute.Int("index", view.Index))
	span.SetStatus(codes.Ok, "advanced tour")
	return c.JSON(http.StatusOK, view)
}
