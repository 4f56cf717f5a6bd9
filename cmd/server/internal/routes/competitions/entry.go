package competitions

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	servermiddleware "github.com/digitalmuseum/archive-api/cmd/server/internal/middleware"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/types"
)

// SubmitEntry records the session user's entry. The store forces the
// status to submitted and rejects duplicates and closed competitions.
func (h *Handler) SubmitEntry(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "SubmitEntry")
	defer span.End()

	user := servermiddleware.SessionUser(c)
	if user == nil {
		span.SetStatus(codes.Error, "no session user after role gate")
		return response.InternalServerError
	}

	competitionID := c.Param("competition_id")
	span.SetAttributes(
		attribute.String("competition.id", competitionID),
		attribute.String("user.id", user.ID),
	)

	type requestData struct {
		ContentURL string `json:"content_url" validate:"required"`
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

	submission, err := h.store.SubmitEntry(ctx, competitionID, user.ID, rdata.ContentURL)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, store.ErrNotFound):
			span.SetStatus(codes.Ok, "competition absent")
			return response.NotFoundError
		case errors.Is(err, store.ErrCompetitionClosed):
			span.SetStatus(codes.Ok, "competition closed")
			return echo.NewHTTPError(
				http.StatusConflict,
				types.StringError("competition is not accepting entries"),
			)
		case errors.Is(err, store.ErrDuplicateSubmission):
			span.SetStatus(codes.Ok, "duplicate entry")
			return echo.NewHTTPError(
				http.StatusConflict,
				types.StringError("an entry for this competition already exists"),
			)
		}

		span.SetStatus(codes.Error, "failed to record entry")
		return response.InternalServerError
	}

	span.SetAttributes(attribute.String("submission.id", submission.ID))
	span.SetStatus(codes.Ok, "recorded entry")
	return c.JSON(http.StatusCreated, submission)
}

// WithdrawEntry hard-deletes the session user's entry. Withdrawing an
// entry that does not exist is a 404, not an error state.
func (h *Handler) WithdrawEntry(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "WithdrawEntry")
	defer span.End()

	user := servermiddleware.SessionUser(c)
	if user == nil {
		span.SetStatus(codes.Error, "no session user after role gate")
		return response.InternalServerError
	}

	competitionID := c.Param("competition_id")
	span.SetAttributes(
		attribute.String("competition.id", competitionID),
		attribute.String("user.id", user.ID),
	)

	removed := h.store.WithdrawEntry(ctx, competitionID, user.ID)
	if removed == 0 {
		span.SetStatus(codes.Ok, "no entry to withdraw")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "withdrew entry")
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MyEntry(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "MyEntry")
	defer span.End()

	user := servermiddleware.SessionUser(c)
	if user == nil {
		span.SetStatus(codes.Error, "no session user after role gate")
		return response.InternalServerError
	}

	competitionID := c.Param("competition_id")
	span.SetAttributes(
		attribute.String("competition.id", competitionID),
		attribute.String("user.id", user.ID),
	)

	submission, ok := h.store.SubmissionForUser(competitionID, user.ID)
	if !ok {
		span.SetStatus(codes.Ok, "no entry")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "fetched entry")
	return c.JSON(http.StatusOK, submission)
}
