package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/types"
)

// ListCompetitions returns every competition regardless of status.
// Drafts and completed contests only ever appear here.
func (h *Handler) ListCompetitions(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "ListCompetitions")
	defer span.End()

	competitions := h.store.Competitions()

	span.SetAttributes(attribute.Int("competition.count", len(competitions)))
	span.SetStatus(codes.Ok, "listed competitions")
	return c.JSON(http.StatusOK, competitions)
}

func (h *Handler) CreateCompetition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "CreateCompetition")
	defer span.End()

	type requestData struct {
		Title               string    `json:"title"                 validate:"required"`
		Description         string    `json:"description"`
		Level               string    `json:"level"                 validate:"required,oneof=district division national"`
		Type                string    `json:"type"                  validate:"required,oneof=essay art photography poem_writing singing debate quiz"`
		EligibilityCriteria string    `json:"eligibility_criteria"`
		StartDate           time.Time `json:"start_date"            validate:"required"`
		EndDate             time.Time `json:"end_date"              validate:"required"`
		JudgingCriteria     string    `json:"judging_criteria"`
		Rewards             string    `json:"rewards"`
		Status              string    `json:"status"                validate:"required,oneof=draft upcoming open judging closed completed"`
		AdminUserID         string    `json:"admin_user_id"         validate:"required"`
		RelatedExhibitionID *string   `json:"related_exhibition_id"`
		MaxParticipants     *int      `json:"max_participants"      validate:"omitempty,gt=0"`
		NextCompetitionID   *string   `json:"next_competition_id"`
		Thumbnail           string    `json:"thumbnail"`
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

	competition, err := h.store.AddCompetition(ctx, types.Competition{
		Title:               rdata.Title,
		Description:         rdata.Description,
		Level:               types.CompetitionLevel(rdata.Level),
		Type:                types.CompetitionType(rdata.Type),
		EligibilityCriteria: rdata.EligibilityCriteria,
		StartDate:           rdata.StartDate,
		EndDate:             rdata.EndDate,
		JudgingCriteria:     rdata.JudgingCriteria,
		Rewards:             rdata.Rewards,
		Status:              types.CompetitionStatus(rdata.Status),
		AdminUserID:         rdata.AdminUserID,
		RelatedExhibitionID: rdata.RelatedExhibitionID,
		MaxParticipants:     rdata.MaxParticipants,
		NextCompetitionID:   rdata.NextCompetitionID,
		Thumbnail:           rdata.Thumbnail,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidDates) {
			span.SetStatus(codes.Ok, "invalid date pair")
			span.RecordError(err)
			return echo.NewHTTPError(http.StatusBadRequest, types.StringError(err.Error()))
		}

		span.SetStatus(codes.Error, "failed to create competition")
		span.RecordError(err)
		return response.InternalServerError
	}

	span.SetAttributes(attribute.String("competition.id", competition.ID))
	span.SetStatus(codes.Ok, "created competition")
	return c.JSON(http.StatusCreated, competition)
}

func (h *Handler) UpdateCompetition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UpdateCompetition")
	defer span.End()

	competitionID := c.Param("competition_id")
	span.SetAttributes(attribute.String("competition.id", competitionID))

	var patch store.CompetitionPatch

	span.AddEvent("parsing request body")
	err := c.Bind(&patch)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return response.BadRequestError
	}

	if patch.Status != nil && !patch.Status.Valid() {
		span.SetStatus(codes.Ok, "unknown status")
		return echo.NewHTTPError(
			http.StatusBadRequest,
			types.StringError("unknown competition status"),
		)
	}

	competition, found, err := h.store.UpdateCompetition(ctx, competitionID, patch)
	if err != nil {
		span.SetStatus(codes.Ok, "invalid date pair")
		span.RecordError(err)
		return echo.NewHTTPError(http.StatusBadRequest, types.StringError(err.Error()))
	}
	if !found {
		span.SetStatus(codes.Ok, "competition absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "updated competition")
	return c.JSON(http.StatusOK, competition)
}

// DeleteCompetition removes the competition; the store cascades to the
// submissions so the admin surface never sees orphans.
func (h *Handler) DeleteCompetition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "DeleteCompetition")
	defer span.End()

	competitionID := c.Param("competition_id")
	span.SetAttributes(attribute.String("competition.id", competitionID))

	if !h.store.DeleteCompetition(ctx, competitionID) {
		span.SetStatus(codes.Ok, "competition absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "deleted competition")
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListSubmissions(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "ListSubmissions")
	defer span.End()

	competitionID := c.Param("competition_id")
	span.SetAttributes(attribute.String("competition.id", competitionID))

	if _, ok := h.store.CompetitionByID(competitionID); !ok {
		span.SetStatus(codes.Ok, "competition absent")
		return response.NotFoundError
	}

	submissions := h.store.SubmissionsForCompetition(competitionID)

	span.SetAttributes(attribute.Int("submission.count", len(submissions)))
	span.SetStatus(codes.Ok, "listed submissions")
	return c.JSON(http.StatusOK, submissions)
}

// UpdateSubmission is the judging operation: status, score and
// feedback are the only mutable fields.
func (h *Handler) UpdateSubmission(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UpdateSubmission")
	defer span.End()

	submissionID := c.Param("submission_id")
	span.SetAttributes(attribute.String("submission.id", submissionID))

	var patch store.SubmissionPatch

	span.AddEvent("parsing request body")
	err := c.Bind(&patch)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return response.BadRequestError
	}

	if patch.Status != nil && !patch.Status.Valid() {
		span.SetStatus(codes.Ok, "unknown status")
		return echo.NewHTTPError(
			http.StatusBadRequest,
			types.StringError("unknown submission status"),
		)
	}

	submission, ok := h.store.UpdateSubmission(ctx, submissionID, patch)
	if !ok {
		span.SetStatus(codes.Ok, "submission absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "updated submission")
	return c.JSON(http.StatusOK, submission)
}
