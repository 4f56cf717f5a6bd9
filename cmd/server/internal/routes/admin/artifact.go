package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/digitalmuseum/archive-api/cmd/server/internal/response"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/types"
)

// ListArtifacts returns the full catalog, private records included.
// The public catalog route is the one that filters on visibility.
func (h *Handler) ListArtifacts(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "ListArtifacts")
	defer span.End()

	artifacts := h.store.Artifacts()

	span.SetAttributes(attribute.Int("artifact.count", len(artifacts)))
	span.SetStatus(codes.Ok, "listed artifacts")
	return c.JSON(http.StatusOK, artifacts)
}

func (h *Handler) GetArtifact(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "GetArtifact")
	defer span.End()

	artifactID := c.Param("artifact_id")
	span.SetAttributes(attribute.String("artifact.id", artifactID))

	artifact, ok := h.store.ArtifactByID(artifactID)
	if !ok {
		span.SetStatus(codes.Ok, "artifact absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "fetched artifact")
	return c.JSON(http.StatusOK, artifact)
}

func (h *Handler) CreateArtifact(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "CreateArtifact")
	defer span.End()

	type requestData struct {
		CollectionNumber    string   `json:"collection_number"    validate:"required"`
		AccessionNumber     string   `json:"accession_number"`
		CollectionDate      string   `json:"collection_date"      validate:"omitempty,datetime=2006-01-02"`
		ContributorName     string   `json:"contributor_name"`
		ObjectType          string   `json:"object_type"          validate:"required"`
		ObjectHead          string   `json:"object_head"          validate:"required"`
		Description         string   `json:"description"`
		Measurement         string   `json:"measurement"`
		GalleryNumber       string   `json:"gallery_number"`
		FoundPlace          string   `json:"found_place"`
		SignificanceComment string   `json:"significance_comment"`
		Tags                []string `json:"tags"`
		Images              []string `json:"images"               validate:"min=1"`
		IsPublic            bool     `json:"is_public"`
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

	artifact := h.store.AddArtifact(ctx, types.Artifact{
		CollectionNumber:    rdata.CollectionNumber,
		AccessionNumber:     rdata.AccessionNumber,
		CollectionDate:      rdata.CollectionDate,
		ContributorName:     rdata.ContributorName,
		ObjectType:          rdata.ObjectType,
		ObjectHead:          rdata.ObjectHead,
		Description:         rdata.Description,
		Measurement:         rdata.Measurement,
		GalleryNumber:       rdata.GalleryNumber,
		FoundPlace:          rdata.FoundPlace,
		SignificanceComment: rdata.SignificanceComment,
		Tags:                rdata.Tags,
		Images:              rdata.Images,
		IsPublic:            rdata.IsPublic,
	})

	span.SetAttributes(attribute.String("artifact.id", artifact.ID))
	span.SetStatus(codes.Ok, "created artifact")
	return c.JSON(http.StatusCreated, artifact)
}

func (h *Handler) UpdateArtifact(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UpdateArtifact")
	defer span.End()

	artifactID := c.Param("artifact_id")
	span.SetAttributes(attribute.String("artifact.id", artifactID))

	var patch store.ArtifactPatch

	span.AddEvent("parsing request body")
	err := c.Bind(&patch)
	if err != nil {
		span.SetStatus(codes.Ok, "failed to parse request data")
		span.RecordError(err)
		return response.BadRequestError
	}

	if patch.ObjectHead != nil && *patch.ObjectHead == "" {
		span.SetStatus(codes.Ok, "empty object head")
		return echo.NewHTTPError(
			http.StatusBadRequest,
			types.StringError("object_head must not be empty"),
		)
	}

	artifact, ok := h.store.UpdateArtifact(ctx, artifactID, patch)
	if !ok {
		span.SetStatus(codes.Ok, "artifact absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "updated artifact")
	return c.JSON(http.StatusOK, artifact)
}

func (h *Handler) DeleteArtifact(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "DeleteArtifact")
	defer span.End()

	artifactID := c.Param("artifact_id")
	span.SetAttributes(attribute.String("artifact.id", artifactID))

	if !h.store.DeleteArtifact(ctx, artifactID) {
		span.SetStatus(codes.Ok, "artifact absent")
		return response.NotFoundError
	}

	span.SetStatus(codes.Ok, "deleted artifact")
	return c.NoContent(http.StatusNoContent)
}
