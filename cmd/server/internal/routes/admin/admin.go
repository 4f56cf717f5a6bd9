// Package admin serves the staff-only management surface. Every route
// requires at least the curator role; destructive routes require
// archivist and the identity registry requires super_admin.
package admin

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	servermiddleware "github.com/digitalmuseum/archive-api/cmd/server/internal/middleware"
	"github.com/digitalmuseum/archive-api/internal/auth"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/types"
)

const name = "github.com/digitalmuseum/archive-api/server/routes/admin"

var tracer = otel.Tracer(name)

type Handler struct {
	store *store.Store
	auth  *auth.Service
}

func Create(s *store.Store, a *auth.Service) *Handler {
	return &Handler{store: s, auth: a}
}

func (h *Handler) AddRoutes(e *echo.Echo) {
	adminGroup := e.Group("/admin", servermiddleware.RequireRole(types.RoleCurator))

	deleteGate := servermiddleware.RequireRole(types.RoleArchivist)

	artifactsGroup := adminGroup.Group("/artifacts")
	artifactsGroup.GET("/", h.ListArtifacts)
	artifactsGroup.POST("/", h.CreateArtifact)
	artifactsGroup.GET("/:artifact_id/", h.GetArtifact)
	artifactsGroup.PATCH("/:artifact_id/", h.UpdateArtifact)
	artifactsGroup.DELETE("/:artifact_id/", h.DeleteArtifact, deleteGate)

	competitionsGroup := adminGroup.Group("/competitions")
	competitionsGroup.GET("/", h.ListCompetitions)
	competitionsGroup.POST("/", h.CreateCompetition)
	competitionsGroup.PATCH("/:competition_id/", h.UpdateCompetition)
	competitionsGroup.DELETE("/:competition_id/", h.DeleteCompetition, deleteGate)
	competitionsGroup.GET("/:competition_id/submissions/", h.ListSubmissions)

	adminGroup.PATCH("/submissions/:submission_id/", h.UpdateSubmission)

	newsGroup := adminGroup.Group("/news")
	newsGroup.POST("/", h.CreateNews)
	newsGroup.PATCH("/:news_id/", h.UpdateNews)
	newsGroup.DELETE("/:news_id/", h.DeleteNews, deleteGate)

	eventsGroup := adminGroup.Group("/events")
	eventsGroup.POST("/", h.CreateEvent)
	eventsGroup.PATCH("/:event_id/", h.UpdateEvent)
	eventsGroup.DELETE("/:event_id/", h.DeleteEvent, deleteGate)

	identitiesGroup := adminGroup.Group(
		"/identities",
		servermiddleware.RequireRole(types.RoleSuperAdmin),
	)
	identitiesGroup.GET("/", h.ListIdentities)
}
