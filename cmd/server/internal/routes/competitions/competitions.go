// Package competitions serves the public competition listing and the
// researcher-level entry operations.
package competitions

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	servermiddleware "github.com/digitalmuseum/archive-api/cmd/server/internal/middleware"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/types"
)

const name = "github.com/digitalmuseum/archive-api/server/routes/competitions"

var tracer = otel.Tracer(name)

type Handler struct {
	store *store.Store
}

func Create(s *store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) AddRoutes(e *echo.Echo) {
	competitionsGroup := e.Group("/competitions")
	competitionsGroup.GET("/", h.List)
	competitionsGroup.GET("/:competition_id/", h.Get)

	entriesGroup := competitionsGroup.Group(
		"/:competition_id/entries",
		servermiddleware.RequireRole(types.RoleResearcher),
	)
	entriesGroup.POST("/", h.SubmitEntry)
	entriesGroup.DELETE("/", h.WithdrawEntry)
	entriesGroup.GET("/mine/", h.MyEntry)
}
