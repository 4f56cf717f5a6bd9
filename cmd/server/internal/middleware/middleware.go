package middleware

import (
	"go.opentelemetry.io/otel"

	"github.com/digitalmuseum/archive-api/internal/auth"
)

const name string = "github.com/digitalmuseum/archive-api/server/middleware"

var tracer = otel.Tracer(name)

// UserContextKey is where Session leaves the resolved *types.User.
const UserContextKey = "user"

type Handler struct {
	Auth *auth.Service
}
