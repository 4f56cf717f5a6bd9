// Package store is the single authoritative in-memory holder of the
// archive's five collections: artifacts, competitions, competition
// submissions, news articles and museum events. All mutation happens
// through its exported operations; readers get copies, never aliases
// into the backing slices. Collections iterate in insertion order.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/digitalmuseum/archive-api/internal/logger"
	"github.com/digitalmuseum/archive-api/internal/types"
)

const name string = "github.com/digitalmuseum/archive-api/internal/store"

var tracer = otel.Tracer(name)

type Store struct {
	clock func() time.Time

	artifacts    []types.Artifact
	competitions []types.Competition
	submissions  []types.CompetitionSubmission
	news         []types.NewsArticle
	events       []types.MuseumEvent

	mu sync.RWMutex
}

// New returns an empty store on the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock pins the store to a caller-supplied clock. Tests use it
// to fix "now" for deadline and time-category checks.
func NewWithClock(clock func() time.Time) *Store {
	return &Store{clock: clock}
}

// NewSeeded returns a store pre-populated with the compiled-in catalog.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}

func (s *Store) newID() string {
	return uuid.NewString()
}

func (s *Store) logMutation(op string, attrs ...any) {
	logger.Logger.Info("store mutation", append([]any{"op", op}, attrs...)...)
}
