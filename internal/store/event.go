package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/digitalmuseum/archive-api/internal/types"
)

type EventPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Image       *string    `json:"image"`
	Tags        *[]string  `json:"tags"`
}

func (p *EventPatch) apply(e *types.MuseumEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Tags != nil {
		e.Tags = cloneStrings(*p.Tags)
	}
}

func (s *Store) AddEvent(ctx context.Context, e types.MuseumEvent) types.MuseumEvent {
	_, span := tracer.Start(ctx, "AddEvent")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.newID()
	e.DateCreated = s.clock()
	e.Tags = cloneStrings(e.Tags)
	s.events = append(s.events, e)

	span.SetAttributes(attribute.String("event.id", e.ID))
	s.logMutation("AddEvent", "id", e.ID, "title", e.Title)
	return cloneEvent(e)
}

func (s *Store) UpdateEvent(
	ctx context.Context,
	id string,
	patch EventPatch,
) (types.MuseumEvent, bool) {
	_, span := tracer.Start(ctx, "UpdateEvent")
	defer span.End()

	span.SetAttributes(attribute.String("event.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}

		patch.apply(&s.events[i])
		s.logMutation("UpdateEvent", "id", id)
		return cloneEvent(s.events[i]), true
	}

	return types.MuseumEvent{}, false
}

func (s *Store) DeleteEvent(ctx context.Context, id string) bool {
	_, span := tracer.Start(ctx, "DeleteEvent")
	defer span.End()

	span.SetAttributes(attribute.String("event.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}

		s.events = append(s.events[:i], s.events[i+1:]...)
		s.logMutation("DeleteEvent", "id", id)
		return true
	}

	return false
}

func (s *Store) EventByID(id string) (types.MuseumEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.events {
		if s.events[i].ID == id {
			return cloneEvent(s.events[i]), true
		}
	}

	return types.MuseumEvent{}, false
}

func (s *Store) Events() []types.MuseumEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.MuseumEvent, 0, len(s.events))
	for i := range s.events {
		out = append(out, cloneEvent(s.events[i]))
	}

	return out
}

func cloneEvent(e types.MuseumEvent) types.MuseumEvent {
	e.Tags = cloneStrings(e.Tags)
	return e
}
