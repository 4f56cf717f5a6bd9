package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/digitalmuseum/archive-api/internal/types"
)

type NewsPatch struct {
	Title       *string    `json:"title"`
	Summary     *string    `json:"summary"`
	Body        *string    `json:"body"`
	Author      *string    `json:"author"`
	PublishDate *time.Time `json:"publish_date"`
	Tags        *[]string  `json:"tags"`
	Image       *string    `json:"image"`
}

func (p *NewsPatch) apply(n *types.NewsArticle) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Summary != nil {
		n.Summary = *p.Summary
	}
	if p.Body != nil {
		n.Body = *p.Body
	}
	if p.Author != nil {
		n.Author = *p.Author
	}
	if p.PublishDate != nil {
		n.PublishDate = *p.PublishDate
	}
	if p.Tags != nil {
		n.Tags = cloneStrings(*p.Tags)
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
}

func (s *Store) AddNews(ctx context.Context, n types.NewsArticle) types.NewsArticle {
	_, span := tracer.Start(ctx, "AddNews")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.newID()
	n.DateCreated = s.clock()
	n.Tags = cloneStrings(n.Tags)
	s.news = append(s.news, n)

	span.SetAttributes(attribute.String("news.id", n.ID))
	s.logMutation("AddNews", "id", n.ID, "title", n.Title)
	return cloneNews(n)
}

func (s *Store) UpdateNews(
	ctx context.Context,
	id string,
	patch NewsPatch,
) (types.NewsArticle, bool) {
	_, span := tracer.Start(ctx, "UpdateNews")
	defer span.End()

	span.SetAttributes(attribute.String("news.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.news {
		if s.news[i].ID != id {
			continue
		}

		patch.apply(&s.news[i])
		s.logMutation("UpdateNews", "id", id)
		return cloneNews(s.news[i]), true
	}

	return types.NewsArticle{}, false
}

func (s *Store) DeleteNews(ctx context.Context, id string) bool {
	_, span := tracer.Start(ctx, "DeleteNews")
	defer span.End()

	span.SetAttributes(attribute.String("news.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.news {
		if s.news[i].ID != id {
			continue
		}

		s.news = append(s.news[:i], s.news[i+1:]...)
		s.logMutation("DeleteNews", "id", id)
		return true
	}

	return false
}

func (s *Store) NewsByID(id string) (types.NewsArticle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.news {
		if s.news[i].ID == id {
			return cloneNews(s.news[i]), true
		}
	}

	return types.NewsArticle{}, false
}

func (s *Store) News() []types.NewsArticle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.NewsArticle, 0, len(s.news))
	for i := range s.news {
		out = append(out, cloneNews(s.news[i]))
	}

	return out
}

func cloneNews(n types.NewsArticle) types.NewsArticle {
	n.Tags = cloneStrings(n.Tags)
	return n
}
