package store

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/digitalmuseum/archive-api/internal/types"
)

// CompetitionPatch is a partial update. Nil fields are left untouched.
// Optional wrappers cover fields that can be cleared outright.
type CompetitionPatch struct {
	Title               *string                  `json:"title"`
	Description         *string                  `json:"description"`
	Level               *types.CompetitionLevel  `json:"level"`
	Type                *types.CompetitionType   `json:"type"`
	EligibilityCriteria *string                  `json:"eligibility_criteria"`
	StartDate           *time.Time               `json:"start_date"`
	EndDate             *time.Time               `json:"end_date"`
	JudgingCriteria     *string                  `json:"judging_criteria"`
	Rewards             *string                  `json:"rewards"`
	Status              *types.CompetitionStatus `json:"status"`
	AdminUserID         *string                  `json:"admin_user_id"`
	RelatedExhibitionID types.Optional[string]   `json:"related_exhibition_id"`
	MaxParticipants     types.Optional[int]      `json:"max_participants"`
	NextCompetitionID   types.Optional[string]   `json:"next_competition_id"`
	Thumbnail           *string                  `json:"thumbnail"`
}

func (p *CompetitionPatch) apply(c *types.Competition) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Level != nil {
		c.Level = *p.Level
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.EligibilityCriteria != nil {
		c.EligibilityCriteria = *p.EligibilityCriteria
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.JudgingCriteria != nil {
		c.JudgingCriteria = *p.JudgingCriteria
	}
	if p.Rewards != nil {
		c.Rewards = *p.Rewards
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.AdminUserID != nil {
		c.AdminUserID = *p.AdminUserID
	}
	if p.RelatedExhibitionID.Defined {
		c.RelatedExhibitionID = p.RelatedExhibitionID.Value
	}
	if p.MaxParticipants.Defined {
		c.MaxParticipants = p.MaxParticipants.Value
	}
	if p.NextCompetitionID.Defined {
		c.NextCompetitionID = p.NextCompetitionID.Value
	}
	if p.Thumbnail != nil {
		c.Thumbnail = *p.Thumbnail
	}
}

// AddCompetition validates the date pair, assigns ID and DateCreated
// and appends. An end date at or before the start date is rejected.
func (s *Store) AddCompetition(
	ctx context.Context,
	c types.Competition,
) (types.Competition, error) {
	_, span := tracer.Start(ctx, "AddCompetition")
	defer span.End()

	if !c.EndDate.After(c.StartDate) {
		span.RecordError(ErrInvalidDates)
		return types.Competition{}, ErrInvalidDates
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.newID()
	c.DateCreated = s.clock()
	s.competitions = append(s.competitions, c)

	span.SetAttributes(attribute.String("competition.id", c.ID))
	s.logMutation("AddCompetition", "id", c.ID, "title", c.Title)
	return c, nil
}

// UpdateCompetition merges the patch; the resulting date pair must
// still be ordered. The bool reports whether the ID was known.
func (s *Store) UpdateCompetition(
	ctx context.Context,
	id string,
	patch CompetitionPatch,
) (types.Competition, bool, error) {
	_, span := tracer.Start(ctx, "UpdateCompetition")
	defer span.End()

	span.SetAttributes(attribute.String("competition.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.competitions {
		if s.competitions[i].ID != id {
			continue
		}

		merged := s.competitions[i]
		patch.apply(&merged)
		if !merged.EndDate.After(merged.StartDate) {
			span.RecordError(ErrInvalidDates)
			return types.Competition{}, true, ErrInvalidDates
		}

		s.competitions[i] = merged
		s.logMutation("UpdateCompetition", "id", id)
		return merged, true, nil
	}

	return types.Competition{}, false, nil
}

// DeleteCompetition removes the competition and cascades to every
// submission referencing it. Referential cleanup is the store's job,
// not the caller's.
func (s *Store) DeleteCompetition(ctx context.Context, id string) bool {
	_, span := tracer.Start(ctx, "DeleteCompetition")
	defer span.End()

	span.SetAttributes(attribute.String("competition.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.competitions {
		if s.competitions[i].ID != id {
			continue
		}

		s.competitions = append(s.competitions[:i], s.competitions[i+1:]...)

		kept := s.submissions[:0]
		removed := 0
		for _, sub := range s.submissions {
			if sub.CompetitionID == id {
				removed++
				continue
			}
			kept = append(kept, sub)
		}
		s.submissions = kept

		span.SetAttributes(attribute.Int("submissions.cascaded", removed))
		s.logMutation("DeleteCompetition", "id", id, "cascadedSubmissions", removed)
		return true
	}

	return false
}

func (s *Store) CompetitionByID(id string) (types.Competition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.competitions {
		if s.competitions[i].ID == id {
			return s.competitions[i], true
		}
	}

	return types.Competition{}, false
}

// Competitions returns every competition, drafts included, in
// insertion order. Public filtering happens in the search package.
func (s *Store) Competitions() []types.Competition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Competition, len(s.competitions))
	copy(out, s.competitions)
	return out
}
