package store

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/digitalmuseum/archive-api/internal/types"
)

// SubmissionPatch updates review fields only. Score and Feedback use
// Optional so a judge can clear them back to absent.
type SubmissionPatch struct {
	Status   *types.SubmissionStatus `json:"status"`
	Score    types.Optional[int]     `json:"score"`
	Feedback types.Optional[string]  `json:"feedback"`
}

func (p *SubmissionPatch) apply(sub *types.CompetitionSubmission) {
	if p.Status != nil {
		sub.Status = *p.Status
	}
	if p.Score.Defined {
		sub.Score = p.Score.Value
	}
	if p.Feedback.Defined {
		sub.Feedback = p.Feedback.Value
	}
}

// SubmitEntry records a user's entry into a competition. The status is
// always forced to submitted. It fails when the competition is unknown,
// when it is not effectively open (status open or judging AND the
// deadline has not passed), or when the user already has an entry.
func (s *Store) SubmitEntry(
	ctx context.Context,
	competitionID string,
	userID string,
	contentURL string,
) (types.CompetitionSubmission, error) {
	_, span := tracer.Start(ctx, "SubmitEntry")
	defer span.End()

	span.SetAttributes(
		attribute.String("competition.id", competitionID),
		attribute.String("user.id", userID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	var competition *types.Competition
	for i := range s.competitions {
		if s.competitions[i].ID == competitionID {
			competition = &s.competitions[i]
			break
		}
	}
	if competition == nil {
		span.RecordError(ErrNotFound)
		return types.CompetitionSubmission{}, ErrNotFound
	}

	now := s.clock()
	if !competition.AcceptsEntries(now) {
		span.RecordError(ErrCompetitionClosed)
		return types.CompetitionSubmission{}, ErrCompetitionClosed
	}

	for i := range s.submissions {
		if s.submissions[i].CompetitionID == competitionID &&
			s.submissions[i].UserID == userID {
			span.RecordError(ErrDuplicateSubmission)
			return types.CompetitionSubmission{}, ErrDuplicateSubmission
		}
	}

	sub := types.CompetitionSubmission{
		ID:             s.newID(),
		CompetitionID:  competitionID,
		UserID:         userID,
		SubmissionDate: now,
		Status:         types.SubmissionStatusSubmitted,
		ContentURL:     contentURL,
	}
	s.submissions = append(s.submissions, sub)

	span.SetAttributes(attribute.String("submission.id", sub.ID))
	s.logMutation("SubmitEntry",
		"id", sub.ID,
		"competitionID", competitionID,
		"userID", userID,
	)
	return sub, nil
}

func (s *Store) UpdateSubmission(
	ctx context.Context,
	id string,
	patch SubmissionPatch,
) (types.CompetitionSubmission, bool) {
	_, span := tracer.Start(ctx, "UpdateSubmission")
	defer span.End()

	span.SetAttributes(attribute.String("submission.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID != id {
			continue
		}

		patch.apply(&s.submissions[i])
		s.logMutation("UpdateSubmission", "id", id)
		return s.submissions[i], true
	}

	return types.CompetitionSubmission{}, false
}

// WithdrawEntry hard-deletes by exact (competition, user) match and
// reports how many rows went away. Duplicates should not exist, but if
// they do they are all removed rather than leaving strays behind.
func (s *Store) WithdrawEntry(ctx context.Context, competitionID, userID string) int {
	_, span := tracer.Start(ctx, "WithdrawEntry")
	defer span.End()

	span.SetAttributes(
		attribute.String("competition.id", competitionID),
		attribute.String("user.id", userID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.submissions[:0]
	removed := 0
	for _, sub := range s.submissions {
		if sub.CompetitionID == competitionID && sub.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, sub)
	}
	s.submissions = kept

	if removed > 0 {
		s.logMutation("WithdrawEntry",
			"competitionID", competitionID,
			"userID", userID,
			"removed", removed,
		)
	}

	span.SetAttributes(attribute.Int("removed", removed))
	return removed
}

func (s *Store) SubmissionByID(id string) (types.CompetitionSubmission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.submissions {
		if s.submissions[i].ID == id {
			return s.submissions[i], true
		}
	}

	return types.CompetitionSubmission{}, false
}

// SubmissionsForCompetition filters by exact competition ID, insertion
// order preserved.
func (s *Store) SubmissionsForCompetition(competitionID string) []types.CompetitionSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []types.CompetitionSubmission{}
	for i := range s.submissions {
		if s.submissions[i].CompetitionID == competitionID {
			out = append(out, s.submissions[i])
		}
	}

	return out
}

func (s *Store) SubmissionForUser(
	competitionID string,
	userID string,
) (types.CompetitionSubmission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.submissions {
		if s.submissions[i].CompetitionID == competitionID &&
			s.submissions[i].UserID == userID {
			return s.submissions[i], true
		}
	}

	return types.CompetitionSubmission{}, false
}
