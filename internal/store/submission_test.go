package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmuseum/archive-api/internal/types"
)

func TestSubmitEntry(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(fixedClock(now))

	open, err := s.AddCompetition(
		context.TODO(),
		newOpenCompetition(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)),
	)
	require.NoError(t, err)

	t.Run("ForcesSubmittedStatus", func(t *testing.T) {
		sub, err := s.SubmitEntry(context.TODO(), open.ID, "user-a", "https://essays.example/a")
		require.NoError(t, err)
		assert.Equal(t, types.SubmissionStatusSubmitted, sub.Status)
		assert.Equal(t, now, sub.SubmissionDate)
	})

	t.Run("RejectsDuplicate", func(t *testing.T) {
		_, err := s.SubmitEntry(context.TODO(), open.ID, "user-a", "https://essays.example/a2")
		assert.ErrorIs(t, err, ErrDuplicateSubmission)
	})

	t.Run("UnknownCompetition", func(t *testing.T) {
		_, err := s.SubmitEntry(context.TODO(), "missing", "user-a", "https://essays.example/a")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("StatusNotAccepting", func(t *testing.T) {
		upcoming := newOpenCompetition(now.AddDate(0, 1, 0), now.AddDate(0, 2, 0))
		upcoming.Status = types.CompetitionStatusUpcoming
		created, err := s.AddCompetition(context.TODO(), upcoming)
		require.NoError(t, err)

		_, err = s.SubmitEntry(context.TODO(), created.ID, "user-a", "https://essays.example/a")
		assert.ErrorIs(t, err, ErrCompetitionClosed)
	})

	t.Run("DeadlinePassed", func(t *testing.T) {
		// Status still says open but the end date is behind the clock.
		stale := newOpenCompetition(now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
		created, err := s.AddCompetition(context.TODO(), stale)
		require.NoError(t, err)

		_, err = s.SubmitEntry(context.TODO(), created.ID, "user-a", "https://essays.example/a")
		assert.ErrorIs(t, err, ErrCompetitionClosed)
	})

	t.Run("JudgingStillAccepts", func(t *testing.T) {
		judging := newOpenCompetition(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7))
		judging.Status = types.CompetitionStatusJudging
		created, err := s.AddCompetition(context.TODO(), judging)
		require.NoError(t, err)

		_, err = s.SubmitEntry(context.TODO(), created.ID, "user-a", "https://essays.example/a")
		assert.NoError(t, err, "late entries land until the deadline")
	})
}

func TestWithdrawEntry(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(fixedClock(now))

	open, err := s.AddCompetition(
		context.TODO(),
		newOpenCompetition(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)),
	)
	require.NoError(t, err)

	_, err = s.SubmitEntry(context.TODO(), open.ID, "user-a", "https://essays.example/a")
	require.NoError(t, err)
	_, err = s.SubmitEntry(context.TODO(), open.ID, "user-b", "https://essays.example/b")
	require.NoError(t, err)

	t.Run("RemovesOnlyExactMatch", func(t *testing.T) {
		assert.Equal(t, 1, s.WithdrawEntry(context.TODO(), open.ID, "user-a"))

		_, ok := s.SubmissionForUser(open.ID, "user-a")
		assert.False(t, ok)
		_, ok = s.SubmissionForUser(open.ID, "user-b")
		assert.True(t, ok, "other users' entries survive")
	})

	t.Run("NothingToWithdraw", func(t *testing.T) {
		assert.Zero(t, s.WithdrawEntry(context.TODO(), open.ID, "user-a"))
	})

	t.Run("ResubmitAfterWithdraw", func(t *testing.T) {
		_, err := s.SubmitEntry(context.TODO(), open.ID, "user-a", "https://essays.example/a3")
		assert.NoError(t, err, "withdrawal frees the uniqueness slot")
	})
}

func TestUpdateSubmission(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(fixedClock(now))

	open, err := s.AddCompetition(
		context.TODO(),
		newOpenCompetition(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)),
	)
	require.NoError(t, err)

	sub, err := s.SubmitEntry(context.TODO(), open.ID, "user-a", "https://essays.example/a")
	require.NoError(t, err)

	t.Run("Judges", func(t *testing.T) {
		status := types.SubmissionStatusQualified
		updated, ok := s.UpdateSubmission(context.TODO(), sub.ID, SubmissionPatch{
			Status:   &status,
			Score:    types.NewFromVal(87),
			Feedback: types.NewFromVal("Strong use of primary sources."),
		})
		require.True(t, ok)
		assert.Equal(t, status, updated.Status)
		require.NotNil(t, updated.Score)
		assert.Equal(t, 87, *updated.Score)
	})

	t.Run("ClearsScore", func(t *testing.T) {
		updated, ok := s.UpdateSubmission(context.TODO(), sub.ID, SubmissionPatch{
			Score: types.NewFromPtr[int](nil),
		})
		require.True(t, ok)
		assert.Nil(t, updated.Score)
		assert.NotNil(t, updated.Feedback, "absent fields untouched")
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, ok := s.UpdateSubmission(context.TODO(), "missing", SubmissionPatch{})
		assert.False(t, ok)
	})
}
