package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmuseum/archive-api/internal/types"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func testCompetitions() []types.Competition {
	return []types.Competition{
		{
			ID:        "current-essay",
			Level:     types.CompetitionLevelDistrict,
			Type:      types.CompetitionTypeEssay,
			StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
			Status:    types.CompetitionStatusOpen,
		},
		{
			ID:        "upcoming-photo",
			Level:     types.CompetitionLevelNational,
			Type:      types.CompetitionTypePhotography,
			StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			Status:    types.CompetitionStatusUpcoming,
		},
		{
			ID:        "past-debate",
			Level:     types.CompetitionLevelDivision,
			Type:      types.CompetitionTypeDebate,
			StartDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
			Status:    types.CompetitionStatusClosed,
		},
		{
			ID:        "hidden-draft",
			Level:     types.CompetitionLevelDistrict,
			Type:      types.CompetitionTypeEssay,
			StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
			Status:    types.CompetitionStatusDraft,
		},
		{
			ID:        "hidden-completed",
			Level:     types.CompetitionLevelNational,
			Type:      types.CompetitionTypeQuiz,
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Status:    types.CompetitionStatusCompleted,
		},
	}
}

func TestClassify(t *testing.T) {
	c := types.Competition{
		StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Current", func(t *testing.T) {
		assert.Equal(t, types.TimeCategoryCurrent, Classify(testNow, &c))
	})

	t.Run("Upcoming", func(t *testing.T) {
		before := time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, types.TimeCategoryUpcoming, Classify(before, &c))
	})

	t.Run("Past", func(t *testing.T) {
		after := time.Date(2025, 10, 31, 0, 0, 0, 1, time.UTC)
		assert.Equal(t, types.TimeCategoryPast, Classify(after, &c))
	})

	t.Run("BoundariesAreInclusive", func(t *testing.T) {
		assert.Equal(t, types.TimeCategoryCurrent, Classify(c.StartDate, &c), "start instant")
		assert.Equal(t, types.TimeCategoryCurrent, Classify(c.EndDate, &c), "end instant")
	})
}

func ids(items []types.Competition) []string {
	out := []string{}
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestCompetitions(t *testing.T) {
	items := testCompetitions()

	t.Run("HidesDraftAndCompleted", func(t *testing.T) {
		got := ids(Competitions(items, testNow, CompetitionFilters{}))
		assert.ElementsMatch(t, []string{"current-essay", "upcoming-photo", "past-debate"}, got)
	})

	t.Run("SingleTimeCategory", func(t *testing.T) {
		got := Competitions(items, testNow, CompetitionFilters{
			Times: []types.TimeCategory{types.TimeCategoryCurrent},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "current-essay", got[0].ID)
	})

	t.Run("ORWithinDimension", func(t *testing.T) {
		got := ids(Competitions(items, testNow, CompetitionFilters{
			Times: []types.TimeCategory{types.TimeCategoryCurrent, types.TimeCategoryPast},
		}))
		assert.ElementsMatch(t, []string{"current-essay", "past-debate"}, got)
	})

	t.Run("ANDAcrossDimensions", func(t *testing.T) {
		got := Competitions(items, testNow, CompetitionFilters{
			Times: []types.TimeCategory{types.TimeCategoryCurrent, types.TimeCategoryUpcoming},
			Types: []types.CompetitionType{types.CompetitionTypePhotography},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "upcoming-photo", got[0].ID)
	})

	t.Run("LevelFilter", func(t *testing.T) {
		got := Competitions(items, testNow, CompetitionFilters{
			Levels: []types.CompetitionLevel{types.CompetitionLevelDivision},
		})
		require.Len(t, got, 1)
		assert.Equal(t, "past-debate", got[0].ID)
	})

	t.Run("NoMatchIsEmptyNotNil", func(t *testing.T) {
		got := Competitions(items, testNow, CompetitionFilters{
			Types: []types.CompetitionType{types.CompetitionTypeSinging},
		})
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}
