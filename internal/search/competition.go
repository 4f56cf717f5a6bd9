package search

import (
	"slices"
	"time"

	"github.com/digitalmuseum/archive-api/internal/types"
)

// CompetitionFilters are the public listing facets. Each dimension is a
// multi-select: OR within a dimension, AND across dimensions. Empty
// slices mean "no constraint".
type CompetitionFilters struct {
	Times  []types.TimeCategory
	Types  []types.CompetitionType
	Levels []types.CompetitionLevel
}

// Classify derives a competition's time category from `now`. The
// boundaries are inclusive on both ends of the current window.
func Classify(now time.Time, c *types.Competition) types.TimeCategory {
	if now.Before(c.StartDate) {
		return types.TimeCategoryUpcoming
	}
	if now.After(c.EndDate) {
		return types.TimeCategoryPast
	}

	return types.TimeCategoryCurrent
}

// Competitions returns the publicly listable subset of `items` matching
// the filters. Drafts and completed competitions never appear. Time
// categories are recomputed from `now` on every call, never cached.
func Competitions(
	items []types.Competition,
	now time.Time,
	filters CompetitionFilters,
) []types.Competition {
	matched := []types.Competition{}
	for i := range items {
		c := &items[i]
		if c.Status == types.CompetitionStatusDraft ||
			c.Status == types.CompetitionStatusCompleted {
			continue
		}

		if len(filters.Times) > 0 && !slices.Contains(filters.Times, Classify(now, c)) {
			continue
		}
		if len(filters.Types) > 0 && !slices.Contains(filters.Types, c.Type) {
			continue
		}
		if len(filters.Levels) > 0 && !slices.Contains(filters.Levels, c.Level) {
			continue
		}

		matched = append(matched, *c)
	}

	return matched
}
