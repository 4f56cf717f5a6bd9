// Package search implements the faceted query logic over the archive's
// in-memory collections. Everything here is a pure function: it never
// mutates its inputs and an empty result is a normal outcome.
package search

import (
	"strings"

	"github.com/digitalmuseum/archive-api/internal/types"
)

// ObjectTypeAll is the sentinel meaning "no object type constraint".
const ObjectTypeAll = "all"

// ArtifactFilters are the structured facets of an artifact search.
// Zero values mean "no constraint". FromDate/ToDate are inclusive
// `2006-01-02` bounds over CollectionDate; either side may be open.
type ArtifactFilters struct {
	ObjectType string
	FromDate   string
	ToDate     string
}

// Artifacts returns the subset of `items` that is public and matches
// the query and filters, in the order given. The free-text query is a
// case-insensitive substring test ORed across object head, description,
// tags and contributor name. The object type facet is an exact,
// case-sensitive match.
func Artifacts(items []types.Artifact, query string, filters ArtifactFilters) []types.Artifact {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := []types.Artifact{}
	for i := range items {
		a := &items[i]
		if !a.IsPublic {
			continue
		}

		if query != "" && !artifactMatchesQuery(a, query) {
			continue
		}

		if filters.ObjectType != "" && filters.ObjectType != ObjectTypeAll &&
			a.ObjectType != filters.ObjectType {
			continue
		}

		if !dateInRange(a.CollectionDate, filters.FromDate, filters.ToDate) {
			continue
		}

		matched = append(matched, *a)
	}

	return matched
}

func artifactMatchesQuery(a *types.Artifact, query string) bool {
	if strings.Contains(strings.ToLower(a.ObjectHead), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return strings.Contains(strings.ToLower(a.ContributorName), query)
}

// Dates are `2006-01-02` strings, so lexicographic order is
// chronological order. A record with no collection date only survives
// an unbounded filter.
func dateInRange(date, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	if date == "" {
		return false
	}
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}

	return true
}
