package store

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/digitalmuseum/archive-api/internal/search"
	"github.com/digitalmuseum/archive-api/internal/types"
)

// ArtifactPatch is a partial update. Nil fields are left untouched.
// Identity and DateCreated are structurally excluded.
type ArtifactPatch struct {
	CollectionNumber    *string   `json:"collection_number"`
	AccessionNumber     *string   `json:"accession_number"`
	CollectionDate      *string   `json:"collection_date"`
	ContributorName     *string   `json:"contributor_name"`
	ObjectType          *string   `json:"object_type"`
	ObjectHead          *string   `json:"object_head"`
	Description         *string   `json:"description"`
	Measurement         *string   `json:"measurement"`
	GalleryNumber       *string   `json:"gallery_number"`
	FoundPlace          *string   `json:"found_place"`
	SignificanceComment *string   `json:"significance_comment"`
	Tags                *[]string `json:"tags"`
	Images              *[]string `json:"images"`
	IsPublic            *bool     `json:"is_public"`
}

func (p *ArtifactPatch) apply(a *types.Artifact) {
	if p.CollectionNumber != nil {
		a.CollectionNumber = *p.CollectionNumber
	}
	if p.AccessionNumber != nil {
		a.AccessionNumber = *p.AccessionNumber
	}
	if p.CollectionDate != nil {
		a.CollectionDate = *p.CollectionDate
	}
	if p.ContributorName != nil {
		a.ContributorName = *p.ContributorName
	}
	if p.ObjectType != nil {
		a.ObjectType = *p.ObjectType
	}
	if p.ObjectHead != nil {
		a.ObjectHead = *p.ObjectHead
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Measurement != nil {
		a.Measurement = *p.Measurement
	}
	if p.GalleryNumber != nil {
		a.GalleryNumber = *p.GalleryNumber
	}
	if p.FoundPlace != nil {
		a.FoundPlace = *p.FoundPlace
	}
	if p.SignificanceComment != nil {
		a.SignificanceComment = *p.SignificanceComment
	}
	if p.Tags != nil {
		a.Tags = cloneStrings(*p.Tags)
	}
	if p.Images != nil {
		a.Images = cloneStrings(*p.Images)
	}
	if p.IsPublic != nil {
		a.IsPublic = *p.IsPublic
	}
}

// AddArtifact assigns a fresh ID and DateCreated, ignoring whatever the
// caller put in those fields, and appends to the collection.
func (s *Store) AddArtifact(ctx context.Context, a types.Artifact) types.Artifact {
	_, span := tracer.Start(ctx, "AddArtifact")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.newID()
	a.DateCreated = s.clock()
	a.Tags = cloneStrings(a.Tags)
	a.Images = cloneStrings(a.Images)
	s.artifacts = append(s.artifacts, a)

	span.SetAttributes(attribute.String("artifact.id", a.ID))
	s.logMutation("AddArtifact", "id", a.ID, "objectHead", a.ObjectHead)
	return cloneArtifact(a)
}

// UpdateArtifact shallow-merges the patch over the stored record.
// Unknown IDs are a no-op reported through the bool.
func (s *Store) UpdateArtifact(
	ctx context.Context,
	id string,
	patch ArtifactPatch,
) (types.Artifact, bool) {
	_, span := tracer.Start(ctx, "UpdateArtifact")
	defer span.End()

	span.SetAttributes(attribute.String("artifact.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artifacts {
		if s.artifacts[i].ID != id {
			continue
		}

		patch.apply(&s.artifacts[i])
		s.logMutation("UpdateArtifact", "id", id)
		return cloneArtifact(s.artifacts[i]), true
	}

	return types.Artifact{}, false
}

func (s *Store) DeleteArtifact(ctx context.Context, id string) bool {
	_, span := tracer.Start(ctx, "DeleteArtifact")
	defer span.End()

	span.SetAttributes(attribute.String("artifact.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artifacts {
		if s.artifacts[i].ID != id {
			continue
		}

		s.artifacts = append(s.artifacts[:i], s.artifacts[i+1:]...)
		s.logMutation("DeleteArtifact", "id", id)
		return true
	}

	return false
}

func (s *Store) ArtifactByID(id string) (types.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.artifacts {
		if s.artifacts[i].ID == id {
			return cloneArtifact(s.artifacts[i]), true
		}
	}

	return types.Artifact{}, false
}

// Artifacts returns every artifact, public or not, in insertion order.
// Staff listings use this; the public surface goes through
// SearchArtifacts.
func (s *Store) Artifacts() []types.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Artifact, 0, len(s.artifacts))
	for i := range s.artifacts {
		out = append(out, cloneArtifact(s.artifacts[i]))
	}

	return out
}

// SearchArtifacts returns the public artifacts matching the query and
// filters, preserving insertion order. Private artifacts never appear
// regardless of filters.
func (s *Store) SearchArtifacts(query string, filters search.ArtifactFilters) []types.Artifact {
	s.mu.RLock()
	matched := search.Artifacts(s.artifacts, query, filters)
	s.mu.RUnlock()

	out := make([]types.Artifact, 0, len(matched))
	for i := range matched {
		out = append(out, cloneArtifact(matched[i]))
	}

	return out
}

func cloneArtifact(a types.Artifact) types.Artifact {
	a.Tags = cloneStrings(a.Tags)
	a.Images = cloneStrings(a.Images)
	return a
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)
	return out
}
