package types

import "time"

// Artifact is a single cataloged historical item. CollectionDate is a
// plain `2006-01-02` date string as recorded by the collecting staff;
// DateCreated is the catalog entry timestamp and is assigned exactly
// once by the store.
type Artifact struct {
	ID                  string    `json:"id"`
	CollectionNumber    string    `json:"collection_number"`
	AccessionNumber     string    `json:"accession_number"`
	CollectionDate      string    `json:"collection_date"`
	ContributorName     string    `json:"contributor_name"`
	ObjectType          string    `json:"object_type"`
	ObjectHead          string    `json:"object_head"`
	Description         string    `json:"description"`
	Measurement         string    `json:"measurement"`
	GalleryNumber       string    `json:"gallery_number"`
	FoundPlace          string    `json:"found_place"`
	SignificanceComment string    `json:"significance_comment"`
	DateCreated         time.Time `json:"date_created"`
	Tags                []string  `json:"tags"`
	Images              []string  `json:"images"`
	IsPublic            bool      `json:"is_public"`
}
