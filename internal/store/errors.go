package store

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidDates        = errors.New("end date must be after start date")
	ErrCompetitionClosed   = errors.New("competition is not accepting entries")
	ErrDuplicateSubmission = errors.New("an entry for this competition already exists")
)
