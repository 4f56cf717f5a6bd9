package types

import "time"

type SubmissionStatus string

const (
	SubmissionStatusSubmitted    SubmissionStatus = "submitted"     // Received, not yet looked at
	SubmissionStatusUnderReview  SubmissionStatus = "under_review"  // A judge has picked it up
	SubmissionStatusQualified    SubmissionStatus = "qualified"     // Advances to the next round
	SubmissionStatusNotQualified SubmissionStatus = "not_qualified" // Eliminated
	SubmissionStatusWinner       SubmissionStatus = "winner"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusSubmitted,
		SubmissionStatusUnderReview,
		SubmissionStatusQualified,
		SubmissionStatusNotQualified,
		SubmissionStatusWinner:
		return true
	}
	return false
}

// CompetitionSubmission is one user's entry into one competition. At
// most one active submission exists per (competition, user) pair;
// withdrawal deletes the row rather than marking it.
type CompetitionSubmission struct {
	ID             string           `json:"id"`
	CompetitionID  string           `json:"competition_id"`
	UserID         string           `json:"user_id"`
	SubmissionDate time.Time        `json:"submission_date"`
	Status         SubmissionStatus `json:"status"`
	Score          *int             `json:"score,omitempty"`
	Feedback       *string          `json:"feedback,omitempty"`
	ContentURL     string           `json:"content_url"`
}
