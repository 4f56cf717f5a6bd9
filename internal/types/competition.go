package types

import "time"

type CompetitionLevel string

const (
	CompetitionLevelDistrict CompetitionLevel = "district"
	CompetitionLevelDivision CompetitionLevel = "division"
	CompetitionLevelNational CompetitionLevel = "national"
)

func (l CompetitionLevel) Valid() bool {
	switch l {
	case CompetitionLevelDistrict, CompetitionLevelDivision, CompetitionLevelNational:
		return true
	}
	return false
}

type CompetitionType string

const (
	CompetitionTypeEssay       CompetitionType = "essay"
	CompetitionTypeArt         CompetitionType = "art"
	CompetitionTypePhotography CompetitionType = "photography"
	CompetitionTypePoemWriting CompetitionType = "poem_writing"
	CompetitionTypeSinging     CompetitionType = "singing"
	CompetitionTypeDebate      CompetitionType = "debate"
	CompetitionTypeQuiz        CompetitionType = "quiz"
)

type CompetitionStatus string

const (
	CompetitionStatusDraft     CompetitionStatus = "draft"     // Not yet published, staff only
	CompetitionStatusUpcoming  CompetitionStatus = "upcoming"  // Published but entries not yet accepted
	CompetitionStatusOpen      CompetitionStatus = "open"      // Accepting entries
	CompetitionStatusJudging   CompetitionStatus = "judging"   // Entries under review, late entries still accepted until the deadline
	CompetitionStatusClosed    CompetitionStatus = "closed"    // No longer accepting entries
	CompetitionStatusCompleted CompetitionStatus = "completed" // Results published, hidden from the public listing
)

func (s CompetitionStatus) Valid() bool {
	switch s {
	case CompetitionStatusDraft,
		CompetitionStatusUpcoming,
		CompetitionStatusOpen,
		CompetitionStatusJudging,
		CompetitionStatusClosed,
		CompetitionStatusCompleted:
		return true
	}
	return false
}

// TimeCategory is a derived classification of a competition relative to
// the evaluation time. It is never persisted.
type TimeCategory string

const (
	TimeCategoryUpcoming TimeCategory = "upcoming"
	TimeCategoryCurrent  TimeCategory = "current"
	TimeCategoryPast     TimeCategory = "past"
)

// Competition is a themed contest. EndDate doubles as the entry
// deadline: entries are accepted only while Status is open or judging
// AND the deadline has not passed.
type Competition struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Level               CompetitionLevel  `json:"level"`
	Type                CompetitionType   `json:"type"`
	EligibilityCriteria string            `json:"eligibility_criteria"`
	StartDate           time.Time         `json:"start_date"`
	EndDate             time.Time         `json:"end_date"`
	JudgingCriteria     string            `json:"judging_criteria"`
	Rewards             string            `json:"rewards"`
	Status              CompetitionStatus `json:"status"`
	AdminUserID         string            `json:"admin_user_id"`
	RelatedExhibitionID *string           `json:"related_exhibition_id,omitempty"`
	MaxParticipants     *int              `json:"max_participants,omitempty"`
	NextCompetitionID   *string           `json:"next_competition_id,omitempty"`
	DateCreated         time.Time         `json:"date_created"`
	Thumbnail           string            `json:"thumbnail"`
}

// AcceptsEntries reports whether the competition is effectively open at
// `now`.
func (c *Competition) AcceptsEntries(now time.Time) bool {
	if c.Status != CompetitionStatusOpen && c.Status != CompetitionStatusJudging {
		return false
	}

	return !now.After(c.EndDate)
}
