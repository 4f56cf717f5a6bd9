package store

import (
	"time"

	"github.com/digitalmuseum/archive-api/internal/types"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed loads the compiled-in catalog. Seed records carry fixed IDs so
// links between them (competition chains, the seed submission) stay
// stable; entities created at runtime get generated UUIDs instead.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()

	s.artifacts = append(s.artifacts, []types.Artifact{
		{
			ID:                  "art-1971-rifle",
			CollectionNumber:    "CN-0042",
			AccessionNumber:     "AN-1971-003",
			CollectionDate:      "1996-03-26",
			ContributorName:     "Abdul Karim",
			ObjectType:          "Weapon",
			ObjectHead:          "Lee-Enfield rifle carried in the liberation war",
			Description:         "Standard issue rifle used by a sector commander during 1971, donated by his family.",
			Measurement:         "113 cm",
			GalleryNumber:       "G-2",
			FoundPlace:          "Jessore",
			SignificanceComment: "One of the few small arms in the collection with a documented chain of custody.",
			DateCreated:         now,
			Tags:                []string{"1971", "weapon", "sector-8"},
			Images:              []string{"/media/artifacts/rifle-front.jpg", "/media/artifacts/rifle-detail.jpg"},
			IsPublic:            true,
		},
		{
			ID:                  "art-front-letter",
			CollectionNumber:    "CN-0117",
			AccessionNumber:     "AN-1971-019",
			CollectionDate:      "2001-12-16",
			ContributorName:     "Rahima Begum",
			ObjectType:          "Document",
			ObjectHead:          "Letter from the front, November 1971",
			Description:         "A soldier's last letter home, written days before the final offensive.",
			Measurement:         "21 x 29 cm",
			GalleryNumber:       "G-4",
			FoundPlace:          "Kushtia",
			SignificanceComment: "Displayed in the martyrs' correspondence case.",
			DateCreated:         now,
			Tags:                []string{"1971", "letter", "martyr"},
			Images:              []string{"/media/artifacts/letter-1971.jpg"},
			IsPublic:            true,
		},
		{
			ID:               "art-refugee-photo",
			CollectionNumber: "CN-0203",
			AccessionNumber:  "AN-1971-044",
			CollectionDate:   "1999-08-14",
			ContributorName:  "Manzoor Alam",
			ObjectType:       "Photograph",
			ObjectHead:       "Refugee column crossing the border",
			Description:      "Gelatin silver print taken near the Benapole crossing in June 1971.",
			Measurement:      "30 x 40 cm",
			GalleryNumber:    "G-1",
			FoundPlace:       "Benapole",
			DateCreated:      now,
			Tags:             []string{"1971", "photograph", "refugees"},
			Images:           []string{"/media/artifacts/refugee-column.jpg"},
			IsPublic:         true,
		},
		{
			ID:                  "art-field-diary",
			CollectionNumber:    "CN-0388",
			AccessionNumber:     "AN-1971-071",
			CollectionDate:      "2010-03-01",
			ContributorName:     "Selina Chowdhury",
			ObjectType:          "Document",
			ObjectHead:          "Field diary of a guerrilla courier",
			Description:        "Pocket diary recording courier routes; pending conservation review before display.",
			Measurement:         "10 x 15 cm",
			GalleryNumber:       "",
			FoundPlace:          "Dhaka",
			SignificanceComment: "Names still under review for privacy; kept internal.",
			DateCreated:         now,
			Tags:                []string{"1971", "diary"},
			Images:              []string{"/media/artifacts/field-diary.jpg"},
			IsPublic:            false,
		},
		{
			ID:               "art-radio-receiver",
			CollectionNumber: "CN-0510",
			AccessionNumber:  "AN-1971-088",
			CollectionDate:   "2005-02-21",
			ContributorName:  "Shafiq Islam",
			ObjectType:       "Equipment",
			ObjectHead:       "Shortwave receiver tuned to Swadhin Bangla Betar",
			Description:      "Household radio set hidden under floorboards and used to follow the clandestine broadcasts.",
			Measurement:      "35 x 22 x 18 cm",
			GalleryNumber:    "G-3",
			FoundPlace:       "Chittagong",
			DateCreated:      now,
			Tags:             []string{"1971", "radio", "broadcast"},
			Images:           []string{"/media/artifacts/radio.jpg"},
			IsPublic:         true,
		},
	}...)

	s.competitions = append(s.competitions, []types.Competition{
		{
			ID:                  "comp-essay-district",
			Title:               "Liberation War Essay Contest — District Round",
			Description:         "Essays on local histories of 1971.",
			Level:               types.CompetitionLevelDistrict,
			Type:                types.CompetitionTypeEssay,
			EligibilityCriteria: "Secondary school students",
			StartDate:           date(2025, time.September, 1),
			EndDate:             date(2025, time.October, 31),
			JudgingCriteria:     "Historical accuracy, use of primary sources, originality",
			Rewards:             "District winners advance to the division round",
			Status:              types.CompetitionStatusOpen,
			AdminUserID:         "user-archivist",
			NextCompetitionID:   ptr("comp-essay-division"),
			DateCreated:         now,
			Thumbnail:           "/media/competitions/essay-district.jpg",
		},
		{
			ID:                  "comp-essay-division",
			Title:               "Liberation War Essay Contest — Division Round",
			Description:         "Division-level round for qualifying district entrants.",
			Level:               types.CompetitionLevelDivision,
			Type:                types.CompetitionTypeEssay,
			EligibilityCriteria: "District round qualifiers only",
			StartDate:           date(2025, time.November, 15),
			EndDate:             date(2025, time.December, 15),
			JudgingCriteria:     "As district round, with an oral defense",
			Rewards:             "Division winners advance to the national round",
			Status:              types.CompetitionStatusUpcoming,
			AdminUserID:         "user-archivist",
			DateCreated:         now,
			Thumbnail:           "/media/competitions/essay-division.jpg",
		},
		{
			ID:                  "comp-photo-national",
			Title:               "National Heritage Photography Competition",
			Description:         "Photographs of liberation war memorials and sites.",
			Level:               types.CompetitionLevelNational,
			Type:                types.CompetitionTypePhotography,
			EligibilityCriteria: "Open to all residents",
			StartDate:           date(2025, time.August, 1),
			EndDate:             date(2025, time.November, 30),
			JudgingCriteria:     "Composition, documentary value",
			Rewards:             "Exhibition in the main gallery",
			Status:              types.CompetitionStatusJudging,
			AdminUserID:         "user-curator",
			MaxParticipants:     ptr(500),
			DateCreated:         now,
			Thumbnail:           "/media/competitions/photo-national.jpg",
		},
		{
			ID:                  "comp-debate-draft",
			Title:               "Inter-college Debate on Memory and Archives",
			Description:         "Draft programme, not yet announced.",
			Level:               types.CompetitionLevelNational,
			Type:                types.CompetitionTypeDebate,
			EligibilityCriteria: "College debate teams",
			StartDate:           date(2026, time.February, 1),
			EndDate:             date(2026, time.March, 1),
			JudgingCriteria:     "TBD",
			Rewards:             "TBD",
			Status:              types.CompetitionStatusDraft,
			AdminUserID:         "user-curator",
			DateCreated:         now,
			Thumbnail:           "/media/competitions/debate.jpg",
		},
	}...)

	s.submissions = append(s.submissions, types.CompetitionSubmission{
		ID:             "sub-seed-1",
		CompetitionID:  "comp-photo-national",
		UserID:         "user-researcher",
		SubmissionDate: now,
		Status:         types.SubmissionStatusUnderReview,
		ContentURL:     "/media/submissions/shaheed-minar-dawn.jpg",
	})

	s.news = append(s.news, []types.NewsArticle{
		{
			ID:          "news-gallery-reopening",
			Title:       "Gallery 2 reopens after conservation work",
			Summary:     "The weapons gallery reopens with improved climate control.",
			Body:        "After six months of conservation work, Gallery 2 reopens to visitors this Friday...",
			Author:      "Press Office",
			PublishDate: date(2025, time.July, 10),
			Tags:        []string{"gallery", "conservation"},
			Image:       "/media/news/gallery-2.jpg",
			DateCreated: now,
		},
		{
			ID:          "news-oral-history",
			Title:       "Oral history programme seeks 1971 witnesses",
			Summary:     "The archive is recording testimony from surviving witnesses.",
			Body:        "The museum's oral history unit invites families of freedom fighters to contribute recordings...",
			Author:      "Archive Desk",
			PublishDate: date(2025, time.August, 2),
			Tags:        []string{"oral-history", "1971"},
			Image:       "/media/news/oral-history.jpg",
			DateCreated: now,
		},
	}...)

	s.events = append(s.events, []types.MuseumEvent{
		{
			ID:          "event-victory-day",
			Title:       "Victory Day commemoration",
			Description: "Wreath laying, survivor talks and an evening concert.",
			Location:    "Central courtyard",
			StartTime:   date(2025, time.December, 16).Add(9 * time.Hour),
			EndTime:     date(2025, time.December, 16).Add(21 * time.Hour),
			Image:       "/media/events/victory-day.jpg",
			Tags:        []string{"commemoration"},
			DateCreated: now,
		},
		{
			ID:          "event-curator-walk",
			Title:       "Curator's walk: the correspondence case",
			Description: "A guided reading of letters from the front.",
			Location:    "Gallery 4",
			StartTime:   date(2025, time.September, 20).Add(15 * time.Hour),
			EndTime:     date(2025, time.September, 20).Add(17 * time.Hour),
			Image:       "/media/events/curator-walk.jpg",
			Tags:        []string{"guided-tour", "letters"},
			DateCreated: now,
		},
	}...)
}
