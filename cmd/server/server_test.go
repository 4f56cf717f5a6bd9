package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	servermiddleware "github.com/digitalmuseum/archive-api/cmd/server/internal/middleware"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/admin"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/catalog"
	"github.com/digitalmuseum/archive-api/cmd/server/internal/routes/competitions"
	sessionroutes "github.com/digitalmuseum/archive-api/cmd/server/internal/routes/session"
	"github.com/digitalmuseum/archive-api/internal/auth"
	"github.com/digitalmuseum/archive-api/internal/config"
	"github.com/digitalmuseum/archive-api/internal/logger"
	"github.com/digitalmuseum/archive-api/internal/store"
	"github.com/digitalmuseum/archive-api/internal/tour"
	"github.com/digitalmuseum/archive-api/internal/types"
)

const testSecret = "i am a very secure password"

type ServerTestSuite struct {
	suite.Suite

	server *httptest.Server
	store  *store.Store
}

func testIdentities(t require.TestingT) []config.Identity {
	hash, err := argon2id.CreateHash(testSecret, argon2id.DefaultParams)
	require.NoError(t, err)

	return []config.Identity{
		{
			ID:         "user-researcher",
			Email:      "researcher@museum.example",
			Name:       "Visiting Researcher",
			Role:       types.RoleResearcher,
			SecretHash: hash,
		},
		{
			ID:         "user-curator",
			Email:      "curator@museum.example",
			Name:       "Collections Curator",
			Role:       types.RoleCurator,
			SecretHash: hash,
		},
		{
			ID:         "user-archivist",
			Email:      "archivist@museum.example",
			Name:       "Senior Archivist",
			Role:       types.RoleArchivist,
			SecretHash: hash,
		},
		{
			ID:         "user-admin",
			Email:      "admin@museum.example",
			Name:       "Systems Administrator",
			Role:       types.RoleSuperAdmin,
			SecretHash: hash,
		},
	}
}

func (s *ServerTestSuite) SetupSuite() {
	logger.InitSlog()
}

func (s *ServerTestSuite) SetupTest() {
	authService := auth.NewService(
		&config.SessionConfig{SigningKey: "server-test-signing-key", TTL: time.Hour},
		testIdentities(s.T()),
	)

	s.store = store.NewSeeded()

	museumTour, err := tour.New(tour.SeedStops(), tour.NewIndex(tour.SeedPanoramas()))
	s.Require().NoError(err)

	middlewareHandler := servermiddleware.Handler{Auth: authService}
	e, err := routes.BuildEcho(logger.Logger, &middlewareHandler)
	s.Require().NoError(err)

	catalog.Create(s.store, museumTour).AddRoutes(e)
	competitions.Create(s.store).AddRoutes(e)
	sessionroutes.Create(authService, nil).AddRoutes(e)
	admin.Create(s.store, authService).AddRoutes(e)

	s.server = httptest.NewServer(e)
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ServerTestSuite) request(
	method string,
	path string,
	token string,
	body any,
) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, payload
}

func (s *ServerTestSuite) login(email string) string {
	resp, body := s.request(http.MethodPost, "/session/login/", "", map[string]string{
		"email":  email,
		"secret": testSecret,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var parsed struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(body, &parsed))
	s.Require().NotEmpty(parsed.Token)
	return parsed.Token
}

func (s *ServerTestSuite) TestHealth() {
	resp, _ := s.request(http.MethodGet, "/health/", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *ServerTestSuite) TestPublicCatalog() {
	s.Run("SearchMatchesSeed", func() {
		resp, body := s.request(http.MethodGet, "/catalog/?q=rifle", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var results []types.Artifact
		s.Require().NoError(json.Unmarshal(body, &results))
		s.Require().Len(results, 1)
		s.Equal("art-1971-rifle", results[0].ID)
	})

	s.Run("PrivateHiddenFromSearch", func() {
		resp, body := s.request(http.MethodGet, "/catalog/?q=courier", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var results []types.Artifact
		s.Require().NoError(json.Unmarshal(body, &results))
		s.Empty(results)
	})

	s.Run("PrivateIs404", func() {
		resp, _ := s.request(http.MethodGet, "/catalog/art-field-diary/", "", nil)
		s.Equal(http.StatusNotFound, resp.StatusCode, "private looks identical to absent")
	})

	s.Run("PublicByID", func() {
		resp, _ := s.request(http.MethodGet, "/catalog/art-radio-receiver/", "", nil)
		s.Equal(http.StatusOK, resp.StatusCode)
	})

	s.Run("ObjectTypeFacet", func() {
		resp, body := s.request(http.MethodGet, "/catalog/?type=Photograph", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var results []types.Artifact
		s.Require().NoError(json.Unmarshal(body, &results))
		s.Require().Len(results, 1)
		s.Equal("art-refugee-photo", results[0].ID)
	})
}

func (s *ServerTestSuite) TestCompetitionListing() {
	s.Run("DraftsHidden", func() {
		resp, body := s.request(http.MethodGet, "/competitions/", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var results []types.Competition
		s.Require().NoError(json.Unmarshal(body, &results))
		for _, c := range results {
			s.NotEqual("comp-debate-draft", c.ID)
		}
	})

	s.Run("DraftByIDIs404", func() {
		resp, _ := s.request(http.MethodGet, "/competitions/comp-debate-draft/", "", nil)
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("TypeFilter", func() {
		resp, body := s.request(http.MethodGet, "/competitions/?type=photography", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var results []types.Competition
		s.Require().NoError(json.Unmarshal(body, &results))
		s.Require().Len(results, 1)
		s.Equal("comp-photo-national", results[0].ID)
	})
}

func (s *ServerTestSuite) TestSessionFlow() {
	s.Run("BadSecret", func() {
		resp, _ := s.request(http.MethodPost, "/session/login/", "", map[string]string{
			"email":  "researcher@museum.example",
			"secret": "wrong",
		})
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	s.Run("UnknownEmailSameStatus", func() {
		resp, _ := s.request(http.MethodPost, "/session/login/", "", map[string]string{
			"email":  "ghost@museum.example",
			"secret": testSecret,
		})
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	s.Run("LoginLogout", func() {
		token := s.login("researcher@museum.example")

		resp, body := s.request(http.MethodGet, "/session/me/", token, nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var me types.User
		s.Require().NoError(json.Unmarshal(body, &me))
		s.Equal("user-researcher", me.ID)

		resp, _ = s.request(http.MethodPost, "/session/logout/", token, nil)
		s.Equal(http.StatusNoContent, resp.StatusCode)

		resp, _ = s.request(http.MethodGet, "/session/me/", token, nil)
		s.Equal(http.StatusUnauthorized, resp.StatusCode, "revoked session is anonymous")

		resp, _ = s.request(http.MethodPost, "/session/logout/", token, nil)
		s.Equal(http.StatusNoContent, resp.StatusCode, "logout is idempotent")
	})

	s.Run("AnonymousMe", func() {
		resp, _ := s.request(http.MethodGet, "/session/me/", "", nil)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})
}

// createOpenCompetition makes a competition that accepts entries no
// matter when the test runs.
func (s *ServerTestSuite) createOpenCompetition(curatorToken string) types.Competition {
	resp, body := s.request(http.MethodPost, "/admin/competitions/", curatorToken, map[string]any{
		"title":         "Oral History Collection Drive",
		"level":         "national",
		"type":          "essay",
		"start_date":    time.Now().AddDate(0, 0, -1).Format(time.RFC3339),
		"end_date":      time.Now().AddDate(1, 0, 0).Format(time.RFC3339),
		"status":        "open",
		"admin_user_id": "user-curator",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	var created types.Competition
	s.Require().NoError(json.Unmarshal(body, &created))
	return created
}

func (s *ServerTestSuite) TestEntryFlow() {
	curatorToken := s.login("curator@museum.example")
	competition := s.createOpenCompetition(curatorToken)
	entriesPath := fmt.Sprintf("/competitions/%s/entries/", competition.ID)

	s.Run("AnonymousGets401", func() {
		resp, _ := s.request(http.MethodPost, entriesPath, "", map[string]string{
			"content_url": "/media/submissions/interview.mp3",
		})
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	})

	researcherToken := s.login("researcher@museum.example")

	s.Run("SubmitAndDuplicate", func() {
		resp, body := s.request(http.MethodPost, entriesPath, researcherToken, map[string]string{
			"content_url": "/media/submissions/interview.mp3",
		})
		s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

		var sub types.CompetitionSubmission
		s.Require().NoError(json.Unmarshal(body, &sub))
		s.Equal(types.SubmissionStatusSubmitted, sub.Status)
		s.Equal("user-researcher", sub.UserID)

		resp, _ = s.request(http.MethodPost, entriesPath, researcherToken, map[string]string{
			"content_url": "/media/submissions/interview-2.mp3",
		})
		s.Equal(http.StatusConflict, resp.StatusCode, "one entry per user per competition")
	})

	s.Run("Mine", func() {
		resp, body := s.request(http.MethodGet, entriesPath+"mine/", researcherToken, nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var sub types.CompetitionSubmission
		s.Require().NoError(json.Unmarshal(body, &sub))
		s.Equal(competition.ID, sub.CompetitionID)
	})

	s.Run("Withdraw", func() {
		resp, _ := s.request(http.MethodDelete, entriesPath, researcherToken, nil)
		s.Equal(http.StatusNoContent, resp.StatusCode)

		resp, _ = s.request(http.MethodDelete, entriesPath, researcherToken, nil)
		s.Equal(http.StatusNotFound, resp.StatusCode, "nothing left to withdraw")
	})

	s.Run("ClosedCompetition", func() {
		resp, _ := s.request(
			http.MethodPost,
			"/competitions/comp-essay-division/entries/",
			researcherToken,
			map[string]string{"content_url": "/media/submissions/early.pdf"},
		)
		s.Equal(http.StatusConflict, resp.StatusCode, "upcoming competitions reject entries")
	})

	s.Run("UnknownCompetition", func() {
		resp, _ := s.request(
			http.MethodPost,
			"/competitions/missing/entries/",
			researcherToken,
			map[string]string{"content_url": "/media/submissions/x.pdf"},
		)
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})
}

func (s *ServerTestSuite) TestAdminGating() {
	researcherToken := s.login("researcher@museum.example")
	curatorToken := s.login("curator@museum.example")
	archivistToken := s.login("archivist@museum.example")
	adminToken := s.login("admin@museum.example")

	s.Run("ResearcherBlocked", func() {
		resp, _ := s.request(http.MethodGet, "/admin/artifacts/", researcherToken, nil)
		s.Equal(http.StatusForbidden, resp.StatusCode)
	})

	s.Run("CuratorSeesPrivate", func() {
		resp, body := s.request(http.MethodGet, "/admin/artifacts/", curatorToken, nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var results []types.Artifact
		s.Require().NoError(json.Unmarshal(body, &results))

		found := false
		for _, a := range results {
			if a.ID == "art-field-diary" {
				found = true
			}
		}
		s.True(found, "admin listing includes private records")
	})

	s.Run("DeleteNeedsArchivist", func() {
		resp, _ := s.request(
			http.MethodDelete, "/admin/artifacts/art-radio-receiver/", curatorToken, nil,
		)
		s.Equal(http.StatusForbidden, resp.StatusCode)

		resp, _ = s.request(
			http.MethodDelete, "/admin/artifacts/art-radio-receiver/", archivistToken, nil,
		)
		s.Equal(http.StatusNoContent, resp.StatusCode)
	})

	s.Run("IdentitiesNeedSuperAdmin", func() {
		resp, _ := s.request(http.MethodGet, "/admin/identities/", archivistToken, nil)
		s.Equal(http.StatusForbidden, resp.StatusCode)

		resp, body := s.request(http.MethodGet, "/admin/identities/", adminToken, nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.NotContains(string(body), "secret_hash", "hashes never serialize")
		s.Contains(string(body), "researcher@museum.example")
	})
}

func (s *ServerTestSuite) TestAdminCompetitionValidation() {
	curatorToken := s.login("curator@museum.example")

	s.Run("EndBeforeStart", func() {
		resp, body := s.request(http.MethodPost, "/admin/competitions/", curatorToken, map[string]any{
			"title":         "Backwards Contest",
			"level":         "district",
			"type":          "quiz",
			"start_date":    time.Now().Format(time.RFC3339),
			"end_date":      time.Now().AddDate(0, 0, -7).Format(time.RFC3339),
			"status":        "open",
			"admin_user_id": "user-curator",
		})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(string(body), "end date must be after start date")
	})

	s.Run("PatchEndBeforeStart", func() {
		competition := s.createOpenCompetition(curatorToken)

		resp, body := s.request(
			http.MethodPatch,
			fmt.Sprintf("/admin/competitions/%s/", competition.ID),
			curatorToken,
			map[string]any{
				"end_date": competition.StartDate.AddDate(0, 0, -1).Format(time.RFC3339),
			},
		)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
		s.Contains(string(body), "end date must be after start date")
	})

	s.Run("PatchUnknownStatus", func() {
		competition := s.createOpenCompetition(curatorToken)

		resp, _ := s.request(
			http.MethodPatch,
			fmt.Sprintf("/admin/competitions/%s/", competition.ID),
			curatorToken,
			map[string]any{"status": "abandoned"},
		)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("UnknownLevel", func() {
		resp, _ := s.request(http.MethodPost, "/admin/competitions/", curatorToken, map[string]any{
			"title":         "Galactic Contest",
			"level":         "galactic",
			"type":          "quiz",
			"start_date":    time.Now().Format(time.RFC3339),
			"end_date":      time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
			"status":        "open",
			"admin_user_id": "user-curator",
		})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("JudgeSeedSubmission", func() {
		resp, body := s.request(
			http.MethodPatch, "/admin/submissions/sub-seed-1/", curatorToken, map[string]any{
				"status": "qualified",
				"score":  91,
			},
		)
		s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

		var sub types.CompetitionSubmission
		s.Require().NoError(json.Unmarshal(body, &sub))
		s.Equal(types.SubmissionStatusQualified, sub.Status)
		s.Require().NotNil(sub.Score)
		s.Equal(91, *sub.Score)
	})

	s.Run("BadStatusRejected", func() {
		resp, _ := s.request(
			http.MethodPatch, "/admin/submissions/sub-seed-1/", curatorToken, map[string]any{
				"status": "vaporized",
			},
		)
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})
}

func (s *ServerTestSuite) TestTour() {
	s.Run("Stops", func() {
		resp, body := s.request(http.MethodGet, "/tour/stops/", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var stops []tour.Stop
		s.Require().NoError(json.Unmarshal(body, &stops))
		s.Require().NotEmpty(stops)
		s.Equal("stop-entrance", stops[0].ID)
	})

	s.Run("ResolvedStop", func() {
		resp, body := s.request(http.MethodGet, "/tour/stops/0/", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var view tour.View
		s.Require().NoError(json.Unmarshal(body, &view))
		s.Require().NotNil(view.PanoramaID)
		s.Equal("pano-entrance", *view.PanoramaID)
	})

	s.Run("OutOfRange", func() {
		resp, _ := s.request(http.MethodGet, "/tour/stops/99/", "", nil)
		s.Equal(http.StatusNotFound, resp.StatusCode)
	})

	s.Run("NextWraps", func() {
		resp, body := s.request(http.MethodGet, "/tour/stops/3/", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var view tour.View
		s.Require().NoError(json.Unmarshal(body, &view))
		s.Equal(3, view.Index)

		resp, body = s.request(http.MethodPost, "/tour/next/", "", nil)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.Require().NoError(json.Unmarshal(body, &view))
		s.Equal(0, view.Index, "advancing past the last stop wraps")
	})
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
