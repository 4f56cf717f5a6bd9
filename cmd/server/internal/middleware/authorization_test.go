package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmuseum/archive-api/internal/types"
)

func invokeRequireRole(t *testing.T, required types.Role, user *types.User) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserContextKey, user)
	}

	handler := RequireRole(required)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return handler(c)
}

func TestRequireRole(t *testing.T) {
	t.Run("AnonymousGets401", func(t *testing.T) {
		err := invokeRequireRole(t, types.RoleResearcher, nil)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("UnderRankedGets403", func(t *testing.T) {
		err := invokeRequireRole(t, types.RoleArchivist, &types.User{
			ID:   "user-curator",
			Role: types.RoleCurator,
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("ExactRolePasses", func(t *testing.T) {
		err := invokeRequireRole(t, types.RoleCurator, &types.User{
			ID:   "user-curator",
			Role: types.RoleCurator,
		})
		assert.NoError(t, err)
	})

	t.Run("HigherRolePasses", func(t *testing.T) {
		err := invokeRequireRole(t, types.RoleResearcher, &types.User{
			ID:   "user-admin",
			Role: types.RoleSuperAdmin,
		})
		assert.NoError(t, err)
	})
}

func TestSessionUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, SessionUser(c), "nothing set means anonymous")

	c.Set(UserContextKey, "not a user")
	assert.Nil(t, SessionUser(c), "wrong type means anonymous")

	user := &types.User{ID: "u", Role: types.RoleResearcher}
	c.Set(UserContextKey, user)
	assert.Equal(t, user, SessionUser(c))
}

func TestBearerToken(t *testing.T) {
	e := echo.New()

	token := func(header string) string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		return BearerToken(e.NewContext(req, httptest.NewRecorder()))
	}

	assert.Empty(t, token(""))
	assert.Empty(t, token("Basic dXNlcjpwYXNz"))
	assert.Equal(t, "abc.def.ghi", token("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", token("Bearer  abc.def.ghi "), "surrounding space trimmed")
}
