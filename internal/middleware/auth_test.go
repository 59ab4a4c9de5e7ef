// internal/middleware/auth_test.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/repository"
)

func newTestGuard(t *testing.T) (*auth.TokenManager, *repository.UserRepository) {
	t.Helper()

	db, err := repository.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	users := repository.NewUserRepository(db, auth.NewPasswordHasher())
	return tokens, users
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	tokens, users := newTestGuard(t)
	guarded := Authenticate(tokens, users)(okHandler())

	staff, err := users.Create(context.Background(), repository.CreateUserInput{
		Username: "somchai", Password: "secret", Role: model.RoleStaff,
	})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		token, err := tokens.Generate(staff.ID + 100)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token loads the user", func(t *testing.T) {
		token, err := tokens.Generate(staff.ID)
		require.NoError(t, err)

		inspect := Authenticate(tokens, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			require.True(t, ok)
			assert.Equal(t, staff.ID, user.ID)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		inspect.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		role model.Role
		min  model.Role
		want int
	}{
		{model.RoleStaff, model.RoleManagement, http.StatusForbidden},
		{model.RoleManagement, model.RoleManagement, http.StatusOK},
		{model.RoleAdmin, model.RoleManagement, http.StatusOK},
		{model.RoleManagement, model.RoleAdmin, http.StatusForbidden},
		{model.RoleAdmin, model.RoleAdmin, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(string(tc.role)+"_needs_"+string(tc.min), func(t *testing.T) {
			guarded := RequireRole(tc.min)(okHandler())

			user := &model.User{ID: 1, Role: tc.role}
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), userKey, user))

			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequireRoleWithoutAuthenticate(t *testing.T) {
	guarded := RequireRole(model.RoleStaff)(okHandler())
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
