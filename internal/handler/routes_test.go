// internal/handler/routes_test.go
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
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
	"github.com/witoon-skydea/flow-3-strategic-system/internal/service"
)

type testServer struct {
	router http.Handler
	users  *repository.UserRepository
	tokens *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := repository.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	hasher := auth.NewPasswordHasher()
	require.NoError(t, repository.SeedAdmin(context.Background(), db, hasher))

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	users := repository.NewUserRepository(db, hasher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps := Dependencies{
		Tokens: tokens,
		Auth:   service.NewAuthService(users, hasher, tokens, logger),

		Users:              users,
		Organizations:      repository.NewOrganizationRepository(db),
		Departments:        repository.NewDepartmentRepository(db),
		StrategyPlans:      repository.NewStrategyPlanRepository(db),
		StrategicGoals:     repository.NewStrategicGoalRepository(db),
		HrDevPlans:         repository.NewHrDevPlanRepository(db),
		HrDevInitiatives:   repository.NewHrDevInitiativeRepository(db),
		DigitalDevPlans:    repository.NewDigitalDevPlanRepository(db),
		DigitalInitiatives: repository.NewDigitalInitiativeRepository(db),
		ActionPlans:        repository.NewActionPlanRepository(db),
		ActionItems:        repository.NewActionItemRepository(db),
		RiskPlans:          repository.NewRiskManagementPlanRepository(db),
		Risks:              repository.NewRiskRepository(db),
		Dashboards:         repository.NewDashboardRepository(db),
	}

	return &testServer{router: Routes(deps), users: users, tokens: tokens}
}

// tokenFor creates a user with the given role and returns a bearer token.
func (s *testServer) tokenFor(t *testing.T, username string, role model.Role) string {
	t.Helper()

	user, err := s.users.Create(context.Background(), repository.CreateUserInput{
		Username: username,
		Password: "secret",
		Role:     role,
	})
	require.NoError(t, err)

	token, err := s.tokens.Generate(user.ID)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var envelope Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestLoginEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide username and password", envelope.Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "admin", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", envelope.Error)
	})

	t.Run("seeded admin logs in", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{
			"username": "admin", "password": "123456",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, envelope.Success)

		data := envelope.Data.(map[string]interface{})
		assert.NotEmpty(t, data["token"])

		user := data["user"].(map[string]interface{})
		assert.Equal(t, "admin", user["username"])
		// The password hash never leaves the server.
		assert.NotContains(t, user, "password")
	})
}

func TestMeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "somchai", model.RoleStaff)

	rec, _ := srv.do(t, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, envelope := srv.do(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := envelope.Data.(map[string]interface{})
	assert.Equal(t, "somchai", user["username"])
}

func TestRoleGating(t *testing.T) {
	srv := newTestServer(t)
	staff := srv.tokenFor(t, "staff1", model.RoleStaff)
	management := srv.tokenFor(t, "manager1", model.RoleManagement)

	t.Run("reads need a token", func(t *testing.T) {
		rec, _ := srv.do(t, http.MethodGet, "/organizations", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("staff can read", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodGet, "/organizations", staff, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, envelope.Count)
		assert.Equal(t, 0, *envelope.Count)
	})

	t.Run("staff cannot write", func(t *testing.T) {
		rec, _ := srv.do(t, http.MethodPost, "/organizations", staff, map[string]string{"org_name": "X"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("management can write", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPost, "/organizations", management, map[string]string{
			"org_name": "Provincial Health Office",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		org := envelope.Data.(map[string]interface{})
		assert.Equal(t, "Provincial Health Office", org["org_name"])
	})

	t.Run("users resource is admin only", func(t *testing.T) {
		rec, _ := srv.do(t, http.MethodGet, "/users", management, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		admin := srv.tokenFor(t, "admin2", model.RoleAdmin)
		rec, envelope := srv.do(t, http.MethodGet, "/users", admin, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, envelope.Success)
	})
}

func TestCRUDFlow(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "manager1", model.RoleManagement)

	t.Run("create without required field", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPost, "/organizations", token, map[string]string{"vision": "v"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide organization name", envelope.Error)
	})

	_, created := srv.do(t, http.MethodPost, "/organizations", token, map[string]string{
		"org_name": "Provincial Health Office",
		"vision":   "Healthy communities",
	})
	orgID := int(created.Data.(map[string]interface{})["org_id"].(float64))

	t.Run("get", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodGet, "/organizations/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		org := envelope.Data.(map[string]interface{})
		assert.Equal(t, "Provincial Health Office", org["org_name"])
	})

	t.Run("get with non-numeric id", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodGet, "/organizations/abc", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "organization not found", envelope.Error)
	})

	t.Run("partial update", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPut, "/organizations/1", token, map[string]string{"mission": "Serve"})
		require.Equal(t, http.StatusOK, rec.Code)
		org := envelope.Data.(map[string]interface{})
		assert.Equal(t, "Serve", org["mission"])
		// Fields absent from the payload are retained.
		assert.Equal(t, "Healthy communities", org["vision"])
	})

	t.Run("dependent rows block delete", func(t *testing.T) {
		rec, _ := srv.do(t, http.MethodPost, "/strategy-plans", token, map[string]interface{}{
			"org_id": orgID, "plan_name": "Five-year strategy",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = srv.do(t, http.MethodPost, "/action-plans", token, map[string]interface{}{
			"strategy_plan_id": 1, "year": 2026, "plan_name": "Annual plan",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, _ = srv.do(t, http.MethodPost, "/action-items", token, map[string]interface{}{
			"action_plan_id": 1, "item_description": "Item",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, envelope := srv.do(t, http.MethodDelete, "/action-plans/1", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, envelope.Error, "cannot delete action plan")
	})

	t.Run("delete returns empty object", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodDelete, "/action-items/1", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, envelope.Success)
		assert.Equal(t, map[string]interface{}{}, envelope.Data)
	})

	t.Run("missing parent surfaces as 404", func(t *testing.T) {
		rec, envelope := srv.do(t, http.MethodPost, "/strategic-goals", token, map[string]interface{}{
			"strategy_plan_id": 99, "goal_description": "Orphan",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "strategy plan not found", envelope.Error)
	})
}

func TestDashboardEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token := srv.tokenFor(t, "staff1", model.RoleStaff)

	rec, _ := srv.do(t, http.MethodGet, "/dashboard/overview", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, envelope := srv.do(t, http.MethodGet, "/dashboard/overview", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := envelope.Data.(map[string]interface{})
	assert.EqualValues(t, 0, overview["strategicGoalsCount"])

	for _, path := range []string{
		"/dashboard/strategic-kpi",
		"/dashboard/action-kpi",
		"/dashboard/risk-summary",
		"/dashboard/timeline",
	} {
		rec, envelope := srv.do(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.NotNil(t, envelope.Count, path)
		assert.Equal(t, 0, *envelope.Count, path)
	}
}
