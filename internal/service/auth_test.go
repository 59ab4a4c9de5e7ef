// internal/service/auth_test.go
package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *auth.TokenManager) {
	t.Helper()

	db, err := repository.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	hasher := auth.NewPasswordHasher()
	require.NoError(t, repository.SeedAdmin(context.Background(), db, hasher))

	tokens := auth.NewTokenManager("test-secret", 30*24*time.Hour)
	users := repository.NewUserRepository(db, hasher)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthService(users, hasher, tokens, logger), tokens
}

func TestLoginSeededAdmin(t *testing.T) {
	svc, tokens := newAuthService(t)

	out, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, out.User.Role)
	require.NotEmpty(t, out.Token)

	claims, err := tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginInput{Username: "admin", Password: "wrong"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	// An unknown username yields the same error as a wrong password.
	_, err := svc.Login(context.Background(), LoginInput{Username: "nobody", Password: "123456"})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
