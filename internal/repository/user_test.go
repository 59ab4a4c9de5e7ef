// internal/repository/user_test.go
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

func TestUserRepository(t *testing.T) {
	db := testDB(t)
	hasher := auth.NewPasswordHasher()
	repo := NewUserRepository(db, hasher)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserInput{
		Username: "somchai",
		Password: "secret",
		Name:     "Somchai",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, hasher.Verify("secret", created.Password))

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, CreateUserInput{
			Username: "somchai",
			Password: "other",
			Role:     model.RoleStaff,
		})
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("empty update leaves the row unchanged", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, UpdateUserInput{})
		require.NoError(t, err)
		assert.Equal(t, created.Username, updated.Username)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Role, updated.Role)
		assert.Equal(t, created.Password, updated.Password)
	})

	t.Run("unknown role on update is rejected", func(t *testing.T) {
		_, err := repo.Update(ctx, created.ID, UpdateUserInput{Role: Of(model.Role("superuser"))})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("role promotion", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, UpdateUserInput{Role: Of(model.RoleManagement)})
		require.NoError(t, err)
		assert.Equal(t, model.RoleManagement, updated.Role)
	})

	t.Run("password change rehashes", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, UpdateUserInput{Password: Of("newsecret")})
		require.NoError(t, err)
		assert.True(t, hasher.Verify("newsecret", updated.Password))
		assert.False(t, hasher.Verify("secret", updated.Password))
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.Get(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepositoryAdminUndeletable(t *testing.T) {
	db := testDB(t)
	hasher := auth.NewPasswordHasher()
	repo := NewUserRepository(db, hasher)
	ctx := context.Background()

	require.NoError(t, SeedAdmin(ctx, db, hasher))

	admin, err := repo.FindByUsername(ctx, model.AdminUsername)
	require.NoError(t, err)

	err = repo.Delete(ctx, admin.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	// The account must still be there.
	_, err = repo.Get(ctx, admin.ID)
	require.NoError(t, err)

	// Other accounts delete normally.
	staff, err := repo.Create(ctx, CreateUserInput{Username: "temp", Password: "x", Role: model.RoleStaff})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, staff.ID))
	_, err = repo.Get(ctx, staff.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
