// internal/repository/repository_test.go
package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

// testDB opens a migrated SQLite database in a per-test temp directory.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

// seedOrganization inserts an organization and returns its id.
func seedOrganization(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	org, err := NewOrganizationRepository(db).Create(context.Background(), CreateOrganizationInput{
		OrgName: "Provincial Health Office",
		Vision:  "Healthy communities",
	})
	require.NoError(t, err)
	return org.OrgID
}

// seedStrategyPlan inserts an organization and a strategy plan under it.
func seedStrategyPlan(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	orgID := seedOrganization(t, db)
	plan, err := NewStrategyPlanRepository(db).Create(context.Background(), CreateStrategyPlanInput{
		OrgID:    orgID,
		PlanName: "Five-year strategy",
	})
	require.NoError(t, err)
	return plan.StrategyPlanID
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	require.Error(t, err)
}

func TestSeedAdmin(t *testing.T) {
	db := testDB(t)
	hasher := auth.NewPasswordHasher()
	ctx := context.Background()

	require.NoError(t, SeedAdmin(ctx, db, hasher))

	var admin model.User
	require.NoError(t, db.Where("username = ?", model.AdminUsername).First(&admin).Error)
	require.Equal(t, model.RoleAdmin, admin.Role)
	require.True(t, hasher.Verify("123456", admin.Password))

	// Seeding again must not duplicate the account.
	require.NoError(t, SeedAdmin(ctx, db, hasher))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", model.AdminUsername).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
