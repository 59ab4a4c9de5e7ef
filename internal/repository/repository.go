// internal/repository/repository.go
package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

// Open connects to the store. driver is "sqlite" (dsn is a file path,
// created on demand) or "postgres" (dsn is a connection string). The
// returned handle is constructed once at process start and passed into
// each repository; there is no package-level connection.
func Open(driver, dsn string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "sqlite":
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormConfig)
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	if driver == "postgres" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	} else {
		// SQLite is a single-writer store.
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the thirteen planning tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.Department{},
		&model.StrategyPlan{},
		&model.StrategicGoal{},
		&model.HrDevPlan{},
		&model.HrDevInitiative{},
		&model.DigitalDevPlan{},
		&model.DigitalInitiative{},
		&model.ActionPlan{},
		&model.ActionItem{},
		&model.RiskManagementPlan{},
		&model.Risk{},
	)
}

// SeedAdmin creates the default admin account on first boot if it does
// not exist. The fixed credential is an operational secret and must be
// rotated after deployment.
func SeedAdmin(ctx context.Context, db *gorm.DB, hasher *auth.PasswordHasher) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", model.AdminUsername).
		Count(&count).Error; err != nil {
		return fmt.Errorf("checking for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash("123456")
	if err != nil {
		return err
	}
	email := "admin@flow3.local"
	admin := model.User{
		Username: model.AdminUsername,
		Password: hash,
		Email:    &email,
		Name:     "Administrator",
		Role:     model.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	return nil
}

// exists confirms a referenced row is present before a write proceeds.
// A missing row yields a NotFound error naming the resource.
func exists(ctx context.Context, db *gorm.DB, m interface{}, column, resource string, id uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(m).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("checking %s reference: %w", resource, err)
	}
	if count == 0 {
		return domain.NotFound(resource)
	}
	return nil
}

// dependentCount is the delete-guard policy: count the rows in the
// dependent table whose foreign key still references the row being
// deleted. Callers refuse the delete when the count is positive.
func dependentCount(ctx context.Context, db *gorm.DB, m interface{}, column string, id uint) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(m).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting dependent rows: %w", err)
	}
	return count, nil
}

// orDefault substitutes the fallback for an omitted status field.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// refValidator groups the per-entity existence checks shared by the
// repositories. Each check validates one foreign-key value from a
// request body.
type refValidator struct {
	db *gorm.DB
}

func (v refValidator) organization(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.Organization{}, "org_id", "organization", id)
}

func (v refValidator) strategyPlan(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.StrategyPlan{}, "strategy_plan_id", "strategy plan", id)
}

func (v refValidator) strategicGoal(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.StrategicGoal{}, "goal_id", "strategic goal", id)
}

func (v refValidator) hrDevPlan(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.HrDevPlan{}, "hr_plan_id", "HR development plan", id)
}

func (v refValidator) digitalDevPlan(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.DigitalDevPlan{}, "digital_plan_id", "digital development plan", id)
}

func (v refValidator) actionPlan(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.ActionPlan{}, "action_plan_id", "action plan", id)
}

func (v refValidator) actionItem(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.ActionItem{}, "action_item_id", "action item", id)
}

func (v refValidator) department(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.Department{}, "department_id", "department", id)
}

func (v refValidator) user(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.User{}, "id", "responsible person", id)
}

func (v refValidator) riskPlan(ctx context.Context, id uint) error {
	return exists(ctx, v.db, &model.RiskManagementPlan{}, "risk_plan_id", "risk management plan", id)
}
