// internal/repository/dev_plan.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

// The HR and digital development plans share one request shape; both
// hang off a strategy plan.

type CreateDevPlanInput struct {
	StrategyPlanID uint    `json:"strategy_plan_id" validate:"required"`
	PlanName       string  `json:"plan_name" validate:"required"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
}

type UpdateDevPlanInput struct {
	StrategyPlanID Optional[uint]    `json:"strategy_plan_id"`
	PlanName       Optional[string]  `json:"plan_name"`
	StartDate      Optional[*string] `json:"start_date"`
	EndDate        Optional[*string] `json:"end_date"`
	Description    Optional[string]  `json:"description"`
	Status         Optional[string]  `json:"status"`
}

type HrDevPlanRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewHrDevPlanRepository(db *gorm.DB) *HrDevPlanRepository {
	return &HrDevPlanRepository{db: db, refs: refValidator{db: db}}
}

func (r *HrDevPlanRepository) List(ctx context.Context) ([]model.HrDevPlan, error) {
	plans := make([]model.HrDevPlan, 0)
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding all HR development plans: %w", err)
	}
	return plans, nil
}

func (r *HrDevPlanRepository) Get(ctx context.Context, id uint) (*model.HrDevPlan, error) {
	var plan model.HrDevPlan
	if err := r.db.WithContext(ctx).First(&plan, "hr_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("HR development plan")
		}
		return nil, fmt.Errorf("finding HR development plan: %w", err)
	}
	return &plan, nil
}

func (r *HrDevPlanRepository) Create(ctx context.Context, in CreateDevPlanInput) (*model.HrDevPlan, error) {
	if err := r.refs.strategyPlan(ctx, in.StrategyPlanID); err != nil {
		return nil, err
	}

	plan := model.HrDevPlan{
		StrategyPlanID: in.StrategyPlanID,
		PlanName:       in.PlanName,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Description:    in.Description,
		Status:         orDefault(in.Status, model.StatusDraft),
	}
	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("creating HR development plan: %w", err)
	}
	return r.Get(ctx, plan.HrPlanID)
}

func (r *HrDevPlanRepository) Update(ctx context.Context, id uint, in UpdateDevPlanInput) (*model.HrDevPlan, error) {
	plan, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if planID, ok := in.StrategyPlanID.Get(); ok {
		if err := r.refs.strategyPlan(ctx, planID); err != nil {
			return nil, err
		}
	}

	apply(&plan.StrategyPlanID, in.StrategyPlanID)
	apply(&plan.PlanName, in.PlanName)
	apply(&plan.StartDate, in.StartDate)
	apply(&plan.EndDate, in.EndDate)
	apply(&plan.Description, in.Description)
	apply(&plan.Status, in.Status)

	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("updating HR development plan: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *HrDevPlanRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.HrDevPlan{}, "hr_plan_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting HR development plan: %w", err)
	}
	return nil
}

type DigitalDevPlanRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewDigitalDevPlanRepository(db *gorm.DB) *DigitalDevPlanRepository {
	return &DigitalDevPlanRepository{db: db, refs: refValidator{db: db}}
}

func (r *DigitalDevPlanRepository) List(ctx context.Context) ([]model.DigitalDevPlan, error) {
	plans := make([]model.DigitalDevPlan, 0)
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding all digital development plans: %w", err)
	}
	return plans, nil
}

func (r *DigitalDevPlanRepository) Get(ctx context.Context, id uint) (*model.DigitalDevPlan, error) {
	var plan model.DigitalDevPlan
	if err := r.db.WithContext(ctx).First(&plan, "digital_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("digital development plan")
		}
		return nil, fmt.Errorf("finding digital development plan: %w", err)
	}
	return &plan, nil
}

func (r *DigitalDevPlanRepository) Create(ctx context.Context, in CreateDevPlanInput) (*model.DigitalDevPlan, error) {
	if err := r.refs.strategyPlan(ctx, in.StrategyPlanID); err != nil {
		return nil, err
	}

	plan := model.DigitalDevPlan{
		StrategyPlanID: in.StrategyPlanID,
		PlanName:       in.PlanName,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Description:    in.Description,
		Status:         orDefault(in.Status, model.StatusDraft),
	}
	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("creating digital development plan: %w", err)
	}
	return r.Get(ctx, plan.DigitalPlanID)
}

func (r *DigitalDevPlanRepository) Update(ctx context.Context, id uint, in UpdateDevPlanInput) (*model.DigitalDevPlan, error) {
	plan, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if planID, ok := in.StrategyPlanID.Get(); ok {
		if err := r.refs.strategyPlan(ctx, planID); err != nil {
			return nil, err
		}
	}

	apply(&plan.StrategyPlanID, in.StrategyPlanID)
	apply(&plan.PlanName, in.PlanName)
	apply(&plan.StartDate, in.StartDate)
	apply(&plan.EndDate, in.EndDate)
	apply(&plan.Description, in.Description)
	apply(&plan.Status, in.Status)

	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("updating digital development plan: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *DigitalDevPlanRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.DigitalDevPlan{}, "digital_plan_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting digital development plan: %w", err)
	}
	return nil
}
