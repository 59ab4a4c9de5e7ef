// internal/repository/action_plan.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type ActionPlanRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewActionPlanRepository(db *gorm.DB) *ActionPlanRepository {
	return &ActionPlanRepository{db: db, refs: refValidator{db: db}}
}

type CreateActionPlanInput struct {
	StrategyPlanID uint   `json:"strategy_plan_id" validate:"required"`
	Year           int    `json:"year" validate:"required"`
	PlanName       string `json:"plan_name" validate:"required"`
	Description    string `json:"description"`
	Status         string `json:"status"`
}

type UpdateActionPlanInput struct {
	StrategyPlanID Optional[uint]   `json:"strategy_plan_id"`
	Year           Optional[int]    `json:"year"`
	PlanName       Optional[string] `json:"plan_name"`
	Description    Optional[string] `json:"description"`
	Status         Optional[string] `json:"status"`
}

func (r *ActionPlanRepository) List(ctx context.Context) ([]model.ActionPlan, error) {
	plans := make([]model.ActionPlan, 0)
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding all action plans: %w", err)
	}
	return plans, nil
}

func (r *ActionPlanRepository) Get(ctx context.Context, id uint) (*model.ActionPlan, error) {
	var plan model.ActionPlan
	if err := r.db.WithContext(ctx).First(&plan, "action_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("action plan")
		}
		return nil, fmt.Errorf("finding action plan: %w", err)
	}
	return &plan, nil
}

func (r *ActionPlanRepository) Create(ctx context.Context, in CreateActionPlanInput) (*model.ActionPlan, error) {
	if err := r.refs.strategyPlan(ctx, in.StrategyPlanID); err != nil {
		return nil, err
	}

	plan := model.ActionPlan{
		StrategyPlanID: in.StrategyPlanID,
		Year:           in.Year,
		PlanName:       in.PlanName,
		Description:    in.Description,
		Status:         orDefault(in.Status, model.StatusDraft),
	}
	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("creating action plan: %w", err)
	}
	return r.Get(ctx, plan.ActionPlanID)
}

func (r *ActionPlanRepository) Update(ctx context.Context, id uint, in UpdateActionPlanInput) (*model.ActionPlan, error) {
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
	apply(&plan.Year, in.Year)
	apply(&plan.PlanName, in.PlanName)
	apply(&plan.Description, in.Description)
	apply(&plan.Status, in.Status)

	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("updating action plan: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *ActionPlanRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	count, err := dependentCount(ctx, r.db, &model.ActionItem{}, "action_plan_id", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict("cannot delete action plan with associated action items; delete the action items first")
	}

	if err := r.db.WithContext(ctx).Delete(&model.ActionPlan{}, "action_plan_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting action plan: %w", err)
	}
	return nil
}
