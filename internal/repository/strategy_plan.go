// internal/repository/strategy_plan.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type StrategyPlanRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewStrategyPlanRepository(db *gorm.DB) *StrategyPlanRepository {
	return &StrategyPlanRepository{db: db, refs: refValidator{db: db}}
}

type CreateStrategyPlanInput struct {
	OrgID       uint    `json:"org_id" validate:"required"`
	PlanName    string  `json:"plan_name" validate:"required"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

type UpdateStrategyPlanInput struct {
	OrgID       Optional[uint]    `json:"org_id"`
	PlanName    Optional[string]  `json:"plan_name"`
	StartDate   Optional[*string] `json:"start_date"`
	EndDate     Optional[*string] `json:"end_date"`
	Description Optional[string]  `json:"description"`
	Status      Optional[string]  `json:"status"`
}

func (r *StrategyPlanRepository) List(ctx context.Context) ([]model.StrategyPlan, error) {
	plans := make([]model.StrategyPlan, 0)
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding all strategy plans: %w", err)
	}
	return plans, nil
}

func (r *StrategyPlanRepository) Get(ctx context.Context, id uint) (*model.StrategyPlan, error) {
	var plan model.StrategyPlan
	if err := r.db.WithContext(ctx).First(&plan, "strategy_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("strategy plan")
		}
		return nil, fmt.Errorf("finding strategy plan: %w", err)
	}
	return &plan, nil
}

func (r *StrategyPlanRepository) Create(ctx context.Context, in CreateStrategyPlanInput) (*model.StrategyPlan, error) {
	if err := r.refs.organization(ctx, in.OrgID); err != nil {
		return nil, err
	}

	plan := model.StrategyPlan{
		OrgID:       in.OrgID,
		PlanName:    in.PlanName,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		Status:      orDefault(in.Status, model.StatusDraft),
	}
	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("creating strategy plan: %w", err)
	}
	return r.Get(ctx, plan.StrategyPlanID)
}

func (r *StrategyPlanRepository) Update(ctx context.Context, id uint, in UpdateStrategyPlanInput) (*model.StrategyPlan, error) {
	plan, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if orgID, ok := in.OrgID.Get(); ok {
		if err := r.refs.organization(ctx, orgID); err != nil {
			return nil, err
		}
	}

	apply(&plan.OrgID, in.OrgID)
	apply(&plan.PlanName, in.PlanName)
	apply(&plan.StartDate, in.StartDate)
	apply(&plan.EndDate, in.EndDate)
	apply(&plan.Description, in.Description)
	apply(&plan.Status, in.Status)

	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("updating strategy plan: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *StrategyPlanRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.StrategyPlan{}, "strategy_plan_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting strategy plan: %w", err)
	}
	return nil
}
