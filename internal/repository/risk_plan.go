// internal/repository/risk_plan.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type RiskManagementPlanRepository struct {
	db *gorm.DB
}

func NewRiskManagementPlanRepository(db *gorm.DB) *RiskManagementPlanRepository {
	return &RiskManagementPlanRepository{db: db}
}

type CreateRiskManagementPlanInput struct {
	PlanName    string `json:"plan_name" validate:"required"`
	Description string `json:"description"`
	Year        int    `json:"year" validate:"required"`
	Status      string `json:"status"`
}

type UpdateRiskManagementPlanInput struct {
	PlanName    Optional[string] `json:"plan_name"`
	Description Optional[string] `json:"description"`
	Year        Optional[int]    `json:"year"`
	Status      Optional[string] `json:"status"`
}

func (r *RiskManagementPlanRepository) List(ctx context.Context) ([]model.RiskManagementPlan, error) {
	plans := make([]model.RiskManagementPlan, 0)
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("finding all risk management plans: %w", err)
	}
	return plans, nil
}

func (r *RiskManagementPlanRepository) Get(ctx context.Context, id uint) (*model.RiskManagementPlan, error) {
	var plan model.RiskManagementPlan
	if err := r.db.WithContext(ctx).First(&plan, "risk_plan_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("risk management plan")
		}
		return nil, fmt.Errorf("finding risk management plan: %w", err)
	}
	return &plan, nil
}

func (r *RiskManagementPlanRepository) Create(ctx context.Context, in CreateRiskManagementPlanInput) (*model.RiskManagementPlan, error) {
	plan := model.RiskManagementPlan{
		PlanName:    in.PlanName,
		Description: in.Description,
		Year:        in.Year,
		Status:      orDefault(in.Status, model.StatusDraft),
	}
	if err := r.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("creating risk management plan: %w", err)
	}
	return r.Get(ctx, plan.RiskPlanID)
}

func (r *RiskManagementPlanRepository) Update(ctx context.Context, id uint, in UpdateRiskManagementPlanInput) (*model.RiskManagementPlan, error) {
	plan, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(&plan.PlanName, in.PlanName)
	apply(&plan.Description, in.Description)
	apply(&plan.Year, in.Year)
	apply(&plan.Status, in.Status)

	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("updating risk management plan: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *RiskManagementPlanRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	count, err := dependentCount(ctx, r.db, &model.Risk{}, "risk_plan_id", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict("cannot delete risk management plan with associated risks; delete the risks first")
	}

	if err := r.db.WithContext(ctx).Delete(&model.RiskManagementPlan{}, "risk_plan_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting risk management plan: %w", err)
	}
	return nil
}
