// internal/repository/risk.go
package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

// Risk references are all optional; a risk created with none of them
// skips the existence checks entirely.

type RiskRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewRiskRepository(db *gorm.DB) *RiskRepository {
	return &RiskRepository{db: db, refs: refValidator{db: db}}
}

type CreateRiskInput struct {
	RiskPlanID          *uint  `json:"risk_plan_id"`
	StrategyPlanID      *uint  `json:"strategy_plan_id"`
	ActionItemID        *uint  `json:"action_item_id"`
	RiskDescription     string `json:"risk_description" validate:"required"`
	Likelihood          string `json:"likelihood"`
	Impact              string `json:"impact"`
	RiskScore           int    `json:"risk_score"`
	MitigationStrategy  string `json:"mitigation_strategy"`
	ContingencyPlan     string `json:"contingency_plan"`
	ResponsiblePersonID *uint  `json:"responsible_person_id"`
	Status              string `json:"status"`
}

type UpdateRiskInput struct {
	RiskPlanID          Optional[*uint]  `json:"risk_plan_id"`
	StrategyPlanID      Optional[*uint]  `json:"strategy_plan_id"`
	ActionItemID        Optional[*uint]  `json:"action_item_id"`
	RiskDescription     Optional[string] `json:"risk_description"`
	Likelihood          Optional[string] `json:"likelihood"`
	Impact              Optional[string] `json:"impact"`
	RiskScore           Optional[int]    `json:"risk_score"`
	MitigationStrategy  Optional[string] `json:"mitigation_strategy"`
	ContingencyPlan     Optional[string] `json:"contingency_plan"`
	ResponsiblePersonID Optional[*uint]  `json:"responsible_person_id"`
	Status              Optional[string] `json:"status"`
}

func (r *RiskRepository) List(ctx context.Context) ([]model.Risk, error) {
	risks := make([]model.Risk, 0)
	if err := r.db.WithContext(ctx).Find(&risks).Error; err != nil {
		return nil, fmt.Errorf("finding all risks: %w", err)
	}
	return risks, nil
}

func (r *RiskRepository) Get(ctx context.Context, id uint) (*model.Risk, error) {
	var risk model.Risk
	if err := r.db.WithContext(ctx).First(&risk, "risk_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("risk")
		}
		return nil, fmt.Errorf("finding risk: %w", err)
	}
	return &risk, nil
}

func (r *RiskRepository) Create(ctx context.Context, in CreateRiskInput) (*model.Risk, error) {
	g, gctx := errgroup.WithContext(ctx)
	if in.RiskPlanID != nil {
		planID := *in.RiskPlanID
		g.Go(func() error { return r.refs.riskPlan(gctx, planID) })
	}
	if in.StrategyPlanID != nil {
		planID := *in.StrategyPlanID
		g.Go(func() error { return r.refs.strategyPlan(gctx, planID) })
	}
	if in.ActionItemID != nil {
		itemID := *in.ActionItemID
		g.Go(func() error { return r.refs.actionItem(gctx, itemID) })
	}
	if in.ResponsiblePersonID != nil {
		personID := *in.ResponsiblePersonID
		g.Go(func() error { return r.refs.user(gctx, personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	risk := model.Risk{
		RiskPlanID:          in.RiskPlanID,
		StrategyPlanID:      in.StrategyPlanID,
		ActionItemID:        in.ActionItemID,
		RiskDescription:     in.RiskDescription,
		Likelihood:          in.Likelihood,
		Impact:              in.Impact,
		RiskScore:           in.RiskScore,
		MitigationStrategy:  in.MitigationStrategy,
		ContingencyPlan:     in.ContingencyPlan,
		ResponsiblePersonID: in.ResponsiblePersonID,
		Status:              orDefault(in.Status, model.StatusIdentified),
	}
	if err := r.db.WithContext(ctx).Create(&risk).Error; err != nil {
		return nil, fmt.Errorf("creating risk: %w", err)
	}
	return r.Get(ctx, risk.RiskID)
}

func (r *RiskRepository) Update(ctx context.Context, id uint, in UpdateRiskInput) (*model.Risk, error) {
	risk, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if planID, ok := in.RiskPlanID.Get(); ok && planID != nil {
		g.Go(func() error { return r.refs.riskPlan(gctx, *planID) })
	}
	if planID, ok := in.StrategyPlanID.Get(); ok && planID != nil {
		g.Go(func() error { return r.refs.strategyPlan(gctx, *planID) })
	}
	if itemID, ok := in.ActionItemID.Get(); ok && itemID != nil {
		g.Go(func() error { return r.refs.actionItem(gctx, *itemID) })
	}
	if personID, ok := in.ResponsiblePersonID.Get(); ok && personID != nil {
		g.Go(func() error { return r.refs.user(gctx, *personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	apply(&risk.RiskPlanID, in.RiskPlanID)
	apply(&risk.StrategyPlanID, in.StrategyPlanID)
	apply(&risk.ActionItemID, in.ActionItemID)
	apply(&risk.RiskDescription, in.RiskDescription)
	apply(&risk.Likelihood, in.Likelihood)
	apply(&risk.Impact, in.Impact)
	apply(&risk.RiskScore, in.RiskScore)
	apply(&risk.MitigationStrategy, in.MitigationStrategy)
	apply(&risk.ContingencyPlan, in.ContingencyPlan)
	apply(&risk.ResponsiblePersonID, in.ResponsiblePersonID)
	apply(&risk.Status, in.Status)

	if err := r.db.WithContext(ctx).Save(risk).Error; err != nil {
		return nil, fmt.Errorf("updating risk: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *RiskRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Risk{}, "risk_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting risk: %w", err)
	}
	return nil
}
