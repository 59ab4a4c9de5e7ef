// internal/repository/strategic_goal.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type StrategicGoalRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewStrategicGoalRepository(db *gorm.DB) *StrategicGoalRepository {
	return &StrategicGoalRepository{db: db, refs: refValidator{db: db}}
}

type CreateStrategicGoalInput struct {
	StrategyPlanID  uint    `json:"strategy_plan_id" validate:"required"`
	GoalDescription string  `json:"goal_description" validate:"required"`
	TargetMetric    string  `json:"target_metric"`
	TargetValue     string  `json:"target_value"`
	Deadline        *string `json:"deadline"`
	ActualValue     string  `json:"actual_value"`
	Progress        int     `json:"progress"`
}

type UpdateStrategicGoalInput struct {
	StrategyPlanID  Optional[uint]    `json:"strategy_plan_id"`
	GoalDescription Optional[string]  `json:"goal_description"`
	TargetMetric    Optional[string]  `json:"target_metric"`
	TargetValue     Optional[string]  `json:"target_value"`
	Deadline        Optional[*string] `json:"deadline"`
	ActualValue     Optional[string]  `json:"actual_value"`
	Progress        Optional[int]     `json:"progress"`
}

func (r *StrategicGoalRepository) List(ctx context.Context) ([]model.StrategicGoal, error) {
	goals := make([]model.StrategicGoal, 0)
	if err := r.db.WithContext(ctx).Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("finding all strategic goals: %w", err)
	}
	return goals, nil
}

func (r *StrategicGoalRepository) Get(ctx context.Context, id uint) (*model.StrategicGoal, error) {
	var goal model.StrategicGoal
	if err := r.db.WithContext(ctx).First(&goal, "goal_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("strategic goal")
		}
		return nil, fmt.Errorf("finding strategic goal: %w", err)
	}
	return &goal, nil
}

func (r *StrategicGoalRepository) Create(ctx context.Context, in CreateStrategicGoalInput) (*model.StrategicGoal, error) {
	if err := r.refs.strategyPlan(ctx, in.StrategyPlanID); err != nil {
		return nil, err
	}

	goal := model.StrategicGoal{
		StrategyPlanID:  in.StrategyPlanID,
		GoalDescription: in.GoalDescription,
		TargetMetric:    in.TargetMetric,
		TargetValue:     in.TargetValue,
		Deadline:        in.Deadline,
		ActualValue:     in.ActualValue,
		Progress:        in.Progress,
	}
	if err := r.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("creating strategic goal: %w", err)
	}
	return r.Get(ctx, goal.GoalID)
}

func (r *StrategicGoalRepository) Update(ctx context.Context, id uint, in UpdateStrategicGoalInput) (*model.StrategicGoal, error) {
	goal, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if planID, ok := in.StrategyPlanID.Get(); ok {
		if err := r.refs.strategyPlan(ctx, planID); err != nil {
			return nil, err
		}
	}

	apply(&goal.StrategyPlanID, in.StrategyPlanID)
	apply(&goal.GoalDescription, in.GoalDescription)
	apply(&goal.TargetMetric, in.TargetMetric)
	apply(&goal.TargetValue, in.TargetValue)
	apply(&goal.Deadline, in.Deadline)
	apply(&goal.ActualValue, in.ActualValue)
	apply(&goal.Progress, in.Progress)

	if err := r.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, fmt.Errorf("updating strategic goal: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *StrategicGoalRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.StrategicGoal{}, "goal_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting strategic goal: %w", err)
	}
	return nil
}
