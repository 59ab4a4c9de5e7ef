// internal/model/strategy.go
package model

import "time"

// Plan and goal statuses are free-form text in the schema; these are the
// defaults applied when a create request omits the field.
const (
	StatusDraft      = "Draft"
	StatusNotStarted = "Not Started"
	StatusIdentified = "Identified"
)

type StrategyPlan struct {
	StrategyPlanID uint      `gorm:"column:strategy_plan_id;primaryKey" json:"strategy_plan_id"`
	OrgID          uint      `gorm:"column:org_id" json:"org_id"`
	PlanName       string    `gorm:"column:plan_name;not null" json:"plan_name"`
	StartDate      *string   `gorm:"column:start_date" json:"start_date"`
	EndDate        *string   `gorm:"column:end_date" json:"end_date"`
	Description    string    `gorm:"column:description" json:"description"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (StrategyPlan) TableName() string { return "strategy_plans" }

type StrategicGoal struct {
	GoalID          uint      `gorm:"column:goal_id;primaryKey" json:"goal_id"`
	StrategyPlanID  uint      `gorm:"column:strategy_plan_id" json:"strategy_plan_id"`
	GoalDescription string    `gorm:"column:goal_description;not null" json:"goal_description"`
	TargetMetric    string    `gorm:"column:target_metric" json:"target_metric"`
	TargetValue     string    `gorm:"column:target_value" json:"target_value"`
	Deadline        *string   `gorm:"column:deadline" json:"deadline"`
	ActualValue     string    `gorm:"column:actual_value" json:"actual_value"`
	Progress        int       `gorm:"column:progress;default:0" json:"progress"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (StrategicGoal) TableName() string { return "strategic_goals" }
