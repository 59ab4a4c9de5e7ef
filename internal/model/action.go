// internal/model/action.go
package model

import "time"

type ActionPlan struct {
	ActionPlanID   uint      `gorm:"column:action_plan_id;primaryKey" json:"action_plan_id"`
	StrategyPlanID uint      `gorm:"column:strategy_plan_id" json:"strategy_plan_id"`
	Year           int       `gorm:"column:year" json:"year"`
	PlanName       string    `gorm:"column:plan_name;not null" json:"plan_name"`
	Description    string    `gorm:"column:description" json:"description"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ActionPlan) TableName() string { return "action_plans" }

type ActionItem struct {
	ActionItemID            uint      `gorm:"column:action_item_id;primaryKey" json:"action_item_id"`
	ActionPlanID            uint      `gorm:"column:action_plan_id" json:"action_plan_id"`
	GoalID                  *uint     `gorm:"column:goal_id" json:"goal_id"`
	ItemDescription         string    `gorm:"column:item_description;not null" json:"item_description"`
	ResponsibleDepartmentID *uint     `gorm:"column:responsible_department_id" json:"responsible_department_id"`
	ResponsiblePersonID     *uint     `gorm:"column:responsible_person_id" json:"responsible_person_id"`
	StartDate               *string   `gorm:"column:start_date" json:"start_date"`
	DueDate                 *string   `gorm:"column:due_date" json:"due_date"`
	KPI                     string    `gorm:"column:kpi" json:"kpi"`
	KPITarget               string    `gorm:"column:kpi_target" json:"kpi_target"`
	KPIActual               string    `gorm:"column:kpi_actual" json:"kpi_actual"`
	Budget                  *float64  `gorm:"column:budget" json:"budget"`
	Status                  string    `gorm:"column:status" json:"status"`
	Progress                int       `gorm:"column:progress;default:0" json:"progress"`
	ProgressUpdate          string    `gorm:"column:progress_update" json:"progress_update"`
	CreatedAt               time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ActionItem) TableName() string { return "action_items" }
