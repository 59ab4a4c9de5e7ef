// internal/model/risk.go
package model

import "time"

type RiskManagementPlan struct {
	RiskPlanID  uint      `gorm:"column:risk_plan_id;primaryKey" json:"risk_plan_id"`
	PlanName    string    `gorm:"column:plan_name;not null" json:"plan_name"`
	Description string    `gorm:"column:description" json:"description"`
	Year        int       `gorm:"column:year" json:"year"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (RiskManagementPlan) TableName() string { return "risk_management_plans" }

type Risk struct {
	RiskID              uint      `gorm:"column:risk_id;primaryKey" json:"risk_id"`
	RiskPlanID          *uint     `gorm:"column:risk_plan_id" json:"risk_plan_id"`
	StrategyPlanID      *uint     `gorm:"column:strategy_plan_id" json:"strategy_plan_id"`
	ActionItemID        *uint     `gorm:"column:action_item_id" json:"action_item_id"`
	RiskDescription     string    `gorm:"column:risk_description;not null" json:"risk_description"`
	Likelihood          string    `gorm:"column:likelihood" json:"likelihood"`
	Impact              string    `gorm:"column:impact" json:"impact"`
	RiskScore           int       `gorm:"column:risk_score;default:0" json:"risk_score"`
	MitigationStrategy  string    `gorm:"column:mitigation_strategy" json:"mitigation_strategy"`
	ContingencyPlan     string    `gorm:"column:contingency_plan" json:"contingency_plan"`
	ResponsiblePersonID *uint     `gorm:"column:responsible_person_id" json:"responsible_person_id"`
	Status              string    `gorm:"column:status" json:"status"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Risk) TableName() string { return "risks" }
