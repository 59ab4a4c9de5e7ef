// internal/model/development.go
package model

import "time"

type HrDevPlan struct {
	HrPlanID       uint      `gorm:"column:hr_plan_id;primaryKey" json:"hr_plan_id"`
	StrategyPlanID uint      `gorm:"column:strategy_plan_id" json:"strategy_plan_id"`
	PlanName       string    `gorm:"column:plan_name;not null" json:"plan_name"`
	StartDate      *string   `gorm:"column:start_date" json:"start_date"`
	EndDate        *string   `gorm:"column:end_date" json:"end_date"`
	Description    string    `gorm:"column:description" json:"description"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (HrDevPlan) TableName() string { return "hr_dev_plans" }

type HrDevInitiative struct {
	HrInitiativeID       uint      `gorm:"column:hr_initiative_id;primaryKey" json:"hr_initiative_id"`
	HrPlanID             uint      `gorm:"column:hr_plan_id" json:"hr_plan_id"`
	InitiativeName       string    `gorm:"column:initiative_name;not null" json:"initiative_name"`
	Description          string    `gorm:"column:description" json:"description"`
	RequiredCompetencies string    `gorm:"column:required_competencies" json:"required_competencies"`
	TrainingResources    string    `gorm:"column:training_resources" json:"training_resources"`
	Budget               *float64  `gorm:"column:budget" json:"budget"`
	ResponsiblePersonID  *uint     `gorm:"column:responsible_person_id" json:"responsible_person_id"`
	Status               string    `gorm:"column:status" json:"status"`
	Progress             int       `gorm:"column:progress;default:0" json:"progress"`
	CreatedAt            time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (HrDevInitiative) TableName() string { return "hr_dev_initiatives" }

type DigitalDevPlan struct {
	DigitalPlanID  uint      `gorm:"column:digital_plan_id;primaryKey" json:"digital_plan_id"`
	StrategyPlanID uint      `gorm:"column:strategy_plan_id" json:"strategy_plan_id"`
	PlanName       string    `gorm:"column:plan_name;not null" json:"plan_name"`
	StartDate      *string   `gorm:"column:start_date" json:"start_date"`
	EndDate        *string   `gorm:"column:end_date" json:"end_date"`
	Description    string    `gorm:"column:description" json:"description"`
	Status         string    `gorm:"column:status" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (DigitalDevPlan) TableName() string { return "digital_dev_plans" }

type DigitalInitiative struct {
	DigitalInitiativeID    uint      `gorm:"column:digital_initiative_id;primaryKey" json:"digital_initiative_id"`
	DigitalPlanID          uint      `gorm:"column:digital_plan_id" json:"digital_plan_id"`
	InitiativeName         string    `gorm:"column:initiative_name;not null" json:"initiative_name"`
	Description            string    `gorm:"column:description" json:"description"`
	TechnologyStack        string    `gorm:"column:technology_stack" json:"technology_stack"`
	RequiredInfrastructure string    `gorm:"column:required_infrastructure" json:"required_infrastructure"`
	Budget                 *float64  `gorm:"column:budget" json:"budget"`
	ResponsiblePersonID    *uint     `gorm:"column:responsible_person_id" json:"responsible_person_id"`
	Status                 string    `gorm:"column:status" json:"status"`
	Progress               int       `gorm:"column:progress;default:0" json:"progress"`
	CreatedAt              time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (DigitalInitiative) TableName() string { return "digital_initiatives" }
