// internal/model/organization.go
package model

import "time"

type Organization struct {
	OrgID     uint      `gorm:"column:org_id;primaryKey" json:"org_id"`
	OrgName   string    `gorm:"column:org_name;not null" json:"org_name"`
	Vision    string    `gorm:"column:vision" json:"vision"`
	Mission   string    `gorm:"column:mission" json:"mission"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }

type Department struct {
	DepartmentID   uint      `gorm:"column:department_id;primaryKey" json:"department_id"`
	DepartmentName string    `gorm:"column:department_name;not null" json:"department_name"`
	Description    string    `gorm:"column:description" json:"description"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Department) TableName() string { return "departments" }
