// internal/repository/department.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

type CreateDepartmentInput struct {
	DepartmentName string `json:"department_name" validate:"required"`
	Description    string `json:"description"`
}

type UpdateDepartmentInput struct {
	DepartmentName Optional[string] `json:"department_name"`
	Description    Optional[string] `json:"description"`
}

func (r *DepartmentRepository) List(ctx context.Context) ([]model.Department, error) {
	departments := make([]model.Department, 0)
	if err := r.db.WithContext(ctx).Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("finding all departments: %w", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) Get(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, "department_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("department")
		}
		return nil, fmt.Errorf("finding department: %w", err)
	}
	return &department, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, in CreateDepartmentInput) (*model.Department, error) {
	department := model.Department{
		DepartmentName: in.DepartmentName,
		Description:    in.Description,
	}
	if err := r.db.WithContext(ctx).Create(&department).Error; err != nil {
		return nil, fmt.Errorf("creating department: %w", err)
	}
	return r.Get(ctx, department.DepartmentID)
}

func (r *DepartmentRepository) Update(ctx context.Context, id uint, in UpdateDepartmentInput) (*model.Department, error) {
	department, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(&department.DepartmentName, in.DepartmentName)
	apply(&department.Description, in.Description)

	if err := r.db.WithContext(ctx).Save(department).Error; err != nil {
		return nil, fmt.Errorf("updating department: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Department{}, "department_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}
	return nil
}
