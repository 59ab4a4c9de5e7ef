// internal/repository/organization.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

type CreateOrganizationInput struct {
	OrgName string `json:"org_name" validate:"required"`
	Vision  string `json:"vision"`
	Mission string `json:"mission"`
}

type UpdateOrganizationInput struct {
	OrgName Optional[string] `json:"org_name"`
	Vision  Optional[string] `json:"vision"`
	Mission Optional[string] `json:"mission"`
}

func (r *OrganizationRepository) List(ctx context.Context) ([]model.Organization, error) {
	orgs := make([]model.Organization, 0)
	if err := r.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding all organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) Get(ctx context.Context, id uint) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "org_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("organization")
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, in CreateOrganizationInput) (*model.Organization, error) {
	org := model.Organization{
		OrgName: in.OrgName,
		Vision:  in.Vision,
		Mission: in.Mission,
	}
	if err := r.db.WithContext(ctx).Create(&org).Error; err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}
	return r.Get(ctx, org.OrgID)
}

func (r *OrganizationRepository) Update(ctx context.Context, id uint, in UpdateOrganizationInput) (*model.Organization, error) {
	org, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(&org.OrgName, in.OrgName)
	apply(&org.Vision, in.Vision)
	apply(&org.Mission, in.Mission)

	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Organization{}, "org_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}
	return nil
}
