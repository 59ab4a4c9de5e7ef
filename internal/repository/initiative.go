// internal/repository/initiative.go
package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

// Initiatives reference their development plan and, optionally, a
// responsible user. Both references are checked concurrently; the write
// proceeds only when every check passes.

type CreateHrDevInitiativeInput struct {
	HrPlanID             uint     `json:"hr_plan_id" validate:"required"`
	InitiativeName       string   `json:"initiative_name" validate:"required"`
	Description          string   `json:"description"`
	RequiredCompetencies string   `json:"required_competencies"`
	TrainingResources    string   `json:"training_resources"`
	Budget               *float64 `json:"budget"`
	ResponsiblePersonID  *uint    `json:"responsible_person_id"`
	Status               string   `json:"status"`
	Progress             int      `json:"progress"`
}

type UpdateHrDevInitiativeInput struct {
	HrPlanID             Optional[uint]     `json:"hr_plan_id"`
	InitiativeName       Optional[string]   `json:"initiative_name"`
	Description          Optional[string]   `json:"description"`
	RequiredCompetencies Optional[string]   `json:"required_competencies"`
	TrainingResources    Optional[string]   `json:"training_resources"`
	Budget               Optional[*float64] `json:"budget"`
	ResponsiblePersonID  Optional[*uint]    `json:"responsible_person_id"`
	Status               Optional[string]   `json:"status"`
	Progress             Optional[int]      `json:"progress"`
}

type HrDevInitiativeRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewHrDevInitiativeRepository(db *gorm.DB) *HrDevInitiativeRepository {
	return &HrDevInitiativeRepository{db: db, refs: refValidator{db: db}}
}

func (r *HrDevInitiativeRepository) List(ctx context.Context) ([]model.HrDevInitiative, error) {
	initiatives := make([]model.HrDevInitiative, 0)
	if err := r.db.WithContext(ctx).Find(&initiatives).Error; err != nil {
		return nil, fmt.Errorf("finding all HR initiatives: %w", err)
	}
	return initiatives, nil
}

func (r *HrDevInitiativeRepository) Get(ctx context.Context, id uint) (*model.HrDevInitiative, error) {
	var initiative model.HrDevInitiative
	if err := r.db.WithContext(ctx).First(&initiative, "hr_initiative_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("HR initiative")
		}
		return nil, fmt.Errorf("finding HR initiative: %w", err)
	}
	return &initiative, nil
}

func (r *HrDevInitiativeRepository) Create(ctx context.Context, in CreateHrDevInitiativeInput) (*model.HrDevInitiative, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.refs.hrDevPlan(gctx, in.HrPlanID) })
	if in.ResponsiblePersonID != nil {
		personID := *in.ResponsiblePersonID
		g.Go(func() error { return r.refs.user(gctx, personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	initiative := model.HrDevInitiative{
		HrPlanID:             in.HrPlanID,
		InitiativeName:       in.InitiativeName,
		Description:          in.Description,
		RequiredCompetencies: in.RequiredCompetencies,
		TrainingResources:    in.TrainingResources,
		Budget:               in.Budget,
		ResponsiblePersonID:  in.ResponsiblePersonID,
		Status:               orDefault(in.Status, model.StatusNotStarted),
		Progress:             in.Progress,
	}
	if err := r.db.WithContext(ctx).Create(&initiative).Error; err != nil {
		return nil, fmt.Errorf("creating HR initiative: %w", err)
	}
	return r.Get(ctx, initiative.HrInitiativeID)
}

func (r *HrDevInitiativeRepository) Update(ctx context.Context, id uint, in UpdateHrDevInitiativeInput) (*model.HrDevInitiative, error) {
	initiative, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if planID, ok := in.HrPlanID.Get(); ok {
		g.Go(func() error { return r.refs.hrDevPlan(gctx, planID) })
	}
	if personID, ok := in.ResponsiblePersonID.Get(); ok && personID != nil {
		g.Go(func() error { return r.refs.user(gctx, *personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	apply(&initiative.HrPlanID, in.HrPlanID)
	apply(&initiative.InitiativeName, in.InitiativeName)
	apply(&initiative.Description, in.Description)
	apply(&initiative.RequiredCompetencies, in.RequiredCompetencies)
	apply(&initiative.TrainingResources, in.TrainingResources)
	apply(&initiative.Budget, in.Budget)
	apply(&initiative.ResponsiblePersonID, in.ResponsiblePersonID)
	apply(&initiative.Status, in.Status)
	apply(&initiative.Progress, in.Progress)

	if err := r.db.WithContext(ctx).Save(initiative).Error; err != nil {
		return nil, fmt.Errorf("updating HR initiative: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *HrDevInitiativeRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.HrDevInitiative{}, "hr_initiative_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting HR initiative: %w", err)
	}
	return nil
}

type CreateDigitalInitiativeInput struct {
	DigitalPlanID          uint     `json:"digital_plan_id" validate:"required"`
	InitiativeName         string   `json:"initiative_name" validate:"required"`
	Description            string   `json:"description"`
	TechnologyStack        string   `json:"technology_stack"`
	RequiredInfrastructure string   `json:"required_infrastructure"`
	Budget                 *float64 `json:"budget"`
	ResponsiblePersonID    *uint    `json:"responsible_person_id"`
	Status                 string   `json:"status"`
	Progress               int      `json:"progress"`
}

type UpdateDigitalInitiativeInput struct {
	DigitalPlanID          Optional[uint]     `json:"digital_plan_id"`
	InitiativeName         Optional[string]   `json:"initiative_name"`
	Description            Optional[string]   `json:"description"`
	TechnologyStack        Optional[string]   `json:"technology_stack"`
	RequiredInfrastructure Optional[string]   `json:"required_infrastructure"`
	Budget                 Optional[*float64] `json:"budget"`
	ResponsiblePersonID    Optional[*uint]    `json:"responsible_person_id"`
	Status                 Optional[string]   `json:"status"`
	Progress               Optional[int]      `json:"progress"`
}

type DigitalInitiativeRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewDigitalInitiativeRepository(db *gorm.DB) *DigitalInitiativeRepository {
	return &DigitalInitiativeRepository{db: db, refs: refValidator{db: db}}
}

func (r *DigitalInitiativeRepository) List(ctx context.Context) ([]model.DigitalInitiative, error) {
	initiatives := make([]model.DigitalInitiative, 0)
	if err := r.db.WithContext(ctx).Find(&initiatives).Error; err != nil {
		return nil, fmt.Errorf("finding all digital initiatives: %w", err)
	}
	return initiatives, nil
}

func (r *DigitalInitiativeRepository) Get(ctx context.Context, id uint) (*model.DigitalInitiative, error) {
	var initiative model.DigitalInitiative
	if err := r.db.WithContext(ctx).First(&initiative, "digital_initiative_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("digital initiative")
		}
		return nil, fmt.Errorf("finding digital initiative: %w", err)
	}
	return &initiative, nil
}

func (r *DigitalInitiativeRepository) Create(ctx context.Context, in CreateDigitalInitiativeInput) (*model.DigitalInitiative, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.refs.digitalDevPlan(gctx, in.DigitalPlanID) })
	if in.ResponsiblePersonID != nil {
		personID := *in.ResponsiblePersonID
		g.Go(func() error { return r.refs.user(gctx, personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	initiative := model.DigitalInitiative{
		DigitalPlanID:          in.DigitalPlanID,
		InitiativeName:         in.InitiativeName,
		Description:            in.Description,
		TechnologyStack:        in.TechnologyStack,
		RequiredInfrastructure: in.RequiredInfrastructure,
		Budget:                 in.Budget,
		ResponsiblePersonID:    in.ResponsiblePersonID,
		Status:                 orDefault(in.Status, model.StatusNotStarted),
		Progress:               in.Progress,
	}
	if err := r.db.WithContext(ctx).Create(&initiative).Error; err != nil {
		return nil, fmt.Errorf("creating digital initiative: %w", err)
	}
	return r.Get(ctx, initiative.DigitalInitiativeID)
}

func (r *DigitalInitiativeRepository) Update(ctx context.Context, id uint, in UpdateDigitalInitiativeInput) (*model.DigitalInitiative, error) {
	initiative, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if planID, ok := in.DigitalPlanID.Get(); ok {
		g.Go(func() error { return r.refs.digitalDevPlan(gctx, planID) })
	}
	if personID, ok := in.ResponsiblePersonID.Get(); ok && personID != nil {
		g.Go(func() error { return r.refs.user(gctx, *personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	apply(&initiative.DigitalPlanID, in.DigitalPlanID)
	apply(&initiative.InitiativeName, in.InitiativeName)
	apply(&initiative.Description, in.Description)
	apply(&initiative.TechnologyStack, in.TechnologyStack)
	apply(&initiative.RequiredInfrastructure, in.RequiredInfrastructure)
	apply(&initiative.Budget, in.Budget)
	apply(&initiative.ResponsiblePersonID, in.ResponsiblePersonID)
	apply(&initiative.Status, in.Status)
	apply(&initiative.Progress, in.Progress)

	if err := r.db.WithContext(ctx).Save(initiative).Error; err != nil {
		return nil, fmt.Errorf("updating digital initiative: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *DigitalInitiativeRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&model.DigitalInitiative{}, "digital_initiative_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting digital initiative: %w", err)
	}
	return nil
}
