// internal/repository/action_item.go
package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

// ActionItem carries the widest reference surface: the owning action
// plan plus optional strategic goal, department, and responsible user.
// All provided references are checked concurrently and the write waits
// for every check; the first failure wins.

type ActionItemRepository struct {
	db   *gorm.DB
	refs refValidator
}

func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db, refs: refValidator{db: db}}
}

type CreateActionItemInput struct {
	ActionPlanID            uint     `json:"action_plan_id" validate:"required"`
	GoalID                  *uint    `json:"goal_id"`
	ItemDescription         string   `json:"item_description" validate:"required"`
	ResponsibleDepartmentID *uint    `json:"responsible_department_id"`
	ResponsiblePersonID     *uint    `json:"responsible_person_id"`
	StartDate               *string  `json:"start_date"`
	DueDate                 *string  `json:"due_date"`
	KPI                     string   `json:"kpi"`
	KPITarget               string   `json:"kpi_target"`
	KPIActual               string   `json:"kpi_actual"`
	Budget                  *float64 `json:"budget"`
	Status                  string   `json:"status"`
	Progress                int      `json:"progress"`
	ProgressUpdate          string   `json:"progress_update"`
}

type UpdateActionItemInput struct {
	ActionPlanID            Optional[uint]     `json:"action_plan_id"`
	GoalID                  Optional[*uint]    `json:"goal_id"`
	ItemDescription         Optional[string]   `json:"item_description"`
	ResponsibleDepartmentID Optional[*uint]    `json:"responsible_department_id"`
	ResponsiblePersonID     Optional[*uint]    `json:"responsible_person_id"`
	StartDate               Optional[*string]  `json:"start_date"`
	DueDate                 Optional[*string]  `json:"due_date"`
	KPI                     Optional[string]   `json:"kpi"`
	KPITarget               Optional[string]   `json:"kpi_target"`
	KPIActual               Optional[string]   `json:"kpi_actual"`
	Budget                  Optional[*float64] `json:"budget"`
	Status                  Optional[string]   `json:"status"`
	Progress                Optional[int]      `json:"progress"`
	ProgressUpdate          Optional[string]   `json:"progress_update"`
}

func (r *ActionItemRepository) List(ctx context.Context) ([]model.ActionItem, error) {
	items := make([]model.ActionItem, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("finding all action items: %w", err)
	}
	return items, nil
}

func (r *ActionItemRepository) Get(ctx context.Context, id uint) (*model.ActionItem, error) {
	var item model.ActionItem
	if err := r.db.WithContext(ctx).First(&item, "action_item_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("action item")
		}
		return nil, fmt.Errorf("finding action item: %w", err)
	}
	return &item, nil
}

func (r *ActionItemRepository) Create(ctx context.Context, in CreateActionItemInput) (*model.ActionItem, error) {
	if err := r.refs.actionPlan(ctx, in.ActionPlanID); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if in.GoalID != nil {
		goalID := *in.GoalID
		g.Go(func() error { return r.refs.strategicGoal(gctx, goalID) })
	}
	if in.ResponsibleDepartmentID != nil {
		departmentID := *in.ResponsibleDepartmentID
		g.Go(func() error { return r.refs.department(gctx, departmentID) })
	}
	if in.ResponsiblePersonID != nil {
		personID := *in.ResponsiblePersonID
		g.Go(func() error { return r.refs.user(gctx, personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	item := model.ActionItem{
		ActionPlanID:            in.ActionPlanID,
		GoalID:                  in.GoalID,
		ItemDescription:         in.ItemDescription,
		ResponsibleDepartmentID: in.ResponsibleDepartmentID,
		ResponsiblePersonID:     in.ResponsiblePersonID,
		StartDate:               in.StartDate,
		DueDate:                 in.DueDate,
		KPI:                     in.KPI,
		KPITarget:               in.KPITarget,
		KPIActual:               in.KPIActual,
		Budget:                  in.Budget,
		Status:                  orDefault(in.Status, model.StatusNotStarted),
		Progress:                in.Progress,
		ProgressUpdate:          in.ProgressUpdate,
	}
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("creating action item: %w", err)
	}
	return r.Get(ctx, item.ActionItemID)
}

func (r *ActionItemRepository) Update(ctx context.Context, id uint, in UpdateActionItemInput) (*model.ActionItem, error) {
	item, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if planID, ok := in.ActionPlanID.Get(); ok {
		g.Go(func() error { return r.refs.actionPlan(gctx, planID) })
	}
	if goalID, ok := in.GoalID.Get(); ok && goalID != nil {
		g.Go(func() error { return r.refs.strategicGoal(gctx, *goalID) })
	}
	if departmentID, ok := in.ResponsibleDepartmentID.Get(); ok && departmentID != nil {
		g.Go(func() error { return r.refs.department(gctx, *departmentID) })
	}
	if personID, ok := in.ResponsiblePersonID.Get(); ok && personID != nil {
		g.Go(func() error { return r.refs.user(gctx, *personID) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	apply(&item.ActionPlanID, in.ActionPlanID)
	apply(&item.GoalID, in.GoalID)
	apply(&item.ItemDescription, in.ItemDescription)
	apply(&item.ResponsibleDepartmentID, in.ResponsibleDepartmentID)
	apply(&item.ResponsiblePersonID, in.ResponsiblePersonID)
	apply(&item.StartDate, in.StartDate)
	apply(&item.DueDate, in.DueDate)
	apply(&item.KPI, in.KPI)
	apply(&item.KPITarget, in.KPITarget)
	apply(&item.KPIActual, in.KPIActual)
	apply(&item.Budget, in.Budget)
	apply(&item.Status, in.Status)
	apply(&item.Progress, in.Progress)
	apply(&item.ProgressUpdate, in.ProgressUpdate)

	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, fmt.Errorf("updating action item: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *ActionItemRepository) Delete(ctx context.Context, id uint) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}

	count, err := dependentCount(ctx, r.db, &model.Risk{}, "action_item_id", id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.Conflict("cannot delete action item with associated risks; delete the risks first")
	}

	if err := r.db.WithContext(ctx).Delete(&model.ActionItem{}, "action_item_id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting action item: %w", err)
	}
	return nil
}
