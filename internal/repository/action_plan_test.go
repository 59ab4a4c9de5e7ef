// internal/repository/action_plan_test.go
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

func TestActionPlanDeleteGuard(t *testing.T) {
	db := testDB(t)
	plans := NewActionPlanRepository(db)
	items := NewActionItemRepository(db)
	ctx := context.Background()

	strategyPlanID := seedStrategyPlan(t, db)

	plan, err := plans.Create(ctx, CreateActionPlanInput{
		StrategyPlanID: strategyPlanID,
		Year:           2026,
		PlanName:       "Annual action plan",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, plan.Status)

	item, err := items.Create(ctx, CreateActionItemInput{
		ActionPlanID:    plan.ActionPlanID,
		ItemDescription: "Install new triage system",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, item.Status)

	// Delete is refused while items reference the plan.
	err = plans.Delete(ctx, plan.ActionPlanID)
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = plans.Get(ctx, plan.ActionPlanID)
	require.NoError(t, err)

	// Removing the item unblocks the delete.
	require.NoError(t, items.Delete(ctx, item.ActionItemID))
	require.NoError(t, plans.Delete(ctx, plan.ActionPlanID))

	_, err = plans.Get(ctx, plan.ActionPlanID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActionItemReferences(t *testing.T) {
	db := testDB(t)
	items := NewActionItemRepository(db)
	ctx := context.Background()

	strategyPlanID := seedStrategyPlan(t, db)
	plan, err := NewActionPlanRepository(db).Create(ctx, CreateActionPlanInput{
		StrategyPlanID: strategyPlanID,
		Year:           2026,
		PlanName:       "Annual action plan",
	})
	require.NoError(t, err)

	t.Run("missing action plan", func(t *testing.T) {
		_, err := items.Create(ctx, CreateActionItemInput{ActionPlanID: 99, ItemDescription: "x"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing optional references", func(t *testing.T) {
		missing := uint(99)
		for name, in := range map[string]CreateActionItemInput{
			"goal":       {ActionPlanID: plan.ActionPlanID, ItemDescription: "x", GoalID: &missing},
			"department": {ActionPlanID: plan.ActionPlanID, ItemDescription: "x", ResponsibleDepartmentID: &missing},
			"person":     {ActionPlanID: plan.ActionPlanID, ItemDescription: "x", ResponsiblePersonID: &missing},
		} {
			_, err := items.Create(ctx, in)
			require.ErrorIs(t, err, domain.ErrNotFound, name)
		}
	})

	t.Run("all references valid", func(t *testing.T) {
		department, err := NewDepartmentRepository(db).Create(ctx, CreateDepartmentInput{DepartmentName: "Planning"})
		require.NoError(t, err)
		person, err := NewUserRepository(db, auth.NewPasswordHasher()).Create(ctx, CreateUserInput{
			Username: "owner", Password: "x", Role: model.RoleStaff,
		})
		require.NoError(t, err)
		goal, err := NewStrategicGoalRepository(db).Create(ctx, CreateStrategicGoalInput{
			StrategyPlanID: strategyPlanID, GoalDescription: "Goal",
		})
		require.NoError(t, err)

		item, err := items.Create(ctx, CreateActionItemInput{
			ActionPlanID:            plan.ActionPlanID,
			ItemDescription:         "Fully referenced item",
			GoalID:                  &goal.GoalID,
			ResponsibleDepartmentID: &department.DepartmentID,
			ResponsiblePersonID:     &person.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, item.GoalID)
		assert.Equal(t, goal.GoalID, *item.GoalID)
	})

	t.Run("update clears a reference with explicit null", func(t *testing.T) {
		listed, err := items.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, listed)

		target := listed[len(listed)-1]
		updated, err := items.Update(ctx, target.ActionItemID, UpdateActionItemInput{GoalID: Of[*uint](nil)})
		require.NoError(t, err)
		assert.Nil(t, updated.GoalID)
	})
}

func TestActionItemDeleteGuardedByRisks(t *testing.T) {
	db := testDB(t)
	items := NewActionItemRepository(db)
	risks := NewRiskRepository(db)
	ctx := context.Background()

	strategyPlanID := seedStrategyPlan(t, db)
	plan, err := NewActionPlanRepository(db).Create(ctx, CreateActionPlanInput{
		StrategyPlanID: strategyPlanID, Year: 2026, PlanName: "Plan",
	})
	require.NoError(t, err)

	item, err := items.Create(ctx, CreateActionItemInput{
		ActionPlanID: plan.ActionPlanID, ItemDescription: "Guarded item",
	})
	require.NoError(t, err)

	risk, err := risks.Create(ctx, CreateRiskInput{
		RiskDescription: "Vendor delay",
		ActionItemID:    &item.ActionItemID,
	})
	require.NoError(t, err)

	err = items.Delete(ctx, item.ActionItemID)
	require.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, risks.Delete(ctx, risk.RiskID))
	require.NoError(t, items.Delete(ctx, item.ActionItemID))
}
