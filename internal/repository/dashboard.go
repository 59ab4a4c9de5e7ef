// internal/repository/dashboard.go
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DashboardRepository runs the read-only aggregation queries backing the
// dashboard endpoints. All SQL here is portable between SQLite and
// Postgres.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

type Activity struct {
	Type        string    `gorm:"column:type" json:"type"`
	ID          uint      `gorm:"column:id" json:"id"`
	Description string    `gorm:"column:description" json:"description"`
	Progress    int       `gorm:"column:progress" json:"progress"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

type Overview struct {
	StrategicGoalsCount        int64          `json:"strategicGoalsCount"`
	HrInitiativesCount         int64          `json:"hrInitiativesCount"`
	DigitalInitiativesCount    int64          `json:"digitalInitiativesCount"`
	ActionItemsCount           int64          `json:"actionItemsCount"`
	RisksCount                 int64          `json:"risksCount"`
	StrategicGoalsProgress     float64        `json:"strategicGoalsProgress"`
	HrInitiativesProgress      float64        `json:"hrInitiativesProgress"`
	DigitalInitiativesProgress float64        `json:"digitalInitiativesProgress"`
	ActionItemsProgress        float64        `json:"actionItemsProgress"`
	RiskStatusSummary          map[string]int `json:"riskStatusSummary"`
	RecentActivity             []Activity     `json:"recentActivity"`
}

// progressSummary carries one family's count and mean progress; a null
// average (no rows) is coalesced to 0.
type progressSummary struct {
	Count       int64    `gorm:"column:count"`
	AvgProgress *float64 `gorm:"column:avg_progress"`
}

func (s progressSummary) average() float64 {
	if s.AvgProgress == nil {
		return 0
	}
	return *s.AvgProgress
}

func (r *DashboardRepository) summarizeProgress(ctx context.Context, table string) (progressSummary, error) {
	var s progressSummary
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) AS count, AVG(progress) AS avg_progress FROM " + table).
		Scan(&s).Error
	if err != nil {
		return s, fmt.Errorf("summarizing %s: %w", table, err)
	}
	return s, nil
}

func (r *DashboardRepository) Overview(ctx context.Context) (*Overview, error) {
	overview := &Overview{
		RiskStatusSummary: make(map[string]int),
		RecentActivity:    make([]Activity, 0),
	}

	goals, err := r.summarizeProgress(ctx, "strategic_goals")
	if err != nil {
		return nil, err
	}
	overview.StrategicGoalsCount = goals.Count
	overview.StrategicGoalsProgress = goals.average()

	hr, err := r.summarizeProgress(ctx, "hr_dev_initiatives")
	if err != nil {
		return nil, err
	}
	overview.HrInitiativesCount = hr.Count
	overview.HrInitiativesProgress = hr.average()

	digital, err := r.summarizeProgress(ctx, "digital_initiatives")
	if err != nil {
		return nil, err
	}
	overview.DigitalInitiativesCount = digital.Count
	overview.DigitalInitiativesProgress = digital.average()

	items, err := r.summarizeProgress(ctx, "action_items")
	if err != nil {
		return nil, err
	}
	overview.ActionItemsCount = items.Count
	overview.ActionItemsProgress = items.average()

	var statuses []struct {
		Status *string `gorm:"column:status"`
		Count  int     `gorm:"column:count"`
	}
	err = r.db.WithContext(ctx).
		Raw("SELECT status, COUNT(*) AS count FROM risks GROUP BY status").
		Scan(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("summarizing risk statuses: %w", err)
	}
	for _, s := range statuses {
		bucket := "Undefined"
		if s.Status != nil && *s.Status != "" {
			bucket = *s.Status
		}
		overview.RiskStatusSummary[bucket] = s.Count
		overview.RisksCount += int64(s.Count)
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT 'Strategic Goal' AS type, goal_id AS id, goal_description AS description, progress, updated_at
		FROM strategic_goals
		UNION
		SELECT 'HR Initiative' AS type, hr_initiative_id AS id, initiative_name AS description, progress, updated_at
		FROM hr_dev_initiatives
		UNION
		SELECT 'Digital Initiative' AS type, digital_initiative_id AS id, initiative_name AS description, progress, updated_at
		FROM digital_initiatives
		UNION
		SELECT 'Action Item' AS type, action_item_id AS id, item_description AS description, progress, updated_at
		FROM action_items
		ORDER BY updated_at DESC
		LIMIT 10`).
		Scan(&overview.RecentActivity).Error
	if err != nil {
		return nil, fmt.Errorf("collecting recent activity: %w", err)
	}

	return overview, nil
}

type StrategicKPI struct {
	GoalID          uint    `gorm:"column:goal_id" json:"goal_id"`
	GoalDescription string  `gorm:"column:goal_description" json:"goal_description"`
	TargetMetric    string  `gorm:"column:target_metric" json:"target_metric"`
	TargetValue     string  `gorm:"column:target_value" json:"target_value"`
	ActualValue     string  `gorm:"column:actual_value" json:"actual_value"`
	Progress        int     `gorm:"column:progress" json:"progress"`
	StrategyPlan    *string `gorm:"column:strategy_plan" json:"strategy_plan"`
	Deadline        *string `gorm:"column:deadline" json:"deadline"`
}

func (r *DashboardRepository) StrategicKPIs(ctx context.Context) ([]StrategicKPI, error) {
	kpis := make([]StrategicKPI, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			sg.goal_id, sg.goal_description, sg.target_metric, sg.target_value,
			sg.actual_value, sg.progress, sp.plan_name AS strategy_plan, sg.deadline
		FROM strategic_goals sg
		LEFT JOIN strategy_plans sp ON sg.strategy_plan_id = sp.strategy_plan_id
		ORDER BY sg.progress DESC`).
		Scan(&kpis).Error
	if err != nil {
		return nil, fmt.Errorf("collecting strategic KPIs: %w", err)
	}
	return kpis, nil
}

type ActionKPI struct {
	ActionItemID      uint    `gorm:"column:action_item_id" json:"action_item_id"`
	ItemDescription   string  `gorm:"column:item_description" json:"item_description"`
	KPI               string  `gorm:"column:kpi" json:"kpi"`
	KPITarget         string  `gorm:"column:kpi_target" json:"kpi_target"`
	KPIActual         string  `gorm:"column:kpi_actual" json:"kpi_actual"`
	Progress          int     `gorm:"column:progress" json:"progress"`
	Status            string  `gorm:"column:status" json:"status"`
	ActionPlan        *string `gorm:"column:action_plan" json:"action_plan"`
	DueDate           *string `gorm:"column:due_date" json:"due_date"`
	ResponsiblePerson *string `gorm:"column:responsible_person" json:"responsible_person"`
	DepartmentName    *string `gorm:"column:department_name" json:"department_name"`
}

func (r *DashboardRepository) ActionKPIs(ctx context.Context) ([]ActionKPI, error) {
	kpis := make([]ActionKPI, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ai.action_item_id, ai.item_description, ai.kpi, ai.kpi_target, ai.kpi_actual,
			ai.progress, ai.status, ap.plan_name AS action_plan, ai.due_date,
			u.name AS responsible_person, d.department_name
		FROM action_items ai
		LEFT JOIN action_plans ap ON ai.action_plan_id = ap.action_plan_id
		LEFT JOIN users u ON ai.responsible_person_id = u.id
		LEFT JOIN departments d ON ai.responsible_department_id = d.department_id
		ORDER BY ai.due_date ASC`).
		Scan(&kpis).Error
	if err != nil {
		return nil, fmt.Errorf("collecting action KPIs: %w", err)
	}
	return kpis, nil
}

type RiskSummary struct {
	RiskID            uint    `gorm:"column:risk_id" json:"risk_id"`
	RiskDescription   string  `gorm:"column:risk_description" json:"risk_description"`
	Likelihood        string  `gorm:"column:likelihood" json:"likelihood"`
	Impact            string  `gorm:"column:impact" json:"impact"`
	RiskScore         int     `gorm:"column:risk_score" json:"risk_score"`
	Status            string  `gorm:"column:status" json:"status"`
	ResponsiblePerson *string `gorm:"column:responsible_person" json:"responsible_person"`
	RiskPlan          *string `gorm:"column:risk_plan" json:"risk_plan"`
	StrategyPlan      *string `gorm:"column:strategy_plan" json:"strategy_plan"`
	ActionItem        *string `gorm:"column:action_item" json:"action_item"`
}

func (r *DashboardRepository) RiskSummaries(ctx context.Context) ([]RiskSummary, error) {
	risks := make([]RiskSummary, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			r.risk_id, r.risk_description, r.likelihood, r.impact, r.risk_score, r.status,
			u.name AS responsible_person, rmp.plan_name AS risk_plan,
			sp.plan_name AS strategy_plan, ai.item_description AS action_item
		FROM risks r
		LEFT JOIN users u ON r.responsible_person_id = u.id
		LEFT JOIN risk_management_plans rmp ON r.risk_plan_id = rmp.risk_plan_id
		LEFT JOIN strategy_plans sp ON r.strategy_plan_id = sp.strategy_plan_id
		LEFT JOIN action_items ai ON r.action_item_id = ai.action_item_id
		ORDER BY r.risk_score DESC`).
		Scan(&risks).Error
	if err != nil {
		return nil, fmt.Errorf("collecting risk summaries: %w", err)
	}
	return risks, nil
}

type TimelineEntry struct {
	Type        string  `gorm:"column:type" json:"type"`
	ID          uint    `gorm:"column:id" json:"id"`
	Description string  `gorm:"column:description" json:"description"`
	DueDate     *string `gorm:"column:due_date" json:"due_date"`
	Progress    int     `gorm:"column:progress" json:"progress"`
}

// Timeline interleaves goals and action items by due date; initiatives
// carry no due date and sort per the store's null ordering.
func (r *DashboardRepository) Timeline(ctx context.Context) ([]TimelineEntry, error) {
	entries := make([]TimelineEntry, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT 'Strategic Goal' AS type, goal_id AS id, goal_description AS description, deadline AS due_date, progress
		FROM strategic_goals
		WHERE deadline IS NOT NULL
		UNION
		SELECT 'Action Item' AS type, action_item_id AS id, item_description AS description, due_date, progress
		FROM action_items
		WHERE due_date IS NOT NULL
		UNION
		SELECT 'HR Initiative' AS type, hr_initiative_id AS id, initiative_name AS description, NULL AS due_date, progress
		FROM hr_dev_initiatives
		UNION
		SELECT 'Digital Initiative' AS type, digital_initiative_id AS id, initiative_name AS description, NULL AS due_date, progress
		FROM digital_initiatives
		ORDER BY due_date ASC`).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("collecting timeline: %w", err)
	}
	return entries, nil
}
