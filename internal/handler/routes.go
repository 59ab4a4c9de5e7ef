// internal/handler/routes.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/middleware"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/repository"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/service"
)

// Dependencies bundles everything the route tree needs. All fields are
// required.
type Dependencies struct {
	Tokens *auth.TokenManager
	Auth   *service.AuthService

	Users              *repository.UserRepository
	Organizations      *repository.OrganizationRepository
	Departments        *repository.DepartmentRepository
	StrategyPlans      *repository.StrategyPlanRepository
	StrategicGoals     *repository.StrategicGoalRepository
	HrDevPlans         *repository.HrDevPlanRepository
	HrDevInitiatives   *repository.HrDevInitiativeRepository
	DigitalDevPlans    *repository.DigitalDevPlanRepository
	DigitalInitiatives *repository.DigitalInitiativeRepository
	ActionPlans        *repository.ActionPlanRepository
	ActionItems        *repository.ActionItemRepository
	RiskPlans          *repository.RiskManagementPlanRepository
	Risks              *repository.RiskRepository
	Dashboards         *repository.DashboardRepository
}

// Routes builds the API route tree. Reads require any authenticated
// user; entity writes require management or admin; the users resource
// is admin-only throughout.
func Routes(deps Dependencies) chi.Router {
	authenticate := middleware.Authenticate(deps.Tokens, deps.Users)
	management := middleware.RequireRole(model.RoleManagement)
	admin := middleware.RequireRole(model.RoleAdmin)

	authHandler := NewAuthHandler(deps.Auth)
	dashboard := NewDashboardHandler(deps.Dashboards)

	users := NewResource[model.User, repository.CreateUserInput, repository.UpdateUserInput](
		deps.Users, "user", "Please provide username, password and role")
	organizations := NewResource[model.Organization, repository.CreateOrganizationInput, repository.UpdateOrganizationInput](
		deps.Organizations, "organization", "Please provide organization name")
	departments := NewResource[model.Department, repository.CreateDepartmentInput, repository.UpdateDepartmentInput](
		deps.Departments, "department", "Please provide department name")
	strategyPlans := NewResource[model.StrategyPlan, repository.CreateStrategyPlanInput, repository.UpdateStrategyPlanInput](
		deps.StrategyPlans, "strategy plan", "Please provide organization ID and plan name")
	strategicGoals := NewResource[model.StrategicGoal, repository.CreateStrategicGoalInput, repository.UpdateStrategicGoalInput](
		deps.StrategicGoals, "strategic goal", "Please provide strategy plan ID and goal description")
	hrDevPlans := NewResource[model.HrDevPlan, repository.CreateDevPlanInput, repository.UpdateDevPlanInput](
		deps.HrDevPlans, "HR development plan", "Please provide strategy plan ID and plan name")
	hrInitiatives := NewResource[model.HrDevInitiative, repository.CreateHrDevInitiativeInput, repository.UpdateHrDevInitiativeInput](
		deps.HrDevInitiatives, "HR initiative", "Please provide HR plan ID and initiative name")
	digitalDevPlans := NewResource[model.DigitalDevPlan, repository.CreateDevPlanInput, repository.UpdateDevPlanInput](
		deps.DigitalDevPlans, "digital development plan", "Please provide strategy plan ID and plan name")
	digitalInitiatives := NewResource[model.DigitalInitiative, repository.CreateDigitalInitiativeInput, repository.UpdateDigitalInitiativeInput](
		deps.DigitalInitiatives, "digital initiative", "Please provide digital plan ID and initiative name")
	actionPlans := NewResource[model.ActionPlan, repository.CreateActionPlanInput, repository.UpdateActionPlanInput](
		deps.ActionPlans, "action plan", "Please provide strategy plan ID, year, and plan name")
	actionItems := NewResource[model.ActionItem, repository.CreateActionItemInput, repository.UpdateActionItemInput](
		deps.ActionItems, "action item", "Please provide action plan ID and item description")
	riskPlans := NewResource[model.RiskManagementPlan, repository.CreateRiskManagementPlanInput, repository.UpdateRiskManagementPlanInput](
		deps.RiskPlans, "risk management plan", "Please provide plan name and year")
	risks := NewResource[model.Risk, repository.CreateRiskInput, repository.UpdateRiskInput](
		deps.Risks, "risk", "Please provide risk description")

	r := chi.NewRouter()

	r.Post("/auth/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/auth/me", authHandler.Me)

		r.Route("/users", func(r chi.Router) {
			r.Use(admin)
			r.Get("/", users.List)
			r.Post("/", users.Create)
			r.Get("/{id}", users.Get)
			r.Put("/{id}", users.Update)
			r.Delete("/{id}", users.Delete)
		})

		mountResource(r, "/organizations", organizations, management)
		mountResource(r, "/departments", departments, management)
		mountResource(r, "/strategy-plans", strategyPlans, management)
		mountResource(r, "/strategic-goals", strategicGoals, management)
		mountResource(r, "/hr-dev-plans", hrDevPlans, management)
		mountResource(r, "/hr-dev-initiatives", hrInitiatives, management)
		mountResource(r, "/digital-dev-plans", digitalDevPlans, management)
		mountResource(r, "/digital-initiatives", digitalInitiatives, management)
		mountResource(r, "/action-plans", actionPlans, management)
		mountResource(r, "/action-items", actionItems, management)
		mountResource(r, "/risk-management-plans", riskPlans, management)
		mountResource(r, "/risks", risks, management)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", dashboard.Overview)
			r.Get("/strategic-kpi", dashboard.StrategicKPI)
			r.Get("/action-kpi", dashboard.ActionKPI)
			r.Get("/risk-summary", dashboard.RiskSummary)
			r.Get("/timeline", dashboard.Timeline)
		})
	})

	return r
}

// mountResource wires one entity family: reads for any authenticated
// user, writes behind the given role middleware.
func mountResource[M, C, U any](r chi.Router, pattern string, h *Resource[M, C, U], write func(http.Handler) http.Handler) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(write)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}
