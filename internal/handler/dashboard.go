// internal/handler/dashboard.go
package handler

import (
	"net/http"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/repository"
)

type DashboardHandler struct {
	dashboards *repository.DashboardRepository
}

func NewDashboardHandler(dashboards *repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboards.Overview(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, overview)
}

func (h *DashboardHandler) StrategicKPI(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.dashboards.StrategicKPIs(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithList(w, len(kpis), kpis)
}

func (h *DashboardHandler) ActionKPI(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.dashboards.ActionKPIs(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithList(w, len(kpis), kpis)
}

func (h *DashboardHandler) RiskSummary(w http.ResponseWriter, r *http.Request) {
	risks, err := h.dashboards.RiskSummaries(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithList(w, len(risks), risks)
}

func (h *DashboardHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	entries, err := h.dashboards.Timeline(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithList(w, len(entries), entries)
}
