package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/clinic-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/clinic-outreach/internal/usecase"
)

type CampaignHandler struct {
	Dashboard *usecase.DashboardUseCase
}

func NewCampaignHandler(dashboard *usecase.DashboardUseCase) *CampaignHandler {
	return &CampaignHandler{Dashboard: dashboard}
}

// HandleStats (GET /api/campaign/stats)
func (h *CampaignHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	out := h.Dashboard.Stats(r.Context())
	middleware.RecordLeadsDrained(out.Stats.TotalLeads)
	writeJSON(w, http.StatusOK, out)
}

// HandleLeads (GET /api/campaign/leads?page&per_page&filter)
func (h *CampaignHandler) HandleLeads(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", usecase.DefaultPerPage)

	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = usecase.FilterClinics
	}

	out := h.Dashboard.LeadsPage(r.Context(), page, perPage, filter)
	writeJSON(w, http.StatusOK, out)
}

// HandleStart (POST /api/campaign/start)
func (h *CampaignHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.writeMutation(w, "start", h.Dashboard.Start(r.Context()))
}

// HandlePause (POST /api/campaign/pause)
func (h *CampaignHandler) HandlePause(w http.ResponseWriter, r *http.Request) {
	h.writeMutation(w, "pause", h.Dashboard.Pause(r.Context()))
}

// Mutação que esgotou as estratégias é falha TRATADA: 400 com
// success=false, nunca 500.
func (h *CampaignHandler) writeMutation(w http.ResponseWriter, action string, result *usecase.MutationResult) {
	middleware.RecordCampaignMutation(action, result.Success)

	status := http.StatusOK
	if !result.Success {
		middleware.RecordIntegrationError("campaign_" + action)
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
