package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/clinic-outreach/internal/infra/enrichment"
)

type HealthHandler struct {
	Enrichment          *enrichment.Store
	InstantlyConfigured bool
	StartTime           time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(store *enrichment.Store, instantlyConfigured bool) *HealthHandler {
	return &HealthHandler{
		Enrichment:          store,
		InstantlyConfigured: instantlyConfigured,
		StartTime:           time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.InstantlyConfigured {
		deps["instantly"] = "configured"
	} else {
		deps["instantly"] = "not configured"
	}

	// Enriquecimento ausente não degrada: o dashboard funciona sem ele
	if h.Enrichment != nil {
		deps["enrichment"] = h.Enrichment.Describe()
	} else {
		deps["enrichment"] = "not configured"
	}

	status := "healthy"
	if !h.InstantlyConfigured {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
