package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/clinic-outreach/internal/entity"
	"github.com/xavierca1/clinic-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/clinic-outreach/internal/usecase"
)

type LeadHandler struct {
	Dashboard *usecase.DashboardUseCase
}

func NewLeadHandler(dashboard *usecase.DashboardUseCase) *LeadHandler {
	return &LeadHandler{Dashboard: dashboard}
}

type LeadDetailResponse struct {
	Email    string       `json:"email"`
	Business entity.Place `json:"business"`
}

// HandleDetails (GET /api/lead/details/{email})
// Email fora do lookup é 404, caso normal — o dado local só cobre parte da base.
func (h *LeadHandler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	place, err := h.Dashboard.LeadDetail(email)
	if err != nil {
		if usecase.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LeadDetailResponse{Email: email, Business: place})
}

// HandleMessagePreview (GET /api/campaign/message-preview?email=)
// Diferente do stats, falha no GET da campanha aqui sobe como 500: sem a
// campanha não há mensagem para mostrar.
func (h *LeadHandler) HandleMessagePreview(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	out, err := h.Dashboard.MessagePreview(r.Context(), email)
	if err != nil {
		if usecase.IsNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		middleware.RecordIntegrationError("message_preview")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, out)
}
