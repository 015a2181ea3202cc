package handler

import (
	"net/http"
	"strconv"

	"bizbalance/internal/service"
	"bizbalance/internal/transport/rest/middleware"
)

// DashboardHandler serves the VIP-facing summary endpoints
type DashboardHandler struct {
	diagnosisSvc *service.DiagnosisService
	questSvc     *service.QuestService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(diagnosisSvc *service.DiagnosisService, questSvc *service.QuestService) *DashboardHandler {
	return &DashboardHandler{diagnosisSvc: diagnosisSvc, questSvc: questSvc}
}

// Health handles GET /v1/vip/dashboard/health. A VIP without a diagnosis
// gets the all-neutral default rather than a 404 so charts always render.
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	writeJSON(w, http.StatusOK, h.diagnosisSvc.Health(r.Context(), vipID))
}

// Notifications handles GET /v1/vip/notifications?limit=...
func (h *DashboardHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	notifications, err := h.questSvc.Notifications(r.Context(), vipID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": notifications})
}
