package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"bizbalance/internal/service"
	"bizbalance/internal/transport/rest/middleware"
)

// QuestHandler handles quest endpoints
type QuestHandler struct {
	questSvc *service.QuestService
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(questSvc *service.QuestService) *QuestHandler {
	return &QuestHandler{questSvc: questSvc}
}

// Initialize handles POST /v1/quests/init?vip_id=... (agent only)
func (h *QuestHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	vipID := r.URL.Query().Get("vip_id")
	if vipID == "" {
		writeError(w, http.StatusBadRequest, "vip_id is required")
		return
	}

	created, err := h.questSvc.Initialize(r.Context(), vipID)
	if err == service.ErrAlreadyInitialized {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "quests already initialized", "count": 0})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "initialization success", "count": created})
}

// List handles GET /v1/vip/quests?status=...
func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quests, err := h.questSvc.List(r.Context(), vipID, r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quests": quests})
}

// Current handles GET /v1/vip/quests/current
func (h *QuestHandler) Current(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quest, err := h.questSvc.Current(r.Context(), vipID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quest)
}

// ownedQuest loads the quest and checks it belongs to the calling VIP.
func (h *QuestHandler) ownedQuest(w http.ResponseWriter, r *http.Request) (string, bool) {
	questID := mux.Vars(r)["questId"]
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}

	quest, err := h.questSvc.GetByID(r.Context(), questID)
	if err != nil {
		writeServiceError(w, err)
		return "", false
	}
	if quest.VIPID != vipID {
		writeError(w, http.StatusForbidden, "quest does not belong to this vip")
		return "", false
	}
	return questID, true
}

// GenerateChecklist handles POST /v1/quests/{questId}/generate-checklist
func (h *QuestHandler) GenerateChecklist(w http.ResponseWriter, r *http.Request) {
	questID, ok := h.ownedQuest(w, r)
	if !ok {
		return
	}

	checklist, err := h.questSvc.GenerateChecklist(r.Context(), questID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checklist)
}

// EvaluateRequest is the request body for a checklist submission
type EvaluateRequest struct {
	CheckedIndexes []int `json:"checkedIndexes"`
}

// Evaluate handles POST /v1/quests/{questId}/evaluate
func (h *QuestHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	questID, ok := h.ownedQuest(w, r)
	if !ok {
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eval, err := h.questSvc.Evaluate(r.Context(), questID, req.CheckedIndexes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, eval)
}

// CompleteOverride handles POST /v1/quests/{questId}/complete (agent only)
func (h *QuestHandler) CompleteOverride(w http.ResponseWriter, r *http.Request) {
	questID := mux.Vars(r)["questId"]
	agentID := middleware.GetAgentID(r.Context())
	if agentID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.questSvc.CompleteOverride(r.Context(), questID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "quest completed"})
}
