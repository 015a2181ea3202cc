package handler

import (
	"encoding/json"
	"net/http"

	"bizbalance/internal/model"
	"bizbalance/internal/service"
	"bizbalance/internal/transport/rest/middleware"
)

// DiagnosisHandler handles the survey flow endpoints
type DiagnosisHandler struct {
	diagnosisSvc *service.DiagnosisService
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(diagnosisSvc *service.DiagnosisService) *DiagnosisHandler {
	return &DiagnosisHandler{diagnosisSvc: diagnosisSvc}
}

// Start handles POST /v1/diagnosis/start
func (h *DiagnosisHandler) Start(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	diagnosisID, err := h.diagnosisSvc.Start(r.Context(), vipID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"diagnosisId": diagnosisID})
}

// Questions handles GET /v1/diagnosis/questions
func (h *DiagnosisHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.diagnosisSvc.Questions(),
	})
}

// AnswerRequest is the request body for saving one answer
type AnswerRequest struct {
	QuestionID string            `json:"questionId"`
	Answer     model.AnswerValue `json:"answer"`
}

// SaveAnswer handles POST /v1/diagnosis/answer
func (h *DiagnosisHandler) SaveAnswer(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	if err := h.diagnosisSvc.SaveAnswer(r.Context(), vipID, req.QuestionID, req.Answer); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"saved": true, "questionId": req.QuestionID})
}

// Complete handles POST /v1/diagnosis/complete
func (h *DiagnosisHandler) Complete(w http.ResponseWriter, r *http.Request) {
	vipID := middleware.GetVIPID(r.Context())
	if vipID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	index, err := h.diagnosisSvc.Complete(r.Context(), vipID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"diagnosisId": vipID,
		"healthIndex": index,
	})
}
