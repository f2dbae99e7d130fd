package handlers

import (
	"net/http"

	"spellquest/internal/service"
)

// DiagnosticHandler serves the placement assessment
type DiagnosticHandler struct {
	diagnosticService *service.DiagnosticService
}

// NewDiagnosticHandler creates a new diagnostic handler
func NewDiagnosticHandler(diagnosticService *service.DiagnosticService) *DiagnosticHandler {
	return &DiagnosticHandler{diagnosticService: diagnosticService}
}

// GetDiagnostic returns the question bank (answers stripped) and the
// user's latest result if one exists
func (h *DiagnosticHandler) GetDiagnostic(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	latest, err := h.diagnosticService.Latest(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":    h.diagnosticService.Questions(),
		"latestResult": latest,
	})
}

// SubmitDiagnostic grades the submitted answers server-side and
// records the placement
func (h *DiagnosticHandler) SubmitDiagnostic(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Answers map[int]string `json:"answers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.diagnosticService.Submit(user.ID, req.Answers)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

// GetDiagnosticHistory returns every past attempt, newest first
func (h *DiagnosticHandler) GetDiagnosticHistory(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	history, err := h.diagnosticService.History(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"results": history})
}
