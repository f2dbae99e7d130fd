package handlers

import (
	"net/http"
	"strconv"

	"spellquest/internal/service"
)

// ExerciseHandler serves the spelling game sessions
type ExerciseHandler struct {
	exerciseService *service.ExerciseService
}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler(exerciseService *service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// StartExercise generates a game session for a type and phase
func (h *ExerciseHandler) StartExercise(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Type  string `json:"type"`
		Phase int    `json:"phase"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	started, err := h.exerciseService.Start(user.ID, req.Type, req.Phase)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": started.SessionID,
		"exercise":  started.Exercise,
	})
}

// SubmitExercise grades a stored game session
func (h *ExerciseHandler) SubmitExercise(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		SessionID string         `json:"sessionId"`
		Answers   map[int]string `json:"answers"`
		TimeSpent int            `json:"timeSpent"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.exerciseService.Submit(user.ID, req.SessionID, req.Answers, req.TimeSpent)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"result":          outcome.Result,
		"newAchievements": outcome.NewAchievements,
	})
}

// RequestHint reveals one more hidden letter in a fill-blank item
func (h *ExerciseHandler) RequestHint(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		SessionID string `json:"sessionId"`
		Question  int    `json:"question"`
		Revealed  []int  `json:"revealed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	index, display, err := h.exerciseService.Hint(user.ID, req.SessionID, req.Question, req.Revealed)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"index":   index,
		"display": display,
	})
}

// GetExerciseResults returns recent game results, newest first
func (h *ExerciseHandler) GetExerciseResults(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	results, err := h.exerciseService.Results(user.ID, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
