package handlers

import (
	"log"
	"net/http"

	"spellquest/internal/service"
)

// CheckpointHandler serves phase checkpoint quizzes
type CheckpointHandler struct {
	checkpointService *service.CheckpointService
	emailService      *service.EmailService
}

// NewCheckpointHandler creates a new checkpoint handler
func NewCheckpointHandler(checkpointService *service.CheckpointService, emailService *service.EmailService) *CheckpointHandler {
	return &CheckpointHandler{
		checkpointService: checkpointService,
		emailService:      emailService,
	}
}

// GetCheckpoints returns the phase outline and the user's past attempts
func (h *CheckpointHandler) GetCheckpoints(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	results, err := h.checkpointService.Results(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"phases":  h.checkpointService.PhaseOutline(),
		"results": results,
	})
}

// StartCheckpoint generates a fresh quiz for a phase
func (h *CheckpointHandler) StartCheckpoint(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Phase int `json:"phase"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quiz, err := h.checkpointService.StartQuiz(user.ID, req.Phase)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"quiz":    quiz,
	})
}

// SubmitCheckpoint grades a quiz attempt. A pass advances the phase
// and triggers the congratulations email.
func (h *CheckpointHandler) SubmitCheckpoint(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		QuizID  string         `json:"quizId"`
		Answers map[int]string `json:"answers"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.checkpointService.SubmitQuiz(user.ID, req.QuizID, req.Answers)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if outcome.Result.Passed && h.emailService != nil && h.emailService.IsEnabled() {
		if err := h.emailService.SendCheckpointPassedEmail(r.Context(), user.Email, user.Name, outcome.Result.Phase, outcome.Result.Score, outcome.Result.TotalPoints); err != nil {
			log.Printf("Failed to send checkpoint email: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"result":          outcome.Result,
		"newPhase":        outcome.NewPhase,
		"advanced":        outcome.Advanced,
		"newAchievements": outcome.NewAchievements,
	})
}
