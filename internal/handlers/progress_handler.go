package handlers

import (
	"net/http"
	"strconv"
	"time"

	"spellquest/internal/curriculum"
	"spellquest/internal/models"
	"spellquest/internal/service"
)

// ProgressHandler serves the progress dashboard and daily activity
type ProgressHandler struct {
	progressService   *service.ProgressService
	diagnosticService *service.DiagnosticService
	exerciseService   *service.ExerciseService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService, diagnosticService *service.DiagnosticService, exerciseService *service.ExerciseService) *ProgressHandler {
	return &ProgressHandler{
		progressService:   progressService,
		diagnosticService: diagnosticService,
		exerciseService:   exerciseService,
	}
}

// GetProgress returns the full dashboard snapshot: progress counters,
// the latest diagnostic, per-phase progress, recent exercise results,
// recent activity and earned achievements.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	progress, err := h.progressService.GetProgress(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	latestDiagnostic, err := h.diagnosticService.Latest(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	phaseProgress, err := h.progressService.GetPhaseProgress(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	recentExercises, err := h.exerciseService.Results(user.ID, 10)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	recentActivity, err := h.progressService.GetHistory(user.ID, 7)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	achievements, err := h.progressService.GetAchievements(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"progress":         progress,
		"latestDiagnostic": latestDiagnostic,
		"phaseProgress":    phaseProgress,
		"recentExercises":  recentExercises,
		"recentActivity":   recentActivity,
		"achievements":     achievements,
	})
}

// CompleteActivity records one finished study segment for today
func (h *ProgressHandler) CompleteActivity(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Segment string `json:"segment"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.progressService.CompleteSegment(user.ID, req.Segment, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"activity":        result.Activity,
		"progress":        result.Progress,
		"dayComplete":     result.DayComplete,
		"newAchievements": result.NewAchievements,
	})
}

// GetActivityHistory returns recent daily activity, newest first
func (h *ProgressHandler) GetActivityHistory(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = parsed
	}

	history, err := h.progressService.GetHistory(user.ID, days)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if history == nil {
		history = []models.DailyActivity{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"activity": history})
}

// GetAchievements returns the achievement catalogue with earned state
func (h *ProgressHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	earned, err := h.progressService.GetAchievements(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	earnedAt := map[string]time.Time{}
	for _, a := range earned {
		earnedAt[a.AchievementID] = a.EarnedAt
	}

	type achievementView struct {
		curriculum.Achievement
		Earned   bool       `json:"earned"`
		EarnedAt *time.Time `json:"earnedAt,omitempty"`
	}
	views := make([]achievementView, 0, len(curriculum.Achievements))
	for _, def := range curriculum.Achievements {
		view := achievementView{Achievement: def}
		if at, ok := earnedAt[def.ID]; ok {
			view.Earned = true
			view.EarnedAt = &at
		}
		views = append(views, view)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"achievements": views})
}
