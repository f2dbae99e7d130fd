package handlers

import (
	"net/http"

	"spellquest/internal/repository"
	"spellquest/internal/service"
)

// AdminHandler serves the admin account overview
type AdminHandler struct {
	userRepo        *repository.UserRepository
	progressService *service.ProgressService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userRepo *repository.UserRepository, progressService *service.ProgressService) *AdminHandler {
	return &AdminHandler{
		userRepo:        userRepo,
		progressService: progressService,
	}
}

// ListUsers returns every account with its progress snapshot
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAllUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to list users", err)
		return
	}

	type adminUserView struct {
		User              userView `json:"user"`
		CurrentPhase      int      `json:"currentPhase"`
		CurrentStreak     int      `json:"currentStreak"`
		WordsMastered     int      `json:"wordsMastered"`
		TotalStudyMinutes int      `json:"totalStudyMinutes"`
	}

	views := make([]adminUserView, 0, len(users))
	for i := range users {
		progress, err := h.progressService.GetProgress(users[i].ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to load progress", err)
			return
		}
		views = append(views, adminUserView{
			User:              toUserView(&users[i]),
			CurrentPhase:      progress.CurrentPhase,
			CurrentStreak:     progress.CurrentStreak,
			WordsMastered:     progress.WordsMastered,
			TotalStudyMinutes: progress.TotalStudyMinutes,
		})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"users": views})
}
