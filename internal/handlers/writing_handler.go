package handlers

import (
	"net/http"
	"strconv"

	"spellquest/internal/models"
	"spellquest/internal/service"
)

// WritingHandler serves writing projects and reward challenges
type WritingHandler struct {
	writingService *service.WritingService
}

// NewWritingHandler creates a new writing handler
func NewWritingHandler(writingService *service.WritingService) *WritingHandler {
	return &WritingHandler{writingService: writingService}
}

// GetProjects returns the 20-project catalogue alongside the user's
// saved work
func (h *WritingHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	projects, err := h.writingService.ListProjects(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if projects == nil {
		projects = []models.WritingProject{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"catalogue": h.writingService.Catalogue(),
		"projects":  projects,
	})
}

// SaveProject persists a draft or completion of one project
func (h *WritingHandler) SaveProject(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		ProjectNumber int    `json:"projectNumber"`
		Title         string `json:"title"`
		Content       string `json:"content"`
		Status        string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.writingService.SaveProject(user.ID, req.ProjectNumber, req.Title, req.Content, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"project":         outcome.Project,
		"challenge":       outcome.Challenge,
		"newAchievements": outcome.NewAchievements,
	})
}

// GetChallenges returns the user's generated writing challenges
func (h *WritingHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	challenges, err := h.writingService.ListChallenges(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if challenges == nil {
		challenges = []models.WritingChallenge{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"challenges": challenges})
}

// SaveChallenge persists progress on a generated challenge. The path
// id is the source project number the challenge was minted from.
func (h *WritingHandler) SaveChallenge(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	sourceProject, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid challenge id")
		return
	}

	var req struct {
		Content string `json:"content"`
		Status  string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	challenge, err := h.writingService.SaveChallenge(user.ID, sourceProject, req.Content, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"challenge": challenge,
	})
}
