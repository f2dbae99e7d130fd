package handlers

import (
	"net/http"

	"spellquest/internal/models"
	"spellquest/internal/service"
)

// BookmarkHandler serves the resource directory bookmarks
type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(bookmarkService *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// GetBookmarks returns the resource directory and the user's saved
// bookmarks
func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	bookmarks, err := h.bookmarkService.List(user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if bookmarks == nil {
		bookmarks = []models.ResourceBookmark{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"directory": h.bookmarkService.Directory(),
		"bookmarks": bookmarks,
	})
}

// SaveBookmark toggles a bookmark on or off for a resource title
func (h *BookmarkHandler) SaveBookmark(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		ResourceTitle string `json:"resourceTitle"`
		ResourceURL   string `json:"resourceUrl"`
		Category      string `json:"category"`
		Bookmarked    bool   `json:"bookmarked"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var err error
	if req.Bookmarked {
		err = h.bookmarkService.Add(user.ID, req.ResourceTitle, req.ResourceURL, req.Category)
	} else {
		err = h.bookmarkService.Remove(user.ID, req.ResourceTitle)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
