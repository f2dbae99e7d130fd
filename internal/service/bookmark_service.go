package service

import (
	"spellquest/internal/curriculum"
	"spellquest/internal/database"
	"spellquest/internal/models"
	"spellquest/internal/repository"
	"spellquest/internal/validation"
)

// BookmarkService handles the resource directory and saved bookmarks
type BookmarkService struct {
	db *database.DB
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(db *database.DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// Directory returns the curated learning resource categories
func (s *BookmarkService) Directory() []curriculum.ResourceCategory {
	return curriculum.Resources
}

// Add saves a bookmark for a resource
func (s *BookmarkService) Add(userID int64, title, url, category string) error {
	if title == "" {
		return validation.ValidationError{Field: "title", Message: "title is required"}
	}
	return repository.NewBookmarkRepository(s.db).Add(userID, title, url, category)
}

// Remove deletes a bookmark
func (s *BookmarkService) Remove(userID int64, title string) error {
	if title == "" {
		return validation.ValidationError{Field: "title", Message: "title is required"}
	}
	return repository.NewBookmarkRepository(s.db).Remove(userID, title)
}

// List retrieves a user's bookmarks, newest first
func (s *BookmarkService) List(userID int64) ([]models.ResourceBookmark, error) {
	return repository.NewBookmarkRepository(s.db).List(userID)
}
