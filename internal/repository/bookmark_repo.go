package repository

import (
	"fmt"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// BookmarkRepository handles saved learning resources
type BookmarkRepository struct {
	db database.DBTX
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db database.DBTX) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Add saves a resource bookmark. Bookmarking the same title twice is
// a no-op.
func (r *BookmarkRepository) Add(userID int64, title, url, category string) error {
	dialect := r.db.GetDialect()
	query := dialect.InsertIgnoreQuery(
		"resource_bookmarks",
		[]string{"user_id", "resource_title", "resource_url", "category"},
		[]string{"user_id", "resource_title"},
	)
	if _, err := r.db.Exec(query, userID, title, url, category); err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// Remove deletes a bookmark by title
func (r *BookmarkRepository) Remove(userID int64, title string) error {
	query := "DELETE FROM resource_bookmarks WHERE user_id = ? AND resource_title = ?"
	if _, err := r.db.Exec(query, userID, title); err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

// List retrieves all of a user's bookmarks, newest first
func (r *BookmarkRepository) List(userID int64) ([]models.ResourceBookmark, error) {
	query := `
		SELECT id, user_id, resource_title, resource_url, category, created_at
		FROM resource_bookmarks
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []models.ResourceBookmark
	for rows.Next() {
		var b models.ResourceBookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.ResourceTitle, &b.ResourceURL, &b.Category, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}
