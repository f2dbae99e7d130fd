package repository

import (
	"database/sql"
	"fmt"
	"time"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// WritingRepository handles writing projects and challenge documents
type WritingRepository struct {
	db database.DBTX
}

// NewWritingRepository creates a new writing repository
func NewWritingRepository(db database.DBTX) *WritingRepository {
	return &WritingRepository{db: db}
}

const projectColumns = `id, user_id, project_number, title, content, word_count,
		status, completed_at, created_at, updated_at`

// UpsertProject writes one draft of a project. The same
// (user, projectNumber) row is refreshed on every save.
func (r *WritingRepository) UpsertProject(p *models.WritingProject) error {
	dialect := r.db.GetDialect()
	query := dialect.UpsertQuery(
		"writing_projects",
		[]string{"user_id", "project_number", "title", "content", "word_count", "status", "completed_at"},
		[]string{"user_id", "project_number"},
		[]string{"title", "content", "word_count", "status", "completed_at"},
	)
	if _, err := r.db.Exec(query,
		p.UserID, p.ProjectNumber, p.Title, p.Content, p.WordCount, p.Status, p.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert project: %w", err)
	}
	return nil
}

// GetProject retrieves one project by number
func (r *WritingRepository) GetProject(userID int64, projectNumber int) (*models.WritingProject, error) {
	query := "SELECT " + projectColumns + " FROM writing_projects WHERE user_id = ? AND project_number = ?"
	p := &models.WritingProject{}
	err := r.db.QueryRow(query, userID, projectNumber).Scan(
		&p.ID,
		&p.UserID,
		&p.ProjectNumber,
		&p.Title,
		&p.Content,
		&p.WordCount,
		&p.Status,
		&p.CompletedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects retrieves all of a user's projects ordered by number
func (r *WritingRepository) ListProjects(userID int64) ([]models.WritingProject, error) {
	query := "SELECT " + projectColumns + " FROM writing_projects WHERE user_id = ? ORDER BY project_number"
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []models.WritingProject
	for rows.Next() {
		var p models.WritingProject
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.ProjectNumber,
			&p.Title,
			&p.Content,
			&p.WordCount,
			&p.Status,
			&p.CompletedAt,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CountCompletedProjects counts a user's completed projects
func (r *WritingRepository) CountCompletedProjects(userID int64) (int, error) {
	query := "SELECT COUNT(*) FROM writing_projects WHERE user_id = ? AND status = ?"
	var count int
	if err := r.db.QueryRow(query, userID, models.StatusCompleted).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed projects: %w", err)
	}
	return count, nil
}

// CreateChallenge inserts a challenge document for a completed
// project. A second insert for the same source project is ignored,
// so each project yields at most one challenge.
func (r *WritingRepository) CreateChallenge(c *models.WritingChallenge) error {
	dialect := r.db.GetDialect()
	query := dialect.InsertIgnoreQuery(
		"writing_challenges",
		[]string{"user_id", "source_project_number", "challenge_type", "title", "prompt",
			"spelling_focus", "theme", "word_goal", "level", "status"},
		[]string{"user_id", "source_project_number"},
	)
	if _, err := r.db.Exec(query,
		c.UserID, c.SourceProjectNumber, c.ChallengeType, c.Title, c.Prompt,
		c.SpellingFocus, c.Theme, c.WordGoal, c.Level, models.StatusInProgress,
	); err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

const challengeColumns = `id, user_id, source_project_number, challenge_type, title, prompt,
		spelling_focus, theme, word_goal, level, content, word_count, status,
		completed_at, created_at`

// GetChallengeBySource retrieves the challenge generated for one project
func (r *WritingRepository) GetChallengeBySource(userID int64, sourceProjectNumber int) (*models.WritingChallenge, error) {
	query := "SELECT " + challengeColumns + " FROM writing_challenges WHERE user_id = ? AND source_project_number = ?"
	return scanChallenge(r.db.QueryRow(query, userID, sourceProjectNumber))
}

// ListChallenges retrieves all of a user's challenges ordered by source project
func (r *WritingRepository) ListChallenges(userID int64) ([]models.WritingChallenge, error) {
	query := "SELECT " + challengeColumns + " FROM writing_challenges WHERE user_id = ? ORDER BY source_project_number"
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	var challenges []models.WritingChallenge
	for rows.Next() {
		var c models.WritingChallenge
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.SourceProjectNumber,
			&c.ChallengeType,
			&c.Title,
			&c.Prompt,
			&c.SpellingFocus,
			&c.Theme,
			&c.WordGoal,
			&c.Level,
			&c.Content,
			&c.WordCount,
			&c.Status,
			&c.CompletedAt,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

// UpdateChallenge saves challenge text and status
func (r *WritingRepository) UpdateChallenge(userID int64, sourceProjectNumber int, content string, wordCount int, status string, completedAt *time.Time) error {
	query := `
		UPDATE writing_challenges
		SET content = ?, word_count = ?, status = ?, completed_at = ?
		WHERE user_id = ? AND source_project_number = ?
	`
	if _, err := r.db.Exec(query, content, wordCount, status, completedAt, userID, sourceProjectNumber); err != nil {
		return fmt.Errorf("failed to update challenge: %w", err)
	}
	return nil
}

func scanChallenge(row *sql.Row) (*models.WritingChallenge, error) {
	c := &models.WritingChallenge{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.SourceProjectNumber,
		&c.ChallengeType,
		&c.Title,
		&c.Prompt,
		&c.SpellingFocus,
		&c.Theme,
		&c.WordGoal,
		&c.Level,
		&c.Content,
		&c.WordCount,
		&c.Status,
		&c.CompletedAt,
		&c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return c, nil
}
