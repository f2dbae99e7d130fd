package repository

import (
	"database/sql"
	"fmt"
	"time"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// ProgressRepository handles the per-user progress row and
// per-phase completion tracking
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, user_id, current_phase, phase_completion, diagnostic_completed,
		diagnostic_score, recommended_phase, total_study_minutes, current_streak,
		longest_streak, words_mastered, spelling_accuracy, creative_word_count,
		last_active_date, created_at, updated_at`

// CreateProgress inserts the initial progress row for a new user
func (r *ProgressRepository) CreateProgress(userID int64) error {
	query := "INSERT INTO user_progress (user_id) VALUES (?)"
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}
	return nil
}

// GetProgress retrieves a user's progress row
func (r *ProgressRepository) GetProgress(userID int64) (*models.UserProgress, error) {
	query := "SELECT " + progressColumns + " FROM user_progress WHERE user_id = ?"
	p := &models.UserProgress{}
	err := r.db.QueryRow(query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.CurrentPhase,
		&p.PhaseCompletion,
		&p.DiagnosticCompleted,
		&p.DiagnosticScore,
		&p.RecommendedPhase,
		&p.TotalStudyMinutes,
		&p.CurrentStreak,
		&p.LongestStreak,
		&p.WordsMastered,
		&p.SpellingAccuracy,
		&p.CreativeWordCount,
		&p.LastActiveDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return p, nil
}

// RecordDiagnostic stores the outcome of a diagnostic assessment on
// the progress row. currentPhase is the phase decided by the caller's
// retake policy.
func (r *ProgressRepository) RecordDiagnostic(userID int64, score, recommendedPhase, currentPhase int) error {
	query := `
		UPDATE user_progress
		SET diagnostic_completed = 1,
		    diagnostic_score = ?,
		    recommended_phase = ?,
		    current_phase = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, score, recommendedPhase, currentPhase, userID); err != nil {
		return fmt.Errorf("failed to record diagnostic: %w", err)
	}
	return nil
}

// UpdateStreak writes streak state and the last active date, adding
// any newly earned study minutes in the same statement.
func (r *ProgressRepository) UpdateStreak(userID int64, currentStreak, longestStreak, minutesDelta int, lastActiveDate string) error {
	query := `
		UPDATE user_progress
		SET current_streak = ?,
		    longest_streak = ?,
		    total_study_minutes = total_study_minutes + ?,
		    last_active_date = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, currentStreak, longestStreak, minutesDelta, lastActiveDate, userID); err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}
	return nil
}

// SetPhase moves the user to a new current phase
func (r *ProgressRepository) SetPhase(userID int64, phase int) error {
	query := `
		UPDATE user_progress
		SET current_phase = ?, phase_completion = 0, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, phase, userID); err != nil {
		return fmt.Errorf("failed to set phase: %w", err)
	}
	return nil
}

// SetPhaseCompletion updates the completion percentage within the current phase
func (r *ProgressRepository) SetPhaseCompletion(userID int64, pct int) error {
	query := `
		UPDATE user_progress
		SET phase_completion = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, pct, userID); err != nil {
		return fmt.Errorf("failed to set phase completion: %w", err)
	}
	return nil
}

// AddWordsMastered increments the mastered-word counter.
// The increment runs in SQL so concurrent submissions never lose updates.
func (r *ProgressRepository) AddWordsMastered(userID int64, delta int) error {
	query := `
		UPDATE user_progress
		SET words_mastered = words_mastered + ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, delta, userID); err != nil {
		return fmt.Errorf("failed to add words mastered: %w", err)
	}
	return nil
}

// AddCreativeWords increments the creative writing word counter
func (r *ProgressRepository) AddCreativeWords(userID int64, delta int) error {
	query := `
		UPDATE user_progress
		SET creative_word_count = creative_word_count + ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, delta, userID); err != nil {
		return fmt.Errorf("failed to add creative words: %w", err)
	}
	return nil
}

// SetSpellingAccuracy stores the rolling accuracy figure
func (r *ProgressRepository) SetSpellingAccuracy(userID int64, accuracy float64) error {
	query := `
		UPDATE user_progress
		SET spelling_accuracy = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, accuracy, userID); err != nil {
		return fmt.Errorf("failed to set spelling accuracy: %w", err)
	}
	return nil
}

// EnsurePhaseProgress creates the tracking row for a phase the user
// has entered. Existing rows keep their completion state.
func (r *ProgressRepository) EnsurePhaseProgress(userID int64, phase int) error {
	dialect := r.db.GetDialect()
	query := dialect.InsertIgnoreQuery(
		"phase_progress",
		[]string{"user_id", "phase"},
		[]string{"user_id", "phase"},
	)
	if _, err := r.db.Exec(query, userID, phase); err != nil {
		return fmt.Errorf("failed to ensure phase progress: %w", err)
	}
	return nil
}

// UpsertPhaseProgress records completion for one phase, marking the
// completion time the first time pct reaches 100.
func (r *ProgressRepository) UpsertPhaseProgress(userID int64, phase, pct int, completedAt *time.Time) error {
	dialect := r.db.GetDialect()
	query := dialect.UpsertQuery(
		"phase_progress",
		[]string{"user_id", "phase", "completion_pct", "completed_at"},
		[]string{"user_id", "phase"},
		[]string{"completion_pct", "completed_at"},
	)
	if _, err := r.db.Exec(query, userID, phase, pct, completedAt); err != nil {
		return fmt.Errorf("failed to upsert phase progress: %w", err)
	}
	return nil
}

// GetPhaseProgress retrieves all phase rows for a user ordered by phase
func (r *ProgressRepository) GetPhaseProgress(userID int64) ([]models.PhaseProgress, error) {
	query := `
		SELECT id, user_id, phase, completion_pct, completed_at
		FROM phase_progress
		WHERE user_id = ?
		ORDER BY phase
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query phase progress: %w", err)
	}
	defer rows.Close()

	var result []models.PhaseProgress
	for rows.Next() {
		var pp models.PhaseProgress
		if err := rows.Scan(&pp.ID, &pp.UserID, &pp.Phase, &pp.CompletionPct, &pp.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan phase progress: %w", err)
		}
		result = append(result, pp)
	}
	return result, rows.Err()
}
