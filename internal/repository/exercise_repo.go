package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// ExerciseRepository handles generated exercise sessions and their
// recorded results
type ExerciseRepository struct {
	db database.DBTX
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db database.DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// CreateSession stores a generated game session
func (r *ExerciseRepository) CreateSession(session *models.ExerciseSession) error {
	query := `
		INSERT INTO exercise_sessions (id, user_id, exercise_type, payload)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, session.ID, session.UserID, session.ExerciseType, session.Payload); err != nil {
		return fmt.Errorf("failed to create exercise session: %w", err)
	}
	return nil
}

// GetSession retrieves a game session by ID
func (r *ExerciseRepository) GetSession(sessionID string) (*models.ExerciseSession, error) {
	query := `
		SELECT id, user_id, exercise_type, payload, hints_used, completed, created_at
		FROM exercise_sessions
		WHERE id = ?
	`
	session := &models.ExerciseSession{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.ExerciseType,
		&session.Payload,
		&session.HintsUsed,
		&session.Completed,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise session: %w", err)
	}
	return session, nil
}

// IncrementHints records one served hint against an open session.
// Completed sessions stay frozen.
func (r *ExerciseRepository) IncrementHints(sessionID string) error {
	query := "UPDATE exercise_sessions SET hints_used = hints_used + 1 WHERE id = ? AND completed = 0"
	if _, err := r.db.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to record hint: %w", err)
	}
	return nil
}

// MarkSessionCompleted flags a session so it cannot be submitted twice.
// Returns true if this call performed the transition.
func (r *ExerciseRepository) MarkSessionCompleted(sessionID string) (bool, error) {
	query := "UPDATE exercise_sessions SET completed = 1 WHERE id = ? AND completed = 0"
	result, err := r.db.Exec(query, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to mark session completed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check session completion: %w", err)
	}
	return affected == 1, nil
}

// CreateResult appends one completed game result
func (r *ExerciseRepository) CreateResult(result *models.ExerciseResult) (int64, error) {
	attempted, err := json.Marshal(result.WordsAttempted)
	if err != nil {
		return 0, fmt.Errorf("failed to encode attempted words: %w", err)
	}
	incorrect, err := json.Marshal(result.IncorrectWords)
	if err != nil {
		return 0, fmt.Errorf("failed to encode incorrect words: %w", err)
	}

	query := `
		INSERT INTO exercise_results
			(user_id, exercise_type, phase_number, score, total_questions,
			 accuracy, time_spent, words_attempted, incorrect_words)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		result.UserID,
		result.ExerciseType,
		result.PhaseNumber,
		result.Score,
		result.TotalQuestions,
		result.Accuracy,
		result.TimeSpent,
		string(attempted),
		string(incorrect),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create exercise result: %w", err)
	}
	return id, nil
}

// ListResults retrieves recent results for a user, newest first
func (r *ExerciseRepository) ListResults(userID int64, limit int) ([]models.ExerciseResult, error) {
	query := `
		SELECT id, user_id, exercise_type, phase_number, score, total_questions,
		       accuracy, time_spent, words_attempted, incorrect_words, completed_at
		FROM exercise_results
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercise results: %w", err)
	}
	defer rows.Close()

	var results []models.ExerciseResult
	for rows.Next() {
		var er models.ExerciseResult
		var attempted, incorrect string
		if err := rows.Scan(
			&er.ID,
			&er.UserID,
			&er.ExerciseType,
			&er.PhaseNumber,
			&er.Score,
			&er.TotalQuestions,
			&er.Accuracy,
			&er.TimeSpent,
			&attempted,
			&incorrect,
			&er.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exercise result: %w", err)
		}
		if err := json.Unmarshal([]byte(attempted), &er.WordsAttempted); err != nil {
			return nil, fmt.Errorf("failed to decode attempted words: %w", err)
		}
		if err := json.Unmarshal([]byte(incorrect), &er.IncorrectWords); err != nil {
			return nil, fmt.Errorf("failed to decode incorrect words: %w", err)
		}
		results = append(results, er)
	}
	return results, rows.Err()
}

// AverageAccuracy computes the mean accuracy across all of a user's
// recorded exercises. Returns 0 when no exercises exist.
func (r *ExerciseRepository) AverageAccuracy(userID int64) (float64, error) {
	query := "SELECT COALESCE(AVG(accuracy), 0) FROM exercise_results WHERE user_id = ?"
	var avg float64
	if err := r.db.QueryRow(query, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to compute average accuracy: %w", err)
	}
	return avg, nil
}
