package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// CheckpointRepository handles generated checkpoint quizzes and their
// graded results
type CheckpointRepository struct {
	db database.DBTX
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(db database.DBTX) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// CreateQuiz stores a freshly generated quiz, answers included, so
// grading later works only from server-held state.
func (r *CheckpointRepository) CreateQuiz(quiz *models.CheckpointQuiz) error {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode quiz questions: %w", err)
	}

	query := `
		INSERT INTO checkpoint_quizzes (id, user_id, phase, questions)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, quiz.ID, quiz.UserID, quiz.Phase, string(questions)); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// GetQuiz retrieves a stored quiz by ID
func (r *CheckpointRepository) GetQuiz(quizID string) (*models.CheckpointQuiz, error) {
	query := `
		SELECT id, user_id, phase, questions, completed, created_at
		FROM checkpoint_quizzes
		WHERE id = ?
	`
	quiz := &models.CheckpointQuiz{}
	var questions string
	err := r.db.QueryRow(query, quizID).Scan(
		&quiz.ID,
		&quiz.UserID,
		&quiz.Phase,
		&questions,
		&quiz.Completed,
		&quiz.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if err := json.Unmarshal([]byte(questions), &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode quiz questions: %w", err)
	}
	return quiz, nil
}

// MarkQuizCompleted flags a quiz so it cannot be graded twice.
// Returns true if this call performed the transition.
func (r *CheckpointRepository) MarkQuizCompleted(quizID string) (bool, error) {
	query := "UPDATE checkpoint_quizzes SET completed = 1 WHERE id = ? AND completed = 0"
	result, err := r.db.Exec(query, quizID)
	if err != nil {
		return false, fmt.Errorf("failed to mark quiz completed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check quiz completion: %w", err)
	}
	return affected == 1, nil
}

// CreateResult appends one graded attempt. The attempt number is the
// count of prior attempts for the same phase plus one.
func (r *CheckpointRepository) CreateResult(result *models.CheckpointResult) (int64, error) {
	var attempts int
	countQuery := "SELECT COUNT(*) FROM checkpoint_results WHERE user_id = ? AND phase = ?"
	if err := r.db.QueryRow(countQuery, result.UserID, result.Phase).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	result.AttemptNumber = attempts + 1

	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return 0, fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO checkpoint_results
			(user_id, phase, score, total_points, passed, attempt_number, answers)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		result.UserID,
		result.Phase,
		result.Score,
		result.TotalPoints,
		result.Passed,
		result.AttemptNumber,
		string(answers),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create checkpoint result: %w", err)
	}
	return id, nil
}

// ListResults retrieves all graded attempts for a user, newest first
func (r *CheckpointRepository) ListResults(userID int64) ([]models.CheckpointResult, error) {
	query := `
		SELECT id, user_id, phase, score, total_points, passed, attempt_number, answers, completed_at
		FROM checkpoint_results
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoint results: %w", err)
	}
	defer rows.Close()

	var results []models.CheckpointResult
	for rows.Next() {
		var cr models.CheckpointResult
		var answers string
		if err := rows.Scan(
			&cr.ID,
			&cr.UserID,
			&cr.Phase,
			&cr.Score,
			&cr.TotalPoints,
			&cr.Passed,
			&cr.AttemptNumber,
			&answers,
			&cr.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint result: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &cr.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers: %w", err)
		}
		results = append(results, cr)
	}
	return results, rows.Err()
}

// HasPassed reports whether the user has any passing attempt for a phase
func (r *CheckpointRepository) HasPassed(userID int64, phase int) (bool, error) {
	query := "SELECT COUNT(*) FROM checkpoint_results WHERE user_id = ? AND phase = ? AND passed = 1"
	var count int
	if err := r.db.QueryRow(query, userID, phase).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check pass status: %w", err)
	}
	return count > 0, nil
}
