package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// DiagnosticRepository handles stored diagnostic assessment results
type DiagnosticRepository struct {
	db database.DBTX
}

// NewDiagnosticRepository creates a new diagnostic repository
func NewDiagnosticRepository(db database.DBTX) *DiagnosticRepository {
	return &DiagnosticRepository{db: db}
}

// Create appends one diagnostic result. Results are immutable;
// retakes create new rows.
func (r *DiagnosticRepository) Create(result *models.DiagnosticResult) (int64, error) {
	patterns, err := json.Marshal(result.ErrorPatterns)
	if err != nil {
		return 0, fmt.Errorf("failed to encode error patterns: %w", err)
	}
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return 0, fmt.Errorf("failed to encode answers: %w", err)
	}

	query := `
		INSERT INTO diagnostic_results
			(user_id, part_a_score, part_b_score, part_c_score, part_d_score,
			 total_score, recommended_phase, error_patterns, answers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		result.UserID,
		result.PartAScore,
		result.PartBScore,
		result.PartCScore,
		result.PartDScore,
		result.TotalScore,
		result.RecommendedPhase,
		string(patterns),
		string(answers),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create diagnostic result: %w", err)
	}
	return id, nil
}

// GetLatest retrieves the most recent diagnostic result for a user
func (r *DiagnosticRepository) GetLatest(userID int64) (*models.DiagnosticResult, error) {
	query := `
		SELECT id, user_id, part_a_score, part_b_score, part_c_score, part_d_score,
		       total_score, recommended_phase, error_patterns, answers, completed_at
		FROM diagnostic_results
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC
		LIMIT 1
	`
	result, err := scanDiagnostic(r.db.QueryRow(query, userID))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List retrieves all diagnostic attempts for a user, newest first
func (r *DiagnosticRepository) List(userID int64) ([]models.DiagnosticResult, error) {
	query := `
		SELECT id, user_id, part_a_score, part_b_score, part_c_score, part_d_score,
		       total_score, recommended_phase, error_patterns, answers, completed_at
		FROM diagnostic_results
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostic results: %w", err)
	}
	defer rows.Close()

	var results []models.DiagnosticResult
	for rows.Next() {
		var dr models.DiagnosticResult
		var patterns, answers string
		var completedAt time.Time
		if err := rows.Scan(
			&dr.ID,
			&dr.UserID,
			&dr.PartAScore,
			&dr.PartBScore,
			&dr.PartCScore,
			&dr.PartDScore,
			&dr.TotalScore,
			&dr.RecommendedPhase,
			&patterns,
			&answers,
			&completedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic result: %w", err)
		}
		dr.CompletedAt = completedAt
		if err := decodeDiagnosticJSON(&dr, patterns, answers); err != nil {
			return nil, err
		}
		results = append(results, dr)
	}
	return results, rows.Err()
}

func scanDiagnostic(row *sql.Row) (*models.DiagnosticResult, error) {
	dr := &models.DiagnosticResult{}
	var patterns, answers string
	err := row.Scan(
		&dr.ID,
		&dr.UserID,
		&dr.PartAScore,
		&dr.PartBScore,
		&dr.PartCScore,
		&dr.PartDScore,
		&dr.TotalScore,
		&dr.RecommendedPhase,
		&patterns,
		&answers,
		&dr.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostic result: %w", err)
	}
	if err := decodeDiagnosticJSON(dr, patterns, answers); err != nil {
		return nil, err
	}
	return dr, nil
}

func decodeDiagnosticJSON(dr *models.DiagnosticResult, patterns, answers string) error {
	if err := json.Unmarshal([]byte(patterns), &dr.ErrorPatterns); err != nil {
		return fmt.Errorf("failed to decode error patterns: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &dr.Answers); err != nil {
		return fmt.Errorf("failed to decode answers: %w", err)
	}
	return nil
}
