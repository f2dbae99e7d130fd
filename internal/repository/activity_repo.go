package repository

import (
	"database/sql"
	"fmt"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// ActivityRepository handles daily study activity rows
type ActivityRepository struct {
	db database.DBTX
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db database.DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, user_id, activity_date, phase_number, visual_completed,
		auditory_completed, kinesthetic_completed, total_minutes, created_at, updated_at`

func scanActivity(row *sql.Row) (*models.DailyActivity, error) {
	a := &models.DailyActivity{}
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ActivityDate,
		&a.PhaseNumber,
		&a.VisualCompleted,
		&a.AuditoryCompleted,
		&a.KinestheticCompleted,
		&a.TotalMinutes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activity: %w", err)
	}
	return a, nil
}

// GetByDate retrieves a user's activity row for one calendar day
func (r *ActivityRepository) GetByDate(userID int64, date string) (*models.DailyActivity, error) {
	query := "SELECT " + activityColumns + " FROM daily_activity WHERE user_id = ? AND activity_date = ?"
	return scanActivity(r.db.QueryRow(query, userID, date))
}

// EnsureDay creates the row for (user, date) if it does not exist yet.
// Existing rows keep their segment flags and minutes.
func (r *ActivityRepository) EnsureDay(userID int64, date string, phase int) error {
	dialect := r.db.GetDialect()
	query := dialect.InsertIgnoreQuery(
		"daily_activity",
		[]string{"user_id", "activity_date", "phase_number"},
		[]string{"user_id", "activity_date"},
	)
	if _, err := r.db.Exec(query, userID, date, phase); err != nil {
		return fmt.Errorf("failed to ensure activity day: %w", err)
	}
	return nil
}

// MarkSegment flags one study segment done and credits its minutes.
// The flag check is part of the UPDATE, so concurrent completions of
// the same segment credit minutes exactly once. Returns true if this
// call performed the transition.
func (r *ActivityRepository) MarkSegment(userID int64, date, segment string, minutes int) (bool, error) {
	var column string
	switch segment {
	case models.SegmentVisual:
		column = "visual_completed"
	case models.SegmentAuditory:
		column = "auditory_completed"
	case models.SegmentKinesthetic:
		column = "kinesthetic_completed"
	default:
		return false, fmt.Errorf("unknown segment: %s", segment)
	}

	query := fmt.Sprintf(`
		UPDATE daily_activity
		SET %s = 1,
		    total_minutes = total_minutes + ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND activity_date = ? AND %s = 0
	`, column, column)
	result, err := r.db.Exec(query, minutes, userID, date)
	if err != nil {
		return false, fmt.Errorf("failed to mark segment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check segment transition: %w", err)
	}
	return affected == 1, nil
}

// GetRecent retrieves the most recent activity rows for a user,
// newest first
func (r *ActivityRepository) GetRecent(userID int64, limit int) ([]models.DailyActivity, error) {
	query := "SELECT " + activityColumns + ` FROM daily_activity
		WHERE user_id = ?
		ORDER BY activity_date DESC
		LIMIT ?`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily activity: %w", err)
	}
	defer rows.Close()

	var result []models.DailyActivity
	for rows.Next() {
		var a models.DailyActivity
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.ActivityDate,
			&a.PhaseNumber,
			&a.VisualCompleted,
			&a.AuditoryCompleted,
			&a.KinestheticCompleted,
			&a.TotalMinutes,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily activity: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
