package repository

import (
	"fmt"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// AchievementRepository handles the append-only achievement unlock log
type AchievementRepository struct {
	db database.DBTX
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db database.DBTX) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// Unlock records one achievement for a user. Unlocking an already
// earned achievement is a silent no-op.
func (r *AchievementRepository) Unlock(userID int64, achievementID string) error {
	dialect := r.db.GetDialect()
	query := dialect.InsertIgnoreQuery(
		"user_achievements",
		[]string{"user_id", "achievement_id"},
		[]string{"user_id", "achievement_id"},
	)
	if _, err := r.db.Exec(query, userID, achievementID); err != nil {
		return fmt.Errorf("failed to unlock achievement: %w", err)
	}
	return nil
}

// List retrieves all achievements a user has earned, oldest first
func (r *AchievementRepository) List(userID int64) ([]models.UserAchievement, error) {
	query := `
		SELECT id, user_id, achievement_id, earned_at
		FROM user_achievements
		WHERE user_id = ?
		ORDER BY earned_at, id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var earned []models.UserAchievement
	for rows.Next() {
		var ua models.UserAchievement
		if err := rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.EarnedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		earned = append(earned, ua)
	}
	return earned, rows.Err()
}

// EarnedSet returns the user's achievement IDs as a lookup set
func (r *AchievementRepository) EarnedSet(userID int64) (map[string]bool, error) {
	earned, err := r.List(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(earned))
	for _, ua := range earned {
		set[ua.AchievementID] = true
	}
	return set, nil
}
