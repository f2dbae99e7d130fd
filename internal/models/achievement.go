package models

import "time"

// UserAchievement is an append-only unlock log entry, unique per
// (user, achievementId), never revoked.
type UserAchievement struct {
	ID            int64
	UserID        int64
	AchievementID string
	EarnedAt      time.Time
}

// ResourceBookmark marks an external resource saved by a user,
// unique per (user, resourceTitle).
type ResourceBookmark struct {
	ID            int64
	UserID        int64
	ResourceTitle string
	ResourceURL   string
	Category      string
	CreatedAt     time.Time
}
