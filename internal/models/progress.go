package models

import "time"

// UserProgress is the single progress row kept per user.
// CurrentPhase only moves forward and LongestStreak >= CurrentStreak
// after every update.
type UserProgress struct {
	ID                  int64
	UserID              int64
	CurrentPhase        int
	PhaseCompletion     int
	DiagnosticCompleted bool
	DiagnosticScore     int
	RecommendedPhase    int
	TotalStudyMinutes   int
	CurrentStreak       int
	LongestStreak       int
	WordsMastered       int
	SpellingAccuracy    float64
	CreativeWordCount   int
	LastActiveDate      string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PhaseProgress tracks per-phase completion, one row per (user, phase)
type PhaseProgress struct {
	ID            int64
	UserID        int64
	Phase         int
	CompletionPct int
	CompletedAt   *time.Time
}
