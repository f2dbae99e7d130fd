package models

import "time"

// DiagnosticResult is an immutable snapshot of one assessment attempt.
// ErrorPatterns and Answers are stored as JSON in the database.
type DiagnosticResult struct {
	ID               int64
	UserID           int64
	PartAScore       int
	PartBScore       int
	PartCScore       int
	PartDScore       int
	TotalScore       int
	RecommendedPhase int
	ErrorPatterns    map[string]int
	Answers          map[int]string
	CompletedAt      time.Time
}
