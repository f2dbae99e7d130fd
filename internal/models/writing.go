package models

import "time"

// Writing document statuses
const (
	StatusDraft      = "DRAFT"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// WritingProject is one row per (user, projectNumber), upserted across
// drafts. CompletedAt is stamped on the transition into COMPLETED.
type WritingProject struct {
	ID            int64
	UserID        int64
	ProjectNumber int
	Title         string
	Content       string
	WordCount     int
	Status        string
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WritingChallenge is a generated reward document, created once per
// completed project and then editable like a project.
type WritingChallenge struct {
	ID                  int64
	UserID              int64
	SourceProjectNumber int
	ChallengeType       string
	Title               string
	Prompt              string
	SpellingFocus       string
	Theme               string
	WordGoal            int
	Level               string
	Content             string
	WordCount           int
	Status              string
	CompletedAt         *time.Time
	CreatedAt           time.Time
}
