package models

import "time"

// Exercise game types
const (
	ExerciseSpellingBee = "spelling_bee"
	ExerciseFillBlank   = "fill_blank"
	ExerciseWordMatch   = "word_match"
	ExerciseWordSort    = "word_sort"
)

// ExerciseSession is a generated game held server-side until the
// player submits answers. Payload carries the generated questions (or
// category assignment for the pattern sorter) as JSON. HintsUsed
// counts the hints the server has served for this session.
type ExerciseSession struct {
	ID           string
	UserID       int64
	ExerciseType string
	Payload      string
	HintsUsed    int
	Completed    bool
	CreatedAt    time.Time
}

// ExerciseResult is one completed game session
type ExerciseResult struct {
	ID             int64
	UserID         int64
	ExerciseType   string
	PhaseNumber    int
	Score          int
	TotalQuestions int
	Accuracy       float64
	TimeSpent      int
	WordsAttempted []string
	IncorrectWords []string
	CompletedAt    time.Time
}
