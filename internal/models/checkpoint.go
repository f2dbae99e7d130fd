package models

import "time"

// CheckpointQuiz is a generated quiz held server-side until submission.
// Questions are stored as JSON; a quiz is graded at most once.
type CheckpointQuiz struct {
	ID        string
	UserID    int64
	Phase     int
	Questions []QuizQuestion
	Completed bool
	CreatedAt time.Time
}

// QuizQuestion is one generated question of a checkpoint quiz or
// exercise session. Answer is kept server-side and stripped from the
// client payload.
type QuizQuestion struct {
	Number  int      `json:"number"`
	Type    string   `json:"type"`
	Word    string   `json:"word"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Display string   `json:"display,omitempty"`
	Answer  string   `json:"answer"`
	Points  int      `json:"points"`
}

// CheckpointResult is one append-only graded attempt for (user, phase)
type CheckpointResult struct {
	ID            int64
	UserID        int64
	Phase         int
	Score         int
	TotalPoints   int
	Passed        bool
	AttemptNumber int
	Answers       map[int]string
	CompletedAt   time.Time
}
