package domain

import (
	"math/rand"
	"strings"
	"testing"

	"spellquest/internal/curriculum"
	"spellquest/internal/models"
)

func TestGenerateCheckpointQuiz(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for phase := 1; phase <= curriculum.PhaseCount; phase++ {
		questions := GenerateCheckpointQuiz(phase, rng)

		if len(questions) != CheckpointQuestionCount {
			t.Fatalf("Phase %d: got %d questions, want %d", phase, len(questions), CheckpointQuestionCount)
		}

		seen := map[string]bool{}
		for i, q := range questions {
			if q.Number != i+1 {
				t.Errorf("Question %d has number %d", i, q.Number)
			}
			if q.Points != CheckpointQuestionValue {
				t.Errorf("Question %d has %d points, want %d", q.Number, q.Points, CheckpointQuestionValue)
			}
			if seen[q.Word] {
				t.Errorf("Word %q appears twice in phase %d quiz", q.Word, phase)
			}
			seen[q.Word] = true

			wantType := []string{
				curriculum.QuestionSpelling,
				curriculum.QuestionMultipleChoice,
				curriculum.QuestionFillBlank,
			}[i%3]
			if q.Type != wantType {
				t.Errorf("Question %d type = %s, want %s", q.Number, q.Type, wantType)
			}

			switch q.Type {
			case curriculum.QuestionMultipleChoice:
				if len(q.Options) != 2 {
					t.Errorf("Question %d has %d options, want 2", q.Number, len(q.Options))
				}
				foundCorrect := false
				for _, opt := range q.Options {
					if opt == q.Answer {
						foundCorrect = true
					} else if strings.EqualFold(opt, q.Answer) {
						t.Errorf("Question %d distractor equals the answer", q.Number)
					}
				}
				if !foundCorrect {
					t.Errorf("Question %d options %v missing the answer %q", q.Number, q.Options, q.Answer)
				}
			case curriculum.QuestionFillBlank:
				if !strings.Contains(q.Display, "___") {
					t.Errorf("Question %d display %q has no blank", q.Number, q.Display)
				}
			}
		}
	}
}

func TestGradeQuiz(t *testing.T) {
	questions := make([]models.QuizQuestion, CheckpointQuestionCount)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Number: i + 1,
			Answer: "word",
			Points: CheckpointQuestionValue,
		}
	}

	answersWithCorrect := func(n int) map[int]string {
		answers := map[int]string{}
		for i := 1; i <= n; i++ {
			answers[i] = "word"
		}
		return answers
	}

	tests := []struct {
		name       string
		correct    int
		wantScore  int
		wantPassed bool
	}{
		{"all correct", 15, 75, true},
		{"exactly 80 percent", 12, 60, true},
		{"just below 80 percent", 11, 55, false},
		{"none correct", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade := GradeQuiz(questions, answersWithCorrect(tt.correct))
			if grade.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", grade.Score, tt.wantScore)
			}
			if grade.TotalPoints != 75 {
				t.Errorf("TotalPoints = %d, want 75", grade.TotalPoints)
			}
			if grade.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", grade.Passed, tt.wantPassed)
			}
		})
	}

	t.Run("CaseInsensitiveMatch", func(t *testing.T) {
		qs := []models.QuizQuestion{{Number: 1, Answer: "Wednesday", Points: 5}}
		grade := GradeQuiz(qs, map[int]string{1: " wednesday "})
		if grade.Score != 5 {
			t.Errorf("Score = %d, want 5", grade.Score)
		}
	})

	t.Run("EmptyQuizNeverPasses", func(t *testing.T) {
		grade := GradeQuiz(nil, nil)
		if grade.Passed {
			t.Error("Empty quiz must not pass")
		}
	})
}

func TestAdvancePhase(t *testing.T) {
	tests := []struct {
		name    string
		current int
		passed  int
		want    int
	}{
		{"advances matching phase", 2, 2, 3},
		{"caps at final phase", 6, 6, 6},
		{"ignores earlier phase retake", 4, 2, 4},
		{"ignores ahead-of-current pass", 2, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvancePhase(tt.current, tt.passed)
			if got != tt.want {
				t.Errorf("AdvancePhase(%d, %d) = %d, want %d", tt.current, tt.passed, got, tt.want)
			}
			if got < tt.current {
				t.Error("Phase must never decrease")
			}
		})
	}
}
