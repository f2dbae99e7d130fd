package domain

import (
	"testing"

	"spellquest/internal/curriculum"
)

func perfectAnswers() map[int]string {
	answers := map[int]string{}
	for _, q := range curriculum.DiagnosticQuestions {
		answers[q.ID] = q.Answers[0]
	}
	return answers
}

func TestScoreDiagnostic(t *testing.T) {
	t.Run("PerfectScore", func(t *testing.T) {
		outcome := ScoreDiagnostic(curriculum.DiagnosticQuestions, perfectAnswers())
		if outcome.TotalScore != 100 {
			t.Errorf("TotalScore = %d, want 100", outcome.TotalScore)
		}
		if outcome.RecommendedPhase != 4 {
			t.Errorf("RecommendedPhase = %d, want 4", outcome.RecommendedPhase)
		}
		if len(outcome.ErrorPatterns) != 0 {
			t.Errorf("Expected no error patterns, got %v", outcome.ErrorPatterns)
		}
	})

	t.Run("EmptyAnswers", func(t *testing.T) {
		outcome := ScoreDiagnostic(curriculum.DiagnosticQuestions, map[int]string{})
		if outcome.TotalScore != 0 {
			t.Errorf("TotalScore = %d, want 0", outcome.TotalScore)
		}
		if outcome.RecommendedPhase != 1 {
			t.Errorf("RecommendedPhase = %d, want 1", outcome.RecommendedPhase)
		}
		// every miss counts toward its category
		total := 0
		for _, count := range outcome.ErrorPatterns {
			total += count
		}
		if total != len(curriculum.DiagnosticQuestions) {
			t.Errorf("Error pattern total = %d, want %d", total, len(curriculum.DiagnosticQuestions))
		}
	})

	t.Run("TotalEqualsSumOfParts", func(t *testing.T) {
		answers := perfectAnswers()
		delete(answers, 1)
		delete(answers, 21)
		outcome := ScoreDiagnostic(curriculum.DiagnosticQuestions, answers)
		sum := outcome.PartScores["A"] + outcome.PartScores["B"] +
			outcome.PartScores["C"] + outcome.PartScores["D"]
		if outcome.TotalScore != sum {
			t.Errorf("TotalScore %d != part sum %d", outcome.TotalScore, sum)
		}
	})

	t.Run("NormalizesCaseAndWhitespace", func(t *testing.T) {
		answers := map[int]string{1: "  BeAuTiFuL  "}
		outcome := ScoreDiagnostic(curriculum.DiagnosticQuestions, answers)
		if outcome.PartScores["A"] != 5 {
			t.Errorf("Part A = %d, want 5", outcome.PartScores["A"])
		}
	})

	t.Run("AcceptsAnyListedAnswer", func(t *testing.T) {
		// question 9 accepts both "c" and "C"
		for _, submitted := range []string{"c", "C"} {
			outcome := ScoreDiagnostic(curriculum.DiagnosticQuestions, map[int]string{9: submitted})
			if outcome.PartScores["B"] != 5 {
				t.Errorf("Answer %q: Part B = %d, want 5", submitted, outcome.PartScores["B"])
			}
		}
	})
}

func TestRecommendPhase(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{100, 4},
		{85, 4},
		{84, 3},
		{70, 3},
		{69, 2},
		{55, 2},
		{54, 1},
		{40, 1},
		{39, 1},
		{0, 1},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := RecommendPhase(tt.score); got != tt.want {
				t.Errorf("RecommendPhase(%d) = %d, want %d", tt.score, got, tt.want)
			}
		})
	}
}
