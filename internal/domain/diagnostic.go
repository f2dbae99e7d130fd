// Package domain holds the progression and scoring core: diagnostic
// scoring, streak bookkeeping, achievement evaluation, checkpoint
// generation and grading, exercise generators, and writing-challenge
// rotation. Everything here is pure: no persistence, no clocks beyond
// explicit arguments, and all randomness through an injected
// *rand.Rand.
package domain

import (
	"strings"

	"spellquest/internal/curriculum"
)

// DiagnosticOutcome is the result of scoring one assessment attempt
type DiagnosticOutcome struct {
	TotalScore       int
	PartScores       map[string]int
	RecommendedPhase int
	ErrorPatterns    map[string]int
}

// ScoreDiagnostic grades the submitted answers against the question
// bank. Answers are matched after trimming and lowercasing; a question
// may accept several answer spellings. Misses increment the
// error-pattern counter for the question's category.
func ScoreDiagnostic(bank []curriculum.DiagnosticQuestion, answers map[int]string) DiagnosticOutcome {
	outcome := DiagnosticOutcome{
		PartScores:    map[string]int{"A": 0, "B": 0, "C": 0, "D": 0},
		ErrorPatterns: map[string]int{},
	}

	for _, q := range bank {
		if answerMatches(q.Answers, answers[q.ID]) {
			outcome.TotalScore += q.Points
			outcome.PartScores[q.Part] += q.Points
		} else {
			outcome.ErrorPatterns[q.Category]++
		}
	}

	outcome.RecommendedPhase = RecommendPhase(outcome.TotalScore)
	return outcome
}

// RecommendPhase maps a total diagnostic score to a starting phase
func RecommendPhase(score int) int {
	switch {
	case score >= 85:
		return 4
	case score >= 70:
		return 3
	case score >= 55:
		return 2
	default:
		return 1
	}
}

func answerMatches(accepted []string, submitted string) bool {
	normalized := strings.ToLower(strings.TrimSpace(submitted))
	if normalized == "" {
		return false
	}
	for _, a := range accepted {
		if normalized == strings.ToLower(strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}
