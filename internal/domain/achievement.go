package domain

import (
	"spellquest/internal/curriculum"
)

// ProgressSnapshot carries the post-update metrics the achievement
// evaluator inspects. Zero values are safe: a field that was not
// affected by the triggering action simply fails its threshold.
type ProgressSnapshot struct {
	FirstActivity       bool
	CurrentStreak       int
	WordsMastered       int
	SpellingAccuracy    float64
	TotalStudyMinutes   int
	PerfectExercise     bool
	CompletedProjects   int
	DiagnosticSubmitted bool
	PassedPhase         int
}

// EvaluateAchievements returns every achievement id the snapshot
// qualifies for. Multiple ids may fire from one update; the caller
// unlocks each with insert-if-absent so repeats are harmless.
func EvaluateAchievements(s ProgressSnapshot) []string {
	var earned []string

	if s.FirstActivity {
		earned = append(earned, curriculum.AchievementFirstSession)
	}
	if s.CurrentStreak >= 3 {
		earned = append(earned, curriculum.AchievementWeekStreak3)
	}
	if s.CurrentStreak >= 7 {
		earned = append(earned, curriculum.AchievementWeekStreak7)
	}
	if s.WordsMastered >= 25 {
		earned = append(earned, curriculum.AchievementWords25)
	}
	if s.WordsMastered >= 50 {
		earned = append(earned, curriculum.AchievementWords50)
	}
	if s.WordsMastered >= 100 {
		earned = append(earned, curriculum.AchievementWords100)
	}
	if s.SpellingAccuracy >= 90 {
		earned = append(earned, curriculum.AchievementAccuracy90)
	}
	if s.TotalStudyMinutes >= 600 {
		earned = append(earned, curriculum.AchievementHours10)
	}
	if s.PerfectExercise {
		earned = append(earned, curriculum.AchievementPerfectScore)
	}
	if s.CompletedProjects >= 1 {
		earned = append(earned, curriculum.AchievementWritingProject1)
	}
	if s.CompletedProjects >= 5 {
		earned = append(earned, curriculum.AchievementWritingProject5)
	}
	if s.DiagnosticSubmitted {
		earned = append(earned, curriculum.AchievementDiagnosticComplete)
	}
	if id := curriculum.PhaseCompleteAchievementID(s.PassedPhase); id != "" {
		earned = append(earned, id)
	}

	return earned
}
