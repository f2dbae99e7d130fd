package domain

import (
	"testing"

	"spellquest/internal/curriculum"
)

func TestEvaluateAchievements(t *testing.T) {
	tests := []struct {
		name     string
		snapshot ProgressSnapshot
		want     []string
	}{
		{
			name:     "empty snapshot earns nothing",
			snapshot: ProgressSnapshot{},
			want:     nil,
		},
		{
			name:     "first activity",
			snapshot: ProgressSnapshot{FirstActivity: true, CurrentStreak: 1},
			want:     []string{curriculum.AchievementFirstSession},
		},
		{
			name:     "streak thresholds stack",
			snapshot: ProgressSnapshot{CurrentStreak: 7},
			want:     []string{curriculum.AchievementWeekStreak3, curriculum.AchievementWeekStreak7},
		},
		{
			name:     "words mastered thresholds stack",
			snapshot: ProgressSnapshot{WordsMastered: 100},
			want:     []string{curriculum.AchievementWords25, curriculum.AchievementWords50, curriculum.AchievementWords100},
		},
		{
			name:     "accuracy at boundary",
			snapshot: ProgressSnapshot{SpellingAccuracy: 90},
			want:     []string{curriculum.AchievementAccuracy90},
		},
		{
			name:     "ten hours of study",
			snapshot: ProgressSnapshot{TotalStudyMinutes: 600},
			want:     []string{curriculum.AchievementHours10},
		},
		{
			name:     "perfect exercise",
			snapshot: ProgressSnapshot{PerfectExercise: true},
			want:     []string{curriculum.AchievementPerfectScore},
		},
		{
			name:     "five completed projects",
			snapshot: ProgressSnapshot{CompletedProjects: 5},
			want:     []string{curriculum.AchievementWritingProject1, curriculum.AchievementWritingProject5},
		},
		{
			name:     "diagnostic submitted",
			snapshot: ProgressSnapshot{DiagnosticSubmitted: true},
			want:     []string{curriculum.AchievementDiagnosticComplete},
		},
		{
			name:     "phase checkpoint passed",
			snapshot: ProgressSnapshot{PassedPhase: 3},
			want:     []string{"phase_3_complete"},
		},
		{
			name:     "out of range phase earns nothing",
			snapshot: ProgressSnapshot{PassedPhase: 7},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateAchievements(tt.snapshot)
			if len(got) != len(tt.want) {
				t.Fatalf("EvaluateAchievements() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("EvaluateAchievements()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}

	t.Run("BelowThresholds", func(t *testing.T) {
		snapshot := ProgressSnapshot{
			CurrentStreak:     2,
			WordsMastered:     24,
			SpellingAccuracy:  89.9,
			TotalStudyMinutes: 599,
		}
		if got := EvaluateAchievements(snapshot); got != nil {
			t.Errorf("Expected nothing earned, got %v", got)
		}
	})
}
