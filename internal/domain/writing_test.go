package domain

import (
	"testing"

	"spellquest/internal/curriculum"
)

func TestLevelForPhase(t *testing.T) {
	tests := []struct {
		phase int
		want  string
	}{
		{1, curriculum.LevelBeginner},
		{2, curriculum.LevelBeginner},
		{3, curriculum.LevelIntermediate},
		{4, curriculum.LevelIntermediate},
		{5, curriculum.LevelAdvanced},
		{6, curriculum.LevelAdvanced},
	}

	for _, tt := range tests {
		if got := LevelForPhase(tt.phase); got != tt.want {
			t.Errorf("LevelForPhase(%d) = %s, want %s", tt.phase, got, tt.want)
		}
	}
}

func TestNextChallenge(t *testing.T) {
	t.Run("TypeCyclesByProjectNumber", func(t *testing.T) {
		for projectNumber := 1; projectNumber <= 8; projectNumber++ {
			c := NextChallenge(projectNumber, curriculum.LevelIntermediate)
			wantType := curriculum.ChallengeTypes[projectNumber%4]
			if c.ChallengeType != wantType {
				t.Errorf("Project %d: type = %s, want %s", projectNumber, c.ChallengeType, wantType)
			}
		}
	})

	t.Run("ThemeCyclesThroughEight", func(t *testing.T) {
		for projectNumber := 1; projectNumber <= 16; projectNumber++ {
			c := NextChallenge(projectNumber, curriculum.LevelIntermediate)
			wantTheme := curriculum.Themes[(projectNumber-1)%8]
			if c.Theme != wantTheme {
				t.Errorf("Project %d: theme = %s, want %s", projectNumber, c.Theme, wantTheme)
			}
		}
	})

	t.Run("TemplateRotatesEveryFourProjects", func(t *testing.T) {
		first := NextChallenge(1, curriculum.LevelIntermediate)
		fifth := NextChallenge(5, curriculum.LevelIntermediate)
		ninth := NextChallenge(9, curriculum.LevelIntermediate)
		thirteenth := NextChallenge(13, curriculum.LevelIntermediate)

		if first.Title == fifth.Title {
			t.Error("Projects 1 and 5 should use different templates")
		}
		if fifth.Title == ninth.Title {
			t.Error("Projects 5 and 9 should use different templates")
		}
		// three templates per type, so project 13 wraps back to the first
		if first.Title != thirteenth.Title {
			t.Errorf("Project 13 title %q, want %q", thirteenth.Title, first.Title)
		}
	})

	t.Run("WordGoalScaling", func(t *testing.T) {
		// project 1 maps to CREATIVE_EXTENSION / Alternate Ending Writer, base 250
		tests := []struct {
			level string
			want  int
		}{
			{curriculum.LevelBeginner, 175},
			{curriculum.LevelIntermediate, 250},
			{curriculum.LevelAdvanced, 325},
		}
		for _, tt := range tests {
			c := NextChallenge(1, tt.level)
			if c.WordGoal != tt.want {
				t.Errorf("Level %s: word goal = %d, want %d", tt.level, c.WordGoal, tt.want)
			}
			if c.Level != tt.level {
				t.Errorf("Level = %s, want %s", c.Level, tt.level)
			}
		}
	})

	t.Run("BeginnerFloorIsFifty", func(t *testing.T) {
		// Six-Word Story Challenge has a 60-word base goal; x0.7 = 42,
		// clamped up to 50. Project 8: type 8%4=0 BONUS, template (7/4)%3=1.
		c := NextChallenge(8, curriculum.LevelBeginner)
		if c.Title != "Six-Word Story Challenge" {
			t.Fatalf("Project 8 title = %q", c.Title)
		}
		if c.WordGoal != 50 {
			t.Errorf("Word goal = %d, want 50", c.WordGoal)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := NextChallenge(3, curriculum.LevelAdvanced)
		b := NextChallenge(3, curriculum.LevelAdvanced)
		if a != b {
			t.Error("Same inputs must produce the same challenge")
		}
	})
}
