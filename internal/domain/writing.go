package domain

import (
	"spellquest/internal/curriculum"
)

// LevelForPhase derives the user's skill level from their current phase
func LevelForPhase(phase int) string {
	switch {
	case phase < 3:
		return curriculum.LevelBeginner
	case phase < 5:
		return curriculum.LevelIntermediate
	default:
		return curriculum.LevelAdvanced
	}
}

// Challenge is a generated writing challenge ready to persist
type Challenge struct {
	ChallengeType string
	Title         string
	Prompt        string
	SpellingFocus string
	Theme         string
	WordGoal      int
	Level         string
}

// NextChallenge deterministically derives the reward challenge for a
// just-completed project: the type cycles by project number, the
// template rotates within the type every four projects, the theme
// cycles through all eight, and the word goal scales with skill level
// (x0.7 floored with a 50-word minimum for beginners, x1.3 for
// advanced writers).
func NextChallenge(projectNumber int, level string) Challenge {
	challengeType := curriculum.ChallengeTypes[projectNumber%len(curriculum.ChallengeTypes)]
	templates := curriculum.ChallengeTemplates[challengeType]
	template := templates[((projectNumber-1)/4)%len(templates)]
	theme := curriculum.Themes[(projectNumber-1)%len(curriculum.Themes)]

	wordGoal := template.WordGoal
	switch level {
	case curriculum.LevelBeginner:
		wordGoal = template.WordGoal * 7 / 10
		if wordGoal < 50 {
			wordGoal = 50
		}
	case curriculum.LevelAdvanced:
		wordGoal = template.WordGoal * 13 / 10
	}

	return Challenge{
		ChallengeType: challengeType,
		Title:         template.Title,
		Prompt:        template.Prompt,
		SpellingFocus: template.SpellingFocus,
		Theme:         theme,
		WordGoal:      wordGoal,
		Level:         level,
	}
}
