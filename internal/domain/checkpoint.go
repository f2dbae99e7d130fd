package domain

import (
	"fmt"
	"math/rand"
	"strings"

	"spellquest/internal/curriculum"
	"spellquest/internal/models"
)

// Checkpoint quiz shape
const (
	CheckpointQuestionCount = 15
	CheckpointQuestionValue = 5
	CheckpointPassPercent   = 80
)

// GenerateCheckpointQuiz builds a 15-question quiz from the phase's
// word list: words are shuffled and the three question archetypes
// cycle round-robin by position, each worth 5 points.
func GenerateCheckpointQuiz(phase int, rng *rand.Rand) []models.QuizQuestion {
	words := append([]string(nil), curriculum.WordsForPhase(phase)...)
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	count := CheckpointQuestionCount
	if count > len(words) {
		count = len(words)
	}

	questions := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		word := words[i]
		q := models.QuizQuestion{
			Number: i + 1,
			Word:   word,
			Answer: word,
			Points: CheckpointQuestionValue,
		}

		switch i % 3 {
		case 0:
			q.Type = curriculum.QuestionSpelling
			q.Prompt = fmt.Sprintf("Spell this word: %s", curriculum.DefinitionFor(word))
		case 1:
			q.Type = curriculum.QuestionMultipleChoice
			q.Prompt = "Which spelling is correct?"
			misspelled := corruptFinalLetter(word)
			options := []string{word, misspelled}
			if rng.Intn(2) == 1 {
				options[0], options[1] = options[1], options[0]
			}
			q.Options = options
		default:
			q.Type = curriculum.QuestionFillBlank
			blank := len(word) / 2
			q.Display = word[:blank] + "___" + word[blank+1:]
			q.Prompt = fmt.Sprintf("Complete the word: %s", q.Display)
		}

		questions = append(questions, q)
	}

	return questions
}

// corruptFinalLetter produces the quiz's distractor spelling: the last
// letter is replaced, with "a" standing in when the word already ends
// in "e".
func corruptFinalLetter(word string) string {
	if word == "" {
		return "e"
	}
	replacement := "e"
	if strings.HasSuffix(word, "e") {
		replacement = "a"
	}
	return word[:len(word)-1] + replacement
}

// QuizGrade is the graded outcome of a checkpoint attempt
type QuizGrade struct {
	Score       int
	TotalPoints int
	Passed      bool
	Correct     int
}

// GradeQuiz scores the submitted answers by exact case-insensitive
// match. The pass check uses integer arithmetic so exactly 80.0%
// passes and anything below does not.
func GradeQuiz(questions []models.QuizQuestion, answers map[int]string) QuizGrade {
	grade := QuizGrade{}
	for _, q := range questions {
		grade.TotalPoints += q.Points
		if answerMatches([]string{q.Answer}, answers[q.Number]) {
			grade.Score += q.Points
			grade.Correct++
		}
	}
	if grade.TotalPoints > 0 {
		grade.Passed = grade.Score*100 >= CheckpointPassPercent*grade.TotalPoints
	}
	return grade
}

// AdvancePhase returns the user's new current phase after passing the
// given phase's checkpoint. The phase only moves forward, only when
// the passed checkpoint matches the current phase, and never beyond
// the final phase.
func AdvancePhase(currentPhase, passedPhase int) int {
	if currentPhase == passedPhase && passedPhase < curriculum.PhaseCount {
		return passedPhase + 1
	}
	return currentPhase
}
