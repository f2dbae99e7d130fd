package domain

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"spellquest/internal/curriculum"
	"spellquest/internal/models"
)

// ExerciseQuestionCount is the number of items in one game session
const ExerciseQuestionCount = 10

// HintPenalty is the score deduction reported per revealed hint
const HintPenalty = 0.5

// commonMistakes maps orthographic patterns to plausible wrong
// substitutions, checked in a fixed order so decoys are reproducible
// given the same random source.
var commonMistakes = []struct {
	correct string
	wrongs  []string
}{
	{"ie", []string{"ei"}},
	{"ei", []string{"ie"}},
	{"tion", []string{"shun", "sion"}},
	{"sion", []string{"tion", "shun"}},
	{"ough", []string{"uff", "off", "ow"}},
	{"ible", []string{"able"}},
	{"able", []string{"ible"}},
	{"ance", []string{"ence"}},
	{"ence", []string{"ance"}},
	{"ant", []string{"ent"}},
	{"ent", []string{"ant"}},
	{"er", []string{"or", "ar"}},
	{"or", []string{"er", "ar"}},
	{"ar", []string{"er", "or"}},
	{"ous", []string{"us"}},
	{"ful", []string{"full"}},
	{"ly", []string{"ley", "lee"}},
	{"ness", []string{"niss"}},
	{"ment", []string{"mint"}},
	{"ck", []string{"k", "c"}},
	{"ph", []string{"f"}},
	{"gh", []string{"g", ""}},
	{"wh", []string{"w"}},
	{"kn", []string{"n"}},
	{"wr", []string{"r"}},
	{"mb", []string{"m"}},
	{"sc", []string{"s"}},
	{"ps", []string{"s"}},
	{"rh", []string{"r"}},
	{"gn", []string{"n"}},
}

// Misspell produces a plausible decoy spelling for a word. A known
// confusion pattern is substituted when the word contains one;
// otherwise one of four letter-level mutations applies. The result is
// guaranteed to differ from the input (case-insensitive) for words of
// two or more letters.
func Misspell(word string, rng *rand.Rand) string {
	lower := strings.ToLower(word)

	for _, m := range commonMistakes {
		if idx := strings.Index(lower, m.correct); idx >= 0 {
			wrong := m.wrongs[rng.Intn(len(m.wrongs))]
			result := word[:idx] + wrong + word[idx+len(m.correct):]
			if !strings.EqualFold(result, word) {
				return result
			}
		}
	}

	var result string
	switch rng.Intn(4) {
	case 0:
		result = swapAdjacent(word, rng)
	case 1:
		result = doubleConsonant(word, rng)
	case 2:
		result = removeDoubledLetter(word, rng)
	default:
		result = substituteVowel(word, rng)
	}

	if strings.EqualFold(result, word) {
		if len(word) < 2 {
			return word + "e"
		}
		return word[:len(word)-1] + "e"
	}
	return result
}

func swapAdjacent(word string, rng *rand.Rand) string {
	if len(word) < 2 {
		return word
	}
	chars := []byte(word)
	idx := rng.Intn(len(chars) - 1)
	chars[idx], chars[idx+1] = chars[idx+1], chars[idx]
	return string(chars)
}

func doubleConsonant(word string, rng *rand.Rand) string {
	var positions []int
	for i := 0; i < len(word); i++ {
		if !strings.ContainsRune("aeiou", rune(word[i]|0x20)) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return word
	}
	i := positions[rng.Intn(len(positions))]
	return word[:i] + string(word[i]) + word[i:]
}

func removeDoubledLetter(word string, rng *rand.Rand) string {
	for i := 0; i < len(word)-1; i++ {
		if word[i]|0x20 == word[i+1]|0x20 {
			return word[:i] + word[i+1:]
		}
	}
	return swapAdjacent(word, rng)
}

func substituteVowel(word string, rng *rand.Rand) string {
	const vowels = "aeiou"
	var positions []int
	for i := 0; i < len(word); i++ {
		if strings.ContainsRune(vowels, rune(word[i]|0x20)) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return word
	}
	i := positions[rng.Intn(len(positions))]
	current := word[i] | 0x20
	others := strings.ReplaceAll(vowels, string(current), "")
	replacement := others[rng.Intn(len(others))]
	if word[i] >= 'A' && word[i] <= 'Z' {
		replacement = replacement - 'a' + 'A'
	}
	return word[:i] + string(replacement) + word[i+1:]
}

// MaskWord picks max(1, len/3) distinct letter positions to hide.
// Returned indices are sorted ascending; hints reveal them in that
// left-to-right order.
func MaskWord(word string, rng *rand.Rand) []int {
	if word == "" {
		return nil
	}
	hidden := len(word) / 3
	if hidden < 1 {
		hidden = 1
	}
	perm := rng.Perm(len(word))[:hidden]
	sort.Ints(perm)
	return perm
}

// MaskedDisplay renders a word with underscores at the hidden
// positions, except those already revealed as hints.
func MaskedDisplay(word string, hidden, revealed []int) string {
	revealedSet := map[int]bool{}
	for _, i := range revealed {
		revealedSet[i] = true
	}
	chars := []byte(word)
	for _, i := range hidden {
		if i >= 0 && i < len(chars) && !revealedSet[i] {
			chars[i] = '_'
		}
	}
	return string(chars)
}

// NextHint returns the next hidden index to reveal, scanning hidden
// positions left to right. The second return is false when every
// position is already revealed.
func NextHint(hidden, revealed []int) (int, bool) {
	revealedSet := map[int]bool{}
	for _, i := range revealed {
		revealedSet[i] = true
	}
	for _, i := range hidden {
		if !revealedSet[i] {
			return i, true
		}
	}
	return 0, false
}

// Pattern sorter categories, in fallback padding order
var patternCategoryOrder = []string{
	"Silent Letters", "Double Letters", "Consonant Blends",
	"Vowel Teams", "Suffix Words", "Regular Words",
}

var (
	silentPatterns = []string{"kn", "wr", "gn", "mb", "gh", "ps", "rh", "bt", "mn"}
	blends         = []string{"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr", "pl", "pr", "sc", "sk", "sl", "sm", "sn", "sp", "st", "str", "spr", "spl", "shr", "thr", "sw", "tr", "tw"}
	vowelTeams     = []string{"ai", "ay", "ea", "ee", "oa", "oe", "ow", "ou", "ie", "ei", "ue", "oo", "au", "aw"}
	suffixes       = []string{"ing", "ed", "tion", "sion", "ness", "ment", "ful", "less", "able", "ible", "ous", "ive", "ly"}
	prefixes       = []string{"un", "re", "dis", "mis", "pre", "non", "over", "sub", "inter", "trans"}
)

// DetectPatterns reports every orthographic category a word exhibits,
// in priority order. An empty result means the word is "regular".
func DetectPatterns(word string) []string {
	var patterns []string
	lower := strings.ToLower(word)

	for _, p := range silentPatterns {
		if strings.Contains(lower, p) {
			patterns = append(patterns, "Silent Letters")
			break
		}
	}
	for i := 0; i < len(lower)-1; i++ {
		if lower[i] == lower[i+1] {
			patterns = append(patterns, "Double Letters")
			break
		}
	}
	for _, b := range blends {
		if strings.HasPrefix(lower, b) {
			patterns = append(patterns, "Consonant Blends")
			break
		}
	}
	for _, v := range vowelTeams {
		if strings.Contains(lower, v) {
			patterns = append(patterns, "Vowel Teams")
			break
		}
	}
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			patterns = append(patterns, "Suffix Words")
			break
		}
	}
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) && len(lower) > len(p)+2 {
			patterns = append(patterns, "Prefix Words")
			break
		}
	}

	return patterns
}

// PatternSort is the precomputed answer key for one word-sort round
type PatternSort struct {
	Categories []string
	Assignment map[string]string
}

// BuildPatternSort analyzes a word batch and selects the 3-4 most
// frequent categories (needing at least 2 words each, padded from a
// fixed order when fewer qualify), then assigns each word to exactly
// one category: its first detected pattern among the selected
// categories, else "Regular Words".
func BuildPatternSort(words []string) PatternSort {
	wordPatterns := map[string][]string{}
	counts := map[string]int{}

	for _, word := range words {
		patterns := DetectPatterns(word)
		if len(patterns) == 0 {
			patterns = []string{"Regular Words"}
		}
		wordPatterns[word] = patterns
		for _, p := range patterns {
			counts[p]++
		}
	}

	type catCount struct {
		name  string
		count int
	}
	var ranked []catCount
	for name, count := range counts {
		if count >= 2 {
			ranked = append(ranked, catCount{name, count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > 4 {
		ranked = ranked[:4]
	}

	var categories []string
	for _, c := range ranked {
		categories = append(categories, c.name)
	}
	for _, fallback := range patternCategoryOrder {
		if len(categories) >= 3 {
			break
		}
		if !containsString(categories, fallback) {
			categories = append(categories, fallback)
		}
	}

	assignment := map[string]string{}
	needsRegular := false
	for _, word := range words {
		assigned := "Regular Words"
		for _, cat := range categories {
			if containsString(wordPatterns[word], cat) {
				assigned = cat
				break
			}
		}
		assignment[word] = assigned
		if assigned == "Regular Words" && !containsString(categories, "Regular Words") {
			needsRegular = true
		}
	}
	if needsRegular {
		categories = append(categories, "Regular Words")
	}

	return PatternSort{Categories: categories, Assignment: assignment}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// GeneratedExercise is one server-generated game session
type GeneratedExercise struct {
	Type  string                `json:"type"`
	Items []models.QuizQuestion `json:"items,omitempty"`
	Sort  *PatternSort          `json:"sort,omitempty"`
}

// GenerateExercise builds a game session for the given type from the
// phase's word list: 10 distinct shuffled words, with per-type
// prompts, decoys, or masks.
func GenerateExercise(exerciseType string, phase int, rng *rand.Rand) (GeneratedExercise, error) {
	words := uniqueWords(curriculum.WordsForPhase(phase))
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if len(words) > ExerciseQuestionCount {
		words = words[:ExerciseQuestionCount]
	}

	gen := GeneratedExercise{Type: exerciseType}

	switch exerciseType {
	case models.ExerciseSpellingBee:
		for i, word := range words {
			gen.Items = append(gen.Items, models.QuizQuestion{
				Number: i + 1,
				Type:   curriculum.QuestionSpelling,
				Word:   word,
				Prompt: curriculum.DefinitionFor(word),
				Answer: word,
				Points: 1,
			})
		}
	case models.ExerciseFillBlank:
		for i, word := range words {
			hidden := MaskWord(word, rng)
			gen.Items = append(gen.Items, models.QuizQuestion{
				Number:  i + 1,
				Type:    curriculum.QuestionFillBlank,
				Word:    word,
				Prompt:  "Fill in the missing letters",
				Display: MaskedDisplay(word, hidden, nil),
				Answer:  word,
				Points:  1,
			})
		}
	case models.ExerciseWordMatch:
		for i, word := range words {
			wrong := Misspell(word, rng)
			options := []string{word, wrong}
			if rng.Intn(2) == 1 {
				options[0], options[1] = options[1], options[0]
			}
			gen.Items = append(gen.Items, models.QuizQuestion{
				Number:  i + 1,
				Type:    curriculum.QuestionMultipleChoice,
				Word:    word,
				Prompt:  "Choose the correct spelling",
				Options: options,
				Answer:  word,
				Points:  1,
			})
		}
	case models.ExerciseWordSort:
		ps := BuildPatternSort(words)
		gen.Sort = &ps
		for i, word := range words {
			gen.Items = append(gen.Items, models.QuizQuestion{
				Number: i + 1,
				Word:   word,
				Prompt: "Sort this word into its pattern category",
				Answer: ps.Assignment[word],
				Points: 1,
			})
		}
	default:
		return GeneratedExercise{}, fmt.Errorf("unknown exercise type: %s", exerciseType)
	}

	return gen, nil
}

func uniqueWords(words []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

// GradeExercise scores submitted answers against the generated items
// by exact case-insensitive match, returning correct count, item
// count, and the attempted/incorrect word lists.
func GradeExercise(gen GeneratedExercise, answers map[int]string) (score, total int, attempted, incorrect []string) {
	for _, item := range gen.Items {
		total++
		attempted = append(attempted, item.Word)
		if answerMatches([]string{item.Answer}, answers[item.Number]) {
			score++
		} else {
			incorrect = append(incorrect, item.Word)
		}
	}
	return score, total, attempted, incorrect
}

// Accuracy derives a 0-100 percentage, returning 0 for an empty set
// rather than dividing by zero.
func Accuracy(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}
