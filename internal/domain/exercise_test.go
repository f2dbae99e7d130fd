package domain

import (
	"math/rand"
	"strings"
	"testing"

	"spellquest/internal/models"
)

func TestMisspell(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("NeverEqualsInput", func(t *testing.T) {
		words := []string{
			"receive", "believe", "construction", "television", "running",
			"necessary", "rhythm", "knowledge", "their", "happiness",
			"ab", "go", "cat", "photograph", "luminous",
		}
		for _, word := range words {
			for i := 0; i < 50; i++ {
				decoy := Misspell(word, rng)
				if strings.EqualFold(decoy, word) {
					t.Fatalf("Misspell(%q) returned the input", word)
				}
			}
		}
	})

	t.Run("PatternSubstitution", func(t *testing.T) {
		// "receive" contains "ei" whose only substitute is "ie"
		decoy := Misspell("receive", rng)
		if decoy != "recieve" {
			t.Errorf("Misspell(receive) = %q, want recieve", decoy)
		}
	})
}

func TestMaskWord(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tests := []struct {
		word       string
		wantHidden int
	}{
		{"go", 1},
		{"cat", 1},
		{"basket", 2},
		{"emergency", 3},
		{"intercontinental", 5},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			hidden := MaskWord(tt.word, rng)
			if len(hidden) != tt.wantHidden {
				t.Fatalf("MaskWord(%q) hid %d letters, want %d", tt.word, len(hidden), tt.wantHidden)
			}
			seen := map[int]bool{}
			last := -1
			for _, idx := range hidden {
				if idx < 0 || idx >= len(tt.word) {
					t.Errorf("Index %d out of range for %q", idx, tt.word)
				}
				if seen[idx] {
					t.Errorf("Duplicate index %d", idx)
				}
				seen[idx] = true
				if idx <= last {
					t.Error("Indices must be sorted ascending")
				}
				last = idx
			}
		})
	}
}

func TestMaskedDisplayAndHints(t *testing.T) {
	word := "basket"
	hidden := []int{1, 4}

	t.Run("Display", func(t *testing.T) {
		if got := MaskedDisplay(word, hidden, nil); got != "b_sk_t" {
			t.Errorf("MaskedDisplay = %q, want b_sk_t", got)
		}
	})

	t.Run("HintsRevealLeftToRight", func(t *testing.T) {
		idx, ok := NextHint(hidden, nil)
		if !ok || idx != 1 {
			t.Fatalf("First hint = %d (%v), want 1", idx, ok)
		}
		if got := MaskedDisplay(word, hidden, []int{1}); got != "bask_t" {
			t.Errorf("MaskedDisplay after hint = %q, want bask_t", got)
		}

		idx, ok = NextHint(hidden, []int{1})
		if !ok || idx != 4 {
			t.Fatalf("Second hint = %d (%v), want 4", idx, ok)
		}
		if _, ok := NextHint(hidden, []int{1, 4}); ok {
			t.Error("Expected no hints left")
		}
	})
}

func TestDetectPatterns(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"knife", []string{"Silent Letters"}},
		{"running", []string{"Double Letters", "Suffix Words"}},
		{"sprint", []string{"Consonant Blends"}},
		{"rain", []string{"Vowel Teams"}},
		{"disagreement", []string{"Double Letters", "Vowel Teams", "Suffix Words", "Prefix Words"}},
		{"robot", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := DetectPatterns(tt.word)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectPatterns(%q) = %v, want %v", tt.word, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("DetectPatterns(%q)[%d] = %s, want %s", tt.word, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildPatternSort(t *testing.T) {
	words := []string{"running", "biggest", "sprint", "splash", "rain", "teeth", "robot", "basket", "tried", "making"}
	ps := BuildPatternSort(words)

	t.Run("CategoryCount", func(t *testing.T) {
		if len(ps.Categories) < 3 || len(ps.Categories) > 5 {
			t.Errorf("Got %d categories: %v", len(ps.Categories), ps.Categories)
		}
	})

	t.Run("EveryWordAssignedOnce", func(t *testing.T) {
		for _, word := range words {
			cat, ok := ps.Assignment[word]
			if !ok {
				t.Errorf("Word %q has no category", word)
				continue
			}
			if !containsString(ps.Categories, cat) {
				t.Errorf("Word %q assigned to unavailable category %q", word, cat)
			}
		}
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		// "running" detects Double Letters before Suffix Words, so if
		// both categories are offered it must land in Double Letters
		if containsString(ps.Categories, "Double Letters") {
			if ps.Assignment["running"] != "Double Letters" {
				t.Errorf("running assigned to %q", ps.Assignment["running"])
			}
		}
	})

	t.Run("PadsSparseBatches", func(t *testing.T) {
		sparse := BuildPatternSort([]string{"robot", "basket"})
		if len(sparse.Categories) < 3 {
			t.Errorf("Sparse batch got %d categories: %v", len(sparse.Categories), sparse.Categories)
		}
	})
}

func TestGenerateExercise(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	types := []string{
		models.ExerciseSpellingBee,
		models.ExerciseFillBlank,
		models.ExerciseWordMatch,
		models.ExerciseWordSort,
	}

	for _, exerciseType := range types {
		t.Run(exerciseType, func(t *testing.T) {
			gen, err := GenerateExercise(exerciseType, 2, rng)
			if err != nil {
				t.Fatalf("GenerateExercise failed: %v", err)
			}
			if len(gen.Items) != ExerciseQuestionCount {
				t.Fatalf("Got %d items, want %d", len(gen.Items), ExerciseQuestionCount)
			}

			seen := map[string]bool{}
			for _, item := range gen.Items {
				if seen[item.Word] {
					t.Errorf("Duplicate word %q", item.Word)
				}
				seen[item.Word] = true
				if item.Answer == "" {
					t.Errorf("Item %d has no answer", item.Number)
				}
			}

			if exerciseType == models.ExerciseWordSort {
				if gen.Sort == nil {
					t.Fatal("Word sort session missing category key")
				}
				for _, item := range gen.Items {
					if item.Answer != gen.Sort.Assignment[item.Word] {
						t.Errorf("Item answer %q disagrees with assignment %q", item.Answer, gen.Sort.Assignment[item.Word])
					}
				}
			}

			if exerciseType == models.ExerciseWordMatch {
				for _, item := range gen.Items {
					if len(item.Options) != 2 {
						t.Errorf("Item %d has %d options", item.Number, len(item.Options))
					}
				}
			}
		})
	}

	t.Run("UnknownType", func(t *testing.T) {
		if _, err := GenerateExercise("tic_tac_toe", 1, rng); err == nil {
			t.Error("Expected error for unknown exercise type")
		}
	})
}

func TestGradeExercise(t *testing.T) {
	gen := GeneratedExercise{
		Type: models.ExerciseSpellingBee,
		Items: []models.QuizQuestion{
			{Number: 1, Word: "basket", Answer: "basket"},
			{Number: 2, Word: "picnic", Answer: "picnic"},
			{Number: 3, Word: "robot", Answer: "robot"},
		},
	}

	score, total, attempted, incorrect := GradeExercise(gen, map[int]string{
		1: "BASKET",
		2: "picnik",
	})

	if score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(attempted) != 3 {
		t.Errorf("attempted = %v", attempted)
	}
	if len(incorrect) != 2 || incorrect[0] != "picnic" || incorrect[1] != "robot" {
		t.Errorf("incorrect = %v", incorrect)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{8, 10, 80},
		{10, 10, 100},
		{0, 10, 0},
		{5, 0, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := Accuracy(tt.score, tt.total); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}
