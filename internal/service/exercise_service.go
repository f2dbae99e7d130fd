package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"spellquest/internal/database"
	"spellquest/internal/domain"
	"spellquest/internal/models"
	"spellquest/internal/repository"
	"spellquest/internal/security"
	"spellquest/internal/validation"
)

var (
	ErrExerciseNotFound  = errors.New("exercise session not found")
	ErrExerciseCompleted = errors.New("exercise session already submitted")
)

// ExerciseService generates spelling game sessions and records their
// results
type ExerciseService struct {
	db *database.DB
}

// NewExerciseService creates a new exercise service
func NewExerciseService(db *database.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

// StartedExercise is the client-facing view of a new game session
type StartedExercise struct {
	SessionID string
	Exercise  domain.GeneratedExercise
}

// Start generates a game of the given type from the phase's word
// list and stores it server-side. The returned items have their
// answers stripped; the word-sort game keeps only the category names.
func (s *ExerciseService) Start(userID int64, exerciseType string, phase int) (*StartedExercise, error) {
	if err := validation.ValidatePhase(phase); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen, err := domain.GenerateExercise(exerciseType, phase, rng)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(struct {
		Phase    int                      `json:"phase"`
		Exercise domain.GeneratedExercise `json:"exercise"`
	}{Phase: phase, Exercise: gen})
	if err != nil {
		return nil, fmt.Errorf("failed to encode exercise payload: %w", err)
	}

	session := &models.ExerciseSession{
		ID:           security.GenerateSessionID(),
		UserID:       userID,
		ExerciseType: exerciseType,
		Payload:      string(payload),
	}
	if err := repository.NewExerciseRepository(s.db).CreateSession(session); err != nil {
		return nil, err
	}

	return &StartedExercise{SessionID: session.ID, Exercise: sanitizeExercise(gen)}, nil
}

// sanitizeExercise strips answers and the word-to-category assignment
// before a generated game leaves the server. The source word is also
// cleared except in the pattern sorter, where the visible word is the
// thing being sorted and the hidden answer is its category.
func sanitizeExercise(gen domain.GeneratedExercise) domain.GeneratedExercise {
	out := gen
	out.Items = make([]models.QuizQuestion, len(gen.Items))
	copy(out.Items, gen.Items)
	for i := range out.Items {
		out.Items[i].Answer = ""
		if gen.Type != models.ExerciseWordSort {
			out.Items[i].Word = ""
		}
	}
	if gen.Sort != nil {
		out.Sort = &domain.PatternSort{Categories: gen.Sort.Categories}
	}
	return out
}

// ExerciseOutcome is the recorded result of one submitted game
type ExerciseOutcome struct {
	Result          *models.ExerciseResult
	NewAchievements []string
}

// Submit grades a stored game session. Each session submits at most
// once; the graded result feeds words mastered, the rolling accuracy
// figure, and achievements. Hints served during the session are read
// back from the session row, never from the client.
func (s *ExerciseService) Submit(userID int64, sessionID string, answers map[int]string, timeSpent int) (*ExerciseOutcome, error) {
	repo := repository.NewExerciseRepository(s.db)
	session, err := repo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrExerciseNotFound
	}

	var payload struct {
		Phase    int                      `json:"phase"`
		Exercise domain.GeneratedExercise `json:"exercise"`
	}
	if err := json.Unmarshal([]byte(session.Payload), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode exercise payload: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exerciseRepo := repository.NewExerciseRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)
	achievementRepo := repository.NewAchievementRepository(tx)

	claimed, err := exerciseRepo.MarkSessionCompleted(sessionID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrExerciseCompleted
	}

	// Re-read inside the transaction: hints served after the first
	// fetch still count, and the claim blocks any later ones.
	session, err = exerciseRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	score, total, attempted, incorrect := domain.GradeExercise(payload.Exercise, answers)
	accuracy := domain.Accuracy(score, total)
	if session.HintsUsed > 0 {
		penalized := accuracy - float64(session.HintsUsed)*domain.HintPenalty
		if penalized < 0 {
			penalized = 0
		}
		accuracy = penalized
	}

	result := &models.ExerciseResult{
		UserID:         userID,
		ExerciseType:   session.ExerciseType,
		PhaseNumber:    payload.Phase,
		Score:          score,
		TotalQuestions: total,
		Accuracy:       accuracy,
		TimeSpent:      timeSpent,
		WordsAttempted: attempted,
		IncorrectWords: incorrect,
	}
	id, err := exerciseRepo.CreateResult(result)
	if err != nil {
		return nil, err
	}
	result.ID = id

	if score > 0 {
		if err := progressRepo.AddWordsMastered(userID, score); err != nil {
			return nil, err
		}
	}

	avg, err := exerciseRepo.AverageAccuracy(userID)
	if err != nil {
		return nil, err
	}
	if err := progressRepo.SetSpellingAccuracy(userID, avg); err != nil {
		return nil, err
	}

	progress, err := progressRepo.GetProgress(userID)
	if err != nil {
		return nil, err
	}

	outcome := &ExerciseOutcome{Result: result}

	snapshot := domain.ProgressSnapshot{
		PerfectExercise:  total > 0 && score == total && session.HintsUsed == 0,
		SpellingAccuracy: avg,
	}
	if progress != nil {
		snapshot.WordsMastered = progress.WordsMastered
		snapshot.CurrentStreak = progress.CurrentStreak
		snapshot.TotalStudyMinutes = progress.TotalStudyMinutes
	}
	earned := domain.EvaluateAchievements(snapshot)
	already, err := achievementRepo.EarnedSet(userID)
	if err != nil {
		return nil, err
	}
	for _, achievementID := range earned {
		if already[achievementID] {
			continue
		}
		if err := achievementRepo.Unlock(userID, achievementID); err != nil {
			return nil, err
		}
		outcome.NewAchievements = append(outcome.NewAchievements, achievementID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit exercise: %w", err)
	}

	return outcome, nil
}

// Hint reveals the next hidden letter of a fill-blank item. Every
// served hint is counted on the session row and costs half an
// accuracy point at grading.
func (s *ExerciseService) Hint(userID int64, sessionID string, questionNumber int, revealed []int) (int, string, error) {
	repo := repository.NewExerciseRepository(s.db)
	session, err := repo.GetSession(sessionID)
	if err != nil {
		return 0, "", err
	}
	if session == nil || session.UserID != userID {
		return 0, "", ErrExerciseNotFound
	}
	if session.Completed {
		return 0, "", ErrExerciseCompleted
	}

	var payload struct {
		Phase    int                      `json:"phase"`
		Exercise domain.GeneratedExercise `json:"exercise"`
	}
	if err := json.Unmarshal([]byte(session.Payload), &payload); err != nil {
		return 0, "", fmt.Errorf("failed to decode exercise payload: %w", err)
	}

	for _, item := range payload.Exercise.Items {
		if item.Number != questionNumber {
			continue
		}
		hidden := hiddenIndexes(item.Word, item.Display)
		next, ok := domain.NextHint(hidden, revealed)
		if !ok {
			return 0, "", errors.New("no hints left")
		}
		display := domain.MaskedDisplay(item.Word, hidden, append(revealed, next))
		if err := repo.IncrementHints(sessionID); err != nil {
			return 0, "", err
		}
		return next, display, nil
	}
	return 0, "", errors.New("question not found")
}

// hiddenIndexes recovers the masked positions from the stored display
func hiddenIndexes(word, display string) []int {
	var hidden []int
	runes := []rune(display)
	for i := range word {
		if i < len(runes) && runes[i] == '_' {
			hidden = append(hidden, i)
		}
	}
	return hidden
}

// Results retrieves recent graded games for a user, newest first
func (s *ExerciseService) Results(userID int64, limit int) ([]models.ExerciseResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return repository.NewExerciseRepository(s.db).ListResults(userID, limit)
}
