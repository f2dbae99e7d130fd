package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"spellquest/internal/curriculum"
	"spellquest/internal/database"
	"spellquest/internal/domain"
	"spellquest/internal/models"
	"spellquest/internal/repository"
	"spellquest/internal/security"
	"spellquest/internal/validation"
)

var (
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrQuizAlreadyGraded = errors.New("quiz already graded")
)

// CheckpointService generates phase checkpoint quizzes and applies
// grading results to the user's progression
type CheckpointService struct {
	db *database.DB
}

// NewCheckpointService creates a new checkpoint service
func NewCheckpointService(db *database.DB) *CheckpointService {
	return &CheckpointService{db: db}
}

// StartQuiz generates a quiz for one phase and stores it server-side.
// The returned copy has its answers stripped.
func (s *CheckpointService) StartQuiz(userID int64, phase int) (*models.CheckpointQuiz, error) {
	if err := validation.ValidatePhase(phase); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	quiz := &models.CheckpointQuiz{
		ID:        security.GenerateSessionID(),
		UserID:    userID,
		Phase:     phase,
		Questions: domain.GenerateCheckpointQuiz(phase, rng),
	}

	if err := repository.NewCheckpointRepository(s.db).CreateQuiz(quiz); err != nil {
		return nil, err
	}

	return sanitizeQuiz(quiz), nil
}

// sanitizeQuiz strips answers before the quiz leaves the server. The
// source word goes too: for dictation and fill-blank questions it IS
// the answer, and for multiple choice it marks the correct option.
func sanitizeQuiz(quiz *models.CheckpointQuiz) *models.CheckpointQuiz {
	out := *quiz
	out.Questions = make([]models.QuizQuestion, len(quiz.Questions))
	copy(out.Questions, quiz.Questions)
	for i := range out.Questions {
		out.Questions[i].Answer = ""
		out.Questions[i].Word = ""
	}
	return &out
}

// CheckpointOutcome is the graded result of one quiz submission
type CheckpointOutcome struct {
	Result          *models.CheckpointResult
	NewPhase        int
	Advanced        bool
	NewAchievements []string
}

// SubmitQuiz grades a stored quiz against the submitted answers. Each
// quiz grades at most once; passing the current phase's checkpoint
// advances the user to the next phase and stamps the phase complete.
func (s *CheckpointService) SubmitQuiz(userID int64, quizID string, answers map[int]string) (*CheckpointOutcome, error) {
	repo := repository.NewCheckpointRepository(s.db)
	quiz, err := repo.GetQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil || quiz.UserID != userID {
		return nil, ErrQuizNotFound
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	checkpointRepo := repository.NewCheckpointRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)
	achievementRepo := repository.NewAchievementRepository(tx)

	claimed, err := checkpointRepo.MarkQuizCompleted(quizID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrQuizAlreadyGraded
	}

	grade := domain.GradeQuiz(quiz.Questions, answers)

	result := &models.CheckpointResult{
		UserID:      userID,
		Phase:       quiz.Phase,
		Score:       grade.Score,
		TotalPoints: grade.TotalPoints,
		Passed:      grade.Passed,
		Answers:     answers,
	}
	id, err := checkpointRepo.CreateResult(result)
	if err != nil {
		return nil, err
	}
	result.ID = id

	progress, err := progressRepo.GetProgress(userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, fmt.Errorf("progress row missing for user %d", userID)
	}

	outcome := &CheckpointOutcome{Result: result, NewPhase: progress.CurrentPhase}

	if grade.Passed {
		now := time.Now()
		if err := progressRepo.UpsertPhaseProgress(userID, quiz.Phase, 100, &now); err != nil {
			return nil, err
		}

		newPhase := domain.AdvancePhase(progress.CurrentPhase, quiz.Phase)
		if newPhase != progress.CurrentPhase {
			if err := progressRepo.SetPhase(userID, newPhase); err != nil {
				return nil, err
			}
			if err := progressRepo.EnsurePhaseProgress(userID, newPhase); err != nil {
				return nil, err
			}
			outcome.Advanced = true
		}
		outcome.NewPhase = newPhase

		earned := domain.EvaluateAchievements(domain.ProgressSnapshot{PassedPhase: quiz.Phase})
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
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkpoint: %w", err)
	}

	return outcome, nil
}

// Results retrieves all graded attempts for a user, newest first
func (s *CheckpointService) Results(userID int64) ([]models.CheckpointResult, error) {
	return repository.NewCheckpointRepository(s.db).ListResults(userID)
}

// PhaseOutline returns the curriculum phase descriptions
func (s *CheckpointService) PhaseOutline() []curriculum.Phase {
	return curriculum.Phases
}
