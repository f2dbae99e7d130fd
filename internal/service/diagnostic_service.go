package service

import (
	"fmt"

	"spellquest/internal/curriculum"
	"spellquest/internal/database"
	"spellquest/internal/domain"
	"spellquest/internal/models"
	"spellquest/internal/repository"
)

// Diagnostic retake policies
const (
	PhasePolicyOverwrite = "overwrite"
	PhasePolicyKeep      = "keep"
)

// DiagnosticService grades the placement assessment and applies its
// outcome to the user's progress
type DiagnosticService struct {
	db          *database.DB
	phasePolicy string
}

// NewDiagnosticService creates a new diagnostic service
func NewDiagnosticService(db *database.DB, phasePolicy string) *DiagnosticService {
	if phasePolicy != PhasePolicyKeep {
		phasePolicy = PhasePolicyOverwrite
	}
	return &DiagnosticService{db: db, phasePolicy: phasePolicy}
}

// Questions returns the assessment bank with answers stripped, safe
// to hand to the client.
func (s *DiagnosticService) Questions() []curriculum.DiagnosticQuestion {
	questions := make([]curriculum.DiagnosticQuestion, len(curriculum.DiagnosticQuestions))
	copy(questions, curriculum.DiagnosticQuestions)
	for i := range questions {
		questions[i].Answers = nil
	}
	return questions
}

// Submit grades one assessment attempt and records it. The stored
// result is immutable; what a retake does to the user's current phase
// depends on the configured policy: "overwrite" restarts at the new
// recommendation, "keep" never regresses below the phase already
// reached.
func (s *DiagnosticService) Submit(userID int64, answers map[int]string) (*models.DiagnosticResult, error) {
	outcome := domain.ScoreDiagnostic(curriculum.DiagnosticQuestions, answers)

	progress, err := repository.NewProgressRepository(s.db).GetProgress(userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		if err := repository.NewProgressRepository(s.db).CreateProgress(userID); err != nil {
			return nil, fmt.Errorf("failed to create progress: %w", err)
		}
		progress = &models.UserProgress{UserID: userID, CurrentPhase: 1}
	}

	newPhase := outcome.RecommendedPhase
	if s.phasePolicy == PhasePolicyKeep && progress.CurrentPhase > newPhase {
		newPhase = progress.CurrentPhase
	}

	result := &models.DiagnosticResult{
		UserID:           userID,
		PartAScore:       outcome.PartScores["A"],
		PartBScore:       outcome.PartScores["B"],
		PartCScore:       outcome.PartScores["C"],
		PartDScore:       outcome.PartScores["D"],
		TotalScore:       outcome.TotalScore,
		RecommendedPhase: outcome.RecommendedPhase,
		ErrorPatterns:    outcome.ErrorPatterns,
		Answers:          answers,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	diagnosticRepo := repository.NewDiagnosticRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)
	achievementRepo := repository.NewAchievementRepository(tx)

	id, err := diagnosticRepo.Create(result)
	if err != nil {
		return nil, err
	}
	result.ID = id

	if err := progressRepo.RecordDiagnostic(userID, outcome.TotalScore, outcome.RecommendedPhase, newPhase); err != nil {
		return nil, err
	}
	if err := progressRepo.EnsurePhaseProgress(userID, newPhase); err != nil {
		return nil, err
	}

	earned := domain.EvaluateAchievements(domain.ProgressSnapshot{DiagnosticSubmitted: true})
	for _, achievementID := range earned {
		if err := achievementRepo.Unlock(userID, achievementID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit diagnostic: %w", err)
	}

	return result, nil
}

// Latest retrieves the newest stored result for a user, nil when the
// assessment was never taken.
func (s *DiagnosticService) Latest(userID int64) (*models.DiagnosticResult, error) {
	return repository.NewDiagnosticRepository(s.db).GetLatest(userID)
}

// History retrieves every stored attempt, newest first
func (s *DiagnosticService) History(userID int64) ([]models.DiagnosticResult, error) {
	return repository.NewDiagnosticRepository(s.db).List(userID)
}
