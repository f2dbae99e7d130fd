package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"spellquest/internal/curriculum"
	"spellquest/internal/database"
	"spellquest/internal/domain"
	"spellquest/internal/models"
	"spellquest/internal/repository"
	"spellquest/internal/validation"
)

var (
	ErrUnknownProject    = errors.New("unknown writing project")
	ErrChallengeNotFound = errors.New("challenge not found")
)

// WritingService handles writing projects and the challenge documents
// they unlock
type WritingService struct {
	db *database.DB
}

// NewWritingService creates a new writing service
func NewWritingService(db *database.DB) *WritingService {
	return &WritingService{db: db}
}

// Catalogue returns the fixed writing project templates
func (s *WritingService) Catalogue() []curriculum.ProjectTemplate {
	return curriculum.WritingProjects
}

// CountWords counts whitespace-separated words in a document
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// SaveOutcome is the result of saving one project draft
type SaveOutcome struct {
	Project         *models.WritingProject
	Challenge       *models.WritingChallenge
	NewAchievements []string
}

// SaveProject upserts one project draft. The first save that moves a
// project into COMPLETED credits its words to the creative counter,
// mints the project's reward challenge, and may unlock achievements.
// Re-saving a completed project updates text without re-crediting.
func (s *WritingService) SaveProject(userID int64, projectNumber int, title, content, status string) (*SaveOutcome, error) {
	if projectNumber < 1 || projectNumber > len(curriculum.WritingProjects) {
		return nil, ErrUnknownProject
	}
	switch status {
	case models.StatusDraft, models.StatusInProgress, models.StatusCompleted:
	default:
		return nil, validation.ValidationError{Field: "status", Message: "invalid status"}
	}

	wordCount := CountWords(content)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	writingRepo := repository.NewWritingRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)
	achievementRepo := repository.NewAchievementRepository(tx)

	existing, err := writingRepo.GetProject(userID, projectNumber)
	if err != nil {
		return nil, err
	}

	project := &models.WritingProject{
		UserID:        userID,
		ProjectNumber: projectNumber,
		Title:         title,
		Content:       content,
		WordCount:     wordCount,
		Status:        status,
	}
	if existing != nil {
		project.CompletedAt = existing.CompletedAt
	}

	justCompleted := status == models.StatusCompleted &&
		(existing == nil || existing.Status != models.StatusCompleted)
	if justCompleted {
		now := time.Now()
		project.CompletedAt = &now
	}

	if err := writingRepo.UpsertProject(project); err != nil {
		return nil, err
	}

	outcome := &SaveOutcome{Project: project}

	if justCompleted {
		if wordCount > 0 {
			if err := progressRepo.AddCreativeWords(userID, wordCount); err != nil {
				return nil, err
			}
		}

		progress, err := progressRepo.GetProgress(userID)
		if err != nil {
			return nil, err
		}
		phase := 1
		if progress != nil {
			phase = progress.CurrentPhase
		}

		level := domain.LevelForPhase(phase)
		generated := domain.NextChallenge(projectNumber, level)
		challenge := &models.WritingChallenge{
			UserID:              userID,
			SourceProjectNumber: projectNumber,
			ChallengeType:       generated.ChallengeType,
			Title:               generated.Title,
			Prompt:              generated.Prompt,
			SpellingFocus:       generated.SpellingFocus,
			Theme:               generated.Theme,
			WordGoal:            generated.WordGoal,
			Level:               generated.Level,
		}
		if err := writingRepo.CreateChallenge(challenge); err != nil {
			return nil, err
		}
		stored, err := writingRepo.GetChallengeBySource(userID, projectNumber)
		if err != nil {
			return nil, err
		}
		outcome.Challenge = stored

		completed, err := writingRepo.CountCompletedProjects(userID)
		if err != nil {
			return nil, err
		}
		earned := domain.EvaluateAchievements(domain.ProgressSnapshot{CompletedProjects: completed})
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
		return nil, fmt.Errorf("failed to commit project save: %w", err)
	}

	return outcome, nil
}

// GetProject retrieves one saved project, nil when never started
func (s *WritingService) GetProject(userID int64, projectNumber int) (*models.WritingProject, error) {
	if projectNumber < 1 || projectNumber > len(curriculum.WritingProjects) {
		return nil, ErrUnknownProject
	}
	return repository.NewWritingRepository(s.db).GetProject(userID, projectNumber)
}

// ListProjects retrieves all of a user's saved projects
func (s *WritingService) ListProjects(userID int64) ([]models.WritingProject, error) {
	return repository.NewWritingRepository(s.db).ListProjects(userID)
}

// ListChallenges retrieves all of a user's unlocked challenges
func (s *WritingService) ListChallenges(userID int64) ([]models.WritingChallenge, error) {
	return repository.NewWritingRepository(s.db).ListChallenges(userID)
}

// SaveChallenge updates the text of an unlocked challenge. The first
// save that completes a challenge credits its words to the creative
// counter.
func (s *WritingService) SaveChallenge(userID int64, sourceProjectNumber int, content, status string) (*models.WritingChallenge, error) {
	switch status {
	case models.StatusInProgress, models.StatusCompleted:
	default:
		return nil, validation.ValidationError{Field: "status", Message: "invalid status"}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	writingRepo := repository.NewWritingRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)

	challenge, err := writingRepo.GetChallengeBySource(userID, sourceProjectNumber)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	wordCount := CountWords(content)

	var completedAt *time.Time
	if challenge.CompletedAt != nil {
		completedAt = challenge.CompletedAt
	}
	justCompleted := status == models.StatusCompleted && challenge.Status != models.StatusCompleted
	if justCompleted {
		now := time.Now()
		completedAt = &now
	}

	if err := writingRepo.UpdateChallenge(userID, sourceProjectNumber, content, wordCount, status, completedAt); err != nil {
		return nil, err
	}

	if justCompleted && wordCount > 0 {
		if err := progressRepo.AddCreativeWords(userID, wordCount); err != nil {
			return nil, err
		}
	}

	updated, err := writingRepo.GetChallengeBySource(userID, sourceProjectNumber)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit challenge save: %w", err)
	}

	return updated, nil
}
