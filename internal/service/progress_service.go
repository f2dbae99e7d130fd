package service

import (
	"errors"
	"fmt"
	"time"

	"spellquest/internal/database"
	"spellquest/internal/domain"
	"spellquest/internal/models"
	"spellquest/internal/repository"
)

var ErrUnknownSegment = errors.New("unknown activity segment")

// ProgressService handles daily study activity, streaks, and the
// per-user progress row
type ProgressService struct {
	db *database.DB
}

// NewProgressService creates a new progress service
func NewProgressService(db *database.DB) *ProgressService {
	return &ProgressService{db: db}
}

// GetProgress retrieves a user's progress row, creating it on first
// access for accounts that predate the progress table.
func (s *ProgressService) GetProgress(userID int64) (*models.UserProgress, error) {
	repo := repository.NewProgressRepository(s.db)
	progress, err := repo.GetProgress(userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		if err := repo.CreateProgress(userID); err != nil {
			return nil, fmt.Errorf("failed to create progress: %w", err)
		}
		progress, err = repo.GetProgress(userID)
		if err != nil {
			return nil, err
		}
	}
	return progress, nil
}

// ActivityResult is the outcome of completing one study segment
type ActivityResult struct {
	Activity        *models.DailyActivity
	Progress        *models.UserProgress
	NewAchievements []string
	DayComplete     bool
}

// CompleteSegment records one finished study segment for today.
// Completing the same segment twice on one day is a no-op; a new
// segment credits minutes, advances the streak, and may unlock
// achievements. All writes happen in one transaction.
func (s *ProgressService) CompleteSegment(userID int64, segment string, now time.Time) (*ActivityResult, error) {
	switch segment {
	case models.SegmentVisual, models.SegmentAuditory, models.SegmentKinesthetic:
	default:
		return nil, ErrUnknownSegment
	}

	progress, err := s.GetProgress(userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	activityRepo := repository.NewActivityRepository(tx)
	progressRepo := repository.NewProgressRepository(tx)
	achievementRepo := repository.NewAchievementRepository(tx)

	today := now.Format(domain.DateLayout)
	if err := activityRepo.EnsureDay(userID, today, progress.CurrentPhase); err != nil {
		return nil, err
	}

	claimed, err := activityRepo.MarkSegment(userID, today, segment, domain.SegmentMinutes)
	if err != nil {
		return nil, err
	}

	update := domain.AdvanceStreak(progress.LastActiveDate, now, progress.CurrentStreak, progress.LongestStreak, claimed)
	if err := progressRepo.UpdateStreak(userID, update.CurrentStreak, update.LongestStreak, update.MinutesDelta, today); err != nil {
		return nil, err
	}

	snapshot := domain.ProgressSnapshot{
		FirstActivity:     update.FirstActivity,
		CurrentStreak:     update.CurrentStreak,
		WordsMastered:     progress.WordsMastered,
		SpellingAccuracy:  progress.SpellingAccuracy,
		TotalStudyMinutes: progress.TotalStudyMinutes + update.MinutesDelta,
	}
	earned := domain.EvaluateAchievements(snapshot)

	already, err := achievementRepo.EarnedSet(userID)
	if err != nil {
		return nil, err
	}
	var fresh []string
	for _, id := range earned {
		if already[id] {
			continue
		}
		if err := achievementRepo.Unlock(userID, id); err != nil {
			return nil, err
		}
		fresh = append(fresh, id)
	}

	activity, err := activityRepo.GetByDate(userID, today)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, fmt.Errorf("activity row missing for %s", today)
	}
	updated, err := progressRepo.GetProgress(userID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit activity: %w", err)
	}

	return &ActivityResult{
		Activity:        activity,
		Progress:        updated,
		NewAchievements: fresh,
		DayComplete:     activity.AllSegmentsCompleted(),
	}, nil
}

// GetToday retrieves today's activity row, which may be nil when the
// user has not studied yet.
func (s *ProgressService) GetToday(userID int64, now time.Time) (*models.DailyActivity, error) {
	repo := repository.NewActivityRepository(s.db)
	return repo.GetByDate(userID, now.Format(domain.DateLayout))
}

// GetHistory retrieves the user's recent activity days, newest first
func (s *ProgressService) GetHistory(userID int64, days int) ([]models.DailyActivity, error) {
	if days <= 0 || days > 90 {
		days = 30
	}
	repo := repository.NewActivityRepository(s.db)
	return repo.GetRecent(userID, days)
}

// GetPhaseProgress retrieves per-phase completion rows
func (s *ProgressService) GetPhaseProgress(userID int64) ([]models.PhaseProgress, error) {
	repo := repository.NewProgressRepository(s.db)
	return repo.GetPhaseProgress(userID)
}

// GetAchievements returns the user's unlocked achievement log
func (s *ProgressService) GetAchievements(userID int64) ([]models.UserAchievement, error) {
	repo := repository.NewAchievementRepository(s.db)
	return repo.List(userID)
}
