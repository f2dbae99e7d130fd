package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"spellquest/internal/database"
)

// BackupData represents the complete database backup structure.
// Ephemeral state (sessions, reset tokens, in-flight quizzes and
// game sessions) is deliberately not included.
type BackupData struct {
	Version           string                    `json:"version"`
	ExportedAt        time.Time                 `json:"exported_at"`
	Users             []UserBackup              `json:"users"`
	Progress          []ProgressBackup          `json:"progress"`
	DiagnosticResults []DiagnosticResultBackup  `json:"diagnostic_results"`
	DailyActivity     []DailyActivityBackup     `json:"daily_activity"`
	CheckpointResults []CheckpointResultBackup  `json:"checkpoint_results"`
	PhaseProgress     []PhaseProgressBackup     `json:"phase_progress"`
	ExerciseResults   []ExerciseResultBackup    `json:"exercise_results"`
	WritingProjects   []WritingProjectBackup    `json:"writing_projects"`
	WritingChallenges []WritingChallengeBackup  `json:"writing_challenges"`
	Achievements      []AchievementBackup       `json:"achievements"`
	Bookmarks         []BookmarkBackup          `json:"bookmarks"`
}

// UserBackup represents a user record for backup
type UserBackup struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthSubject  string    `json:"oauth_subject"`
	AvatarID      string    `json:"avatar_id"`
	ThemeColor    string    `json:"theme_color"`
	Title         string    `json:"title"`
	Bio           string    `json:"bio"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProgressBackup represents a user_progress row for backup
type ProgressBackup struct {
	UserID              int64     `json:"user_id"`
	CurrentPhase        int       `json:"current_phase"`
	PhaseCompletion     int       `json:"phase_completion"`
	DiagnosticCompleted bool      `json:"diagnostic_completed"`
	DiagnosticScore     int       `json:"diagnostic_score"`
	RecommendedPhase    int       `json:"recommended_phase"`
	TotalStudyMinutes   int       `json:"total_study_minutes"`
	CurrentStreak       int       `json:"current_streak"`
	LongestStreak       int       `json:"longest_streak"`
	WordsMastered       int       `json:"words_mastered"`
	SpellingAccuracy    float64   `json:"spelling_accuracy"`
	CreativeWordCount   int       `json:"creative_word_count"`
	LastActiveDate      string    `json:"last_active_date"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DiagnosticResultBackup represents a diagnostic attempt for backup
type DiagnosticResultBackup struct {
	UserID           int64     `json:"user_id"`
	PartAScore       int       `json:"part_a_score"`
	PartBScore       int       `json:"part_b_score"`
	PartCScore       int       `json:"part_c_score"`
	PartDScore       int       `json:"part_d_score"`
	TotalScore       int       `json:"total_score"`
	RecommendedPhase int       `json:"recommended_phase"`
	ErrorPatterns    string    `json:"error_patterns"`
	Answers          string    `json:"answers"`
	CompletedAt      time.Time `json:"completed_at"`
}

// DailyActivityBackup represents one study day for backup
type DailyActivityBackup struct {
	UserID               int64  `json:"user_id"`
	ActivityDate         string `json:"activity_date"`
	PhaseNumber          int    `json:"phase_number"`
	VisualCompleted      bool   `json:"visual_completed"`
	AuditoryCompleted    bool   `json:"auditory_completed"`
	KinestheticCompleted bool   `json:"kinesthetic_completed"`
	TotalMinutes         int    `json:"total_minutes"`
}

// CheckpointResultBackup represents a graded checkpoint attempt
type CheckpointResultBackup struct {
	UserID        int64     `json:"user_id"`
	Phase         int       `json:"phase"`
	Score         int       `json:"score"`
	TotalPoints   int       `json:"total_points"`
	Passed        bool      `json:"passed"`
	AttemptNumber int       `json:"attempt_number"`
	Answers       string    `json:"answers"`
	CompletedAt   time.Time `json:"completed_at"`
}

// PhaseProgressBackup represents a per-phase completion row
type PhaseProgressBackup struct {
	UserID        int64      `json:"user_id"`
	Phase         int        `json:"phase"`
	CompletionPct int        `json:"completion_pct"`
	CompletedAt   *time.Time `json:"completed_at"`
}

// ExerciseResultBackup represents a graded game session
type ExerciseResultBackup struct {
	UserID         int64     `json:"user_id"`
	ExerciseType   string    `json:"exercise_type"`
	PhaseNumber    int       `json:"phase_number"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Accuracy       float64   `json:"accuracy"`
	TimeSpent      int       `json:"time_spent"`
	WordsAttempted string    `json:"words_attempted"`
	IncorrectWords string    `json:"incorrect_words"`
	CompletedAt    time.Time `json:"completed_at"`
}

// WritingProjectBackup represents a saved writing project
type WritingProjectBackup struct {
	UserID        int64      `json:"user_id"`
	ProjectNumber int        `json:"project_number"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	WordCount     int        `json:"word_count"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// WritingChallengeBackup represents a generated challenge
type WritingChallengeBackup struct {
	UserID              int64      `json:"user_id"`
	SourceProjectNumber int        `json:"source_project_number"`
	ChallengeType       string     `json:"challenge_type"`
	Title               string     `json:"title"`
	Prompt              string     `json:"prompt"`
	SpellingFocus       string     `json:"spelling_focus"`
	Theme               string     `json:"theme"`
	WordGoal            int        `json:"word_goal"`
	Level               string     `json:"level"`
	Content             string     `json:"content"`
	WordCount           int        `json:"word_count"`
	Status              string     `json:"status"`
	CompletedAt         *time.Time `json:"completed_at"`
	CreatedAt           time.Time  `json:"created_at"`
}

// AchievementBackup represents an earned badge
type AchievementBackup struct {
	UserID        int64     `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

// BookmarkBackup represents a saved resource bookmark
type BookmarkBackup struct {
	UserID        int64     `json:"user_id"`
	ResourceTitle string    `json:"resource_title"`
	ResourceURL   string    `json:"resource_url"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	steps := []struct {
		name string
		fn   func(*BackupData) error
	}{
		{"users", s.exportUsers},
		{"progress", s.exportProgress},
		{"diagnostic results", s.exportDiagnosticResults},
		{"daily activity", s.exportDailyActivity},
		{"checkpoint results", s.exportCheckpointResults},
		{"phase progress", s.exportPhaseProgress},
		{"exercise results", s.exportExerciseResults},
		{"writing projects", s.exportWritingProjects},
		{"writing challenges", s.exportWritingChallenges},
		{"achievements", s.exportAchievements},
		{"bookmarks", s.exportBookmarks},
	}
	for _, step := range steps {
		if err := step.fn(backup); err != nil {
			return fmt.Errorf("failed to export %s: %w", step.name, err)
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d progress rows, %d diagnostics, %d activity days, %d checkpoints, %d exercises, %d projects, %d challenges, %d achievements, %d bookmarks",
		len(backup.Users), len(backup.Progress), len(backup.DiagnosticResults),
		len(backup.DailyActivity), len(backup.CheckpointResults), len(backup.ExerciseResults),
		len(backup.WritingProjects), len(backup.WritingChallenges),
		len(backup.Achievements), len(backup.Bookmarks))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in dependency order: users first, everything else hangs
	// off user_id
	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importProgress(backup.Progress); err != nil {
		return fmt.Errorf("failed to import progress: %w", err)
	}
	if err := s.importDiagnosticResults(backup.DiagnosticResults); err != nil {
		return fmt.Errorf("failed to import diagnostic results: %w", err)
	}
	if err := s.importDailyActivity(backup.DailyActivity); err != nil {
		return fmt.Errorf("failed to import daily activity: %w", err)
	}
	if err := s.importCheckpointResults(backup.CheckpointResults); err != nil {
		return fmt.Errorf("failed to import checkpoint results: %w", err)
	}
	if err := s.importPhaseProgress(backup.PhaseProgress); err != nil {
		return fmt.Errorf("failed to import phase progress: %w", err)
	}
	if err := s.importExerciseResults(backup.ExerciseResults); err != nil {
		return fmt.Errorf("failed to import exercise results: %w", err)
	}
	if err := s.importWritingProjects(backup.WritingProjects); err != nil {
		return fmt.Errorf("failed to import writing projects: %w", err)
	}
	if err := s.importWritingChallenges(backup.WritingChallenges); err != nil {
		return fmt.Errorf("failed to import writing challenges: %w", err)
	}
	if err := s.importAchievements(backup.Achievements); err != nil {
		return fmt.Errorf("failed to import achievements: %w", err)
	}
	if err := s.importBookmarks(backup.Bookmarks); err != nil {
		return fmt.Errorf("failed to import bookmarks: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := `SELECT id, email, password_hash, name, role, oauth_provider, oauth_subject,
		avatar_id, theme_color, title, bio, created_at, updated_at FROM users ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
			&u.OAuthProvider, &u.OAuthSubject, &u.AvatarID, &u.ThemeColor, &u.Title, &u.Bio,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportProgress(backup *BackupData) error {
	query := `SELECT user_id, current_phase, phase_completion, diagnostic_completed,
		diagnostic_score, recommended_phase, total_study_minutes, current_streak,
		longest_streak, words_mastered, spelling_accuracy, creative_word_count,
		last_active_date, created_at, updated_at FROM user_progress ORDER BY user_id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p ProgressBackup
		if err := rows.Scan(&p.UserID, &p.CurrentPhase, &p.PhaseCompletion,
			&p.DiagnosticCompleted, &p.DiagnosticScore, &p.RecommendedPhase,
			&p.TotalStudyMinutes, &p.CurrentStreak, &p.LongestStreak, &p.WordsMastered,
			&p.SpellingAccuracy, &p.CreativeWordCount, &p.LastActiveDate,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		backup.Progress = append(backup.Progress, p)
	}
	return rows.Err()
}

func (s *BackupService) exportDiagnosticResults(backup *BackupData) error {
	query := `SELECT user_id, part_a_score, part_b_score, part_c_score, part_d_score,
		total_score, recommended_phase, error_patterns, answers, completed_at
		FROM diagnostic_results ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d DiagnosticResultBackup
		if err := rows.Scan(&d.UserID, &d.PartAScore, &d.PartBScore, &d.PartCScore,
			&d.PartDScore, &d.TotalScore, &d.RecommendedPhase, &d.ErrorPatterns,
			&d.Answers, &d.CompletedAt); err != nil {
			return err
		}
		backup.DiagnosticResults = append(backup.DiagnosticResults, d)
	}
	return rows.Err()
}

func (s *BackupService) exportDailyActivity(backup *BackupData) error {
	query := `SELECT user_id, activity_date, phase_number, visual_completed,
		auditory_completed, kinesthetic_completed, total_minutes
		FROM daily_activity ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a DailyActivityBackup
		if err := rows.Scan(&a.UserID, &a.ActivityDate, &a.PhaseNumber,
			&a.VisualCompleted, &a.AuditoryCompleted, &a.KinestheticCompleted,
			&a.TotalMinutes); err != nil {
			return err
		}
		backup.DailyActivity = append(backup.DailyActivity, a)
	}
	return rows.Err()
}

func (s *BackupService) exportCheckpointResults(backup *BackupData) error {
	query := `SELECT user_id, phase, score, total_points, passed, attempt_number,
		answers, completed_at FROM checkpoint_results ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c CheckpointResultBackup
		if err := rows.Scan(&c.UserID, &c.Phase, &c.Score, &c.TotalPoints, &c.Passed,
			&c.AttemptNumber, &c.Answers, &c.CompletedAt); err != nil {
			return err
		}
		backup.CheckpointResults = append(backup.CheckpointResults, c)
	}
	return rows.Err()
}

func (s *BackupService) exportPhaseProgress(backup *BackupData) error {
	query := `SELECT user_id, phase, completion_pct, completed_at FROM phase_progress ORDER BY user_id, phase`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PhaseProgressBackup
		var completedAt sql.NullTime
		if err := rows.Scan(&p.UserID, &p.Phase, &p.CompletionPct, &completedAt); err != nil {
			return err
		}
		if completedAt.Valid {
			p.CompletedAt = &completedAt.Time
		}
		backup.PhaseProgress = append(backup.PhaseProgress, p)
	}
	return rows.Err()
}

func (s *BackupService) exportExerciseResults(backup *BackupData) error {
	query := `SELECT user_id, exercise_type, phase_number, score, total_questions,
		accuracy, time_spent, words_attempted, incorrect_words, completed_at
		FROM exercise_results ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e ExerciseResultBackup
		if err := rows.Scan(&e.UserID, &e.ExerciseType, &e.PhaseNumber, &e.Score,
			&e.TotalQuestions, &e.Accuracy, &e.TimeSpent, &e.WordsAttempted,
			&e.IncorrectWords, &e.CompletedAt); err != nil {
			return err
		}
		backup.ExerciseResults = append(backup.ExerciseResults, e)
	}
	return rows.Err()
}

func (s *BackupService) exportWritingProjects(backup *BackupData) error {
	query := `SELECT user_id, project_number, title, content, word_count, status,
		completed_at, created_at, updated_at FROM writing_projects ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p WritingProjectBackup
		var completedAt sql.NullTime
		if err := rows.Scan(&p.UserID, &p.ProjectNumber, &p.Title, &p.Content,
			&p.WordCount, &p.Status, &completedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		if completedAt.Valid {
			p.CompletedAt = &completedAt.Time
		}
		backup.WritingProjects = append(backup.WritingProjects, p)
	}
	return rows.Err()
}

func (s *BackupService) exportWritingChallenges(backup *BackupData) error {
	query := `SELECT user_id, source_project_number, challenge_type, title, prompt,
		spelling_focus, theme, word_goal, level, content, word_count, status,
		completed_at, created_at FROM writing_challenges ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c WritingChallengeBackup
		var completedAt sql.NullTime
		if err := rows.Scan(&c.UserID, &c.SourceProjectNumber, &c.ChallengeType,
			&c.Title, &c.Prompt, &c.SpellingFocus, &c.Theme, &c.WordGoal, &c.Level,
			&c.Content, &c.WordCount, &c.Status, &completedAt, &c.CreatedAt); err != nil {
			return err
		}
		if completedAt.Valid {
			c.CompletedAt = &completedAt.Time
		}
		backup.WritingChallenges = append(backup.WritingChallenges, c)
	}
	return rows.Err()
}

func (s *BackupService) exportAchievements(backup *BackupData) error {
	query := `SELECT user_id, achievement_id, earned_at FROM user_achievements ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AchievementBackup
		if err := rows.Scan(&a.UserID, &a.AchievementID, &a.EarnedAt); err != nil {
			return err
		}
		backup.Achievements = append(backup.Achievements, a)
	}
	return rows.Err()
}

func (s *BackupService) exportBookmarks(backup *BackupData) error {
	query := `SELECT user_id, resource_title, resource_url, category, created_at FROM resource_bookmarks ORDER BY id`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var b BookmarkBackup
		if err := rows.Scan(&b.UserID, &b.ResourceTitle, &b.ResourceURL, &b.Category, &b.CreatedAt); err != nil {
			return err
		}
		backup.Bookmarks = append(backup.Bookmarks, b)
	}
	return rows.Err()
}

func (s *BackupService) importUsers(users []UserBackup) error {
	log.Printf("Importing %d users...", len(users))
	for _, u := range users {
		query := `INSERT INTO users (id, email, password_hash, name, role, oauth_provider,
			oauth_subject, avatar_id, theme_color, title, bio, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, u.ID, u.Email, u.PasswordHash, u.Name, u.Role,
			u.OAuthProvider, u.OAuthSubject, u.AvatarID, u.ThemeColor, u.Title, u.Bio,
			u.CreatedAt, u.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import user %d: %w", u.ID, err)
		}
	}
	return nil
}

func (s *BackupService) importProgress(rows []ProgressBackup) error {
	log.Printf("Importing %d progress rows...", len(rows))
	for _, p := range rows {
		query := `INSERT INTO user_progress (user_id, current_phase, phase_completion,
			diagnostic_completed, diagnostic_score, recommended_phase, total_study_minutes,
			current_streak, longest_streak, words_mastered, spelling_accuracy,
			creative_word_count, last_active_date, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, p.UserID, p.CurrentPhase, p.PhaseCompletion,
			p.DiagnosticCompleted, p.DiagnosticScore, p.RecommendedPhase, p.TotalStudyMinutes,
			p.CurrentStreak, p.LongestStreak, p.WordsMastered, p.SpellingAccuracy,
			p.CreativeWordCount, p.LastActiveDate, p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import progress for user %d: %w", p.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importDiagnosticResults(results []DiagnosticResultBackup) error {
	log.Printf("Importing %d diagnostic results...", len(results))
	for _, d := range results {
		query := `INSERT INTO diagnostic_results (user_id, part_a_score, part_b_score,
			part_c_score, part_d_score, total_score, recommended_phase, error_patterns,
			answers, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, d.UserID, d.PartAScore, d.PartBScore, d.PartCScore,
			d.PartDScore, d.TotalScore, d.RecommendedPhase, d.ErrorPatterns, d.Answers,
			d.CompletedAt); err != nil {
			return fmt.Errorf("failed to import diagnostic result for user %d: %w", d.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importDailyActivity(days []DailyActivityBackup) error {
	log.Printf("Importing %d activity days...", len(days))
	for _, a := range days {
		query := `INSERT INTO daily_activity (user_id, activity_date, phase_number,
			visual_completed, auditory_completed, kinesthetic_completed, total_minutes)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, a.UserID, a.ActivityDate, a.PhaseNumber,
			a.VisualCompleted, a.AuditoryCompleted, a.KinestheticCompleted,
			a.TotalMinutes); err != nil {
			return fmt.Errorf("failed to import activity %s for user %d: %w", a.ActivityDate, a.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importCheckpointResults(results []CheckpointResultBackup) error {
	log.Printf("Importing %d checkpoint results...", len(results))
	for _, c := range results {
		query := `INSERT INTO checkpoint_results (user_id, phase, score, total_points,
			passed, attempt_number, answers, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, c.UserID, c.Phase, c.Score, c.TotalPoints, c.Passed,
			c.AttemptNumber, c.Answers, c.CompletedAt); err != nil {
			return fmt.Errorf("failed to import checkpoint result for user %d: %w", c.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importPhaseProgress(rows []PhaseProgressBackup) error {
	log.Printf("Importing %d phase progress rows...", len(rows))
	for _, p := range rows {
		query := `INSERT INTO phase_progress (user_id, phase, completion_pct, completed_at)
			VALUES (?, ?, ?, ?)`
		if _, err := s.db.Exec(query, p.UserID, p.Phase, p.CompletionPct, p.CompletedAt); err != nil {
			return fmt.Errorf("failed to import phase progress for user %d: %w", p.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importExerciseResults(results []ExerciseResultBackup) error {
	log.Printf("Importing %d exercise results...", len(results))
	for _, e := range results {
		query := `INSERT INTO exercise_results (user_id, exercise_type, phase_number,
			score, total_questions, accuracy, time_spent, words_attempted, incorrect_words,
			completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, e.UserID, e.ExerciseType, e.PhaseNumber, e.Score,
			e.TotalQuestions, e.Accuracy, e.TimeSpent, e.WordsAttempted, e.IncorrectWords,
			e.CompletedAt); err != nil {
			return fmt.Errorf("failed to import exercise result for user %d: %w", e.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importWritingProjects(projects []WritingProjectBackup) error {
	log.Printf("Importing %d writing projects...", len(projects))
	for _, p := range projects {
		query := `INSERT INTO writing_projects (user_id, project_number, title, content,
			word_count, status, completed_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, p.UserID, p.ProjectNumber, p.Title, p.Content,
			p.WordCount, p.Status, p.CompletedAt, p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("failed to import writing project %d for user %d: %w", p.ProjectNumber, p.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importWritingChallenges(challenges []WritingChallengeBackup) error {
	log.Printf("Importing %d writing challenges...", len(challenges))
	for _, c := range challenges {
		query := `INSERT INTO writing_challenges (user_id, source_project_number,
			challenge_type, title, prompt, spelling_focus, theme, word_goal, level,
			content, word_count, status, completed_at, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, c.UserID, c.SourceProjectNumber, c.ChallengeType,
			c.Title, c.Prompt, c.SpellingFocus, c.Theme, c.WordGoal, c.Level, c.Content,
			c.WordCount, c.Status, c.CompletedAt, c.CreatedAt); err != nil {
			return fmt.Errorf("failed to import writing challenge for user %d: %w", c.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importAchievements(achievements []AchievementBackup) error {
	log.Printf("Importing %d achievements...", len(achievements))
	for _, a := range achievements {
		query := `INSERT INTO user_achievements (user_id, achievement_id, earned_at)
			VALUES (?, ?, ?)`
		if _, err := s.db.Exec(query, a.UserID, a.AchievementID, a.EarnedAt); err != nil {
			return fmt.Errorf("failed to import achievement %s for user %d: %w", a.AchievementID, a.UserID, err)
		}
	}
	return nil
}

func (s *BackupService) importBookmarks(bookmarks []BookmarkBackup) error {
	log.Printf("Importing %d bookmarks...", len(bookmarks))
	for _, b := range bookmarks {
		query := `INSERT INTO resource_bookmarks (user_id, resource_title, resource_url,
			category, created_at) VALUES (?, ?, ?, ?, ?)`
		if _, err := s.db.Exec(query, b.UserID, b.ResourceTitle, b.ResourceURL, b.Category,
			b.CreatedAt); err != nil {
			return fmt.Errorf("failed to import bookmark for user %d: %w", b.UserID, err)
		}
	}
	return nil
}
