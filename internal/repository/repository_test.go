package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"spellquest/internal/database"
	"spellquest/internal/models"
)

// testDB opens a throwaway sqlite database with the full schema applied
func testDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "repo_test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *database.DB, email string) *models.User {
	t.Helper()
	repo := NewUserRepository(db)
	user, err := repo.CreateUser(email, "hash", "Test User", models.RoleStudent)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	repo := NewUserRepository(db)

	t.Run("first user becomes admin", func(t *testing.T) {
		user, err := repo.CreateUser("first@example.com", "hash1", "First", models.RoleStudent)
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if user.Role != models.RoleAdmin {
			t.Errorf("first user role = %s, want ADMIN", user.Role)
		}

		second, err := repo.CreateUser("second@example.com", "hash2", "Second", models.RoleStudent)
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if second.Role != models.RoleStudent {
			t.Errorf("second user role = %s, want STUDENT", second.Role)
		}
	})

	t.Run("get by email", func(t *testing.T) {
		user, err := repo.GetUserByEmail("first@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if user == nil {
			t.Fatal("expected user, got nil")
		}
		if user.Name != "First" {
			t.Errorf("name = %s, want First", user.Name)
		}

		missing, err := repo.GetUserByEmail("nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if missing != nil {
			t.Error("expected nil for unknown email")
		}
	})

	t.Run("sessions", func(t *testing.T) {
		user, _ := repo.GetUserByEmail("first@example.com")
		expires := time.Now().Add(time.Hour)

		if _, err := repo.CreateSession("sess-1", user.ID, expires); err != nil {
			t.Fatalf("CreateSession() error = %v", err)
		}

		session, err := repo.GetSession("sess-1")
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if session == nil || session.UserID != user.ID {
			t.Fatalf("unexpected session: %+v", session)
		}

		if err := repo.DeleteSession("sess-1"); err != nil {
			t.Fatalf("DeleteSession() error = %v", err)
		}
		session, err = repo.GetSession("sess-1")
		if err != nil {
			t.Fatalf("GetSession() error = %v", err)
		}
		if session != nil {
			t.Error("session should be deleted")
		}
	})

	t.Run("password reset token lifecycle", func(t *testing.T) {
		user, _ := repo.GetUserByEmail("first@example.com")
		if err := repo.CreatePasswordResetToken("tok-1", user.ID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("CreatePasswordResetToken() error = %v", err)
		}

		token, err := repo.GetPasswordResetToken("tok-1")
		if err != nil {
			t.Fatalf("GetPasswordResetToken() error = %v", err)
		}
		if token == nil || token.Used {
			t.Fatalf("unexpected token: %+v", token)
		}

		if err := repo.MarkResetTokenUsed("tok-1"); err != nil {
			t.Fatalf("MarkResetTokenUsed() error = %v", err)
		}
		token, _ = repo.GetPasswordResetToken("tok-1")
		if !token.Used {
			t.Error("token should be marked used")
		}
	})

	t.Run("oauth identity", func(t *testing.T) {
		user, err := repo.CreateOAuthUser("oauth@example.com", "OAuth User", "google", "sub-123")
		if err != nil {
			t.Fatalf("CreateOAuthUser() error = %v", err)
		}

		found, err := repo.GetUserByOAuth("google", "sub-123")
		if err != nil {
			t.Fatalf("GetUserByOAuth() error = %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Fatalf("unexpected oauth lookup result: %+v", found)
		}
	})
}

func TestProgressRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "progress@example.com")
	repo := NewProgressRepository(db)

	if err := repo.CreateProgress(user.ID); err != nil {
		t.Fatalf("CreateProgress() error = %v", err)
	}

	t.Run("fresh row defaults", func(t *testing.T) {
		p, err := repo.GetProgress(user.ID)
		if err != nil {
			t.Fatalf("GetProgress() error = %v", err)
		}
		if p == nil {
			t.Fatal("expected progress row")
		}
		if p.CurrentPhase != 1 || p.DiagnosticCompleted || p.CurrentStreak != 0 {
			t.Errorf("unexpected defaults: %+v", p)
		}
	})

	t.Run("record diagnostic", func(t *testing.T) {
		if err := repo.RecordDiagnostic(user.ID, 72, 3, 3); err != nil {
			t.Fatalf("RecordDiagnostic() error = %v", err)
		}
		p, _ := repo.GetProgress(user.ID)
		if !p.DiagnosticCompleted || p.DiagnosticScore != 72 || p.CurrentPhase != 3 {
			t.Errorf("unexpected progress after diagnostic: %+v", p)
		}
	})

	t.Run("streak update adds minutes", func(t *testing.T) {
		if err := repo.UpdateStreak(user.ID, 1, 1, 10, "2026-09-01"); err != nil {
			t.Fatalf("UpdateStreak() error = %v", err)
		}
		if err := repo.UpdateStreak(user.ID, 2, 2, 10, "2026-09-02"); err != nil {
			t.Fatalf("UpdateStreak() error = %v", err)
		}
		p, _ := repo.GetProgress(user.ID)
		if p.TotalStudyMinutes != 20 {
			t.Errorf("total minutes = %d, want 20", p.TotalStudyMinutes)
		}
		if p.CurrentStreak != 2 || p.LastActiveDate != "2026-09-02" {
			t.Errorf("unexpected streak state: %+v", p)
		}
	})

	t.Run("counters accumulate", func(t *testing.T) {
		if err := repo.AddWordsMastered(user.ID, 7); err != nil {
			t.Fatalf("AddWordsMastered() error = %v", err)
		}
		if err := repo.AddWordsMastered(user.ID, 3); err != nil {
			t.Fatalf("AddWordsMastered() error = %v", err)
		}
		if err := repo.AddCreativeWords(user.ID, 150); err != nil {
			t.Fatalf("AddCreativeWords() error = %v", err)
		}
		p, _ := repo.GetProgress(user.ID)
		if p.WordsMastered != 10 || p.CreativeWordCount != 150 {
			t.Errorf("unexpected counters: %+v", p)
		}
	})

	t.Run("phase progress upsert", func(t *testing.T) {
		if err := repo.UpsertPhaseProgress(user.ID, 1, 40, nil); err != nil {
			t.Fatalf("UpsertPhaseProgress() error = %v", err)
		}
		now := time.Now()
		if err := repo.UpsertPhaseProgress(user.ID, 1, 100, &now); err != nil {
			t.Fatalf("UpsertPhaseProgress() error = %v", err)
		}

		phases, err := repo.GetPhaseProgress(user.ID)
		if err != nil {
			t.Fatalf("GetPhaseProgress() error = %v", err)
		}
		if len(phases) != 1 {
			t.Fatalf("got %d phase rows, want 1", len(phases))
		}
		if phases[0].CompletionPct != 100 || phases[0].CompletedAt == nil {
			t.Errorf("unexpected phase row: %+v", phases[0])
		}
	})

	t.Run("ensure phase progress keeps existing state", func(t *testing.T) {
		if err := repo.EnsurePhaseProgress(user.ID, 3); err != nil {
			t.Fatalf("EnsurePhaseProgress() error = %v", err)
		}
		now := time.Now()
		if err := repo.UpsertPhaseProgress(user.ID, 3, 100, &now); err != nil {
			t.Fatalf("UpsertPhaseProgress() error = %v", err)
		}
		// Re-entering the phase must not wipe the completion.
		if err := repo.EnsurePhaseProgress(user.ID, 3); err != nil {
			t.Fatalf("EnsurePhaseProgress() repeat error = %v", err)
		}

		phases, err := repo.GetPhaseProgress(user.ID)
		if err != nil {
			t.Fatalf("GetPhaseProgress() error = %v", err)
		}
		var found *models.PhaseProgress
		for i := range phases {
			if phases[i].Phase == 3 {
				found = &phases[i]
			}
		}
		if found == nil {
			t.Fatal("expected a phase 3 row")
		}
		if found.CompletionPct != 100 || found.CompletedAt == nil {
			t.Errorf("completion state lost: %+v", found)
		}
	})
}

func TestActivityRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "activity@example.com")
	repo := NewActivityRepository(db)

	const day = "2026-09-01"

	if err := repo.EnsureDay(user.ID, day, 2); err != nil {
		t.Fatalf("EnsureDay() error = %v", err)
	}
	// Second call must not reset anything.
	if err := repo.EnsureDay(user.ID, day, 2); err != nil {
		t.Fatalf("EnsureDay() second call error = %v", err)
	}

	claimed, err := repo.MarkSegment(user.ID, day, models.SegmentVisual, 10)
	if err != nil {
		t.Fatalf("MarkSegment() error = %v", err)
	}
	if !claimed {
		t.Error("first visual completion should claim the segment")
	}
	if claimed, err = repo.MarkSegment(user.ID, day, models.SegmentAuditory, 10); err != nil {
		t.Fatalf("MarkSegment() error = %v", err)
	} else if !claimed {
		t.Error("first auditory completion should claim the segment")
	}

	a, err := repo.GetByDate(user.ID, day)
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if a == nil {
		t.Fatal("expected activity row")
	}
	if !a.VisualCompleted || !a.AuditoryCompleted || a.KinestheticCompleted {
		t.Errorf("unexpected segment flags: %+v", a)
	}
	if a.TotalMinutes != 20 {
		t.Errorf("total minutes = %d, want 20", a.TotalMinutes)
	}
	if a.AllSegmentsCompleted() {
		t.Error("day should not be fully complete yet")
	}

	t.Run("completed segment claims exactly once", func(t *testing.T) {
		claimed, err := repo.MarkSegment(user.ID, day, models.SegmentVisual, 10)
		if err != nil {
			t.Fatalf("MarkSegment() error = %v", err)
		}
		if claimed {
			t.Error("repeat completion should not claim the segment")
		}
		a, _ := repo.GetByDate(user.ID, day)
		if a.TotalMinutes != 20 {
			t.Errorf("total minutes = %d, want 20 after repeat", a.TotalMinutes)
		}
	})

	if claimed, err = repo.MarkSegment(user.ID, day, models.SegmentKinesthetic, 10); err != nil || !claimed {
		t.Fatalf("MarkSegment() = %v, %v", claimed, err)
	}
	a, _ = repo.GetByDate(user.ID, day)
	if !a.AllSegmentsCompleted() {
		t.Error("day should be fully complete")
	}

	if _, err := repo.MarkSegment(user.ID, day, "napping", 10); err == nil {
		t.Error("unknown segment should be rejected")
	}

	recent, err := repo.GetRecent(user.ID, 7)
	if err != nil {
		t.Fatalf("GetRecent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("got %d recent rows, want 1", len(recent))
	}
}

func TestDiagnosticRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "diag@example.com")
	repo := NewDiagnosticRepository(db)

	first := &models.DiagnosticResult{
		UserID:           user.ID,
		PartAScore:       30,
		PartBScore:       20,
		PartCScore:       12,
		PartDScore:       10,
		TotalScore:       72,
		RecommendedPhase: 3,
		ErrorPatterns:    map[string]int{"Silent Letters": 2},
		Answers:          map[int]string{1: "necessary", 2: "recieve"},
	}
	if _, err := repo.Create(first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := &models.DiagnosticResult{
		UserID:           user.ID,
		TotalScore:       88,
		RecommendedPhase: 4,
		ErrorPatterns:    map[string]int{},
		Answers:          map[int]string{},
	}
	if _, err := repo.Create(second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	latest, err := repo.GetLatest(user.ID)
	if err != nil {
		t.Fatalf("GetLatest() error = %v", err)
	}
	if latest == nil || latest.TotalScore != 88 {
		t.Fatalf("unexpected latest result: %+v", latest)
	}

	all, err := repo.List(user.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d results, want 2", len(all))
	}
	// Newest first; the older attempt keeps its decoded JSON fields.
	older := all[1]
	if older.ErrorPatterns["Silent Letters"] != 2 {
		t.Errorf("error patterns lost in round trip: %+v", older.ErrorPatterns)
	}
	if older.Answers[2] != "recieve" {
		t.Errorf("answers lost in round trip: %+v", older.Answers)
	}
}

func TestCheckpointRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "checkpoint@example.com")
	repo := NewCheckpointRepository(db)

	quiz := &models.CheckpointQuiz{
		ID:     "quiz-1",
		UserID: user.ID,
		Phase:  2,
		Questions: []models.QuizQuestion{
			{Number: 1, Type: models.ExerciseFillBlank, Word: "rain", Prompt: "Fill in", Display: "ra__n", Answer: "rain", Points: 5},
		},
	}
	if err := repo.CreateQuiz(quiz); err != nil {
		t.Fatalf("CreateQuiz() error = %v", err)
	}

	loaded, err := repo.GetQuiz("quiz-1")
	if err != nil {
		t.Fatalf("GetQuiz() error = %v", err)
	}
	if loaded == nil || len(loaded.Questions) != 1 || loaded.Questions[0].Answer != "rain" {
		t.Fatalf("unexpected quiz: %+v", loaded)
	}

	t.Run("quiz completes exactly once", func(t *testing.T) {
		done, err := repo.MarkQuizCompleted("quiz-1")
		if err != nil {
			t.Fatalf("MarkQuizCompleted() error = %v", err)
		}
		if !done {
			t.Error("first completion should succeed")
		}

		done, err = repo.MarkQuizCompleted("quiz-1")
		if err != nil {
			t.Fatalf("MarkQuizCompleted() error = %v", err)
		}
		if done {
			t.Error("second completion should be rejected")
		}
	})

	t.Run("attempt numbers increment", func(t *testing.T) {
		r1 := &models.CheckpointResult{UserID: user.ID, Phase: 2, Score: 55, TotalPoints: 75, Answers: map[int]string{}}
		if _, err := repo.CreateResult(r1); err != nil {
			t.Fatalf("CreateResult() error = %v", err)
		}
		if r1.AttemptNumber != 1 {
			t.Errorf("first attempt number = %d, want 1", r1.AttemptNumber)
		}

		r2 := &models.CheckpointResult{UserID: user.ID, Phase: 2, Score: 65, TotalPoints: 75, Passed: true, Answers: map[int]string{}}
		if _, err := repo.CreateResult(r2); err != nil {
			t.Fatalf("CreateResult() error = %v", err)
		}
		if r2.AttemptNumber != 2 {
			t.Errorf("second attempt number = %d, want 2", r2.AttemptNumber)
		}

		passed, err := repo.HasPassed(user.ID, 2)
		if err != nil {
			t.Fatalf("HasPassed() error = %v", err)
		}
		if !passed {
			t.Error("phase 2 should be passed")
		}
		passed, _ = repo.HasPassed(user.ID, 3)
		if passed {
			t.Error("phase 3 should not be passed")
		}
	})
}

func TestExerciseRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "exercise@example.com")
	repo := NewExerciseRepository(db)

	session := &models.ExerciseSession{
		ID:           "ex-1",
		UserID:       user.ID,
		ExerciseType: models.ExerciseSpellingBee,
		Payload:      `{"items":[]}`,
	}
	if err := repo.CreateSession(session); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	loaded, err := repo.GetSession("ex-1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if loaded == nil || loaded.ExerciseType != models.ExerciseSpellingBee {
		t.Fatalf("unexpected session: %+v", loaded)
	}
	if loaded.HintsUsed != 0 {
		t.Errorf("fresh session hints = %d, want 0", loaded.HintsUsed)
	}

	if err := repo.IncrementHints("ex-1"); err != nil {
		t.Fatalf("IncrementHints() error = %v", err)
	}
	if err := repo.IncrementHints("ex-1"); err != nil {
		t.Fatalf("IncrementHints() error = %v", err)
	}
	loaded, _ = repo.GetSession("ex-1")
	if loaded.HintsUsed != 2 {
		t.Errorf("hints used = %d, want 2", loaded.HintsUsed)
	}

	done, err := repo.MarkSessionCompleted("ex-1")
	if err != nil || !done {
		t.Fatalf("MarkSessionCompleted() = %v, %v", done, err)
	}
	done, _ = repo.MarkSessionCompleted("ex-1")
	if done {
		t.Error("session should complete only once")
	}

	// The submitted session is frozen; late hints no longer count.
	if err := repo.IncrementHints("ex-1"); err != nil {
		t.Fatalf("IncrementHints() after completion error = %v", err)
	}
	loaded, _ = repo.GetSession("ex-1")
	if loaded.HintsUsed != 2 {
		t.Errorf("hints used after completion = %d, want 2", loaded.HintsUsed)
	}

	result := &models.ExerciseResult{
		UserID:         user.ID,
		ExerciseType:   models.ExerciseSpellingBee,
		PhaseNumber:    1,
		Score:          8,
		TotalQuestions: 10,
		Accuracy:       80,
		TimeSpent:      120,
		WordsAttempted: []string{"cat", "dog"},
		IncorrectWords: []string{"dog"},
	}
	if _, err := repo.CreateResult(result); err != nil {
		t.Fatalf("CreateResult() error = %v", err)
	}

	results, err := repo.ListResults(user.ID, 10)
	if err != nil {
		t.Fatalf("ListResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].IncorrectWords[0] != "dog" {
		t.Errorf("incorrect words lost in round trip: %+v", results[0])
	}

	avg, err := repo.AverageAccuracy(user.ID)
	if err != nil {
		t.Fatalf("AverageAccuracy() error = %v", err)
	}
	if avg != 80 {
		t.Errorf("average accuracy = %v, want 80", avg)
	}

	other := createTestUser(t, db, "noexercises@example.com")
	avg, err = repo.AverageAccuracy(other.ID)
	if err != nil {
		t.Fatalf("AverageAccuracy() error = %v", err)
	}
	if avg != 0 {
		t.Errorf("average accuracy with no results = %v, want 0", avg)
	}
}

func TestWritingRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "writing@example.com")
	repo := NewWritingRepository(db)

	t.Run("project drafts upsert into one row", func(t *testing.T) {
		draft := &models.WritingProject{
			UserID:        user.ID,
			ProjectNumber: 1,
			Title:         "My Pet Story",
			Content:       "Once upon",
			WordCount:     2,
			Status:        models.StatusDraft,
		}
		if err := repo.UpsertProject(draft); err != nil {
			t.Fatalf("UpsertProject() error = %v", err)
		}

		now := time.Now()
		final := &models.WritingProject{
			UserID:        user.ID,
			ProjectNumber: 1,
			Title:         "My Pet Story",
			Content:       "Once upon a time there was a very good dog.",
			WordCount:     10,
			Status:        models.StatusCompleted,
			CompletedAt:   &now,
		}
		if err := repo.UpsertProject(final); err != nil {
			t.Fatalf("UpsertProject() error = %v", err)
		}

		projects, err := repo.ListProjects(user.ID)
		if err != nil {
			t.Fatalf("ListProjects() error = %v", err)
		}
		if len(projects) != 1 {
			t.Fatalf("got %d projects, want 1", len(projects))
		}
		if projects[0].Status != models.StatusCompleted || projects[0].WordCount != 10 {
			t.Errorf("unexpected project: %+v", projects[0])
		}

		count, err := repo.CountCompletedProjects(user.ID)
		if err != nil {
			t.Fatalf("CountCompletedProjects() error = %v", err)
		}
		if count != 1 {
			t.Errorf("completed count = %d, want 1", count)
		}
	})

	t.Run("one challenge per source project", func(t *testing.T) {
		c := &models.WritingChallenge{
			UserID:              user.ID,
			SourceProjectNumber: 1,
			ChallengeType:       "BONUS_CHALLENGE",
			Title:               "Quick Character Sketch",
			Prompt:              "Describe a character",
			Theme:               "adventure",
			WordGoal:            100,
			Level:               "Beginner",
		}
		if err := repo.CreateChallenge(c); err != nil {
			t.Fatalf("CreateChallenge() error = %v", err)
		}

		// Completing the project again must not mint a second challenge.
		dup := *c
		dup.Title = "Different Title"
		if err := repo.CreateChallenge(&dup); err != nil {
			t.Fatalf("CreateChallenge() duplicate error = %v", err)
		}

		got, err := repo.GetChallengeBySource(user.ID, 1)
		if err != nil {
			t.Fatalf("GetChallengeBySource() error = %v", err)
		}
		if got == nil || got.Title != "Quick Character Sketch" {
			t.Fatalf("unexpected challenge: %+v", got)
		}
		if got.Status != models.StatusInProgress {
			t.Errorf("status = %s, want IN_PROGRESS", got.Status)
		}

		now := time.Now()
		if err := repo.UpdateChallenge(user.ID, 1, "My answer text here", 4, models.StatusCompleted, &now); err != nil {
			t.Fatalf("UpdateChallenge() error = %v", err)
		}
		got, _ = repo.GetChallengeBySource(user.ID, 1)
		if got.WordCount != 4 || got.Status != models.StatusCompleted {
			t.Errorf("unexpected challenge after update: %+v", got)
		}
	})
}

func TestAchievementRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "achieve@example.com")
	repo := NewAchievementRepository(db)

	if err := repo.Unlock(user.ID, "first_steps"); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	// Idempotent.
	if err := repo.Unlock(user.ID, "first_steps"); err != nil {
		t.Fatalf("Unlock() repeat error = %v", err)
	}
	if err := repo.Unlock(user.ID, "week_warrior"); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	earned, err := repo.List(user.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(earned) != 2 {
		t.Fatalf("got %d achievements, want 2", len(earned))
	}

	set, err := repo.EarnedSet(user.ID)
	if err != nil {
		t.Fatalf("EarnedSet() error = %v", err)
	}
	if !set["first_steps"] || !set["week_warrior"] || set["word_wizard"] {
		t.Errorf("unexpected earned set: %+v", set)
	}
}

func TestBookmarkRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := testDB(t)
	user := createTestUser(t, db, "bookmark@example.com")
	repo := NewBookmarkRepository(db)

	if err := repo.Add(user.ID, "Spelling Patterns Guide", "https://example.com/patterns", "Guides"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := repo.Add(user.ID, "Spelling Patterns Guide", "https://example.com/patterns", "Guides"); err != nil {
		t.Fatalf("Add() repeat error = %v", err)
	}

	bookmarks, err := repo.List(user.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(bookmarks) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(bookmarks))
	}

	if err := repo.Remove(user.ID, "Spelling Patterns Guide"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	bookmarks, _ = repo.List(user.ID)
	if len(bookmarks) != 0 {
		t.Errorf("got %d bookmarks after remove, want 0", len(bookmarks))
	}
}
