package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spellquest/internal/config"
	"spellquest/internal/database"
	"spellquest/internal/handlers"
	"spellquest/internal/repository"
	"spellquest/internal/security"
	"spellquest/internal/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, progressRepo, cfg.SessionDuration)
	progressService := service.NewProgressService(db)
	diagnosticService := service.NewDiagnosticService(db, cfg.DiagnosticPhasePolicy)
	checkpointService := service.NewCheckpointService(db)
	exerciseService := service.NewExerciseService(db)
	writingService := service.NewWritingService(db)
	bookmarkService := service.NewBookmarkService(db)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	if emailService.IsEnabled() {
		log.Println("Email sending enabled")
	} else {
		log.Println("Email sending disabled (no SES_FROM_EMAIL configured)")
	}

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"facebook": {
			Name:  "facebook",
			Label: "Facebook",
			Config: &oauth2.Config{
				ClientID:     cfg.FacebookClientID,
				ClientSecret: cfg.FacebookClientSecret,
				Endpoint:     facebook.Endpoint,
				Scopes:       []string{"email", "public_profile"},
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		},
		"apple": {
			Name:  "apple",
			Label: "Apple",
			Config: &oauth2.Config{
				ClientID:     cfg.AppleClientID,
				ClientSecret: cfg.AppleClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://appleid.apple.com/auth/authorize",
					TokenURL: "https://appleid.apple.com/auth/token",
				},
				Scopes: []string{"name", "email"},
			},
			AuthParams: map[string]string{
				"response_mode": "query",
			},
		},
	}

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	limiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, limiter, csrf)
	authHandler := handlers.NewAuthHandler(authService, emailService, csrf, oauthProviders, cfg.OAuthRedirectBaseURL, cfg.AppBaseURL)
	progressHandler := handlers.NewProgressHandler(progressService, diagnosticService, exerciseService)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService)
	checkpointHandler := handlers.NewCheckpointHandler(checkpointService, emailService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)
	writingHandler := handlers.NewWritingHandler(writingService)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService)
	adminHandler := handlers.NewAdminHandler(userRepo, progressService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /healthz", handlers.Healthz)
	mux.HandleFunc("POST /api/signup", middleware.RateLimit(authHandler.Signup))
	mux.HandleFunc("POST /api/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/password-reset/request", middleware.RateLimit(authHandler.RequestPasswordReset))
	mux.HandleFunc("POST /api/password-reset/confirm", middleware.RateLimit(authHandler.ConfirmPasswordReset))
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Account routes
	mux.HandleFunc("GET /api/profile", middleware.RequireAuth(authHandler.GetProfile))
	mux.HandleFunc("PUT /api/profile", middleware.RequireAuth(middleware.CSRFProtect(authHandler.UpdateProfile)))
	mux.HandleFunc("PUT /api/profile/password", middleware.RequireAuth(middleware.CSRFProtect(authHandler.ChangePassword)))

	// Progress and daily activity routes
	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progressHandler.GetProgress))
	mux.HandleFunc("POST /api/daily-activity", middleware.RequireAuth(middleware.CSRFProtect(progressHandler.CompleteActivity)))
	mux.HandleFunc("GET /api/daily-activity", middleware.RequireAuth(progressHandler.GetActivityHistory))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(progressHandler.GetAchievements))

	// Diagnostic routes
	mux.HandleFunc("GET /api/diagnostic", middleware.RequireAuth(diagnosticHandler.GetDiagnostic))
	mux.HandleFunc("POST /api/diagnostic", middleware.RequireAuth(middleware.CSRFProtect(diagnosticHandler.SubmitDiagnostic)))
	mux.HandleFunc("GET /api/diagnostic/history", middleware.RequireAuth(diagnosticHandler.GetDiagnosticHistory))

	// Checkpoint routes
	mux.HandleFunc("GET /api/checkpoints", middleware.RequireAuth(checkpointHandler.GetCheckpoints))
	mux.HandleFunc("POST /api/checkpoints/start", middleware.RequireAuth(middleware.CSRFProtect(checkpointHandler.StartCheckpoint)))
	mux.HandleFunc("POST /api/checkpoints/submit", middleware.RequireAuth(middleware.CSRFProtect(checkpointHandler.SubmitCheckpoint)))

	// Exercise routes
	mux.HandleFunc("POST /api/exercises/start", middleware.RequireAuth(middleware.CSRFProtect(exerciseHandler.StartExercise)))
	mux.HandleFunc("POST /api/exercises/submit", middleware.RequireAuth(middleware.CSRFProtect(exerciseHandler.SubmitExercise)))
	mux.HandleFunc("POST /api/exercises/hint", middleware.RequireAuth(middleware.CSRFProtect(exerciseHandler.RequestHint)))
	mux.HandleFunc("GET /api/exercises/results", middleware.RequireAuth(exerciseHandler.GetExerciseResults))

	// Writing routes
	mux.HandleFunc("GET /api/writing/projects", middleware.RequireAuth(writingHandler.GetProjects))
	mux.HandleFunc("POST /api/writing/projects", middleware.RequireAuth(middleware.CSRFProtect(writingHandler.SaveProject)))
	mux.HandleFunc("GET /api/writing/challenges", middleware.RequireAuth(writingHandler.GetChallenges))
	mux.HandleFunc("POST /api/writing/challenges/{id}", middleware.RequireAuth(middleware.CSRFProtect(writingHandler.SaveChallenge)))

	// Bookmark routes
	mux.HandleFunc("GET /api/bookmarks", middleware.RequireAuth(bookmarkHandler.GetBookmarks))
	mux.HandleFunc("POST /api/bookmarks", middleware.RequireAuth(middleware.CSRFProtect(bookmarkHandler.SaveBookmark)))

	// Admin routes
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(adminHandler.ListUsers))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background cleanup of expired sessions and reset tokens
	go cleanupExpired(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// cleanupExpired periodically removes expired sessions and password
// reset tokens
func cleanupExpired(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}

		if err := authService.CleanupExpiredPasswordResetTokens(); err != nil {
			log.Printf("Error cleaning up expired reset tokens: %v", err)
		}
	}
}
