package handlers

import (
	"log"
	"net/http"

	"spellquest/internal/models"
	"spellquest/internal/security"
	"spellquest/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService          *service.AuthService
	emailService         *service.EmailService
	csrf                 *security.CSRFGenerator
	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
	appBaseURL           string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, emailService *service.EmailService, csrf *security.CSRFGenerator, oauthProviders map[string]OAuthProvider, oauthRedirectBaseURL, appBaseURL string) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		emailService:         emailService,
		csrf:                 csrf,
		oauthProviders:       oauthProviders,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
		appBaseURL:           appBaseURL,
	}
}

// userView is the account shape returned to clients
type userView struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	AvatarID   string `json:"avatarId"`
	ThemeColor string `json:"themeColor"`
	Title      string `json:"title"`
	Bio        string `json:"bio"`
}

func toUserView(user *models.User) userView {
	return userView{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		AvatarID:   user.AvatarID,
		ThemeColor: user.ThemeColor,
		Title:      user.Title,
		Bio:        user.Bio,
	}
}

// startSession sets the session cookie and returns the CSRF token for
// the new session
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, session *models.Session) string {
	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	token, err := h.csrf.GenerateToken(session.ID)
	if err != nil {
		log.Printf("Failed to generate CSRF token: %v", err)
	}
	return token
}

// Signup handles account creation
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if h.emailService != nil && h.emailService.IsEnabled() {
		if err := h.emailService.SendWelcomeEmail(r.Context(), user.Email, user.Name); err != nil {
			log.Printf("Failed to send welcome email: %v", err)
		}
	}

	session, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		// Account exists but auto-login failed; the client can log in
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"user":    toUserView(user),
		})
		return
	}
	csrfToken := h.startSession(w, r, session)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":   true,
		"user":      toUserView(user),
		"csrfToken": csrfToken,
	})
}

// Login handles credential sign-in
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	csrfToken := h.startSession(w, r, session)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"user":      toUserView(user),
		"csrfToken": csrfToken,
	})
}

// Logout invalidates the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		_ = h.authService.Logout(cookie.Value)
	}
	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// GetProfile returns the authenticated user's account
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{"user": toUserView(user)})
}

// UpdateProfile applies a partial profile update
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		Name       *string `json:"name"`
		AvatarID   *string `json:"avatarId"`
		ThemeColor *string `json:"themeColor"`
		Title      *string `json:"title"`
		Bio        *string `json:"bio"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.authService.UpdateProfile(user.ID, service.ProfileUpdate{
		Name:       req.Name,
		AvatarID:   req.AvatarID,
		ThemeColor: req.ThemeColor,
		Title:      req.Title,
		Bio:        req.Bio,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    toUserView(updated),
	})
}

// ChangePassword verifies the current password and replaces it
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// RequestPasswordReset issues a reset token and emails it to the user.
// The response never reveals whether the address exists.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), h.emailService, req.Email); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Password reset request failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "If an account exists for that address, a reset link has been sent",
	})
}

// ConfirmPasswordReset consumes a reset token and sets a new password
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Healthz reports service liveness
func Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}
