package models

import "time"

// User roles
const (
	RoleStudent = "STUDENT"
	RoleParent  = "PARENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

// User represents an account in the system
type User struct {
	ID            int64
	Email         string
	PasswordHash  string
	Name          string
	Role          string
	OAuthProvider string
	OAuthSubject  string
	AvatarID      string
	ThemeColor    string
	Title         string
	Bio           string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session represents an authenticated session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// PasswordResetToken represents a token for password reset
type PasswordResetToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
	Used      bool
}

// IsExpired checks if the reset token has expired
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
