package validation

import (
	"fmt"
	"regexp"
	"strings"

	"spellquest/internal/curriculum"
	"spellquest/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateRole checks if a role is one of the known account roles
func ValidateRole(role string) error {
	switch role {
	case models.RoleStudent, models.RoleParent, models.RoleTeacher, models.RoleAdmin:
		return nil
	}
	return ValidationError{Field: "role", Message: "invalid role"}
}

// ValidatePhase checks that a curriculum phase number is in range
func ValidatePhase(phase int) error {
	if phase < 1 || phase > curriculum.PhaseCount {
		return ValidationError{Field: "phase", Message: fmt.Sprintf("phase must be between 1 and %d", curriculum.PhaseCount)}
	}
	return nil
}
