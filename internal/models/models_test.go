package models

import (
	"testing"
	"time"
)

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"future expiry", time.Now().Add(time.Hour), false},
		{"past expiry", time.Now().Add(-time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{ExpiresAt: tt.expiresAt}
			if got := s.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleStudent, false},
		{RoleParent, false},
		{RoleTeacher, false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			u := &User{Role: tt.role}
			if got := u.IsAdmin(); got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDailyActivitySegments(t *testing.T) {
	a := &DailyActivity{VisualCompleted: true, AuditoryCompleted: true}

	t.Run("SegmentCompleted", func(t *testing.T) {
		if !a.SegmentCompleted(SegmentVisual) {
			t.Error("Expected visual segment completed")
		}
		if a.SegmentCompleted(SegmentKinesthetic) {
			t.Error("Expected kinesthetic segment not completed")
		}
		if a.SegmentCompleted("bogus") {
			t.Error("Unknown segment should report not completed")
		}
	})

	t.Run("AllSegmentsCompleted", func(t *testing.T) {
		if a.AllSegmentsCompleted() {
			t.Error("Expected not all segments completed")
		}
		a.KinestheticCompleted = true
		if !a.AllSegmentsCompleted() {
			t.Error("Expected all segments completed")
		}
	})
}
