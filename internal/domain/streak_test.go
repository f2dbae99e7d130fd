package domain

import (
	"testing"
	"time"
)

func TestAdvanceStreak(t *testing.T) {
	today := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		lastActiveDate string
		currentStreak  int
		longestStreak  int
		newSegment     bool
		wantStreak     int
		wantLongest    int
		wantMinutes    int
		wantFirst      bool
	}{
		{
			name:           "first ever activity",
			lastActiveDate: "",
			newSegment:     true,
			wantStreak:     1,
			wantLongest:    1,
			wantMinutes:    10,
			wantFirst:      true,
		},
		{
			name:           "same day keeps streak",
			lastActiveDate: "2026-01-15",
			currentStreak:  4,
			longestStreak:  6,
			newSegment:     true,
			wantStreak:     4,
			wantLongest:    6,
			wantMinutes:    10,
		},
		{
			name:           "consecutive day extends streak",
			lastActiveDate: "2026-01-14",
			currentStreak:  4,
			longestStreak:  6,
			newSegment:     true,
			wantStreak:     5,
			wantLongest:    6,
			wantMinutes:    10,
		},
		{
			name:           "extending past longest raises longest",
			lastActiveDate: "2026-01-14",
			currentStreak:  6,
			longestStreak:  6,
			newSegment:     true,
			wantStreak:     7,
			wantLongest:    7,
			wantMinutes:    10,
		},
		{
			name:           "gap resets streak",
			lastActiveDate: "2026-01-12",
			currentStreak:  9,
			longestStreak:  9,
			newSegment:     true,
			wantStreak:     1,
			wantLongest:    9,
			wantMinutes:    10,
		},
		{
			name:           "repeated segment credits no minutes",
			lastActiveDate: "2026-01-15",
			currentStreak:  2,
			longestStreak:  3,
			newSegment:     false,
			wantStreak:     2,
			wantLongest:    3,
			wantMinutes:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceStreak(tt.lastActiveDate, today, tt.currentStreak, tt.longestStreak, tt.newSegment)
			if got.CurrentStreak != tt.wantStreak {
				t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, tt.wantStreak)
			}
			if got.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", got.LongestStreak, tt.wantLongest)
			}
			if got.MinutesDelta != tt.wantMinutes {
				t.Errorf("MinutesDelta = %d, want %d", got.MinutesDelta, tt.wantMinutes)
			}
			if got.FirstActivity != tt.wantFirst {
				t.Errorf("FirstActivity = %v, want %v", got.FirstActivity, tt.wantFirst)
			}
			if got.LongestStreak < got.CurrentStreak {
				t.Error("LongestStreak must never be below CurrentStreak")
			}
		})
	}
}
