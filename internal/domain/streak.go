package domain

import (
	"time"
)

// SegmentMinutes is the fixed study credit for one completed segment
const SegmentMinutes = 10

// DateLayout is the canonical YYYY-MM-DD form used for activity days
const DateLayout = "2006-01-02"

// StreakUpdate is the result of applying one day's activity to the
// user's streak counters.
type StreakUpdate struct {
	CurrentStreak int
	LongestStreak int
	MinutesDelta  int
	FirstActivity bool
}

// AdvanceStreak computes the new streak given the user's last active
// day (YYYY-MM-DD, empty when never active), today's date, and whether
// the completed segment is new for today. Minutes are credited only
// for a new segment, making repeated completions commutative.
func AdvanceStreak(lastActiveDate string, today time.Time, currentStreak, longestStreak int, newSegment bool) StreakUpdate {
	update := StreakUpdate{CurrentStreak: currentStreak, LongestStreak: longestStreak}

	todayMidnight := truncateToDay(today)

	if lastActiveDate == "" {
		update.CurrentStreak = 1
		update.FirstActivity = true
	} else if last, err := time.ParseInLocation(DateLayout, lastActiveDate, today.Location()); err == nil {
		diffDays := int(todayMidnight.Sub(truncateToDay(last)).Hours() / 24)
		switch {
		case diffDays == 0:
			// already active today, streak unchanged
		case diffDays == 1:
			update.CurrentStreak = currentStreak + 1
		default:
			update.CurrentStreak = 1
		}
	} else {
		// unparseable stored date, treat as a fresh start
		update.CurrentStreak = 1
	}

	if update.CurrentStreak > update.LongestStreak {
		update.LongestStreak = update.CurrentStreak
	}

	if newSegment {
		update.MinutesDelta = SegmentMinutes
	}

	return update
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
