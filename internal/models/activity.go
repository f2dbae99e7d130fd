package models

import "time"

// Activity segment identifiers
const (
	SegmentVisual      = "visual"
	SegmentAuditory    = "auditory"
	SegmentKinesthetic = "kinesthetic"
)

// DailyActivity records study segments for one user on one calendar day.
// ActivityDate is stored as YYYY-MM-DD in the user's local day.
type DailyActivity struct {
	ID                   int64
	UserID               int64
	ActivityDate         string
	PhaseNumber          int
	VisualCompleted      bool
	AuditoryCompleted    bool
	KinestheticCompleted bool
	TotalMinutes         int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SegmentCompleted reports whether the named segment is already done
func (a *DailyActivity) SegmentCompleted(segment string) bool {
	switch segment {
	case SegmentVisual:
		return a.VisualCompleted
	case SegmentAuditory:
		return a.AuditoryCompleted
	case SegmentKinesthetic:
		return a.KinestheticCompleted
	default:
		return false
	}
}

// AllSegmentsCompleted reports whether every segment is done for the day
func (a *DailyActivity) AllSegmentsCompleted() bool {
	return a.VisualCompleted && a.AuditoryCompleted && a.KinestheticCompleted
}
