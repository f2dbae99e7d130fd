package curriculum

// Achievement identifiers awarded by the progress evaluator
const (
	AchievementFirstSession       = "first_session"
	AchievementWeekStreak3        = "week_streak_3"
	AchievementWeekStreak7        = "week_streak_7"
	AchievementWords25            = "words_25"
	AchievementWords50            = "words_50"
	AchievementWords100           = "words_100"
	AchievementPerfectScore       = "perfect_score"
	AchievementAccuracy90         = "accuracy_90"
	AchievementHours10            = "hours_10"
	AchievementWritingProject1    = "writing_project_1"
	AchievementWritingProject5    = "writing_project_5"
	AchievementDiagnosticComplete = "diagnostic_complete"
)

// Achievement describes a single badge definition
type Achievement struct {
	ID          string
	Title       string
	Description string
	IconName    string
	Category    string
	Requirement string
	Threshold   int
}

// Achievements is the full badge catalogue shown on the achievements page
var Achievements = []Achievement{
	{ID: AchievementFirstSession, Title: "Getting Started", Description: "Complete your first study session", IconName: "Rocket", Category: "milestones", Requirement: "Complete 1 session", Threshold: 1},
	{ID: AchievementWeekStreak3, Title: "Hot Streak", Description: "Study 3 days in a row", IconName: "Flame", Category: "streaks", Requirement: "3 day streak", Threshold: 3},
	{ID: AchievementWeekStreak7, Title: "On Fire!", Description: "Study 7 days in a row", IconName: "Fire", Category: "streaks", Requirement: "7 day streak", Threshold: 7},
	{ID: AchievementWords25, Title: "Word Collector", Description: "Master 25 words", IconName: "BookOpen", Category: "vocabulary", Requirement: "Master 25 words", Threshold: 25},
	{ID: AchievementWords50, Title: "Vocabulary Builder", Description: "Master 50 words", IconName: "Library", Category: "vocabulary", Requirement: "Master 50 words", Threshold: 50},
	{ID: AchievementWords100, Title: "Word Wizard", Description: "Master 100 words", IconName: "Wand2", Category: "vocabulary", Requirement: "Master 100 words", Threshold: 100},
	{ID: "phase_1_complete", Title: "Foundation Master", Description: "Complete Phase 1", IconName: "Medal", Category: "phases", Requirement: "Complete Phase 1", Threshold: 1},
	{ID: "phase_2_complete", Title: "Pattern Pro", Description: "Complete Phase 2", IconName: "Puzzle", Category: "phases", Requirement: "Complete Phase 2", Threshold: 1},
	{ID: "phase_3_complete", Title: "Exception Expert", Description: "Complete Phase 3", IconName: "Sparkles", Category: "phases", Requirement: "Complete Phase 3", Threshold: 1},
	{ID: "phase_4_complete", Title: "Homophone Hero", Description: "Complete Phase 4", IconName: "Swords", Category: "phases", Requirement: "Complete Phase 4", Threshold: 1},
	{ID: "phase_5_complete", Title: "Academic Ace", Description: "Complete Phase 5", IconName: "GraduationCap", Category: "phases", Requirement: "Complete Phase 5", Threshold: 1},
	{ID: "phase_6_complete", Title: "Creative Champion", Description: "Complete Phase 6", IconName: "Trophy", Category: "phases", Requirement: "Complete Phase 6", Threshold: 1},
	{ID: AchievementPerfectScore, Title: "Perfect!", Description: "Get 100% on any exercise", IconName: "Star", Category: "accuracy", Requirement: "100% accuracy", Threshold: 1},
	{ID: AchievementWritingProject1, Title: "Creative Writer", Description: "Complete your first writing project", IconName: "Pencil", Category: "writing", Requirement: "Complete 1 project", Threshold: 1},
	{ID: AchievementWritingProject5, Title: "Author in Training", Description: "Complete 5 writing projects", IconName: "BookText", Category: "writing", Requirement: "Complete 5 projects", Threshold: 5},
	{ID: AchievementDiagnosticComplete, Title: "Diagnosed!", Description: "Complete the diagnostic assessment", IconName: "ClipboardCheck", Category: "milestones", Requirement: "Complete diagnostic", Threshold: 1},
	{ID: AchievementAccuracy90, Title: "Sharp Speller", Description: "Achieve 90% overall accuracy", IconName: "Target", Category: "accuracy", Requirement: "90% accuracy", Threshold: 90},
	{ID: AchievementHours10, Title: "Dedicated Learner", Description: "Study for 10 hours total", IconName: "Clock", Category: "time", Requirement: "10 hours", Threshold: 600},
}

// PhaseCompleteAchievementID returns the badge id awarded when a phase
// checkpoint is passed.
func PhaseCompleteAchievementID(phase int) string {
	switch phase {
	case 1:
		return "phase_1_complete"
	case 2:
		return "phase_2_complete"
	case 3:
		return "phase_3_complete"
	case 4:
		return "phase_4_complete"
	case 5:
		return "phase_5_complete"
	case 6:
		return "phase_6_complete"
	default:
		return ""
	}
}

// AchievementByID looks up a badge definition
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
