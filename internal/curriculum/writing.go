package curriculum

// Skill levels derived from the user's current phase
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Challenge type categories, cycled by completed project number
const (
	ChallengeBonus     = "BONUS_CHALLENGE"
	ChallengeExtension = "CREATIVE_EXTENSION"
	ChallengeThemed    = "THEMED_CHALLENGE"
	ChallengeSkill     = "SKILL_BUILDER"
)

// ChallengeTypes in rotation order
var ChallengeTypes = []string{ChallengeBonus, ChallengeExtension, ChallengeThemed, ChallengeSkill}

// Themes rotated across generated challenges
var Themes = []string{"sports", "gaming", "anime", "fantasy", "science", "adventure", "mystery", "comedy"}

// ProjectTemplate is one of the twenty structured writing projects
type ProjectTemplate struct {
	ProjectNumber int
	Title         string
	Objective     string
	SpellingFocus string
	Phase         string
	Level         string
}

// WritingProjects is the fixed project catalogue, ordered by difficulty
var WritingProjects = []ProjectTemplate{
	{ProjectNumber: 1, Title: "Sports Trading Cards Collection", Objective: "Create trading cards for favorite athletes with accurate spelling of names, teams, and statistics.", SpellingFocus: "Proper nouns, sports vocabulary, past tense verbs", Phase: "1-2", Level: LevelBeginner},
	{ProjectNumber: 2, Title: "Game Controls Instruction Manual", Objective: "Write an instruction manual for a favorite video game with accurate spelling.", SpellingFocus: "Command verbs, gaming vocabulary", Phase: "1-2", Level: LevelBeginner},
	{ProjectNumber: 3, Title: "Anime Character Name Tag Design", Objective: "Create name tags for 8 anime characters with character traits.", SpellingFocus: "Adjectives, character trait vocabulary", Phase: "1-2", Level: LevelBeginner},
	{ProjectNumber: 4, Title: "Cartoon Episode Summary", Objective: "Write plot summaries for 5 favorite cartoon episodes.", SpellingFocus: "Sequence words, action verbs, plot vocabulary", Phase: "2", Level: LevelBeginner},
	{ProjectNumber: 5, Title: "Sports Play-by-Play Commentary", Objective: "Write a sports commentary for a real or imagined game.", SpellingFocus: "Present tense verbs, sports terminology, transition words", Phase: "2", Level: LevelBeginner},
	{ProjectNumber: 6, Title: "Video Game Review Blog", Objective: "Write a 250-word game review with correct spelling and homophone usage.", SpellingFocus: "Homophones, descriptive vocabulary, irregular words", Phase: "3-4", Level: LevelIntermediate},
	{ProjectNumber: 7, Title: "Anime Character Profile Database", Objective: "Create detailed profiles for 6 anime characters.", SpellingFocus: "Descriptive adjectives, irregular plurals, foreign borrowings", Phase: "3-4", Level: LevelIntermediate},
	{ProjectNumber: 8, Title: "Sports Hall of Fame Induction Speech", Objective: "Write a 200-word induction speech for a favorite athlete.", SpellingFocus: "Silent letters, irregular words, formal vocabulary", Phase: "3-4", Level: LevelIntermediate},
	{ProjectNumber: 9, Title: "Game Strategy Guide", Objective: "Create a comprehensive strategy guide for a favorite game.", SpellingFocus: "Command forms, sequence words, gaming vocabulary", Phase: "3-4", Level: LevelIntermediate},
	{ProjectNumber: 10, Title: "Cartoon Crossover Story", Objective: "Write a creative 300-word story featuring characters from 2 different cartoons.", SpellingFocus: "Homophones, dialogue punctuation, creative vocabulary", Phase: "4", Level: LevelIntermediate},
	{ProjectNumber: 11, Title: "E-Sports Tournament Report", Objective: "Write a journalistic report on a real or fictional e-sports tournament.", SpellingFocus: "Academic words, gaming terminology, Greek/Latin roots", Phase: "5", Level: LevelAdvanced},
	{ProjectNumber: 12, Title: "Anime Series Analysis Essay", Objective: "Write a 400-word analytical essay about themes in a favorite anime.", SpellingFocus: "Literary terms, academic vocabulary, complex words", Phase: "5-6", Level: LevelAdvanced},
	{ProjectNumber: 13, Title: "Sports Science Article", Objective: "Write an educational article explaining the science behind a sport.", SpellingFocus: "Scientific vocabulary, academic terms, Greek/Latin roots", Phase: "5", Level: LevelAdvanced},
	{ProjectNumber: 14, Title: "Original Game Design Document", Objective: "Create a comprehensive design document for an original video game concept.", SpellingFocus: "Technical vocabulary, creative descriptive words", Phase: "5-6", Level: LevelAdvanced},
	{ProjectNumber: 15, Title: "Anime Episode Script", Objective: "Write a complete script for an original 5-minute anime episode.", SpellingFocus: "Literary terms, dialogue tags, descriptive language", Phase: "6", Level: LevelAdvanced},
	{ProjectNumber: 16, Title: "Sports Commentary Podcast Script", Objective: "Write a 500-word podcast script analyzing a famous sports moment.", SpellingFocus: "Advanced descriptive vocabulary, Greek/Latin roots", Phase: "6", Level: LevelAdvanced},
	{ProjectNumber: 17, Title: "Game Review Comparison Article", Objective: "Write a comparative analysis of 3 games in the same genre.", SpellingFocus: "Comparative language, technical vocabulary", Phase: "6", Level: LevelAdvanced},
	{ProjectNumber: 18, Title: "Cartoon Animation Storyboard", Objective: "Create a storyboard with detailed written descriptions for a short cartoon.", SpellingFocus: "Cinematic vocabulary, action verbs, descriptive language", Phase: "6", Level: LevelAdvanced},
	{ProjectNumber: 19, Title: "Fantasy Sports Team Report", Objective: "Write a professional report analyzing fantasy sports team performance.", SpellingFocus: "Statistical vocabulary, analytical terms", Phase: "5-6", Level: LevelAdvanced},
	{ProjectNumber: 20, Title: "My Gaming Journey", Objective: "Create a comprehensive multimedia presentation about personal gaming history.", SpellingFocus: "Narrative vocabulary, reflective language, literary devices", Phase: "6", Level: LevelAdvanced},
}

// ChallengeTemplate is a generated-challenge blueprint; the base word
// goal is scaled by the user's skill level at generation time.
type ChallengeTemplate struct {
	Title         string
	Prompt        string
	SpellingFocus string
	WordGoal      int
}

// ChallengeTemplates maps each challenge type to its three templates
var ChallengeTemplates = map[string][]ChallengeTemplate{
	ChallengeBonus: {
		{Title: "Quick Character Sketch", Prompt: "Create a detailed character description in exactly 100 words. Every word counts! Describe a character from your favorite show or invent one from scratch.", SpellingFocus: "Descriptive adjectives and character trait vocabulary", WordGoal: 100},
		{Title: "Six-Word Story Challenge", Prompt: "Hemingway once wrote a story in just six words. Now write TEN six-word stories! Each one should tell a complete tale.", SpellingFocus: "Word choice and precise vocabulary", WordGoal: 60},
		{Title: "Plot Twist Master", Prompt: "Write a short scene that ends with a jaw-dropping plot twist! Set up expectations, then flip everything upside down.", SpellingFocus: "Narrative vocabulary and transition words", WordGoal: 200},
	},
	ChallengeExtension: {
		{Title: "Alternate Ending Writer", Prompt: "Choose a story you know and write a completely different ending! What if the hero lost? What if the villain won? What if there was a third option?", SpellingFocus: "Narrative vocabulary and story structure words", WordGoal: 250},
		{Title: "Letter from a Character", Prompt: "Write a letter from one character to another. Maybe it's an apology, a confession, a warning, or a farewell. What would they say?", SpellingFocus: "Formal writing and emotional vocabulary", WordGoal: 200},
		{Title: "Scene from Another Perspective", Prompt: "Take a famous scene and rewrite it from a different character's point of view. The villain, the sidekick, or even an object in the room!", SpellingFocus: "Perspective vocabulary and descriptive language", WordGoal: 300},
	},
	ChallengeThemed: {
		{Title: "Weather Writer", Prompt: "The weather isn't just background - it's a character! Write a story where weather plays a crucial role. Storm, sunshine, fog, or snow - make it matter!", SpellingFocus: "Weather vocabulary and atmospheric descriptions", WordGoal: 250},
		{Title: "Time Traveler's Diary", Prompt: "You've discovered a time machine! Write diary entries from your journeys to 3 different time periods. What do you see? What goes wrong?", SpellingFocus: "Historical vocabulary and time-related words", WordGoal: 300},
		{Title: "Monster Creator", Prompt: "Design your own original monster! Describe its appearance, habitat, abilities, weaknesses, and write a short encounter story featuring it.", SpellingFocus: "Descriptive vocabulary and creature terminology", WordGoal: 350},
	},
	ChallengeSkill: {
		{Title: "Dialogue Duel", Prompt: "Write a conversation between two characters who disagree about something important. No narration allowed - ONLY dialogue! Show their personalities through how they speak.", SpellingFocus: "Dialogue punctuation and speech vocabulary", WordGoal: 200},
		{Title: "Show Don't Tell Challenge", Prompt: "Describe these emotions WITHOUT naming them: anger, fear, joy, sadness, love. Show us through actions, physical sensations, and metaphors.", SpellingFocus: "Emotion vocabulary and sensory words", WordGoal: 250},
		{Title: "World Builder", Prompt: "Create a completely original world! Describe its geography, climate, creatures, cultures, and one major conflict. Make readers want to visit (or avoid) this place!", SpellingFocus: "Geographic and cultural vocabulary", WordGoal: 400},
	},
}
