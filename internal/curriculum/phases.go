package curriculum

// Phase describes one block of the six-phase curriculum
type Phase struct {
	PhaseNumber   int
	Title         string
	Description   string
	KeyConcepts   []string
	TotalSessions int
	Weeks         string
}

// Phases holds the curriculum outline shown on the dashboard
var Phases = []Phase{
	{
		PhaseNumber: 1,
		Title:       "Phonics Foundation Review",
		Description: "Master sound-symbol correspondence and basic syllable types",
		KeyConcepts: []string{
			"Short and long vowel sounds in context",
			"Consonant blends (bl-, str-, -nd, -nch)",
			"Consonant digraphs (sh, ch, th, ph, wh)",
			"R-controlled vowels (ar, er, ir, or, ur)",
			"Syllable division patterns (VC/CV, V/CV, VC/V)",
			"Basic prefixes (un-, re-, pre-) and suffixes (-s, -es, -ing, -ed)",
		},
		TotalSessions: 20,
		Weeks:         "Weeks 1-4",
	},
	{
		PhaseNumber: 2,
		Title:       "Common Spelling Patterns",
		Description: "Master common spelling patterns and word families",
		KeyConcepts: []string{
			"Drop-e rule (take -> taking, hope -> hoping)",
			"Doubling rule (run -> running, big -> bigger)",
			"Change-y-to-i rule (try -> tried, happy -> happiest)",
			"Plural formation rules (regular, -es, -ies, irregular)",
			"Common word families (-ight, -ought, -ough, -tion, -sion)",
			"Prefixes: dis-, mis-, non-, over-, sub-, inter-",
		},
		TotalSessions: 30,
		Weeks:         "Weeks 5-10",
	},
	{
		PhaseNumber: 3,
		Title:       "Irregular Words & Exceptions",
		Description: "Master high-frequency irregular words and silent letters",
		KeyConcepts: []string{
			"Silent letters: k (knife), w (write), g (gnaw), b (thumb)",
			"Irregular high-frequency words: colonel, necessary, rhythm, Wednesday",
			"Foreign borrowings: ballet, cafe, karate, tsunami",
			"I before E rule: receive, believe, ceiling, weird",
			"Assimilated prefixes: ad- (accomplish), in- (illegal)",
		},
		TotalSessions: 30,
		Weeks:         "Weeks 11-16",
	},
	{
		PhaseNumber: 4,
		Title:       "Homophones & Confusing Words",
		Description: "Distinguish between common homophones through context",
		KeyConcepts: []string{
			"Common homophones: their/there/they're, your/you're, to/too/two, its/it's",
			"6th-grade homophones: compliment/complement, capitol/capital, principal/principle",
			"Confusing word pairs: accept/except, desert/dessert, loose/lose",
			"Context-dependent spelling: lead vs. led, read vs. read",
		},
		TotalSessions: 25,
		Weeks:         "Weeks 17-21",
	},
	{
		PhaseNumber: 5,
		Title:       "Advanced Vocabulary & Academic Words",
		Description: "Master Greek and Latin roots for vocabulary expansion",
		KeyConcepts: []string{
			"Greek roots: tele- (telephone), photo- (photograph), bio- (biography)",
			"Latin roots: script (manuscript), dict (dictionary), port (transport)",
			"Academic vocabulary: analysis, evaluate, synthesize, hypothesis",
			"Content-area words: ecosystem, democracy, equation, metaphor",
		},
		TotalSessions: 25,
		Weeks:         "Weeks 22-26",
	},
	{
		PhaseNumber: 6,
		Title:       "Creative Writing Mastery",
		Description: "Apply all learned spelling skills in creative writing contexts",
		KeyConcepts: []string{
			"Literary terminology: protagonist, antagonist, exposition, foreshadowing",
			"Descriptive vocabulary: luminous, melodious, velvety, exasperated",
			"Dialogue tags: exclaimed, murmured, interrupted, hesitated",
			"Genre-specific vocabulary: fantasy, mystery, sci-fi",
		},
		TotalSessions: 20,
		Weeks:         "Weeks 27-30",
	},
}
