package curriculum

// Question types used across the diagnostic and checkpoint quizzes
const (
	QuestionSpelling       = "spelling"
	QuestionMultipleChoice = "multiple_choice"
	QuestionFillBlank      = "fill_blank"
)

// DiagnosticQuestion is one item of the fixed diagnostic bank
type DiagnosticQuestion struct {
	ID       int
	Part     string
	Type     string
	Prompt   string
	Options  []string
	Answers  []string
	Points   int
	Category string
}

// DiagnosticQuestions is the fixed 25-question assessment bank.
// Part subtotals: A=35, B=25, C=20, D=20, total 100 points.
var DiagnosticQuestions = []DiagnosticQuestion{
	// Part A: Phonetic Awareness
	{ID: 1, Part: "A", Type: QuestionSpelling, Prompt: "Spell this word: beautiful", Answers: []string{"beautiful"}, Points: 5, Category: "phonetic"},
	{ID: 2, Part: "A", Type: QuestionSpelling, Prompt: "Spell this word: receive", Answers: []string{"receive"}, Points: 5, Category: "phonetic"},
	{ID: 3, Part: "A", Type: QuestionSpelling, Prompt: "Spell this word: separate", Answers: []string{"separate"}, Points: 5, Category: "phonetic"},
	{ID: 4, Part: "A", Type: QuestionSpelling, Prompt: "Spell this word: believe", Answers: []string{"believe"}, Points: 5, Category: "phonetic"},
	{ID: 5, Part: "A", Type: QuestionSpelling, Prompt: "Spell this word: beginning", Answers: []string{"beginning"}, Points: 5, Category: "phonetic"},
	{ID: 6, Part: "A", Type: QuestionFillBlank, Prompt: "Add '-ed' to 'play'", Answers: []string{"played"}, Points: 5, Category: "morphophonemic"},
	{ID: 7, Part: "A", Type: QuestionFillBlank, Prompt: "Add '-ed' to 'cry'", Answers: []string{"cried"}, Points: 5, Category: "morphophonemic"},
	// Part B: Spelling Rules Knowledge
	{ID: 8, Part: "B", Type: QuestionFillBlank, Prompt: "What happens when you add '-ing' to 'make'?", Answers: []string{"making"}, Points: 5, Category: "rules"},
	{ID: 9, Part: "B", Type: QuestionFillBlank, Prompt: "I before E except after ___ (fill in the letter)", Answers: []string{"c", "C"}, Points: 5, Category: "rules"},
	{ID: 10, Part: "B", Type: QuestionMultipleChoice, Prompt: "Choose the correct spelling:", Options: []string{"accross", "across"}, Answers: []string{"across"}, Points: 5, Category: "rules"},
	{ID: 11, Part: "B", Type: QuestionMultipleChoice, Prompt: "Choose the correct spelling:", Options: []string{"occured", "occurred"}, Answers: []string{"occurred"}, Points: 5, Category: "rules"},
	{ID: 12, Part: "B", Type: QuestionMultipleChoice, Prompt: "Choose the correct spelling:", Options: []string{"untill", "until"}, Answers: []string{"until"}, Points: 5, Category: "rules"},
	// Part C: Context and Application
	{ID: 13, Part: "C", Type: QuestionMultipleChoice, Prompt: "'She gave me a nice ___' (kind words)", Options: []string{"compliment", "complement"}, Answers: []string{"compliment"}, Points: 3, Category: "homophones"},
	{ID: 14, Part: "C", Type: QuestionMultipleChoice, Prompt: "'The colors ___ each other' (go well together)", Options: []string{"compliment", "complement"}, Answers: []string{"complement"}, Points: 3, Category: "homophones"},
	{ID: 15, Part: "C", Type: QuestionSpelling, Prompt: "Spell this word correctly: charactor (character in a story)", Answers: []string{"character"}, Points: 3, Category: "vocabulary"},
	{ID: 16, Part: "C", Type: QuestionSpelling, Prompt: "Spell this word correctly: favorit (something you like best)", Answers: []string{"favorite"}, Points: 3, Category: "vocabulary"},
	{ID: 17, Part: "C", Type: QuestionSpelling, Prompt: "Spell this word correctly: achived (reached a goal)", Answers: []string{"achieved"}, Points: 2, Category: "vocabulary"},
	{ID: 18, Part: "C", Type: QuestionSpelling, Prompt: "Spell this word correctly: oponent (someone you compete against)", Answers: []string{"opponent"}, Points: 2, Category: "vocabulary"},
	{ID: 19, Part: "C", Type: QuestionMultipleChoice, Prompt: "Choose the correct spelling:", Options: []string{"tommorow", "tomorrow"}, Answers: []string{"tomorrow"}, Points: 2, Category: "rules"},
	{ID: 20, Part: "C", Type: QuestionFillBlank, Prompt: "Form the plural of 'tooth'", Answers: []string{"teeth"}, Points: 2, Category: "plurals"},
	// Part D: Creative Writing Vocabulary
	{ID: 21, Part: "D", Type: QuestionSpelling, Prompt: "Spell this literary term: protagonist (main character)", Answers: []string{"protagonist"}, Points: 5, Category: "literary"},
	{ID: 22, Part: "D", Type: QuestionSpelling, Prompt: "Spell this descriptive word: mysterious", Answers: []string{"mysterious"}, Points: 4, Category: "descriptive"},
	{ID: 23, Part: "D", Type: QuestionSpelling, Prompt: "Spell this descriptive word: courageous", Answers: []string{"courageous"}, Points: 4, Category: "descriptive"},
	{ID: 24, Part: "D", Type: QuestionSpelling, Prompt: "Spell this sports word: tournament", Answers: []string{"tournament"}, Points: 4, Category: "vocabulary"},
	{ID: 25, Part: "D", Type: QuestionFillBlank, Prompt: "Form the plural of 'crisis'", Answers: []string{"crises"}, Points: 3, Category: "plurals"},
}

// DiagnosticMaxScore is the sum of all question points
const DiagnosticMaxScore = 100
