package curriculum

// PhaseCount is the number of curriculum phases
const PhaseCount = 6

// PhaseWords maps a phase number (1-6) to its practice word list
var PhaseWords = map[int][]string{
	1: {
		"sprint", "strength", "splash", "shrink", "prompt", "twelfth", "sketch", "flake", "drone", "shrine",
		"basket", "picnic", "robot", "compete", "respond", "burger", "squirrel", "explore", "emergency", "territory",
	},
	2: {
		"making", "hoping", "creating", "usable", "running", "biggest", "occurred", "traveler", "tried", "happiness",
		"beautiful", "studied", "foxes", "babies", "churches", "leaves", "heroes", "reefs", "shelves", "mice",
		"disagreement", "uncomfortable", "nonexistent", "overreaction", "subtraction", "intercontinental", "meaningful", "fearlessly", "hopelessness",
	},
	3: {
		"knowledge", "wrestle", "gnome", "psychology", "solemn", "salmon", "receipt", "scissors", "mortgage", "handsome",
		"necessary", "recommend", "occasion", "restaurant", "accommodate", "calendar", "colonel", "rhythm", "Wednesday", "Arctic",
		"receive", "believe", "weird", "neighbor", "ceiling", "achieve", "seizure", "freight",
	},
	4: {
		"their", "there", "they're", "your", "you're", "its", "it's", "to", "too", "two",
		"whose", "who's", "compliment", "complement", "capitol", "capital", "stationary", "stationery", "principal", "principle",
		"accept", "except", "desert", "dessert", "loose", "lose", "breath", "breathe", "advice", "advise",
	},
	5: {
		"telephone", "television", "photograph", "biography", "psychology", "automatic", "microscope", "thermometer", "manuscript", "dictionary",
		"interrupt", "transportation", "construction", "submarine", "analysis", "evaluate", "synthesize", "hypothesis", "perspective", "significant",
		"contemporary", "legitimate", "demonstrate", "fundamental", "ecosystem", "democracy", "equation", "civilization", "architecture", "atmosphere",
	},
	6: {
		"protagonist", "antagonist", "exposition", "foreshadowing", "flashback", "metaphor", "simile", "personification", "alliteration", "onomatopoeia",
		"ferocious", "luminous", "treacherous", "spectacular", "mysterious", "courageous", "melancholy", "exasperated", "triumphant", "ominous",
		"whispered", "exclaimed", "interrupted", "murmured", "declared", "sorcerer", "enchanted", "galaxy", "android", "dimension",
	},
}

// WordsForPhase returns the word list for a phase, clamping out-of-range
// phases to the nearest valid one.
func WordsForPhase(phase int) []string {
	if phase < 1 {
		phase = 1
	}
	if phase > PhaseCount {
		phase = PhaseCount
	}
	return PhaseWords[phase]
}

// WordDefinitions maps practice words to kid-friendly definitions,
// used as prompts in dictation and multiple-choice questions.
var WordDefinitions = map[string]string{
	// Phase 1
	"sprint":    "To run at full speed for a short distance",
	"strength":  "The quality of being physically strong",
	"splash":    "To cause liquid to scatter in drops",
	"shrink":    "To become smaller in size",
	"prompt":    "Done without delay; or a cue to help remember something",
	"twelfth":   "Coming after eleven others in a series (12th)",
	"sketch":    "A rough or unfinished drawing",
	"flake":     "A small, flat, thin piece of something",
	"drone":     "A remote-controlled flying device; or a continuous humming sound",
	"shrine":    "A holy or sacred place",
	"basket":    "A container made of woven material",
	"picnic":    "An outdoor meal eaten in nature",
	"robot":     "A machine that can perform tasks automatically",
	"compete":   "To try to win against others",
	"respond":   "To reply or answer to something",
	"burger":    "A sandwich made with a patty of ground meat",
	"squirrel":  "A small furry animal with a bushy tail that lives in trees",
	"explore":   "To travel through an unfamiliar area to learn about it",
	"emergency": "A serious, unexpected situation requiring immediate action",
	"territory": "An area of land belonging to a person, animal, or group",
	// Phase 2
	"making":           "The process of creating something",
	"hoping":           "Wanting something to happen or be true",
	"creating":         "Bringing something into existence",
	"usable":           "Able to be used; functional",
	"running":          "Moving quickly on foot",
	"biggest":          "Largest in size",
	"occurred":         "Happened or took place",
	"traveler":         "A person who is on a journey",
	"tried":            "Made an attempt to do something",
	"happiness":        "The state of being happy",
	"beautiful":        "Very pleasing to look at",
	"studied":          "Devoted time to learning about something",
	"foxes":            "Wild animals with pointed ears and bushy tails (plural)",
	"babies":           "Very young children (plural)",
	"churches":         "Buildings for religious worship (plural)",
	"leaves":           "Flat green parts of a plant (plural)",
	"heroes":           "People admired for brave deeds (plural)",
	"reefs":            "Ridges of rock or coral near water surface (plural)",
	"shelves":          "Flat boards for holding things (plural)",
	"mice":             "Small rodents (plural of mouse)",
	"disagreement":     "A difference of opinion",
	"uncomfortable":    "Causing or feeling physical or mental discomfort",
	"nonexistent":      "Not existing or not real",
	"overreaction":     "A more emotional response than necessary",
	"subtraction":      "The mathematical operation of taking away",
	"intercontinental": "Between or among continents",
	"meaningful":       "Having purpose or significance",
	"fearlessly":       "Without any fear; bravely",
	"hopelessness":     "The feeling that things will not improve",
	// Phase 3
	"knowledge":   "Facts, information, and skills acquired through experience or education",
	"wrestle":     "To struggle or fight with someone by grappling",
	"gnome":       "A small mythical creature that lives underground",
	"psychology":  "The study of the mind and behavior",
	"solemn":      "Serious and without humor",
	"salmon":      "A large fish with pink flesh",
	"receipt":     "A written record that something was received or paid for",
	"scissors":    "A cutting tool with two blades",
	"mortgage":    "A loan used to buy property",
	"handsome":    "Good-looking (often used for men)",
	"necessary":   "Required; needed",
	"recommend":   "To suggest as good or suitable",
	"occasion":    "A special event or time",
	"restaurant":  "A place where meals are served to customers",
	"accommodate": "To provide space or lodging for",
	"calendar":    "A chart showing days, weeks, and months of a year",
	"colonel":     "A military officer rank",
	"rhythm":      "A regular repeated pattern of sound or movement",
	"Wednesday":   "The day of the week between Tuesday and Thursday",
	"Arctic":      "The region around the North Pole",
	"receive":     "To get or be given something",
	"believe":     "To accept as true",
	"weird":       "Strange or unusual",
	"neighbor":    "A person living next door or nearby",
	"ceiling":     "The upper surface of a room",
	"achieve":     "To successfully reach a goal",
	"seizure":     "A sudden attack or the act of taking by force",
	"freight":     "Goods transported by truck, train, ship, or aircraft",
	// Phase 4
	"their":      "Belonging to them",
	"there":      "In or at that place",
	"they're":    "Short for 'they are'",
	"your":       "Belonging to you",
	"you're":     "Short for 'you are'",
	"its":        "Belonging to it",
	"it's":       "Short for 'it is' or 'it has'",
	"to":         "Expressing direction toward a place",
	"too":        "Also; or to an excessive degree",
	"two":        "The number 2",
	"whose":      "Belonging to which person",
	"who's":      "Short for 'who is' or 'who has'",
	"compliment": "A polite expression of praise",
	"complement": "Something that completes or goes well with something else",
	"capitol":    "A building where a legislature meets",
	"capital":    "The main city of a country or state; or wealth/money",
	"stationary": "Not moving; still",
	"stationery": "Writing materials like paper and envelopes",
	"principal":  "The head of a school; or most important",
	"principle":  "A fundamental truth or rule",
	"accept":     "To receive willingly",
	"except":     "Not including; other than",
	"desert":     "A dry, sandy region; or to abandon",
	"dessert":    "A sweet dish eaten after a meal",
	"loose":      "Not tight; not firmly fixed",
	"lose":       "To be unable to find; to fail to win",
	"breath":     "Air taken into or out of the lungs (noun)",
	"breathe":    "To take air into the lungs (verb)",
	"advice":     "Guidance or recommendations (noun)",
	"advise":     "To give guidance or recommendations (verb)",
	// Phase 5
	"telephone":      "A device for speaking with someone at a distance",
	"television":     "An electronic device for watching shows and movies",
	"photograph":     "A picture made using a camera",
	"biography":      "A written account of someone's life",
	"automatic":      "Working by itself with little or no human control",
	"microscope":     "An instrument for viewing very small objects",
	"thermometer":    "An instrument for measuring temperature",
	"manuscript":     "A handwritten or typed document, especially before printing",
	"dictionary":     "A book listing words and their meanings",
	"interrupt":      "To stop someone while they are speaking or doing something",
	"transportation": "The movement of people or goods from one place to another",
	"construction":   "The process of building something",
	"submarine":      "A watercraft that can operate underwater",
	"analysis":       "Detailed examination of something",
	"evaluate":       "To judge the value or quality of something",
	"synthesize":     "To combine different ideas into a connected whole",
	"hypothesis":     "A proposed explanation for something",
	"perspective":    "A particular way of viewing things",
	"significant":    "Important; meaningful",
	"contemporary":   "Belonging to the present time; modern",
	"legitimate":     "Lawful; conforming to rules",
	"demonstrate":    "To show clearly; to prove",
	"fundamental":    "Basic; essential",
	"ecosystem":      "A community of living things and their environment",
	"democracy":      "A system of government by the people",
	"equation":       "A mathematical statement showing two things are equal",
	"civilization":   "An advanced stage of human society",
	"architecture":   "The design and construction of buildings",
	"atmosphere":     "The layer of gases surrounding Earth; or the mood of a place",
	// Phase 6
	"protagonist":     "The main character in a story",
	"antagonist":      "A character who opposes the main character",
	"exposition":      "The introduction of background information in a story",
	"foreshadowing":   "A hint of what will happen later in a story",
	"flashback":       "A scene showing events from the past",
	"metaphor":        "A comparison saying something IS something else",
	"simile":          "A comparison using 'like' or 'as'",
	"personification": "Giving human qualities to non-human things",
	"alliteration":    "The repetition of the same sound at the start of words",
	"onomatopoeia":    "A word that sounds like what it describes (buzz, splash)",
	"ferocious":       "Extremely fierce or violent",
	"luminous":        "Full of light; glowing",
	"treacherous":     "Dangerous and unpredictable",
	"spectacular":     "Impressively beautiful or dramatic",
	"mysterious":      "Difficult to understand or explain",
	"courageous":      "Brave; not afraid of danger",
	"melancholy":      "A feeling of deep sadness",
	"exasperated":     "Intensely irritated and frustrated",
	"triumphant":      "Feeling or showing great joy after a victory",
	"ominous":         "Giving the impression that something bad will happen",
	"whispered":       "Spoke very quietly",
	"exclaimed":       "Cried out suddenly in surprise or emotion",
	"interrupted":     "Stopped someone while they were speaking",
	"murmured":        "Said something in a soft, quiet voice",
	"declared":        "Announced something formally",
	"sorcerer":        "A person who practices magic",
	"enchanted":       "Under a magic spell; or delighted",
	"galaxy":          "A huge system of stars in space",
	"android":         "A robot with a human appearance",
	"dimension":       "A measurable extent (length, width, height); or a realm",
}

// DefinitionFor returns the definition for a word, or a generic prompt
// when the word has no entry.
func DefinitionFor(word string) string {
	if def, ok := WordDefinitions[word]; ok {
		return def
	}
	return "Spell this word"
}
