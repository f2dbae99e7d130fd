package curriculum

// Resource is an external learning resource that users can bookmark
type Resource struct {
	Title           string
	Description     string
	QualityRating   int
	DifficultyLevel string
	Cost            string
	URL             string
}

// ResourceCategory groups resources by curriculum area
type ResourceCategory struct {
	Category string
	Items    []Resource
}

// Resources is the curated external-resource directory
var Resources = []ResourceCategory{
	{Category: "foundational_phonics", Items: []Resource{
		{Title: "OnTrack Reading Middle School Phonics Course", Description: "A mini-curriculum for middle schoolers to improve decoding of multisyllable words.", QualityRating: 4, DifficultyLevel: "intermediate", Cost: "Paid (approx. $20)", URL: "https://www.ontrackreading.com/phonics-program/middle-school-phonics-course"},
		{Title: "Reading Horizons", Description: "Software program for reading and phonics skills development.", QualityRating: 4, DifficultyLevel: "intermediate", Cost: "Paid (with free trial)", URL: "https://www.readinghorizons.com/"},
		{Title: "Phonics.com", Description: "Free online platform with phonics resources, activities, and games.", QualityRating: 3, DifficultyLevel: "beginner", Cost: "Free", URL: "https://www.phonics.com/"},
	}},
	{Category: "spelling_rules_and_patterns", Items: []Resource{
		{Title: "Spelling-Words-Well.com", Description: "Spelling resources for 6th grade including word lists, games, worksheets.", QualityRating: 4, DifficultyLevel: "intermediate", Cost: "Free", URL: "https://www.spelling-words-well.com/6th-grade-spelling.html"},
		{Title: "Spelling Stars", Description: "Interactive games, tests, and customizable spelling lists for 6th grade.", QualityRating: 4, DifficultyLevel: "intermediate", Cost: "Paid (with free trial)", URL: "https://www.spellingstars.com/6th-grade"},
		{Title: "All About Spelling", Description: "Comprehensive, multisensory spelling program based on Orton-Gillingham approach.", QualityRating: 5, DifficultyLevel: "beginner to advanced", Cost: "Paid (approx. $50-65 per level)", URL: "https://www.allaboutlearningpress.com/all-about-spelling/"},
	}},
	{Category: "vocabulary_building", Items: []Resource{
		{Title: "Vocabulary.com", Description: "Interactive platform for learning new words through games and quizzes.", QualityRating: 5, DifficultyLevel: "intermediate to advanced", Cost: "Free and paid plans", URL: "https://www.vocabulary.com/"},
		{Title: "Membean", Description: "Personalized vocabulary learning using cognitive science for long-term retention.", QualityRating: 5, DifficultyLevel: "intermediate to advanced", Cost: "Paid", URL: "https://membean.com/"},
		{Title: "Knoword", Description: "Engaging vocabulary games and custom flashcards.", QualityRating: 4, DifficultyLevel: "beginner to intermediate", Cost: "Free and paid plans", URL: "https://knoword.com/"},
	}},
	{Category: "creative_writing", Items: []Resource{
		{Title: "Night Zookeeper", Description: "Gamified language arts program encouraging creative writing through interactive lessons.", QualityRating: 5, DifficultyLevel: "beginner to intermediate", Cost: "Paid (with free trial)", URL: "https://www.nightzookeeper.com/"},
		{Title: "Storybird", Description: "Platform to create and publish storybooks using professional illustrations.", QualityRating: 4, DifficultyLevel: "beginner to intermediate", Cost: "Free and paid plans", URL: "https://storybird.com/"},
		{Title: "BoomWriter", Description: "Collaborative writing platform using gamification to engage students.", QualityRating: 4, DifficultyLevel: "intermediate", Cost: "Paid", URL: "https://www.boomwriter.com/"},
	}},
	{Category: "gamified_learning", Items: []Resource{
		{Title: "Spelling Shed", Description: "Gamified spelling app with competitive leagues and rewards.", QualityRating: 4, DifficultyLevel: "beginner to intermediate", Cost: "Paid", URL: "https://www.spellingshed.com/"},
		{Title: "SpellingCity", Description: "Vocabulary and spelling practice through fun games and activities.", QualityRating: 4, DifficultyLevel: "intermediate to advanced", Cost: "Free with premium options", URL: "https://www.spellingcity.com/"},
	}},
}
