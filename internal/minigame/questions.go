package minigame

import "github.com/JohanGylseth/SAMI/internal/quest"

func LanguageQuestions() []Question {
	return []Question{
		{Prompt: `What does "Boazu" mean?`, Options: []string{"Reindeer", "Tent", "Lake", "Food"}, Correct: 0},
		{Prompt: `What does "Lávvu" mean?`, Options: []string{"School", "Tent", "Reindeer", "Fish"}, Correct: 1},
		{Prompt: `What does "Bures boahtin" mean?`, Options: []string{"Goodbye", "Welcome", "Thank you", "Hello"}, Correct: 1},
		{Prompt: `What does "Giella" mean?`, Options: []string{"History", "Art", "Language", "School"}, Correct: 2},
		{Prompt: `What does "Skuvla" mean?`, Options: []string{"Kitchen", "School", "Lake", "Tent"}, Correct: 1},
		{Prompt: `What does "Dáidda" mean?`, Options: []string{"Art", "Food", "Music", "Dance"}, Correct: 0},
		{Prompt: `What does "Gárdi" mean?`, Options: []string{"Storage", "House", "Tent", "Farm"}, Correct: 0},
		{Prompt: `What does "Boazodoallu" mean?`, Options: []string{"Fishing", "Reindeer Herding", "Cooking", "Building"}, Correct: 1},
	}
}

func HistoryQuestions() []Question {
	return []Question{
		{Prompt: "Where do the Sámi people traditionally live?", Options: []string{"Sápmi (Northern Scandinavia)", "Southern Europe", "Asia", "America"}, Correct: 0},
		{Prompt: "What is traditional Sámi livelihood?", Options: []string{"Farming", "Reindeer Herding", "Fishing Only", "Trading"}, Correct: 1},
		{Prompt: "What is the traditional Sámi tent called?", Options: []string{"Tipi", "Lávvu", "Yurt", "Igloo"}, Correct: 1},
		{Prompt: "How many Sámi languages are there?", Options: []string{"1", "3", "9", "15"}, Correct: 2},
		{Prompt: "What is traditional Sámi art called?", Options: []string{"Duodji", "Origami", "Pottery", "Weaving"}, Correct: 0},
		{Prompt: "What color is the Sámi flag?", Options: []string{"Red, Yellow, Green, Blue", "Blue, Red, Yellow, Green", "Red, Blue, Green, Yellow", "Green, Blue, Red, Yellow"}, Correct: 1},
		{Prompt: "What is the Sámi National Day?", Options: []string{"February 6", "May 1", "December 6", "January 1"}, Correct: 0},
		{Prompt: "What is traditional Sámi clothing called?", Options: []string{"Gákti", "Kimono", "Sari", "Kilt"}, Correct: 0},
	}
}

// QuestionsFor returns the bank used by a quiz mini-game.
func QuestionsFor(g quest.MiniGame) ([]Question, bool) {
	switch g {
	case quest.MiniGameLanguage:
		return LanguageQuestions(), true
	case quest.MiniGameHistory:
		return HistoryQuestions(), true
	default:
		return nil, false
	}
}
