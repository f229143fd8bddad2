package model

// Difficulty enumerates quiz difficulty levels.
type Difficulty string

const (
	DifficultyLow    Difficulty = "LOW"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHigh   Difficulty = "HIGH"
)

// Question is a single multiple-choice question. Immutable once created.
// CorrectAnswer is a valid index into Options.
type Question struct {
	ID            string   `json:"id"`
	QuestionText  string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// CategorizedQuestion is a bank question tagged with its topic category.
// AI-generated questions carry no category and resolve to CategoryGeneral
// at scoring time.
type CategorizedQuestion struct {
	Question
	Category string `json:"category"`
}

// CategoryGeneral is the category assigned to questions that have no bank
// entry (the AI top-up path).
const CategoryGeneral = "Materia General"

// Bank categories with special meaning to the difficulty filter.
const (
	CategoryHard  = "Dificultad"
	CategoryLegal = "Legal"
)
