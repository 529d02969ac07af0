package domain

type QuestionCategory string

const (
	CategoryInitialMatching   QuestionCategory = "INITIAL_MATCHING"
	CategoryTemperatureRefine QuestionCategory = "TEMPERATURE_REFINE"
)

// QuestionChoice belongs to exactly one question. Order is a 1-based display
// position; TemperatureWeight feeds the server-side temperature computation
// and is opaque to this client.
type QuestionChoice struct {
	ID                int64   `json:"id"`
	QuestionID        int64   `json:"questionId"`
	ChoiceText        string  `json:"choiceText"`
	ChoiceValue       string  `json:"choiceValue"`
	Order             int     `json:"order"`
	TemperatureWeight float64 `json:"temperatureWeight"`
}

type Question struct {
	ID               int64            `json:"id"`
	QuestionText     string           `json:"questionText"`
	QuestionType     string           `json:"questionType"`
	QuestionCategory QuestionCategory `json:"questionCategory"`
	Order            int              `json:"order"`
	IsActive         bool             `json:"isActive"`
	Version          int64            `json:"version"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
	Choices          []QuestionChoice `json:"choices"`
}

type ChoiceInput struct {
	ChoiceText        string  `json:"choiceText"`
	ChoiceValue       string  `json:"choiceValue"`
	Order             int     `json:"order"`
	TemperatureWeight float64 `json:"temperatureWeight"`
}

type CreateQuestionInput struct {
	QuestionText     string           `json:"questionText"`
	QuestionType     string           `json:"questionType"`
	QuestionCategory QuestionCategory `json:"questionCategory"`
	Order            int              `json:"order"`
	Choices          []ChoiceInput    `json:"choices"`
}

// UpdateQuestionInput carries no version field; concurrent edits overwrite
// each other (known backend-contract gap).
type UpdateQuestionInput struct {
	QuestionText     string           `json:"questionText"`
	QuestionType     string           `json:"questionType"`
	QuestionCategory QuestionCategory `json:"questionCategory"`
	Order            int              `json:"order"`
	IsActive         bool             `json:"isActive"`
	Choices          []ChoiceInput    `json:"choices"`
}
