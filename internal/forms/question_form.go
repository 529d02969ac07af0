package forms

import (
	"sort"
	"strings"

	"github.com/rstracker/fete-cms/internal/domain"
)

// ChoiceField is one editable choice row inside the question modal.
type ChoiceField struct {
	ChoiceText        string
	ChoiceValue       string
	Order             int
	TemperatureWeight float64
}

// QuestionForm is the controlled state of the question create/edit modal.
// Choice order is kept a dense 1..N sequence on every local edit.
type QuestionForm struct {
	QuestionText     string
	QuestionType     string
	QuestionCategory domain.QuestionCategory
	Order            int
	IsActive         bool
	Choices          []ChoiceField

	editing bool
}

// NewQuestionForm returns a create form seeded with one empty choice, the
// same starting state the modal opens with.
func NewQuestionForm() *QuestionForm {
	return &QuestionForm{
		QuestionCategory: domain.CategoryInitialMatching,
		Order:            1,
		IsActive:         true,
		Choices:          []ChoiceField{{Order: 1}},
	}
}

// EditQuestionForm seeds a form from an existing question, choices sorted by
// their display order.
func EditQuestionForm(q domain.Question) *QuestionForm {
	choices := make([]ChoiceField, len(q.Choices))
	for i, c := range q.Choices {
		choices[i] = ChoiceField{
			ChoiceText:        c.ChoiceText,
			ChoiceValue:       c.ChoiceValue,
			Order:             c.Order,
			TemperatureWeight: c.TemperatureWeight,
		}
	}
	sort.SliceStable(choices, func(i, j int) bool { return choices[i].Order < choices[j].Order })
	for i := range choices {
		choices[i].Order = i + 1
	}
	return &QuestionForm{
		QuestionText:     q.QuestionText,
		QuestionType:     q.QuestionType,
		QuestionCategory: q.QuestionCategory,
		Order:            q.Order,
		IsActive:         q.IsActive,
		Choices:          choices,
		editing:          true,
	}
}

func (f *QuestionForm) Editing() bool { return f.editing }

// AddChoice appends an empty choice at the end of the sequence.
func (f *QuestionForm) AddChoice() {
	f.Choices = append(f.Choices, ChoiceField{Order: len(f.Choices) + 1})
}

// RemoveChoice deletes the choice at index and renumbers the rest densely.
func (f *QuestionForm) RemoveChoice(index int) {
	if index < 0 || index >= len(f.Choices) {
		return
	}
	f.Choices = append(f.Choices[:index], f.Choices[index+1:]...)
	for i := range f.Choices {
		f.Choices[i].Order = i + 1
	}
}

// SetChoiceOrder moves the choice at index to the requested position, then
// re-normalizes all orders to a dense 1..N sequence. Asking for an order
// already in use is fine; the stable re-sort resolves the tie.
func (f *QuestionForm) SetChoiceOrder(index, order int) {
	if index < 0 || index >= len(f.Choices) {
		return
	}
	f.Choices[index].Order = order
	sort.SliceStable(f.Choices, func(i, j int) bool { return f.Choices[i].Order < f.Choices[j].Order })
	for i := range f.Choices {
		f.Choices[i].Order = i + 1
	}
}

func (f *QuestionForm) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(f.QuestionText) == "" {
		errs = append(errs, FieldError{Field: "questionText", Message: "question text is required"})
	}
	if strings.TrimSpace(f.QuestionType) == "" {
		errs = append(errs, FieldError{Field: "questionType", Message: "question type is required"})
	}
	if len(f.Choices) == 0 {
		errs = append(errs, FieldError{Field: "choices", Message: "at least one choice is required"})
	}
	for _, c := range f.Choices {
		if strings.TrimSpace(c.ChoiceText) == "" || strings.TrimSpace(c.ChoiceValue) == "" {
			errs = append(errs, FieldError{Field: "choices", Message: "every choice needs a text and a value"})
			break
		}
	}
	return errs
}

func (f *QuestionForm) choiceInputs() []domain.ChoiceInput {
	out := make([]domain.ChoiceInput, len(f.Choices))
	for i, c := range f.Choices {
		out[i] = domain.ChoiceInput{
			ChoiceText:        c.ChoiceText,
			ChoiceValue:       c.ChoiceValue,
			Order:             c.Order,
			TemperatureWeight: c.TemperatureWeight,
		}
	}
	return out
}

func (f *QuestionForm) CreateInput() domain.CreateQuestionInput {
	return domain.CreateQuestionInput{
		QuestionText:     f.QuestionText,
		QuestionType:     f.QuestionType,
		QuestionCategory: f.QuestionCategory,
		Order:            f.Order,
		Choices:          f.choiceInputs(),
	}
}

func (f *QuestionForm) UpdateInput() domain.UpdateQuestionInput {
	return domain.UpdateQuestionInput{
		QuestionText:     f.QuestionText,
		QuestionType:     f.QuestionType,
		QuestionCategory: f.QuestionCategory,
		Order:            f.Order,
		IsActive:         f.IsActive,
		Choices:          f.choiceInputs(),
	}
}
