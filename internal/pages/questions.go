package pages

import (
	"context"
	"sort"

	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/domain"
	"github.com/rstracker/fete-cms/internal/forms"
)

// QuestionsPage owns the question list view: category filter, detail
// selection, and the create/edit modal lifecycle. Every mutation refetches
// the list; nothing is patched locally.
type QuestionsPage struct {
	svc *backend.QuestionService

	State     State
	Questions []domain.Question
	Err       string
	Category  domain.QuestionCategory // "" means all categories
	Selected  *domain.Question
	Modal     *forms.QuestionModal
}

func NewQuestionsPage(svc *backend.QuestionService) *QuestionsPage {
	return &QuestionsPage{svc: svc}
}

// Load fetches the list and replaces it wholesale, sorted ascending by
// question order and, within each question, by choice order. A failed load
// keeps the previous list on screen.
func (p *QuestionsPage) Load(ctx context.Context) error {
	p.State = Loading
	p.Err = ""

	questions, err := p.svc.List(ctx, p.Category)
	if err != nil {
		p.State = Error
		p.Err = backend.Message(err, "failed to load questions")
		return err
	}

	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })
	for qi := range questions {
		choices := questions[qi].Choices
		sort.SliceStable(choices, func(i, j int) bool { return choices[i].Order < choices[j].Order })
	}

	p.Questions = questions
	p.State = Success
	return nil
}

// SetCategory changes the filter and re-triggers the backend fetch; the
// category is sent upstream, not applied locally.
func (p *QuestionsPage) SetCategory(ctx context.Context, category domain.QuestionCategory) error {
	p.Category = category
	return p.Load(ctx)
}

// ViewDetail fetches a single question into the detail panel.
func (p *QuestionsPage) ViewDetail(ctx context.Context, id int64) error {
	q, err := p.svc.Get(ctx, id)
	if err != nil {
		p.Err = backend.Message(err, "failed to load question detail")
		return err
	}
	p.Selected = q
	return nil
}

func (p *QuestionsPage) CloseDetail() {
	p.Selected = nil
}

// Delete soft-deletes the question and refetches. The row only changes once
// the refetched list reflects the backend's new state.
func (p *QuestionsPage) Delete(ctx context.Context, id int64) error {
	if err := p.svc.Delete(ctx, id); err != nil {
		p.Err = backend.Message(err, "failed to delete question")
		return err
	}
	if p.Selected != nil && p.Selected.ID == id {
		p.Selected = nil
	}
	return p.Load(ctx)
}

// OpenCreate opens the create modal. Saving creates the question and then
// reloads the list; the modal closes only after the save succeeded.
func (p *QuestionsPage) OpenCreate() *forms.QuestionModal {
	p.Modal = &forms.QuestionModal{
		Form: forms.NewQuestionForm(),
		OnSave: func(ctx context.Context, f *forms.QuestionForm) error {
			if _, err := p.svc.Create(ctx, f.CreateInput()); err != nil {
				return err
			}
			// The reload's own failure surfaces on the page, not the modal.
			_ = p.Load(ctx)
			return nil
		},
		OnClose: func() { p.Modal = nil },
	}
	return p.Modal
}

// OpenEdit fetches the question fresh and opens the edit modal seeded from
// it.
func (p *QuestionsPage) OpenEdit(ctx context.Context, id int64) (*forms.QuestionModal, error) {
	q, err := p.svc.Get(ctx, id)
	if err != nil {
		p.Err = backend.Message(err, "failed to load question")
		return nil, err
	}
	p.Modal = &forms.QuestionModal{
		Form: forms.EditQuestionForm(*q),
		OnSave: func(ctx context.Context, f *forms.QuestionForm) error {
			if _, err := p.svc.Update(ctx, q.ID, f.UpdateInput()); err != nil {
				return err
			}
			_ = p.Load(ctx)
			return nil
		},
		OnClose: func() { p.Modal = nil },
	}
	return p.Modal, nil
}
