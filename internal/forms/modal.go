package forms

import (
	"context"

	"github.com/rstracker/fete-cms/internal/backend"
)

// QuestionModal drives the question form's save/cancel contract: Submit
// validates, awaits the injected OnSave, keeps the modal open with an inline
// message on rejection, and invokes OnClose on success.
type QuestionModal struct {
	Form   *QuestionForm
	Err    string
	Saving bool

	OnSave  func(ctx context.Context, form *QuestionForm) error
	OnClose func()
}

func (m *QuestionModal) Submit(ctx context.Context) error {
	m.Err = ""
	if errs := m.Form.Validate(); len(errs) > 0 {
		vErr := &ValidationError{Fields: errs}
		m.Err = errs[0].Message
		return vErr
	}

	m.Saving = true
	defer func() { m.Saving = false }()

	if err := m.OnSave(ctx, m.Form); err != nil {
		m.Err = backend.Message(err, "failed to save question")
		return err
	}
	if m.OnClose != nil {
		m.OnClose()
	}
	return nil
}

// Cancel closes the modal without saving.
func (m *QuestionModal) Cancel() {
	if m.OnClose != nil {
		m.OnClose()
	}
}

// UserModal is the user form's counterpart of QuestionModal.
type UserModal struct {
	Form   *UserForm
	Err    string
	Saving bool

	OnSave  func(ctx context.Context, form *UserForm) error
	OnClose func()
}

func (m *UserModal) Submit(ctx context.Context) error {
	m.Err = ""
	if errs := m.Form.Validate(); len(errs) > 0 {
		vErr := &ValidationError{Fields: errs}
		m.Err = errs[0].Message
		return vErr
	}

	m.Saving = true
	defer func() { m.Saving = false }()

	if err := m.OnSave(ctx, m.Form); err != nil {
		m.Err = backend.Message(err, "failed to save user")
		return err
	}
	if m.OnClose != nil {
		m.OnClose()
	}
	return nil
}

func (m *UserModal) Cancel() {
	if m.OnClose != nil {
		m.OnClose()
	}
}
