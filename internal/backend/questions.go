package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rstracker/fete-cms/internal/domain"
)

// QuestionService wraps the question endpoints. Note the list endpoint
// returns a bare array, unlike Users and Records which return a page
// envelope.
type QuestionService struct {
	client *Client
}

func NewQuestionService(client *Client) *QuestionService {
	return &QuestionService{client: client}
}

// List fetches active questions, optionally narrowed to one category.
func (s *QuestionService) List(ctx context.Context, category domain.QuestionCategory) ([]domain.Question, error) {
	rawQuery := ""
	if category != "" {
		rawQuery = "category=" + url.QueryEscape(string(category))
	}
	var questions []domain.Question
	if err := s.client.GetQuery(ctx, "/questions", rawQuery, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*domain.Question, error) {
	var q domain.Question
	if err := s.client.Get(ctx, fmt.Sprintf("/questions/%d", id), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) Create(ctx context.Context, in domain.CreateQuestionInput) (*domain.Question, error) {
	var q domain.Question
	if err := s.client.Post(ctx, "/questions", in, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) Update(ctx context.Context, id int64, in domain.UpdateQuestionInput) (*domain.Question, error) {
	var q domain.Question
	if err := s.client.Put(ctx, fmt.Sprintf("/questions/%d", id), in, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Delete soft-deletes: the backend deactivates the question, it does not
// remove the row.
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/questions/%d", id))
}
