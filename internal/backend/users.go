package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rstracker/fete-cms/internal/domain"
)

type UserService struct {
	client *Client
}

func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error) {
	var u domain.User
	if err := s.client.Post(ctx, "/users", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d", id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) GetByUserid(ctx context.Context, userid string) (*domain.User, error) {
	var u domain.User
	if err := s.client.Get(ctx, "/users/userid/"+url.PathEscape(userid), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// List fetches one page of users wrapped in the page envelope.
func (s *UserService) List(ctx context.Context, page, size int, sort string) (*domain.Page[domain.User], error) {
	rawQuery := fmt.Sprintf("page=%d&size=%d&sort=%s", page, size, url.QueryEscape(sort))
	var out domain.Page[domain.User]
	if err := s.client.GetQuery(ctx, "/users", rawQuery, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.client.Get(ctx, "/users/all", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in domain.UpdateUserInput) (*domain.User, error) {
	var u domain.User
	if err := s.client.Put(ctx, fmt.Sprintf("/users/%d", id), in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete soft-deletes the user (status transition on the backend).
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// CheckUserid reports whether a userid is already taken.
func (s *UserService) CheckUserid(ctx context.Context, userid string) (bool, error) {
	var taken bool
	if err := s.client.Get(ctx, "/users/check/userid/"+url.PathEscape(userid), &taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (s *UserService) CheckPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	var taken bool
	if err := s.client.Get(ctx, "/users/check/phone/"+url.PathEscape(phoneNumber), &taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (s *UserService) CheckEmail(ctx context.Context, email string) (bool, error) {
	var taken bool
	if err := s.client.Get(ctx, "/users/check/email/"+url.PathEscape(email), &taken); err != nil {
		return false, err
	}
	return taken, nil
}

// History fetches the server-assembled matching/answer/record timeline.
func (s *UserService) History(ctx context.Context, id int64) (*domain.UserHistory, error) {
	var h domain.UserHistory
	if err := s.client.Get(ctx, fmt.Sprintf("/users/%d/history", id), &h); err != nil {
		return nil, err
	}
	return &h, nil
}
