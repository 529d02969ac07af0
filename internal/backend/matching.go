package backend

import (
	"context"
	"net/url"

	"github.com/rstracker/fete-cms/internal/domain"
)

// MatchingService is read-mostly in the CMS; create/join exist for
// completeness of the backend surface.
type MatchingService struct {
	client *Client
}

func NewMatchingService(client *Client) *MatchingService {
	return &MatchingService{client: client}
}

func (s *MatchingService) Create(ctx context.Context) (*domain.Matching, error) {
	var m domain.Matching
	if err := s.client.Post(ctx, "/matching/create", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MatchingService) Join(ctx context.Context, code string) (*domain.JoinResult, error) {
	var res domain.JoinResult
	if err := s.client.Post(ctx, "/matching/join/"+url.PathEscape(code), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *MatchingService) Get(ctx context.Context, code string) (*domain.Matching, error) {
	var m domain.Matching
	if err := s.client.Get(ctx, "/matching/"+url.PathEscape(code), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MatchingService) Status(ctx context.Context, code string) (*domain.MatchingStatusInfo, error) {
	var st domain.MatchingStatusInfo
	if err := s.client.Get(ctx, "/matching/status/"+url.PathEscape(code), &st); err != nil {
		return nil, err
	}
	return &st, nil
}
