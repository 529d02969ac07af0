package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rstracker/fete-cms/internal/domain"
)

// RecordListParams are the record list filters. Nil pointer fields are
// omitted from the query entirely, mirroring how the admin UI only sends
// filters the operator actually set.
type RecordListParams struct {
	MinTemp   *float64
	MaxTemp   *float64
	IsActive  *bool
	StartDate string
	EndDate   string
	Page      *int
	Size      *int
	Sort      string
}

// Encode serializes the params in a fixed order (minTemp, maxTemp, isActive,
// startDate, endDate, page, size, sort). The order is stable on purpose so
// the emitted query string is reproducible.
func (p RecordListParams) Encode() string {
	var pairs []string
	add := func(key, value string) {
		pairs = append(pairs, key+"="+url.QueryEscape(value))
	}

	if p.MinTemp != nil {
		add("minTemp", strconv.FormatFloat(*p.MinTemp, 'f', -1, 64))
	}
	if p.MaxTemp != nil {
		add("maxTemp", strconv.FormatFloat(*p.MaxTemp, 'f', -1, 64))
	}
	if p.IsActive != nil {
		add("isActive", strconv.FormatBool(*p.IsActive))
	}
	if p.StartDate != "" {
		add("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		add("endDate", p.EndDate)
	}
	if p.Page != nil {
		add("page", strconv.Itoa(*p.Page))
	}
	if p.Size != nil {
		add("size", strconv.Itoa(*p.Size))
	}
	if p.Sort != "" {
		add("sort", p.Sort)
	}
	return strings.Join(pairs, "&")
}

type RecordService struct {
	client *Client
}

func NewRecordService(client *Client) *RecordService {
	return &RecordService{client: client}
}

// List fetches one page of records wrapped in the page envelope.
func (s *RecordService) List(ctx context.Context, params RecordListParams) (*domain.Page[domain.Record], error) {
	var out domain.Page[domain.Record]
	if err := s.client.GetQuery(ctx, "/records", params.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create asks the backend to compute a record for a matching.
func (s *RecordService) Create(ctx context.Context, matchingID int64) (*domain.Record, error) {
	var r domain.Record
	if err := s.client.Post(ctx, fmt.Sprintf("/records/create/%d", matchingID), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RecordService) Get(ctx context.Context, recordID string) (*domain.Record, error) {
	var r domain.Record
	if err := s.client.Get(ctx, "/records/"+url.PathEscape(recordID), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RecordService) GetByMatching(ctx context.Context, matchingID int64) (*domain.Record, error) {
	var r domain.Record
	if err := s.client.Get(ctx, fmt.Sprintf("/records/matching/%d", matchingID), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Deactivate soft-disables a record; the row stays until the next refetch
// shows its new state.
func (s *RecordService) Deactivate(ctx context.Context, recordID string) error {
	return s.client.Put(ctx, "/records/"+url.PathEscape(recordID)+"/deactivate", nil, nil)
}
