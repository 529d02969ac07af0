package pages

import (
	"context"

	"github.com/rstracker/fete-cms/internal/backend"
)

// DashboardStats are the summary cards. AvgTemperature is nil until at least
// one record is available; ActiveMatchings stays nil because the backend has
// no matching list endpoint.
type DashboardStats struct {
	QuestionCount   int
	UserCount       int64
	RecordCount     int64
	AvgTemperature  *float64
	ActiveMatchings *int64
}

// DashboardPage derives its cards from the same list endpoints the other
// pages use; it keeps no state the backend does not already own.
type DashboardPage struct {
	questions *backend.QuestionService
	users     *backend.UserService
	records   *backend.RecordService

	State State
	Stats DashboardStats
	Err   string
}

func NewDashboardPage(questions *backend.QuestionService, users *backend.UserService, records *backend.RecordService) *DashboardPage {
	return &DashboardPage{questions: questions, users: users, records: records}
}

// Load gathers the stats in one pass. The first failing call puts the page
// in the error state and keeps the previous stats.
func (p *DashboardPage) Load(ctx context.Context) error {
	p.State = Loading
	p.Err = ""

	questions, err := p.questions.List(ctx, "")
	if err != nil {
		p.State = Error
		p.Err = backend.Message(err, "failed to load dashboard stats")
		return err
	}

	userPage, err := p.users.List(ctx, 0, 1, "createdAt,desc")
	if err != nil {
		p.State = Error
		p.Err = backend.Message(err, "failed to load dashboard stats")
		return err
	}

	page, size := 0, recordsPageSize
	recordPage, err := p.records.List(ctx, backend.RecordListParams{
		Page: &page,
		Size: &size,
		Sort: recordsSort,
	})
	if err != nil {
		p.State = Error
		p.Err = backend.Message(err, "failed to load dashboard stats")
		return err
	}

	stats := DashboardStats{
		QuestionCount: len(questions),
		UserCount:     userPage.TotalElements,
		RecordCount:   recordPage.TotalElements,
	}
	// Mean over the most recent page of records; good enough for a summary
	// card without a dedicated stats endpoint.
	if len(recordPage.Content) > 0 {
		var sum float64
		for _, r := range recordPage.Content {
			sum += r.Temperature
		}
		avg := sum / float64(len(recordPage.Content))
		stats.AvgTemperature = &avg
	}

	p.Stats = stats
	p.State = Success
	return nil
}
