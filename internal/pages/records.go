package pages

import (
	"context"

	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/domain"
)

const recordsPageSize = 20

const recordsSort = "createdAt,desc"

// RecordsPage owns the record list view: temperature/date/active filters,
// backend pagination, detail selection, and deactivation.
type RecordsPage struct {
	svc *backend.RecordService

	State    State
	Records  []domain.Record
	Err      string
	Filters  backend.RecordListParams
	PageInfo domain.PageMeta
	Selected *domain.Record
}

func NewRecordsPage(svc *backend.RecordService) *RecordsPage {
	page, size := 0, recordsPageSize
	return &RecordsPage{
		svc: svc,
		Filters: backend.RecordListParams{
			Page: &page,
			Size: &size,
			Sort: recordsSort,
		},
	}
}

// Load fetches the current page with the current filters and replaces rows
// and pagination metadata wholesale. Failure keeps the previous rows.
func (p *RecordsPage) Load(ctx context.Context) error {
	p.State = Loading
	p.Err = ""

	page, err := p.svc.List(ctx, p.Filters)
	if err != nil {
		p.State = Error
		p.Err = backend.Message(err, "failed to load records")
		return err
	}

	p.Records = page.Content
	p.PageInfo = page.Meta()
	p.State = Success
	return nil
}

// SetTemperatureRange updates the min/max filters, jumps back to the first
// page, and refetches. Nil clears a bound.
func (p *RecordsPage) SetTemperatureRange(ctx context.Context, minTemp, maxTemp *float64) error {
	p.Filters.MinTemp = minTemp
	p.Filters.MaxTemp = maxTemp
	return p.resetAndLoad(ctx)
}

// SetActive filters on the record's active flag; nil clears the filter.
func (p *RecordsPage) SetActive(ctx context.Context, isActive *bool) error {
	p.Filters.IsActive = isActive
	return p.resetAndLoad(ctx)
}

// SetDateRange filters on creation date; empty strings clear a bound.
func (p *RecordsPage) SetDateRange(ctx context.Context, startDate, endDate string) error {
	p.Filters.StartDate = startDate
	p.Filters.EndDate = endDate
	return p.resetAndLoad(ctx)
}

func (p *RecordsPage) resetAndLoad(ctx context.Context) error {
	first := 0
	p.Filters.Page = &first
	return p.Load(ctx)
}

// SetPage moves to another backend page and refetches.
func (p *RecordsPage) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	if p.PageInfo.TotalPages > 0 && page > p.PageInfo.TotalPages-1 {
		page = p.PageInfo.TotalPages - 1
	}
	p.Filters.Page = &page
	return p.Load(ctx)
}

// ViewDetail fetches a single record into the detail panel.
func (p *RecordsPage) ViewDetail(ctx context.Context, recordID string) error {
	r, err := p.svc.Get(ctx, recordID)
	if err != nil {
		p.Err = backend.Message(err, "failed to load record detail")
		return err
	}
	p.Selected = r
	return nil
}

func (p *RecordsPage) CloseDetail() {
	p.Selected = nil
}

// Deactivate soft-disables the record and refetches; the row keeps its old
// state until the fresh list arrives.
func (p *RecordsPage) Deactivate(ctx context.Context, recordID string) error {
	if err := p.svc.Deactivate(ctx, recordID); err != nil {
		p.Err = backend.Message(err, "failed to deactivate record")
		return err
	}
	if p.Selected != nil && p.Selected.RecordID == recordID {
		p.Selected = nil
	}
	return p.Load(ctx)
}
