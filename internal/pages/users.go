package pages

import (
	"context"
	"strings"

	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/domain"
	"github.com/rstracker/fete-cms/internal/forms"
)

const usersPageSize = 20

const usersSort = "createdAt,desc"

// UsersPage owns the paginated user table. Pagination is backend-driven; the
// search box and status filter apply to the already-fetched page only and
// never issue a request.
type UsersPage struct {
	svc *backend.UserService

	State State
	Users []domain.User
	Err   string

	Page          int
	PageSize      int
	TotalElements int64
	TotalPages    int

	Search       string
	StatusFilter domain.UserStatus

	Modal  *forms.UserModal
	Detail *UserDetailModal
}

func NewUsersPage(svc *backend.UserService) *UsersPage {
	return &UsersPage{svc: svc, PageSize: usersPageSize}
}

// Load fetches the current page and replaces list and pagination metadata
// wholesale. On failure the previous rows stay visible.
func (p *UsersPage) Load(ctx context.Context) error {
	p.State = Loading
	p.Err = ""

	page, err := p.svc.List(ctx, p.Page, p.PageSize, usersSort)
	if err != nil {
		p.State = Error
		p.Err = backend.Message(err, "failed to load users")
		return err
	}

	p.Users = page.Content
	p.TotalElements = page.TotalElements
	p.TotalPages = page.TotalPages
	p.State = Success
	return nil
}

// SetPage moves to another backend page and refetches.
func (p *UsersPage) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	if p.TotalPages > 0 && page > p.TotalPages-1 {
		page = p.TotalPages - 1
	}
	p.Page = page
	return p.Load(ctx)
}

// SetSearch updates the search term. Deliberately no refetch: the search
// only narrows the rows already on screen, so matches on other pages stay
// invisible.
func (p *UsersPage) SetSearch(term string) {
	p.Search = term
}

func (p *UsersPage) SetStatusFilter(status domain.UserStatus) {
	p.StatusFilter = status
}

// Filtered returns the visible rows: the fetched page narrowed by the search
// term (case-insensitive over userid, name, phone number, email) and the
// status filter.
func (p *UsersPage) Filtered() []domain.User {
	term := strings.ToLower(strings.TrimSpace(p.Search))
	if term == "" && p.StatusFilter == "" {
		return p.Users
	}

	var out []domain.User
	for _, u := range p.Users {
		if term != "" && !userMatches(u, term) {
			continue
		}
		if p.StatusFilter != "" && u.Status != p.StatusFilter {
			continue
		}
		out = append(out, u)
	}
	return out
}

func userMatches(u domain.User, term string) bool {
	return strings.Contains(strings.ToLower(u.Userid), term) ||
		strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(u.PhoneNumber, term) ||
		(u.Email != "" && strings.Contains(strings.ToLower(u.Email), term))
}

// Delete soft-deletes the user and refetches; the row never disappears by
// local mutation.
func (p *UsersPage) Delete(ctx context.Context, id int64) error {
	if err := p.svc.Delete(ctx, id); err != nil {
		p.Err = backend.Message(err, "failed to delete user")
		return err
	}
	return p.Load(ctx)
}

// OpenCreate opens the user create modal.
func (p *UsersPage) OpenCreate() *forms.UserModal {
	p.Modal = &forms.UserModal{
		Form: forms.NewUserForm(),
		OnSave: func(ctx context.Context, f *forms.UserForm) error {
			if _, err := p.svc.Create(ctx, f.CreateInput()); err != nil {
				return err
			}
			_ = p.Load(ctx)
			return nil
		},
		OnClose: func() { p.Modal = nil },
	}
	return p.Modal
}

// OpenEdit opens the edit modal seeded from an already-listed user.
func (p *UsersPage) OpenEdit(u domain.User) *forms.UserModal {
	p.Modal = &forms.UserModal{
		Form: forms.EditUserForm(u),
		OnSave: func(ctx context.Context, f *forms.UserForm) error {
			if _, err := p.svc.Update(ctx, u.ID, f.UpdateInput()); err != nil {
				return err
			}
			_ = p.Load(ctx)
			return nil
		},
		OnClose: func() { p.Modal = nil },
	}
	return p.Modal
}

// OpenEditByID fetches the user fresh and opens the edit modal seeded from
// it, for callers that hold only the id.
func (p *UsersPage) OpenEditByID(ctx context.Context, id int64) (*forms.UserModal, error) {
	u, err := p.svc.Get(ctx, id)
	if err != nil {
		p.Err = backend.Message(err, "failed to load user")
		return nil, err
	}
	return p.OpenEdit(*u), nil
}

// OpenDetail opens the read-only history modal for a user; the history is
// fetched once here and only toggled afterwards.
func (p *UsersPage) OpenDetail(ctx context.Context, u domain.User) (*UserDetailModal, error) {
	detail := newUserDetailModal(p.svc, u, func() { p.Detail = nil })
	p.Detail = detail
	err := detail.load(ctx)
	return detail, err
}

// OpenDetailByID is OpenDetail for callers that hold only the id.
func (p *UsersPage) OpenDetailByID(ctx context.Context, id int64) (*UserDetailModal, error) {
	u, err := p.svc.Get(ctx, id)
	if err != nil {
		p.Err = backend.Message(err, "failed to load user")
		return nil, err
	}
	return p.OpenDetail(ctx, *u)
}
