package pages

import (
	"context"

	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/domain"
)

// UserDetailModal renders a user's server-assembled history. It fetches once
// when opened, keyed by the user id; expanding and collapsing a matching is
// pure view-state toggling with no further requests.
type UserDetailModal struct {
	svc     *backend.UserService
	onClose func()

	User    domain.User
	State   State
	History *domain.UserHistory
	Err     string

	expanded map[int64]bool
}

func newUserDetailModal(svc *backend.UserService, user domain.User, onClose func()) *UserDetailModal {
	return &UserDetailModal{
		svc:      svc,
		onClose:  onClose,
		User:     user,
		expanded: make(map[int64]bool),
	}
}

func (m *UserDetailModal) load(ctx context.Context) error {
	m.State = Loading
	m.Err = ""

	history, err := m.svc.History(ctx, m.User.ID)
	if err != nil {
		m.State = Error
		m.Err = backend.Message(err, "failed to load user history")
		return err
	}
	m.History = history
	m.State = Success
	return nil
}

// Toggle flips the expand/collapse state of one matching's detail panel.
func (m *UserDetailModal) Toggle(matchingID int64) {
	m.expanded[matchingID] = !m.expanded[matchingID]
}

func (m *UserDetailModal) Expanded(matchingID int64) bool {
	return m.expanded[matchingID]
}

func (m *UserDetailModal) Close() {
	if m.onClose != nil {
		m.onClose()
	}
}
