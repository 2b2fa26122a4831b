package addressform

import (
	"sync"

	"github.com/wichananm65/pet-shop-checkout/internal/address"
)

// Modal is the visibility and edit-mode state of the address modal.
type Modal struct {
	mu   sync.RWMutex
	open bool
	edit bool
}

func (m *Modal) IsOpen() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.open
}

func (m *Modal) SetOpen(open bool) {
	m.mu.Lock()
	m.open = open
	m.mu.Unlock()
}

func (m *Modal) IsEdit() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.edit
}

func (m *Modal) SetEdit(edit bool) {
	m.mu.Lock()
	m.edit = edit
	m.mu.Unlock()
}

// AddressBook is the signed-in user's address list as last returned by the api.
type AddressBook struct {
	mu   sync.RWMutex
	list []address.Address
}

func (b *AddressBook) Addresses() []address.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]address.Address(nil), b.list...)
}

// SetAddresses replaces the whole list.
func (b *AddressBook) SetAddresses(list []address.Address) {
	b.mu.Lock()
	b.list = append([]address.Address(nil), list...)
	b.mu.Unlock()
}

// Session carries the auth token issued at sign-in.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession(token string) *Session { return &Session{token: token} }

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
