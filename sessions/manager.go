// Package sessions holds the per-login state of the portal: who is
// logged in, their resolved tier discount, and their cart. Sessions
// live only in memory; logging out (or restarting the process) discards
// them, which is the portal's whole persistence story.
package sessions

import (
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/tools/security"

	"orderportal/catalog"
	"orderportal/services"
)

// CookieName is the session cookie set at login.
const CookieName = "portal_session"

// Session is the explicit context object the core components operate
// on. Created at login, destroyed at logout.
type Session struct {
	Customer  catalog.Customer
	Discount  float64
	Cart      *services.Cart
	PONumber  string
	Finalized bool
	CreatedAt time.Time
}

// Manager tracks active sessions by opaque ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a session for a customer whose tier discount has
// already been resolved. It returns the opaque ID for the cookie.
func (m *Manager) Create(customer catalog.Customer, discount float64) (string, *Session) {
	s := &Session{
		Customer:  customer,
		Discount:  discount,
		Cart:      services.NewCart(),
		CreatedAt: time.Now(),
	}
	id := security.RandomString(32)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	return id, s
}

// Get returns the session for an ID, if it is still active.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Destroy ends a session. The cart goes with it.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count reports the number of active sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
