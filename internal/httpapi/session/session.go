// Package session provides the in-memory session store backing the password
// gate. Sessions are deliberately volatile: a restart logs the user out.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token
const CookieName = "session_token"

// Manager issues and validates opaque session tokens with a fixed lifetime
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]time.Time // token -> expiry
	now      func() time.Time
}

// NewManager creates a session manager issuing tokens valid for ttl
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Create issues a new session token
func (m *Manager) Create() string {
	token := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = m.now().Add(m.ttl)
	return token
}

// Validate reports whether the token belongs to a live session.
// Expired sessions are pruned on sight.
func (m *Manager) Validate(token string) bool {
	if token == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.sessions[token]
	if !ok {
		return false
	}
	if m.now().After(expiry) {
		delete(m.sessions, token)
		return false
	}
	return true
}

// Destroy ends the session for the given token, if any
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// TTL returns the configured session lifetime
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
