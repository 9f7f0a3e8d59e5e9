// internal/domain/session/manager.go
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Manager tracks live sessions by opaque session ID and hands out the
// repositories each session persists through
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	carts     CartRepository
	wishlists WishlistRepository
	logger    *logrus.Logger
}

// NewManager creates a session manager
func NewManager(carts CartRepository, wishlists WishlistRepository, logger *logrus.Logger) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		carts:     carts,
		wishlists: wishlists,
		logger:    logger,
	}
}

// Resolve returns the session for id, creating a fresh anonymous one when
// id is unknown. An empty id gets a newly issued session ID.
func (m *Manager) Resolve(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}

	s = newSession(id, m.carts, m.wishlists)
	m.sessions[id] = s
	m.logger.WithField("session_id", id).Debug("session created")
	return s
}

// Drop forgets the session for id. Persisted documents are untouched.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
