package store

import (
	"sync"
	"time"

	"keycalc/internal/domain"
)

// MemoryStore keeps sessions in memory. State is lost on process exit.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]domain.Session
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[domain.SessionID]domain.Session),
	}
}

// SaveSession stores a copy of session under id.
func (m *MemoryStore) SaveSession(id domain.SessionID, session domain.Session) error {
	m.mu.Lock()
	m.sessions[id] = session
	m.mu.Unlock()
	return nil
}

// LoadSession returns the session stored under id.
func (m *MemoryStore) LoadSession(id domain.SessionID) (domain.Session, bool, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()
	return session, ok, nil
}

// DeleteSession removes id.
func (m *MemoryStore) DeleteSession(id domain.SessionID) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PruneIdle removes sessions last updated before cutoff and returns how
// many were removed.
func (m *MemoryStore) PruneIdle(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, session := range m.sessions {
		if session.UpdatedUTC < cutoff.Unix() {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

var _ domain.SessionStore = (*MemoryStore)(nil)
