package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"keycalc/internal/domain"
)

const sessionsFilename = "sessions.json"

// SessionFileStore persists expression sessions to a JSON file so that
// separate CLI invocations can keep pressing keys on the same display.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession writes the session record for id.
func (s *SessionFileStore) SaveSession(id domain.SessionID, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.readAll()
	if err != nil {
		return err
	}
	sessions[id] = session
	return s.writeAll(sessions)
}

// LoadSession retrieves the stored session for id.
func (s *SessionFileStore) LoadSession(id domain.SessionID) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.readAll()
	if err != nil {
		return domain.Session{}, false, err
	}
	session, ok := sessions[id]
	return session, ok, nil
}

// DeleteSession removes id. Deleting an unknown session is not an error.
func (s *SessionFileStore) DeleteSession(id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.readAll()
	if err != nil {
		return err
	}
	if _, ok := sessions[id]; !ok {
		return nil
	}
	delete(sessions, id)
	return s.writeAll(sessions)
}

func (s *SessionFileStore) path() string {
	return filepath.Join(s.dir, sessionsFilename)
}

func (s *SessionFileStore) readAll() (map[domain.SessionID]domain.Session, error) {
	sessions := map[domain.SessionID]domain.Session{}
	if _, err := readJSON(s.path(), &sessions); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path(), err)
	}
	return sessions, nil
}

func (s *SessionFileStore) writeAll(sessions map[domain.SessionID]domain.Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(s.path(), sessions, 0o600)
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
