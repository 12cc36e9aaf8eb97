package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"keycalc/internal/domain"
	"keycalc/internal/engine"
)

// Service applies key presses to stored sessions.
//
// Each call loads the session from the store (a missing session starts
// cleared), runs the pure transition and persists the result. Key presses
// on one session are serialised; different sessions never block each other.
type Service struct {
	sessionStore domain.SessionStore
	now          func() time.Time

	mu    sync.Mutex
	locks map[domain.SessionID]*sessionLock
}

// sessionLock serialises presses on one session. refs counts the callers
// holding or waiting for it; the entry leaves Service.locks at zero.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// New constructs a Service backed by sessionStore.
func New(sessionStore domain.SessionStore) *Service {
	return &Service{
		sessionStore: sessionStore,
		now:          time.Now,
		locks:        make(map[domain.SessionID]*sessionLock),
	}
}

// SubmitKey presses key on session id and returns the new display.
//
// An unknown key leaves the session untouched and returns ErrUnknownKey
// together with the current display.
func (s *Service) SubmitKey(
	ctx context.Context,
	id domain.SessionID,
	key domain.Key,
) (domain.DisplayState, error) {
	if err := ctx.Err(); err != nil {
		return domain.DisplayState{}, err
	}
	unlock := s.lock(id)
	defer unlock()

	current, err := s.load(id)
	if err != nil {
		return domain.DisplayState{}, err
	}

	next, err := Apply(current, key)
	if err != nil {
		return Render(current), err
	}

	next.UpdatedUTC = s.now().Unix()
	if err := s.sessionStore.SaveSession(id, next); err != nil {
		return domain.DisplayState{}, fmt.Errorf("saving session %q: %w", id, err)
	}
	return Render(next), nil
}

// Display returns what session id currently shows.
func (s *Service) Display(ctx context.Context, id domain.SessionID) (domain.DisplayState, error) {
	if err := ctx.Err(); err != nil {
		return domain.DisplayState{}, err
	}
	current, err := s.load(id)
	if err != nil {
		return domain.DisplayState{}, err
	}
	return Render(current), nil
}

// Reset forgets session id. The next key press starts from a cleared display.
func (s *Service) Reset(ctx context.Context, id domain.SessionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.lock(id)
	defer unlock()
	return s.sessionStore.DeleteSession(id)
}

// Evaluate runs a complete expression and returns the canonical result text.
func (s *Service) Evaluate(ctx context.Context, expression string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := engine.Eval(expression)
	if err != nil {
		return "", err
	}
	return engine.FormatNumber(v), nil
}

// Session returns the stored state of id, cleared if it does not exist.
func (s *Service) Session(id domain.SessionID) (domain.Session, error) {
	return s.load(id)
}

func (s *Service) lock(id domain.SessionID) (unlock func()) {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = new(sessionLock)
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

func (s *Service) load(id domain.SessionID) (domain.Session, error) {
	sess, ok, err := s.sessionStore.LoadSession(id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("loading session %q: %w", id, err)
	}
	if !ok {
		return NewSession(id), nil
	}
	return sess, nil
}

// Compile-time assertion that Service implements domain.KeypadService.
var _ domain.KeypadService = (*Service)(nil)
