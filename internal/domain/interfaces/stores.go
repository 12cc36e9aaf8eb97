package interfaces

import domaintypes "keycalc/internal/domain/types"

// SessionStore persists expression sessions between key presses.
type SessionStore interface {
	SaveSession(id domaintypes.SessionID, session domaintypes.Session) error
	LoadSession(id domaintypes.SessionID) (domaintypes.Session, bool, error)
	DeleteSession(id domaintypes.SessionID) error
}

// HandleSigner issues session identifiers and converts them to and from
// signed handles.
type HandleSigner interface {
	NewSessionID() (domaintypes.SessionID, error)
	Sign(id domaintypes.SessionID) domaintypes.Handle
	Verify(h domaintypes.Handle) (domaintypes.SessionID, error)
}
