package types

// SessionID names a stored expression session.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Handle is the signed, client-facing form of a SessionID issued by calcd.
type Handle string

// String returns the string form of the handle.
func (h Handle) String() string { return string(h) }

// Key is a single calculator key press, e.g. "7", "×", "+/-" or "AC".
type Key string

// String returns the string form of the key.
func (k Key) String() string { return string(k) }
