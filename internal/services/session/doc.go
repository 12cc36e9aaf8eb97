// Package session implements the calculator's expression session.
//
// A session owns the raw keystroke expression behind one display. Apply
// is the pure transition function for a single key press and Render turns
// the resulting state into what the display shows. Service persists
// sessions through a domain.SessionStore so that a CLI or a server can
// drive many independent displays.
//
// Evaluation errors never escape a session: a failed "=" puts the session
// into the Error state, which only "AC" leaves.
package session
