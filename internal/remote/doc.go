// Package remote is the HTTP client for calcd.
//
// Client implements domain.KeypadService and domain.SessionOpener so the
// CLI can drive a calcd session exactly like a local one. The session
// identifier it hands out is the opaque signed handle issued by calcd.
//
// Non-2xx replies are returned as *StatusError. Its Unwrap maps the
// server's error code back to the matching sentinel (engine.ErrDivisionByZero,
// session.ErrUnknownKey, ErrNotFound and so on) so callers can use
// errors.Is the same way for local and remote sessions.
//
// Stream opens the websocket endpoint for low-latency key presses.
package remote
