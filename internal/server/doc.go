// Package server implements the calcd HTTP API on top of a
// domain.KeypadService.
//
// HTTP API
//
//	POST   /sessions               open a session, returns {handle, display}
//	GET    /sessions/:handle       current display
//	POST   /sessions/:handle/keys  press {key}, returns the new display
//	DELETE /sessions/:handle       forget the session
//	GET    /sessions/:handle/ws    websocket, one key per text frame in,
//	                               one KeyFrame per key out
//	POST   /eval                   evaluate {expression}, returns {result}
//	GET    /healthz                liveness
//
// Handles are signed by a domain.HandleSigner; an unsigned or tampered
// handle is answered with 404. Failures carry a domain.ErrorResponse with a
// stable code. Each request produces one access-log line in which session
// identifiers are replaced by their fingerprints.
package server
