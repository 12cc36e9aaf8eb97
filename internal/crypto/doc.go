// Package crypto signs the session handles calcd gives to its clients.
//
// Contents
//
//   - Keyed BLAKE2b tags binding a session identifier to the server key
//     (HandleSigner: Sign, Verify, NewSessionID)
//   - Short identifier fingerprints for log lines (Fingerprint)
//   - Best-effort wiping of key material (Wipe)
//
// # Notes
//
// A handle is "<session id>.<tag>" with the tag in unpadded base64url. A
// client that does not hold the server key cannot forge a handle for a
// session it was not given.
package crypto
