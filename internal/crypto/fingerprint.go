package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"keycalc/internal/domain"
)

// Fingerprint returns a short hex digest of id for log lines, so that logs
// never carry a usable session identifier.
//
// It hashes with BLAKE2b-256 and truncates to 6 bytes (12 hex chars).
func Fingerprint(id domain.SessionID) string {
	sum := blake2b.Sum256([]byte(id))
	return hex.EncodeToString(sum[:6])
}
