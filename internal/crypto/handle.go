package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"

	"keycalc/internal/domain"
)

const (
	// KeySize is the signing key length used by NewRandomHandleSigner.
	KeySize = 32

	minKeySize = 16
	tagSize    = 16
	idBytes    = 12
)

// ErrBadHandle is returned when a handle is malformed or its tag does not
// match.
var ErrBadHandle = errors.New("invalid session handle")

// HandleSigner issues and checks signed session handles.
type HandleSigner struct {
	key []byte
}

// NewHandleSigner returns a signer for key, which must be between 16 and
// 64 bytes long. The key is copied.
func NewHandleSigner(key []byte) (*HandleSigner, error) {
	if len(key) < minKeySize || len(key) > blake2b.Size {
		return nil, fmt.Errorf("handle key: want %d..%d bytes, got %d", minKeySize, blake2b.Size, len(key))
	}
	return &HandleSigner{key: append([]byte(nil), key...)}, nil
}

// NewRandomHandleSigner returns a signer with a fresh random key. Handles
// it issues stop verifying once the process exits.
func NewRandomHandleSigner() (*HandleSigner, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	defer Wipe(key)
	return NewHandleSigner(key)
}

// DeriveHandleKey stretches a configured secret into a signing key.
func DeriveHandleKey(secret string) []byte {
	sum := blake2b.Sum256([]byte(secret))
	return sum[:]
}

// NewSessionID returns a random session identifier.
func (s *HandleSigner) NewSessionID() (domain.SessionID, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return domain.SessionID(hex.EncodeToString(b)), nil
}

// Sign returns the handle for id.
func (s *HandleSigner) Sign(id domain.SessionID) domain.Handle {
	return domain.Handle(id.String() + "." + encodeTag(s.tag(id)))
}

// Verify checks h and returns the session identifier it carries.
func (s *HandleSigner) Verify(h domain.Handle) (domain.SessionID, error) {
	raw := h.String()
	dot := strings.LastIndexByte(raw, '.')
	if dot <= 0 || dot == len(raw)-1 {
		return "", ErrBadHandle
	}
	id := domain.SessionID(raw[:dot])
	got, err := decodeTag(raw[dot+1:])
	if err != nil || len(got) != tagSize {
		return "", ErrBadHandle
	}
	if subtle.ConstantTimeCompare(got, s.tag(id)) != 1 {
		return "", ErrBadHandle
	}
	return id, nil
}

// Close wipes the signing key. The signer must not be used afterwards.
func (s *HandleSigner) Close() {
	Wipe(s.key)
}

func (s *HandleSigner) tag(id domain.SessionID) []byte {
	mac, err := blake2b.New(tagSize, s.key)
	if err != nil {
		// Key length is checked in NewHandleSigner.
		panic(err)
	}
	mac.Write([]byte(id))
	return mac.Sum(nil)
}

var _ domain.HandleSigner = (*HandleSigner)(nil)
