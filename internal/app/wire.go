package app

import (
	"errors"
	"net/http"
	"strings"

	"keycalc/internal/domain"
	"keycalc/internal/remote"
	sessionsvc "keycalc/internal/services/session"
	"keycalc/internal/store"
)

// Wire bundles the keypad service and whatever backs it.
type Wire struct {
	Keypad domain.KeypadService

	// Local mode only.
	Sessions domain.SessionStore

	// Remote mode only.
	Opener domain.SessionOpener
	Remote *remote.Client
	HTTP   *http.Client
}

// IsRemote reports whether sessions live on a calcd server.
func (w *Wire) IsRemote() bool { return w.Remote != nil }

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.ServerURL != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		rc := remote.New(strings.TrimRight(cfg.ServerURL, "/"), httpClient)
		return &Wire{
			Keypad: rc,
			Opener: rc,
			Remote: rc,
			HTTP:   httpClient,
		}, nil
	}

	if cfg.Home == "" {
		return nil, errors.New("home directory not set")
	}
	sessionStore := store.NewSessionFileStore(cfg.Home)
	return &Wire{
		Keypad:   sessionsvc.New(sessionStore),
		Sessions: sessionStore,
	}, nil
}
