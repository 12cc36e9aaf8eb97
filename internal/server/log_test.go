package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"keycalc/internal/crypto"
)

func TestRedactPath(t *testing.T) {
	fp := crypto.Fingerprint("abc")
	tests := map[string]string{
		"/healthz":             "/healthz",
		"/sessions":            "/sessions",
		"/sessions/":           "/sessions/",
		"/sessions/abc.tag":    "/sessions/" + fp,
		"/sessions/abc.tag/ws": "/sessions/" + fp + "/ws",
		"/sessions/abc/keys":   "/sessions/" + fp + "/keys",
	}
	for in, want := range tests {
		assert.Equal(t, want, redactPath(in), in)
	}
}
