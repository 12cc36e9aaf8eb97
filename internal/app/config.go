package app

import "net/http"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string       // state directory, e.g. $HOME/.keycalc
	ServerURL string       // calcd base URL; empty means local sessions
	HTTP      *http.Client // optional; defaults to http.DefaultClient
}
