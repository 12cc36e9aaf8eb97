package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"keycalc/internal/domain"
	"keycalc/internal/engine"
	"keycalc/internal/services/session"
)

// ErrNotFound is returned when calcd does not recognise a session handle.
var ErrNotFound = errors.New("session not found")

// StatusError is a non-2xx reply from calcd.
type StatusError struct {
	Method string
	Path   string
	Status string
	Body   domain.ErrorResponse
}

func (e *StatusError) Error() string {
	if e.Body.Error != "" {
		return fmt.Sprintf("calcd %s %s: %s: %s", e.Method, e.Path, e.Status, e.Body.Error)
	}
	return fmt.Sprintf("calcd %s %s: %s", e.Method, e.Path, e.Status)
}

// Unwrap returns the sentinel matching the reply's error code, if any.
func (e *StatusError) Unwrap() error { return codeError(e.Body.Code) }

func codeError(code string) error {
	switch code {
	case domain.CodeMalformedExpression:
		return engine.ErrMalformedExpression
	case domain.CodeDivisionByZero:
		return engine.ErrDivisionByZero
	case domain.CodeOverflow:
		return engine.ErrOverflow
	case domain.CodeUnknownKey:
		return session.ErrUnknownKey
	case domain.CodeUnknownSession:
		return ErrNotFound
	}
	return nil
}

// Client talks to a calcd server at Base.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a Client for base. A nil httpClient uses http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// OpenSession creates a session on the server.
func (c *Client) OpenSession(ctx context.Context) (domain.SessionID, domain.DisplayState, error) {
	var out domain.OpenSessionResponse
	if err := c.do(ctx, http.MethodPost, "/sessions", nil, &out); err != nil {
		return "", domain.DisplayState{}, err
	}
	return domain.SessionID(out.Handle), out.Display, nil
}

// SubmitKey presses key on the session. A rejected key returns the
// session's current display along with the error.
func (c *Client) SubmitKey(ctx context.Context, id domain.SessionID, key domain.Key) (domain.DisplayState, error) {
	var out domain.DisplayState
	err := c.do(ctx, http.MethodPost, sessionPath(id)+"/keys", domain.KeyRequest{Key: key}, &out)
	var se *StatusError
	if errors.As(err, &se) && se.Body.Display != nil {
		return *se.Body.Display, err
	}
	return out, err
}

// Display returns what the session currently shows.
func (c *Client) Display(ctx context.Context, id domain.SessionID) (domain.DisplayState, error) {
	var out domain.DisplayState
	return out, c.do(ctx, http.MethodGet, sessionPath(id), nil, &out)
}

// Reset forgets the session on the server.
func (c *Client) Reset(ctx context.Context, id domain.SessionID) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id), nil, nil)
}

// Evaluate evaluates a complete expression on the server.
func (c *Client) Evaluate(ctx context.Context, expression string) (string, error) {
	var out domain.EvalResponse
	if err := c.do(ctx, http.MethodPost, "/eval", domain.EvalRequest{Expression: expression}, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

func sessionPath(id domain.SessionID) string {
	return "/sessions/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, &body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		se := &StatusError{Method: method, Path: path, Status: resp.Status}
		// Best effort; a proxy may answer with something that is not JSON.
		_ = json.NewDecoder(resp.Body).Decode(&se.Body)
		return se
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Compile-time assertions that Client implements the domain interfaces.
var (
	_ domain.KeypadService = (*Client)(nil)
	_ domain.SessionOpener = (*Client)(nil)
)
