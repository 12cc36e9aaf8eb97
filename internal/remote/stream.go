package remote

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"keycalc/internal/domain"
)

// Stream is an open websocket to one calcd session. It is not safe for
// concurrent use.
type Stream struct {
	conn *websocket.Conn
}

// Stream dials the websocket endpoint of session id.
func (c *Client) Stream(ctx context.Context, id domain.SessionID) (*Stream, error) {
	u := c.Base + sessionPath(id) + "/ws"
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		if resp != nil && errors.Is(err, websocket.ErrBadHandshake) {
			se := &StatusError{Method: http.MethodGet, Path: sessionPath(id) + "/ws", Status: resp.Status}
			if resp.StatusCode == http.StatusNotFound {
				se.Body.Code = domain.CodeUnknownSession
			}
			return nil, se
		}
		return nil, err
	}
	return &Stream{conn: conn}, nil
}

// Press sends key and waits for the resulting display. A rejected key
// returns the unchanged display and an error matching the server's code.
func (s *Stream) Press(key domain.Key) (domain.DisplayState, error) {
	if err := s.conn.WriteMessage(websocket.TextMessage, []byte(key)); err != nil {
		return domain.DisplayState{}, err
	}
	var frame domain.KeyFrame
	if err := s.conn.ReadJSON(&frame); err != nil {
		return domain.DisplayState{}, err
	}
	if frame.Code != "" {
		if sentinel := codeError(frame.Code); sentinel != nil {
			return frame.Display, sentinel
		}
		return frame.Display, errors.New(frame.Error)
	}
	return frame.Display, nil
}

// Close says goodbye to the server and closes the connection.
func (s *Stream) Close() error {
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}
