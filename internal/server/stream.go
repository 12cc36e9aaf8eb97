package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"keycalc/internal/domain"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second

	// Ping period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Largest key frame accepted from the peer.
	maxFrameSize = 512
)

// handleStream upgrades to a websocket and presses every received key on
// the session in order, answering each with a KeyFrame.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := s.session(w, ps)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client.
		return
	}
	defer conn.Close()

	send := make(chan domain.KeyFrame, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.writePump(conn, send)
	}()

	s.readPump(r.Context(), conn, id, send)
	close(send)
	<-done
}

func (s *Server) readPump(ctx context.Context, conn *websocket.Conn, id domain.SessionID, send chan<- domain.KeyFrame) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("stream read", "err", err)
			}
			return
		}

		key := domain.Key(strings.TrimSpace(string(msg)))
		display, err := s.keypad.SubmitKey(ctx, id, key)
		frame := domain.KeyFrame{Display: display}
		if err != nil {
			status, code := classify(err)
			if status >= http.StatusInternalServerError {
				s.log.Error("stream key", "err", err)
			}
			frame.Error, frame.Code = err.Error(), code
		}
		send <- frame
	}
}

// writePump owns all writes on conn. After a failed write it closes conn,
// which ends readPump, and drains send until it is closed.
func (s *Server) writePump(conn *websocket.Conn, send <-chan domain.KeyFrame) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(frame); err != nil {
				s.log.Warn("stream write", "err", err)
				conn.Close()
				for range send {
				}
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				for range send {
				}
				return
			}
		}
	}
}
