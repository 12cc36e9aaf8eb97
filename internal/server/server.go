package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"keycalc/internal/domain"
	"keycalc/internal/engine"
	"keycalc/internal/services/session"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 4 << 10

// Server serves calculator sessions over HTTP.
type Server struct {
	keypad   domain.KeypadService
	signer   domain.HandleSigner
	log      *slog.Logger
	router   *httprouter.Router
	upgrader websocket.Upgrader
}

// New builds a Server. A nil logger discards access logs.
func New(keypad domain.KeypadService, signer domain.HandleSigner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		keypad: keypad,
		signer: signer,
		log:    logger,
		router: httprouter.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Any page may drive a calculator; handles are the credential.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.setupRoutes()
	return s
}

// Handler returns the routed handler wrapped in the access log.
func (s *Server) Handler() http.Handler {
	return s.accessLog(s.router)
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	s.router.POST("/sessions", s.handleOpen)
	s.router.GET("/sessions/:handle", s.handleShow)
	s.router.DELETE("/sessions/:handle", s.handleReset)
	s.router.POST("/sessions/:handle/keys", s.handleKey)
	s.router.GET("/sessions/:handle/ws", s.handleStream)

	s.router.POST("/eval", s.handleEval)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := s.signer.NewSessionID()
	if err != nil {
		s.fail(w, err)
		return
	}
	display, err := s.keypad.Display(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, domain.OpenSessionResponse{
		Handle:  s.signer.Sign(id),
		Display: display,
	})
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := s.session(w, ps)
	if !ok {
		return
	}
	display, err := s.keypad.Display(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, display)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := s.session(w, ps)
	if !ok {
		return
	}
	if err := s.keypad.Reset(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := s.session(w, ps)
	if !ok {
		return
	}
	var req domain.KeyRequest
	if !readJSON(w, r, &req) {
		return
	}

	display, err := s.keypad.SubmitKey(r.Context(), id, req.Key)
	if errors.Is(err, session.ErrUnknownKey) {
		status, code := classify(err)
		writeJSON(w, status, domain.ErrorResponse{Error: err.Error(), Code: code, Display: &display})
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, display)
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req domain.EvalRequest
	if !readJSON(w, r, &req) {
		return
	}
	result, err := s.keypad.Evaluate(r.Context(), req.Expression)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.EvalResponse{Result: result})
}

// session resolves the :handle parameter, answering 404 when it does not
// verify.
func (s *Server) session(w http.ResponseWriter, ps httprouter.Params) (domain.SessionID, bool) {
	id, err := s.signer.Verify(domain.Handle(ps.ByName("handle")))
	if err != nil {
		writeJSON(w, http.StatusNotFound, domain.ErrorResponse{
			Error: "unknown session",
			Code:  domain.CodeUnknownSession,
		})
		return "", false
	}
	return id, true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	writeJSON(w, status, domain.ErrorResponse{Error: err.Error(), Code: code})
}

// classify maps an error to its HTTP status and ErrorResponse code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrMalformedExpression):
		return http.StatusUnprocessableEntity, domain.CodeMalformedExpression
	case errors.Is(err, engine.ErrDivisionByZero):
		return http.StatusUnprocessableEntity, domain.CodeDivisionByZero
	case errors.Is(err, engine.ErrOverflow):
		return http.StatusUnprocessableEntity, domain.CodeOverflow
	case errors.Is(err, session.ErrUnknownKey):
		return http.StatusBadRequest, domain.CodeUnknownKey
	default:
		return http.StatusInternalServerError, domain.CodeInternal
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Error: err.Error(), Code: domain.CodeBadRequest})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
