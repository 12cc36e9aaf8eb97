package types

// OpenSessionResponse is returned by calcd when a session is created.
type OpenSessionResponse struct {
	Handle  Handle       `json:"handle"`
	Display DisplayState `json:"display"`
}

// KeyRequest is the body of POST /sessions/:handle/keys. Websocket streams
// send the bare key text instead.
type KeyRequest struct {
	Key Key `json:"key"`
}

// EvalRequest asks calcd to evaluate a complete expression.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse holds the canonical decimal result of an EvalRequest.
type EvalResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the body of every non-2xx calcd reply. Code is stable
// and machine readable; Display is set when a key press was rejected but
// the session still has something to show.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Code    string        `json:"code"`
	Display *DisplayState `json:"display,omitempty"`
}

// Error codes carried by ErrorResponse.
const (
	CodeMalformedExpression = "malformed_expression"
	CodeDivisionByZero      = "division_by_zero"
	CodeOverflow            = "overflow"
	CodeUnknownKey          = "unknown_key"
	CodeUnknownSession      = "unknown_session"
	CodeBadRequest          = "bad_request"
	CodeInternal            = "internal"
)

// KeyFrame is sent back by calcd for every key received on a websocket
// stream. Error and Code are set when the key was rejected.
type KeyFrame struct {
	Display DisplayState `json:"display"`
	Error   string       `json:"error,omitempty"`
	Code    string       `json:"code,omitempty"`
}
