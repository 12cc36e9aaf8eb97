package domain

import (
	interfaces "keycalc/internal/domain/interfaces"
	types "keycalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID     = types.SessionID
	Handle        = types.Handle
	Key           = types.Key
	TokenKind     = types.TokenKind
	Token         = types.Token
	TokenSequence = types.TokenSequence
	RPNSequence   = types.RPNSequence
	Session       = types.Session
	DisplayState  = types.DisplayState

	OpenSessionResponse = types.OpenSessionResponse
	KeyRequest          = types.KeyRequest
	EvalRequest         = types.EvalRequest
	EvalResponse        = types.EvalResponse
	ErrorResponse       = types.ErrorResponse
	KeyFrame            = types.KeyFrame
)

// Token kinds.
const (
	TokenNumber   = types.TokenNumber
	TokenOperator = types.TokenOperator
)

// Clear button labels.
const (
	ClearAll   = types.ClearAll
	ClearEntry = types.ClearEntry
)

// Error codes carried by ErrorResponse.
const (
	CodeMalformedExpression = types.CodeMalformedExpression
	CodeDivisionByZero      = types.CodeDivisionByZero
	CodeOverflow            = types.CodeOverflow
	CodeUnknownKey          = types.CodeUnknownKey
	CodeUnknownSession      = types.CodeUnknownSession
	CodeBadRequest          = types.CodeBadRequest
	CodeInternal            = types.CodeInternal
)

// Token constructors.
var (
	Number   = types.Number
	Operator = types.Operator
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeypadService = interfaces.KeypadService
	SessionOpener = interfaces.SessionOpener
	SessionStore  = interfaces.SessionStore
	HandleSigner  = interfaces.HandleSigner
)
