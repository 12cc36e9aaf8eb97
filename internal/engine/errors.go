package engine

import "errors"

var (
	// ErrMalformedExpression reports text or tokens that do not form an
	// expression: unexpected characters, dangling signs, missing operands.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrDivisionByZero reports a zero divisor, found either in the token
	// stream or while evaluating.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow reports a result outside the finite float64 range.
	ErrOverflow = errors.New("numeric overflow")
)
