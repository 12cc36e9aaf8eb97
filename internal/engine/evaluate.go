package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"keycalc/internal/domain"
)

// Evaluate runs a postfix sequence on a float64 stack and returns the single
// value left on it.
//
// Operators pop b then a and push a op b. A zero divisor stops evaluation
// with ErrDivisionByZero; an empty sequence, a missing operand or leftover
// values are ErrMalformedExpression.
func Evaluate(rpn domain.RPNSequence) (float64, error) {
	if len(rpn) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}

	stack := make([]float64, 0, len(rpn))
	for _, tok := range rpn {
		if tok.IsNumber() {
			v, err := strconv.ParseFloat(tok.Text, 64)
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: %s", ErrOverflow, tok.Text)
			}
			if err != nil {
				return 0, fmt.Errorf("%w: bad number %q", ErrMalformedExpression, tok.Text)
			}
			stack = append(stack, v)
			continue
		}

		if len(stack) < 2 {
			return 0, fmt.Errorf("%w: operator %q is missing an operand", ErrMalformedExpression, tok.Text)
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		v, err := apply(tok.Text, a, b)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformedExpression, len(stack))
	}
	v := stack[0]
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrOverflow
	}
	return v, nil
}

func apply(op string, a, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, FormatNumber(a), FormatNumber(b))
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedExpression, op)
}
