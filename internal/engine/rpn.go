package engine

import (
	"fmt"
	"strings"

	"keycalc/internal/domain"
)

var precedence = map[string]int{"+": 1, "-": 1, "*": 2, "/": 2}

// ToRPN converts infix tokens to postfix order with the shunting-yard
// algorithm. All operators are left-associative.
//
// A '/' followed directly by the literal 0 or -0 is rejected with
// ErrDivisionByZero and an empty sequence. A trailing operator repeats the
// operand before it, so "5 +" converts as "5 + 5".
func ToRPN(seq domain.TokenSequence) (domain.RPNSequence, error) {
	tokens := seq.Tokens
	output := make(domain.RPNSequence, 0, len(tokens)+1)
	var operators []domain.Token

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok.IsNumber():
			output = append(output, tok)

		// Sign left unfolded in a hand-built stream, e.g. [3 * - 4].
		case tok.Text == "-" && (i == 0 || tokens[i-1].IsOperator()) &&
			i+1 < len(tokens) && tokens[i+1].IsNumber():
			output = append(output, negate(tokens[i+1]))
			i++

		case tok.IsOperator():
			if _, ok := precedence[tok.Text]; !ok {
				return domain.RPNSequence{}, fmt.Errorf("%w: unknown operator %q", ErrMalformedExpression, tok.Text)
			}
			if tok.Text == "/" && i+1 < len(tokens) && isZeroLiteral(tokens[i+1]) {
				return domain.RPNSequence{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, previousText(tokens, i), tokens[i+1].Text)
			}
			if i == len(tokens)-1 && len(output) > 0 && output[len(output)-1].IsNumber() {
				output = append(output, output[len(output)-1])
			}
			for len(operators) > 0 && precedence[operators[len(operators)-1].Text] >= precedence[tok.Text] {
				output = append(output, operators[len(operators)-1])
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, tok)

		default:
			return domain.RPNSequence{}, fmt.Errorf("%w: token %q of kind %s", ErrMalformedExpression, tok.Text, tok.Kind)
		}
	}

	for len(operators) > 0 {
		output = append(output, operators[len(operators)-1])
		operators = operators[:len(operators)-1]
	}
	return output, nil
}

func isZeroLiteral(t domain.Token) bool {
	return t.IsNumber() && (t.Text == "0" || t.Text == "-0")
}

func negate(t domain.Token) domain.Token {
	if strings.HasPrefix(t.Text, "-") {
		return domain.Number(t.Text[1:])
	}
	return domain.Number("-" + t.Text)
}

func previousText(tokens []domain.Token, i int) string {
	if i == 0 {
		return "?"
	}
	return tokens[i-1].Text
}
