package engine

import (
	"fmt"
	"strings"
	"unicode"

	"keycalc/internal/domain"
)

// Tokenize splits a normalized expression into tokens.
//
// A '-' at the start or right after another operator is the sign of the
// following number. Two consecutive '-' collapse into a single '+' and set
// HadDoubleNegative. Empty input yields an empty sequence; a trailing
// operator is kept for ToRPN to handle.
func Tokenize(s string) (domain.TokenSequence, error) {
	var (
		seq domain.TokenSequence
		num strings.Builder
	)

	flush := func() error {
		if num.Len() == 0 {
			return nil
		}
		text, err := canonicalNumber(num.String())
		num.Reset()
		if err != nil {
			return err
		}
		seq.Tokens = append(seq.Tokens, domain.Number(text))
		return nil
	}
	afterOperator := func() bool {
		last, ok := seq.Last()
		return !ok || last.IsOperator()
	}
	emit := func(op byte, pos int) error {
		if last, ok := seq.Last(); ok && last.IsOperator() {
			return fmt.Errorf("%w: operator %q follows %q at %d",
				ErrMalformedExpression, op, last.Text, pos)
		}
		seq.Tokens = append(seq.Tokens, domain.Operator(op))
		return nil
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isDigit(r) || r == '.':
			num.WriteRune(r)

		case r == '+' || r == '-' || r == '*' || r == '/':
			if err := flush(); err != nil {
				return domain.TokenSequence{}, err
			}
			switch {
			case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
				if err := emit('+', i); err != nil {
					return domain.TokenSequence{}, err
				}
				seq.HadDoubleNegative = true
				i++
			case r == '-' && afterOperator():
				num.WriteByte('-')
			default:
				if err := emit(byte(r), i); err != nil {
					return domain.TokenSequence{}, err
				}
			}

		case unicode.IsSpace(r):

		default:
			return domain.TokenSequence{}, fmt.Errorf("%w: unexpected character %q at %d",
				ErrMalformedExpression, r, i)
		}
	}
	if err := flush(); err != nil {
		return domain.TokenSequence{}, err
	}
	return seq, nil
}

// canonicalNumber rewrites buffered number text into the -?\d+(\.\d+)?
// form: "5." becomes "5" and ".5" becomes "0.5".
func canonicalNumber(text string) (string, error) {
	sign, body := "", text
	if strings.HasPrefix(body, "-") {
		sign, body = "-", body[1:]
	}
	if strings.Count(body, ".") > 1 {
		return "", fmt.Errorf("%w: number %q has more than one decimal point", ErrMalformedExpression, text)
	}
	body = strings.TrimSuffix(body, ".")
	if body == "" {
		return "", fmt.Errorf("%w: sign without digits", ErrMalformedExpression)
	}
	if strings.HasPrefix(body, ".") {
		body = "0" + body
	}
	return sign + body, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
