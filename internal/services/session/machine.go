package session

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"keycalc/internal/domain"
	"keycalc/internal/engine"
)

// identity is what a cleared display holds.
const identity = "0"

// errorText is shown while a session is in the Error state.
const errorText = "Error"

// NewSession returns a session in the cleared state.
func NewSession(id domain.SessionID) domain.Session {
	return domain.Session{ID: id, RawInput: identity}
}

// Apply returns the state after pressing key. The input state is not
// modified. Only an unknown key is an error; arithmetic failures move the
// session into the Error state instead.
func Apply(s domain.Session, key domain.Key) (domain.Session, error) {
	kind, err := classify(key)
	if err != nil {
		return s, err
	}
	if s.Errored && kind != keyClearAll {
		return s, nil
	}

	switch kind {
	case keyDigit:
		return digit(s, string(key)), nil
	case keyPoint:
		return point(s), nil
	case keyOperator:
		return operator(s, string(key)), nil
	case keyEquals:
		return equals(s), nil
	case keyPercent:
		return percent(s), nil
	case keyToggleSign:
		return toggleSign(s), nil
	case keyClearEntry:
		return clearEntry(s), nil
	default:
		return clearAll(s), nil
	}
}

// Render returns what the display shows for s: the operand being typed,
// the previous operand while an operator waits for the next one, or the
// last result.
func Render(s domain.Session) domain.DisplayState {
	if s.Errored {
		return domain.DisplayState{Text: errorText, ShowClear: domain.ClearAll}
	}

	raw := s.RawInput
	signAt, digitsAt := trailingOperand(raw)
	inProgress := digitsAt < len(raw)
	if !inProgress {
		if r, size := utf8.DecodeLastRuneInString(raw); size > 0 && engine.IsOperatorGlyph(r) {
			raw = raw[:len(raw)-size]
			signAt, digitsAt = trailingOperand(raw)
		}
	}

	text := identity
	if digitsAt < len(raw) {
		text = engine.Normalize(raw[signAt:])
	}

	label := domain.ClearAll
	if s.ResultPending || (inProgress && text != identity) {
		label = domain.ClearEntry
	}
	return domain.DisplayState{Text: text, ShowClear: label}
}

func digit(s domain.Session, d string) domain.Session {
	if s.ResultPending {
		return fresh(s, d)
	}
	_, digitsAt := trailingOperand(s.RawInput)
	if s.RawInput[digitsAt:] == identity {
		// "0", "-0" and "5+0" all take the new digit in place of the zero.
		s.RawInput = s.RawInput[:digitsAt] + d
		return s
	}
	s.RawInput += d
	return s
}

func point(s domain.Session) domain.Session {
	if s.ResultPending {
		return fresh(s, "0.")
	}
	_, digitsAt := trailingOperand(s.RawInput)
	run := s.RawInput[digitsAt:]
	switch {
	case run == "":
		s.RawInput += "0."
	case !strings.Contains(run, "."):
		s.RawInput += "."
	}
	return s
}

func operator(s domain.Session, op string) domain.Session {
	if s.RawInput == "" {
		return equals(s)
	}
	if r, size := utf8.DecodeLastRuneInString(s.RawInput); engine.IsOperatorGlyph(r) {
		s.RawInput = s.RawInput[:len(s.RawInput)-size]
	}
	s.RawInput += op
	s.ResultPending = false
	s.RepeatOperator, s.RepeatOperand = "", ""
	return s
}

func equals(s domain.Session) domain.Session {
	if s.RawInput == "" {
		return s
	}
	expr := s.RawInput
	if s.ResultPending && s.RepeatOperator != "" {
		expr += s.RepeatOperator + s.RepeatOperand
	}

	seq, err := engine.Tokenize(engine.Normalize(expr))
	if err != nil {
		return failed(s)
	}
	v, err := engine.EvalTokens(seq)
	if err != nil {
		return failed(s)
	}

	s.RawInput = engine.FormatNumber(v)
	s.ResultPending = true
	s.RepeatOperator, s.RepeatOperand = repeatMemory(seq)
	return s
}

// repeatMemory picks the operation a further "=" repeats: the last operator
// with the operand after it, or with the operand before it when the
// expression ended on the operator ("5+" repeats "+5").
func repeatMemory(seq domain.TokenSequence) (op, operand string) {
	t := seq.Tokens
	n := len(t)
	switch {
	case n >= 2 && t[n-1].IsOperator() && t[n-2].IsNumber():
		return t[n-1].Text, t[n-2].Text
	case n >= 3 && t[n-1].IsNumber() && t[n-2].IsOperator():
		return t[n-2].Text, t[n-1].Text
	}
	return "", ""
}

func percent(s domain.Session) domain.Session {
	if s.RawInput == "" {
		return s
	}
	if r, _ := utf8.DecodeLastRuneInString(s.RawInput); engine.IsOperatorGlyph(r) {
		return s
	}

	seq, err := engine.Tokenize(engine.Normalize(s.RawInput))
	if err != nil {
		return failed(s)
	}
	t := seq.Tokens
	n := len(t)
	if n == 0 || !t[n-1].IsNumber() {
		return s
	}
	last, err := strconv.ParseFloat(t[n-1].Text, 64)
	if err != nil {
		return failed(s)
	}

	v := last / 100
	if n >= 3 && (t[n-2].Text == "+" || t[n-2].Text == "-") {
		prev, err := strconv.ParseFloat(t[n-3].Text, 64)
		if err != nil {
			return failed(s)
		}
		v *= prev
	}

	if n == 1 && v == 0 {
		s.RawInput = identity
		return s
	}

	var b strings.Builder
	for _, tok := range t[:n-1] {
		b.WriteString(tok.Text)
	}
	b.WriteString(engine.FormatNumber(v))
	s.RawInput = b.String()
	s.ResultPending = true
	return s
}

func toggleSign(s domain.Session) domain.Session {
	raw := s.RawInput
	signAt, digitsAt := trailingOperand(raw)
	switch {
	case digitsAt == len(raw):
		// Nothing typed yet, or an operator waiting for its operand.
		s.RawInput = raw + "-0"
	case signAt < digitsAt:
		// When the sign is the second half of "--", Tokenize had read the
		// pair as "+"; dropping the sign turns that back into "-".
		s.RawInput = raw[:signAt] + raw[digitsAt:]
	default:
		s.RawInput = raw[:digitsAt] + "-" + raw[digitsAt:]
	}
	return s
}

func clearEntry(s domain.Session) domain.Session {
	if s.ResultPending {
		s.RawInput = ""
		s.ResultPending = false
		s.RepeatOperator, s.RepeatOperand = "", ""
		return s
	}
	signAt, _ := trailingOperand(s.RawInput)
	s.RawInput = s.RawInput[:signAt]
	return s
}

func clearAll(s domain.Session) domain.Session {
	return NewSession(s.ID)
}

func fresh(s domain.Session, raw string) domain.Session {
	s.RawInput = raw
	s.ResultPending = false
	s.RepeatOperator, s.RepeatOperand = "", ""
	return s
}

func failed(s domain.Session) domain.Session {
	s.RawInput = ""
	s.Errored = true
	s.ResultPending = false
	s.RepeatOperator, s.RepeatOperand = "", ""
	return s
}

// trailingOperand locates the operand at the end of raw. raw[digitsAt:] is
// its digits and decimal point; raw[signAt:digitsAt] is its leading minus
// when that minus is a sign rather than a subtraction. Both equal len(raw)
// when raw ends with an operator or is empty.
func trailingOperand(raw string) (signAt, digitsAt int) {
	digitsAt = len(raw)
	for digitsAt > 0 {
		c := raw[digitsAt-1]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		digitsAt--
	}
	signAt = digitsAt
	if digitsAt == len(raw) {
		return signAt, digitsAt
	}

	r, size := utf8.DecodeLastRuneInString(raw[:digitsAt])
	if size == 0 || engine.CanonicalOperator(r) != '-' {
		return signAt, digitsAt
	}
	before := raw[:digitsAt-size]
	if p, _ := utf8.DecodeLastRuneInString(before); before == "" || engine.IsOperatorGlyph(p) {
		signAt = digitsAt - size
	}
	return signAt, digitsAt
}
