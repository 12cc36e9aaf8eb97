package engine

import "keycalc/internal/domain"

// Eval runs the whole pipeline on a raw display expression.
func Eval(expr string) (float64, error) {
	seq, err := Tokenize(Normalize(expr))
	if err != nil {
		return 0, err
	}
	return EvalTokens(seq)
}

// EvalTokens converts and evaluates an already tokenized expression.
func EvalTokens(seq domain.TokenSequence) (float64, error) {
	rpn, err := ToRPN(seq)
	if err != nil {
		return 0, err
	}
	return Evaluate(rpn)
}
