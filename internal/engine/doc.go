// Package engine turns calculator keystroke expressions into numbers.
//
// The pipeline has four stages, each a pure function of its input:
//
//   - Normalize maps display glyphs (–, −, ×, ÷) to ASCII operators.
//   - Tokenize splits the text into number and operator tokens, folding
//     unary minus into numbers and collapsing "--" into "+".
//   - ToRPN reorders tokens into postfix form with the shunting-yard
//     algorithm (precedence + - below * /, all left-associative).
//   - Evaluate runs the postfix sequence on a float64 stack.
//
// Eval chains the stages and FormatNumber renders a result back into the
// canonical decimal text the tokenizer accepts.
//
// # Errors
//
// Failures wrap ErrMalformedExpression, ErrDivisionByZero or ErrOverflow
// and should be matched with errors.Is.
package engine
