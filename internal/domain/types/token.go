package types

// TokenKind tags a Token as a number or an operator.
type TokenKind int

const (
	// TokenNumber carries decimal text matching -?\d+(\.\d+)?.
	TokenNumber TokenKind = iota
	// TokenOperator carries one of + - * /.
	TokenOperator
)

// String returns a short name for the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of an arithmetic expression.
//
// Numbers stay as decimal text until evaluation so no precision is lost
// while the expression is being rearranged.
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
}

// Number returns a number token for text.
func Number(text string) Token { return Token{Kind: TokenNumber, Text: text} }

// Operator returns an operator token for op.
func Operator(op byte) Token { return Token{Kind: TokenOperator, Text: string(op)} }

// IsNumber reports whether t is a number token.
func (t Token) IsNumber() bool { return t.Kind == TokenNumber }

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool { return t.Kind == TokenOperator }

// String returns the token text.
func (t Token) String() string { return t.Text }

// TokenSequence is the tokenizer output.
//
// HadDoubleNegative records that a "--" pair was collapsed into a "+"
// operator, which the sign toggle needs to undo the collapse.
type TokenSequence struct {
	Tokens            []Token `json:"tokens"`
	HadDoubleNegative bool    `json:"had_double_negative,omitempty"`
}

// Len returns the number of tokens.
func (s TokenSequence) Len() int { return len(s.Tokens) }

// Last returns the final token, if any.
func (s TokenSequence) Last() (Token, bool) {
	if len(s.Tokens) == 0 {
		return Token{}, false
	}
	return s.Tokens[len(s.Tokens)-1], true
}

// RPNSequence holds tokens in postfix order.
type RPNSequence []Token
