package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycalc/internal/domain"
	"keycalc/internal/engine"
)

func num(s string) domain.Token { return domain.Number(s) }
func op(c byte) domain.Token    { return domain.Operator(c) }

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"7–2":    "7-2",
		"7−2":    "7-2",
		"3×4÷2":  "3*4/2",
		"50%":    "50",
		"1+2":    "1+2",
		"":       "",
		"–5×–5%": "-5*-5",
	}
	for in, want := range tests {
		assert.Equal(t, want, engine.Normalize(in), "Normalize(%q)", in)
	}
}

func TestTokenize_DigitStringsAreSingleNumbers(t *testing.T) {
	for _, d := range []string{"0", "7", "42", "007", "3.14", "1000000", "0.5"} {
		seq, err := engine.Tokenize(engine.Normalize(d))
		require.NoError(t, err, d)
		assert.Equal(t, []domain.Token{num(d)}, seq.Tokens, d)
		assert.False(t, seq.HadDoubleNegative)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in       string
		want     []domain.Token
		doubleNg bool
	}{
		{"3+4*2", []domain.Token{num("3"), op('+'), num("4"), op('*'), num("2")}, false},
		{"5--3", []domain.Token{num("5"), op('+'), num("3")}, true},
		{"-6", []domain.Token{num("-6")}, false},
		{"3*-4", []domain.Token{num("3"), op('*'), num("-4")}, false},
		{"5/-2", []domain.Token{num("5"), op('/'), num("-2")}, false},
		{"-5-3", []domain.Token{num("-5"), op('-'), num("3")}, false},
		{"5+", []domain.Token{num("5"), op('+')}, false},
		{"5--", []domain.Token{num("5"), op('+')}, true},
		{" 1 + 2 ", []domain.Token{num("1"), op('+'), num("2")}, false},
		{"5.", []domain.Token{num("5")}, false},
		{".5", []domain.Token{num("0.5")}, false},
		{"-0.", []domain.Token{num("-0")}, false},
		{"-0--0", []domain.Token{num("-0"), op('+'), num("0")}, true},
	}
	for _, tt := range tests {
		seq, err := engine.Tokenize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, seq.Tokens, tt.in)
		assert.Equal(t, tt.doubleNg, seq.HadDoubleNegative, tt.in)
	}
}

func TestTokenize_Empty(t *testing.T) {
	seq, err := engine.Tokenize("")
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
}

func TestTokenize_Malformed(t *testing.T) {
	for _, in := range []string{"2a", "1.2.3", "5*-", "5*+3", "5*--3", "(1)", "3×2"} {
		_, err := engine.Tokenize(in)
		assert.ErrorIs(t, err, engine.ErrMalformedExpression, in)
	}
}
