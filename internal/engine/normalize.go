package engine

import "strings"

var glyphs = strings.NewReplacer(
	"–", "-", // en dash, used by the display minus key
	"−", "-", // U+2212 minus sign
	"×", "*",
	"÷", "/",
	"%", "",
)

// Normalize maps display-only glyphs to the ASCII operators the tokenizer
// understands and strips percent signs.
func Normalize(s string) string {
	return glyphs.Replace(s)
}

// IsOperatorGlyph reports whether r is an arithmetic operator in either its
// ASCII or its display form.
func IsOperatorGlyph(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '–', '−', '×', '÷':
		return true
	}
	return false
}

// CanonicalOperator returns the ASCII operator for r, or 0 if r is not an
// operator.
func CanonicalOperator(r rune) byte {
	switch r {
	case '+':
		return '+'
	case '-', '–', '−':
		return '-'
	case '*', '×':
		return '*'
	case '/', '÷':
		return '/'
	}
	return 0
}
