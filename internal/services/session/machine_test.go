package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycalc/internal/domain"
	"keycalc/internal/services/session"
)

// press applies keys in order to a cleared session and returns the final state.
func press(t *testing.T, keys ...domain.Key) domain.Session {
	t.Helper()
	return pressFrom(t, session.NewSession("test"), keys...)
}

func pressFrom(t *testing.T, s domain.Session, keys ...domain.Key) domain.Session {
	t.Helper()
	for _, k := range keys {
		var err error
		s, err = session.Apply(s, k)
		require.NoError(t, err, "key %q", k)
	}
	return s
}

func text(s domain.Session) string { return session.Render(s).Text }

func TestApply_Precedence(t *testing.T) {
	s := press(t, "3", "+", "4", "×", "2", "=")
	assert.Equal(t, "11", s.RawInput)
	assert.True(t, s.ResultPending)
	assert.Equal(t, domain.DisplayState{Text: "11", ShowClear: domain.ClearEntry}, session.Render(s))
}

func TestApply_DisplayGlyphs(t *testing.T) {
	assert.Equal(t, "5", text(press(t, "7", "–", "2", "=")))
	assert.Equal(t, "2.5", text(press(t, "1", "0", "÷", "4", "=")))
}

func TestApply_RepeatedEquals(t *testing.T) {
	s := press(t, "5", "+", "3", "=")
	assert.Equal(t, "8", text(s))
	s = pressFrom(t, s, "=")
	assert.Equal(t, "11", text(s))
	s = pressFrom(t, s, "=")
	assert.Equal(t, "14", text(s))
}

func TestApply_TrailingOperatorRepeatsOperand(t *testing.T) {
	s := press(t, "5", "+", "=")
	assert.Equal(t, "10", text(s))
	s = pressFrom(t, s, "=")
	assert.Equal(t, "15", text(s))
}

func TestApply_DivisionByZero(t *testing.T) {
	s := press(t, "1", "0", "/", "0", "=")
	assert.True(t, s.Errored)
	assert.Empty(t, s.RawInput)
	assert.Equal(t, domain.DisplayState{Text: "Error", ShowClear: domain.ClearAll}, session.Render(s))

	// Only AC leaves the error state.
	s = pressFrom(t, s, "7", "+", "=", "C", "%", "+/-")
	assert.True(t, s.Errored)
	assert.Equal(t, "Error", text(s))

	s = pressFrom(t, s, "AC")
	assert.False(t, s.Errored)
	assert.Equal(t, domain.DisplayState{Text: "0", ShowClear: domain.ClearAll}, session.Render(s))
}

func TestApply_RuntimeDivisionByZero(t *testing.T) {
	s := press(t, "5", "/", "0", ".", "0", "=")
	assert.True(t, s.Errored)
}

func TestApply_DigitsAfterResultStartFresh(t *testing.T) {
	s := press(t, "2", "+", "2", "=", "7")
	assert.Equal(t, "7", s.RawInput)
	assert.False(t, s.ResultPending)

	s = press(t, "2", "+", "2", "=", ".")
	assert.Equal(t, "0.", s.RawInput)
	assert.Equal(t, "0.", text(s))
}

func TestApply_OperatorAfterResultContinues(t *testing.T) {
	s := press(t, "2", "+", "2", "=", "×", "3", "=")
	assert.Equal(t, "12", text(s))
}

func TestApply_ZeroIsReplaced(t *testing.T) {
	assert.Equal(t, "7", press(t, "0", "7").RawInput)
	assert.Equal(t, "5+3", press(t, "5", "+", "0", "3").RawInput)
	assert.Equal(t, "-7", press(t, "+/-", "7").RawInput)
}

func TestApply_DecimalPoint(t *testing.T) {
	assert.Equal(t, "1.5", press(t, "1", ".", ".", "5", ".").RawInput)
	assert.Equal(t, "0.", press(t, ".").RawInput)
	assert.Equal(t, "3+0.5", press(t, "3", "+", ".", "5").RawInput)
}

func TestApply_OperatorReplacesTrailingOperator(t *testing.T) {
	s := press(t, "5", "+", "×", "–")
	assert.Equal(t, "5–", s.RawInput)
	assert.Equal(t, domain.DisplayState{Text: "5", ShowClear: domain.ClearAll}, session.Render(s))
	assert.Equal(t, "0", text(pressFrom(t, s, "=")))
}

func TestApply_OperatorOnEmptyInputComputes(t *testing.T) {
	s := press(t, "5", "C")
	require.Empty(t, s.RawInput)
	s = pressFrom(t, s, "+")
	assert.Empty(t, s.RawInput)
	assert.Equal(t, "0", text(s))
}

func TestApply_ToggleSign(t *testing.T) {
	tests := []struct {
		keys []domain.Key
		want string
	}{
		{[]domain.Key{"+/-"}, "-0"},
		{[]domain.Key{"+/-", "+/-"}, "0"},
		{[]domain.Key{"5", "+/-"}, "-5"},
		{[]domain.Key{"5", "+", "3", "+/-"}, "5+-3"},
		{[]domain.Key{"5", "-", "3", "+/-"}, "5--3"},
		{[]domain.Key{"5", "-", "+/-"}, "5--0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, press(t, tt.keys...).RawInput, "%v", tt.keys)
	}
}

func TestApply_ToggleSignIsAnInvolution(t *testing.T) {
	starts := [][]domain.Key{
		{"5"},
		{"1", "2", ".", "5"},
		{"5", "+", "3"},
		{"5", "-", "3"},
		{"5", "×", "+/-", "2"},
		{"9", "=", "="},
	}
	for _, keys := range starts {
		s := press(t, keys...)
		twice := pressFrom(t, s, "+/-", "+/-")
		assert.Equal(t, s.RawInput, twice.RawInput, "%v", keys)
	}

	zero := press(t, "0")
	negZero := pressFrom(t, zero, "+/-")
	assert.Equal(t, "-0", negZero.RawInput)
	assert.Equal(t, "0", pressFrom(t, negZero, "+/-").RawInput)
}

func TestApply_ToggleUndoesCollapsedDoubleNegative(t *testing.T) {
	s := press(t, "5", "-", "+/-", "3")
	assert.Equal(t, "5--3", s.RawInput)
	assert.Equal(t, "-3", text(s))
	assert.Equal(t, "8", text(pressFrom(t, s, "=")))

	s = pressFrom(t, s, "+/-")
	assert.Equal(t, "5-3", s.RawInput)
	assert.Equal(t, "2", text(pressFrom(t, s, "=")))
}

func TestApply_Percent(t *testing.T) {
	tests := []struct {
		keys    []domain.Key
		raw     string
		display string
	}{
		{[]domain.Key{"5", "0", "%"}, "0.5", "0.5"},
		{[]domain.Key{"2", "0", "0", "+", "1", "0", "%"}, "200+20", "20"},
		{[]domain.Key{"2", "0", "0", "–", "1", "0", "%"}, "200-20", "20"},
		{[]domain.Key{"5", "0", "×", "1", "0", "%"}, "50*0.1", "0.1"},
		{[]domain.Key{"5", "0", "÷", "5", "0", "%"}, "50/0.5", "0.5"},
		{[]domain.Key{"5", "+", "%"}, "5+", "5"},
	}
	for _, tt := range tests {
		s := press(t, tt.keys...)
		assert.Equal(t, tt.raw, s.RawInput, "%v", tt.keys)
		assert.Equal(t, tt.display, text(s), "%v", tt.keys)
	}

	assert.Equal(t, "220", text(press(t, "2", "0", "0", "+", "1", "0", "%", "=")))
}

func TestApply_PercentUsesOperandBeforeOperator(t *testing.T) {
	// 50% after "2*4+" is half of 4, not half of the running value 8.
	s := press(t, "2", "×", "4", "+", "5", "0", "%")
	assert.Equal(t, "2*4+2", s.RawInput)
	assert.Equal(t, "2", text(s))
	assert.Equal(t, "10", text(pressFrom(t, s, "=")))
}

func TestApply_PercentOfZeroIsIdentity(t *testing.T) {
	s := press(t, "0", "%")
	assert.Equal(t, session.NewSession("test"), s)
	assert.Equal(t, domain.DisplayState{Text: "0", ShowClear: domain.ClearAll}, session.Render(s))

	assert.Equal(t, "0", press(t, "+/-", "%").RawInput)
}

func TestApply_ClearEntryKeepsOperatorContext(t *testing.T) {
	s := press(t, "5", "+", "3", "C")
	assert.Equal(t, "5+", s.RawInput)
	s = pressFrom(t, s, "4", "=")
	assert.Equal(t, "9", text(s))

	s = press(t, "5", "+", "3", "=", "C")
	assert.Empty(t, s.RawInput)
	assert.False(t, s.ResultPending)
	assert.Equal(t, "0", text(s))
}

func TestApply_ClearAll(t *testing.T) {
	for _, keys := range [][]domain.Key{
		{"5", "+", "3", "AC"},
		{"1", "/", "0", "=", "AC"},
		{"9", "=", "AC"},
	} {
		s := press(t, keys...)
		assert.Equal(t, "0", s.RawInput)
		assert.False(t, s.ResultPending)
		assert.Empty(t, s.RepeatOperator)
	}
}

func TestApply_KeyboardAliases(t *testing.T) {
	assert.Equal(t, "4", text(press(t, "2", "+", "2", "Enter")))
	assert.Equal(t, "2+", press(t, "2", "+", "2", "Backspace").RawInput)
}

func TestApply_UnknownKey(t *testing.T) {
	s := press(t, "4")
	next, err := session.Apply(s, "sqrt")
	assert.ErrorIs(t, err, session.ErrUnknownKey)
	assert.Equal(t, s, next)
}

func TestRender_ClearLabel(t *testing.T) {
	tests := []struct {
		keys []domain.Key
		want string
	}{
		{nil, domain.ClearAll},
		{[]domain.Key{"0"}, domain.ClearAll},
		{[]domain.Key{"7"}, domain.ClearEntry},
		{[]domain.Key{"+/-"}, domain.ClearEntry},
		{[]domain.Key{"7", "+"}, domain.ClearAll},
		{[]domain.Key{"7", "="}, domain.ClearEntry},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, session.Render(press(t, tt.keys...)).ShowClear, "%v", tt.keys)
	}
}

func TestKeys_AllAccepted(t *testing.T) {
	for _, k := range session.Keys {
		_, err := session.Apply(session.NewSession("test"), k)
		assert.NoError(t, err, "key %q", k)
	}
}
