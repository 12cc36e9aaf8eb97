package types

// Session is the persisted state of one calculator display.
//
// RawInput is the keystroke expression exactly as typed, display glyphs
// included. RepeatOperator/RepeatOperand remember the last applied
// operation so that pressing "=" again repeats it.
type Session struct {
	ID             SessionID `json:"id"`
	RawInput       string    `json:"raw_input"`
	ResultPending  bool      `json:"result_pending"`
	Errored        bool      `json:"errored"`
	RepeatOperator string    `json:"repeat_operator,omitempty"`
	RepeatOperand  string    `json:"repeat_operand,omitempty"`
	UpdatedUTC     int64     `json:"updated_utc"`
}
