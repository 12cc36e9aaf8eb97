package types

// Clear button labels.
const (
	ClearAll   = "AC"
	ClearEntry = "C"
)

// DisplayState is everything a UI needs to render the calculator: the
// text to show verbatim and the label of the clear button.
type DisplayState struct {
	Text      string `json:"text"`
	ShowClear string `json:"show_clear"`
}
