package engine

import "strconv"

// FormatNumber renders v as the shortest decimal text that parses back to
// v, without exponent notation. Negative zero prints as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
