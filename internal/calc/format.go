package calc

import (
	"math"
	"strconv"
)

// FormatNumber renders v as the shortest plain decimal that parses back to
// v. Exponent notation is never used so the text can be evaluated again,
// and negative zero is shown as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNumber reads the whole of s as one finite number
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidInput
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrInvalidInput
	}
	return v, nil
}
