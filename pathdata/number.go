package pathdata

import (
	"strconv"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ParseNumber reads a decimal number, with an optional sign and exponent, at
// the start of b. It returns the value and the number of bytes consumed, which
// is 0 if b does not start with a number.
//
// Values written by Command.String parse back to the same float64.
func ParseNumber(b []byte) (float64, int) {
	f, n := tdstrconv.ParseFloat(b)
	if n == 0 || exactToken(b[:n]) {
		return f, n
	}
	if g, err := strconv.ParseFloat(string(b[:n]), 64); err == nil {
		return g, n
	}
	return f, n
}

// exactToken reports whether tok is in the range where the scanner's
// float conversion is correctly rounded: at most 15 significant digits,
// a bounded fraction and no exponent.
func exactToken(tok []byte) bool {
	if len(tok) > 22 {
		return false
	}
	digits := 0
	for _, c := range tok {
		switch {
		case c == 'e' || c == 'E':
			return false
		case c >= '1' && c <= '9', c == '0' && digits > 0:
			digits++
		}
	}
	return digits <= 15
}
