package validate

import (
	"strings"
	"unicode"
)

const (
	MinTicketDigits = 2
	MaxTicketDigits = 6
)

// TicketNumber strips whitespace from s and reports whether what is left is
// a 2 to 6 digit lottery number.
func TicketNumber(s string) (string, bool) {
	number := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if len(number) < MinTicketDigits || len(number) > MaxTicketDigits {
		return number, false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return number, false
		}
	}
	return number, true
}
