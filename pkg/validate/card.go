package validate

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ShiraazMoollatjie/goluhn"
)

// NormalizeCardNumber drops the spaces and dashes users type between digit groups.
func NormalizeCardNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, s)
}

func IsCardNumber(s string) bool {
	s = NormalizeCardNumber(s)
	if len(s) < 12 || len(s) > 19 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}

func CardBrand(s string) string {
	s = NormalizeCardNumber(s)
	switch {
	case strings.HasPrefix(s, "4"):
		return "visa"
	case hasPrefixInRange(s, 51, 55) || hasPrefixInRange(s, 2221, 2720):
		return "mastercard"
	case strings.HasPrefix(s, "34") || strings.HasPrefix(s, "37"):
		return "amex"
	default:
		return "unknown"
	}
}

func hasPrefixInRange(s string, from, to int) bool {
	width := len(strconv.Itoa(from))
	if len(s) < width {
		return false
	}
	prefix := 0
	for _, r := range s[:width] {
		prefix = prefix*10 + int(r-'0')
	}
	return prefix >= from && prefix <= to
}

// IsCardExpired reports whether the card is unusable at now; cards stay valid
// until the end of their expiration month.
func IsCardExpired(month, year int, now time.Time) bool {
	if month < 1 || month > 12 {
		return true
	}
	endOfMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return !now.UTC().Before(endOfMonth)
}
