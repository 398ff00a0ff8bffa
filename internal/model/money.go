package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAmount reports an amount string that is not a decimal number.
var ErrMalformedAmount = errors.New("malformed amount")

// ParseCents converts a decimal amount string to integer cents. The backend
// serializes amounts with two decimal places ("50.00"), but user input like
// "50" or "50.5" is accepted too. Integer cents keep every downstream sum
// exact; nothing in the client does float arithmetic on money.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMalformedAmount
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, ErrMalformedAmount
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two decimal places in %q", ErrMalformedAmount, s)
	}
	// ParseInt would accept a sign inside either part ("1.-5", "+5");
	// only plain digits are a valid amount.
	if !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	// Pad "50.5" to 50 cents, not 5.
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	hundredths, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}

	cents := units*100 + hundredths
	if negative {
		cents = -cents
	}
	return cents, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatCents renders integer cents as a decimal string with two places,
// the same shape the backend uses on the wire.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
