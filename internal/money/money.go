// Package money implements the currency input mask and parsing used by the
// forms. The mask is a display transform only: a raw digit string is read as
// cents and rendered in BRL with two decimals on every keystroke, so typing
// right-to-left fills cents first. The decimal value is only computed when a
// form is submitted.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gomoney "github.com/Rhymond/go-money"
)

// MaskDigits renders a raw input string as masked BRL: every non-digit is
// dropped and the remaining digits are interpreted as cents. An input with
// no digits yields the empty string (untouched field).
func MaskDigits(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}

	cents, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		// More digits than an int64 holds; keep the previous rendering
		// impossible and fall back to zero rather than corrupting the field.
		return FormatCents(0)
	}
	return FormatCents(cents)
}

// FormatCents renders a cent amount as BRL.
func FormatCents(cents int64) string {
	return gomoney.New(cents, gomoney.BRL).Display()
}

// FormatBRL renders a decimal amount as BRL for display.
func FormatBRL(value float64) string {
	return FormatCents(int64(math.Round(value * 100)))
}

// ParseBRL converts masked currency text to its decimal value: currency
// symbol, spaces and thousands dots are stripped and the decimal comma
// becomes a point. Empty input parses to zero.
func ParseBRL(s string) (float64, error) {
	cleaned := strings.NewReplacer("R$", "", " ", "", " ", "", ".", "").Replace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse currency value %q: %w", s, err)
	}
	return value, nil
}

// ParseBRLOrZero is ParseBRL with malformed input collapsing to zero, the
// lenient behavior the original form applied before submission.
func ParseBRLOrZero(s string) float64 {
	value, err := ParseBRL(s)
	if err != nil {
		return 0
	}
	return value
}
