package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no digits", "abc", ""},
		{"single digit fills cents", "5", FormatCents(5)},
		{"two digits", "50", FormatCents(50)},
		{"whole value", "12345", FormatCents(12345)},
		{"ignores existing mask", "R$ 1.234,56", FormatCents(123456)},
		{"mixed garbage", "1a2b3", FormatCents(123)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskDigits(tt.in))
		})
	}
}

func TestMaskThenParseRoundTrip(t *testing.T) {
	// Typing digits and parsing at submission must agree: digits are cents.
	masked := MaskDigits("123456")
	value, err := ParseBRL(masked)
	assert.NoError(t, err)
	assert.InDelta(t, 1234.56, value, 0.001)
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"R$ 10,00", 10},
		{"R$ 1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"0,01", 0.01},
	}

	for _, tt := range tests {
		got, err := ParseBRL(tt.in)
		assert.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 0.001, tt.in)
	}
}

func TestParseBRLOrZeroMalformed(t *testing.T) {
	assert.Equal(t, 0.0, ParseBRLOrZero("abc"))
	assert.Equal(t, 0.0, ParseBRLOrZero("R$"))
}

func TestFormatBRLRounds(t *testing.T) {
	assert.Equal(t, FormatCents(1000), FormatBRL(9.999))
	assert.Equal(t, FormatCents(-550), FormatBRL(-5.5))
}
