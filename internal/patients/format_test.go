package patients

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNationalID(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"12345678901", "123.456.789-01"},
		{"123.456.789-01", "123.456.789-01"},
		{"1234567890", "1234567890"},
		{"123456789012", "123456789012"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatNationalID(tc.in), "input %q", tc.in)
	}
}

func TestFormatNationalID_RoundTrip(t *testing.T) {
	// Formatting then stripping yields the original canonical digits.
	for i := 0; i < 20; i++ {
		digits := fmt.Sprintf("%011d", i*5273976553)
		digits = digits[len(digits)-11:]
		assert.Equal(t, digits, Digits(FormatNationalID(digits)))
	}
}

func TestFormatMobile(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"11987654321", "(11) 98765-4321"},
		{"1133334444", "(11) 3333-4444"},
		{"987654321", "987654321"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatMobile(tc.in), "input %q", tc.in)
	}
}

func TestFormatBirthDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1990-03-15", "15/03/1990"},
		{"15/03/1990", "15/03/1990"},
		{"March 15", "March 15"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatBirthDate(tc.in), "input %q", tc.in)
	}
}
