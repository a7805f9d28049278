package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1500", "1500", true},
		{"1500.75", "1500.75", true},
		{"1500,75", "1500.75", true},
		{"0", "0", true},
		{"0,01", "0.01", true},
		{" 2,50 ", "2.5", true},
		{"12.345", "12.345", true}, // full precision kept
		{"-1", "", false},
		{"-0,50", "", false},
		{"1.2.3", "", false},
		{"1,2,3", "", false},
		{"abc", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.ok {
			require.NoError(t, err, "Parse(%q)", tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Parse(%q) = %s, want %s", tt.in, got, tt.want)
		} else {
			require.Error(t, err, "Parse(%q)", tt.in)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"80", "80,00"},
		{"1500", "1.500,00"},
		{"1234.5", "1.234,50"},
		{"1234567.89", "1.234.567,89"},
		{"12.345", "12,35"}, // display rounds, storage does not
		{"-1500", "-1.500,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.in)), "FormatBRL(%s)", tt.in)
	}
}
