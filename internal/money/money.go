// Package money parses user-entered amounts and formats them for
// display. Amounts are decimal throughout; the comma convention only
// exists at the boundary.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports an amount string that does not parse to a
// non-negative decimal.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts an amount string to a decimal, accepting either comma
// ("1500,75") or dot ("1500.75") as the decimal separator. Precision is
// kept in full; rounding happens only at display time.
func Parse(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	normalized := strings.ReplaceAll(trimmed, ",", ".")
	if strings.Count(normalized, ".") > 1 {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has multiple separators", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatBRL renders a value in the Brazilian convention: dot-grouped
// thousands, comma decimals, two places. 1234.5 -> "1.234,50".
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
