// Package cli renders planner output for the terminal.
package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with two decimals and thousands separators.
// e.g., 1234567.891 -> "1,234,567.89"
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	out := make([]byte, 0, len(s)+len(intPart)/3+1)
	if d.IsNegative() && !d.Round(2).IsZero() {
		out = append(out, '-')
	}
	for i := range len(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	return string(out) + frac
}

// FormatPct formats a fraction as a percentage with one decimal.
func FormatPct(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

func decimalFromPct(fraction float64) decimal.Decimal {
	return decimal.NewFromFloat(fraction)
}
