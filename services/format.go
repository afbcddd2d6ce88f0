package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR formats an amount in Indian Rupee notation: the rightmost
// three digits form the first group, then pairs (₹1,23,45,678.90).
// Always two decimal places.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "₹" + applyIndianGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatDiscount renders a fractional tier discount as a whole percent,
// e.g. 0.12 -> "12%".
func FormatDiscount(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

// FormatQty renders a quantity: whole numbers without decimals,
// fractional (weight-sold) quantities with two.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

// applyIndianGrouping inserts commas into an integer string: the last
// three digits stay together, every two digits group after that.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
