package excel

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCount coerces a raw cell into an integer counter. Blank or
// non-numeric cells count as zero; fractional cells are truncated.
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// ParseAmount coerces a raw cell into a non-negative monetary amount.
// Blank, non-numeric, and negative cells all coerce to zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
