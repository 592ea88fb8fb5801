package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// All amounts in this system are a single implicit currency (USD), so money
// helpers operate on bare decimals rather than a currency-tagged value type.

// ParseAmount parses an export amount string into a decimal. Currency symbols,
// thousands separators, and surrounding whitespace are tolerated. A value that
// still fails to parse coerces to zero so one malformed field never aborts a
// whole batch.
func ParseAmount(s string) decimal.Decimal {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	// Some exports wrap negatives in parentheses.
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// RoundCents rounds a decimal to cents.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Cents returns the amount in whole cents, for use as an exact-match map key.
func Cents(d decimal.Decimal) int64 {
	return d.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

// AmountsEqual reports whether two decimals match to the cent.
func AmountsEqual(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}
