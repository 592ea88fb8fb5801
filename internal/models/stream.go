package models

import "github.com/shopspring/decimal"

// Cadence labels emitted by the recurring detector.
const (
	FreqBiweekly   = "biweekly"
	FreqMonthly    = "monthly"
	FreqBimonthly  = "bi-monthly"
	FreqQuarterly  = "quarterly"
	FreqSemiannual = "semiannual"
	FreqAnnual     = "annual"
)

// RecurringStream is a detected cluster of transactions believed to be a
// repeating bill or income source. Recomputed on every detector run; nothing
// here is persisted.
type RecurringStream struct {
	Merchant   string          `json:"merchant"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Categories []string        `json:"categories"`
	First      string          `json:"first"`
	Last       string          `json:"last"`
	Next       string          `json:"next"`
	Freq       string          `json:"freq"`
	IsIncome   bool            `json:"is_income"`

	// Missed is set when the expected next occurrence is already past by
	// more than the configured grace period.
	Missed bool `json:"missed"`
}

// Occurrence is one projected future charge or deposit for a stream.
type Occurrence struct {
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	IsIncome bool            `json:"is_income"`
}

// RecurringReport is the full detector output: the streams themselves,
// projected occurrences inside the horizon, and the monthly-equivalent
// aggregates used by the dashboard's budget view.
type RecurringReport struct {
	Streams               []RecurringStream          `json:"streams"`
	Upcoming              []Occurrence               `json:"upcoming"`
	FloorTotal            decimal.Decimal            `json:"floor_total"`
	FloorByCategory       map[string]decimal.Decimal `json:"floor_by_category"`
	IncomeRecurring       decimal.Decimal            `json:"income_recurring"`
	VariableIncomeMonthly decimal.Decimal            `json:"variable_income_monthly"`
	IncomeExpected        decimal.Decimal            `json:"income_expected"`
	Leftover              decimal.Decimal            `json:"leftover"`
}

// MonthlyEquivalentRatio maps a cadence to the factor that converts one
// occurrence amount into a per-month rate.
func MonthlyEquivalentRatio(freq string) decimal.Decimal {
	switch freq {
	case FreqBiweekly:
		return decimal.NewFromInt(2)
	case FreqBimonthly:
		return decimal.NewFromFloat(0.5)
	case FreqQuarterly:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	case FreqSemiannual:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(6))
	case FreqAnnual:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(12))
	default:
		return decimal.NewFromInt(1)
	}
}
