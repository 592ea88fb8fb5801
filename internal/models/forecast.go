package models

import "github.com/shopspring/decimal"

// ForecastPoint is one projected balance sample.
type ForecastPoint struct {
	Date        string          `json:"date"`
	Expected    decimal.Decimal `json:"expected"`
	Optimistic  decimal.Decimal `json:"optimistic"`
	Pessimistic decimal.Decimal `json:"pessimistic"`
}

// Forecast projects a balance forward from recent monthly net cash flow.
// RunwayDays is the number of days until the pessimistic projection crosses
// zero, capped at the forecast horizon; -1 means it never crosses.
type Forecast struct {
	MonthlyNet decimal.Decimal `json:"monthly_net"`
	WeeklyNet  decimal.Decimal `json:"weekly_net"`
	Points     []ForecastPoint `json:"points"`
	RunwayDays int             `json:"runway_days"`
}
