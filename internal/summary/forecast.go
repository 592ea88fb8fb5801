package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/dateutils"
	"jlowell/ledgersum/internal/models"
)

var (
	optimisticFactor  = decimal.NewFromFloat(1.3)
	pessimisticFactor = decimal.NewFromFloat(0.7)
	weeksPerMonth     = decimal.NewFromFloat(4.33)
)

// BuildForecast projects a balance forward from the average net cash flow of
// the last three complete months. Weekly samples carry ±30% bands; RunwayDays
// reports when the pessimistic projection first crosses zero.
func BuildForecast(summaries map[string]*models.MonthlySummary, balance decimal.Decimal, horizonDays int, now time.Time) models.Forecast {
	monthlyNet := averageRecentNet(summaries, now)
	weeklyNet := monthlyNet.Div(weeksPerMonth)

	optimisticWeekly := weeklyNet.Mul(optimisticFactor)
	pessimisticWeekly := weeklyNet.Mul(pessimisticFactor)
	if weeklyNet.IsNegative() {
		optimisticWeekly, pessimisticWeekly = pessimisticWeekly, optimisticWeekly
	}

	forecast := models.Forecast{
		MonthlyNet: models.RoundCents(monthlyNet),
		WeeklyNet:  models.RoundCents(weeklyNet),
		RunwayDays: -1,
	}

	weeks := horizonDays / 7
	for w := 1; w <= weeks; w++ {
		step := decimal.NewFromInt(int64(w))
		pessimistic := balance.Add(pessimisticWeekly.Mul(step))
		forecast.Points = append(forecast.Points, models.ForecastPoint{
			Date:        dateutils.ToISODate(now.AddDate(0, 0, w*7)),
			Expected:    models.RoundCents(balance.Add(weeklyNet.Mul(step))),
			Optimistic:  models.RoundCents(balance.Add(optimisticWeekly.Mul(step))),
			Pessimistic: models.RoundCents(pessimistic),
		})
		if forecast.RunwayDays < 0 && !pessimistic.IsPositive() {
			forecast.RunwayDays = w * 7
		}
	}
	return forecast
}

// averageRecentNet averages NetCashFlow over the last three complete months
// before now. The current month is excluded because it is still accruing.
func averageRecentNet(summaries map[string]*models.MonthlySummary, now time.Time) decimal.Decimal {
	current := dateutils.MonthKey(now)
	months := make([]string, 0, len(summaries))
	for month := range summaries {
		if month < current {
			months = append(months, month)
		}
	}
	if len(months) == 0 {
		return decimal.Zero
	}
	sort.Strings(months)
	if len(months) > 3 {
		months = months[len(months)-3:]
	}

	total := decimal.Zero
	for _, month := range months {
		total = total.Add(summaries[month].NetCashFlow)
	}
	return total.Div(decimal.NewFromInt(int64(len(months))))
}
