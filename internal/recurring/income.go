package recurring

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/dateutils"
	"jlowell/ledgersum/internal/models"
)

var weeksPerMonth = decimal.NewFromFloat(4.33)

// variableIncomeWeekly estimates a typical week of irregular income (mobile
// deposits, cash tips) over the trailing window. Weekly sums are bucketed by
// Monday and combined with a trimmed mean so one unusually fat or thin week
// doesn't skew the estimate. Returns the weekly estimate and how many weeks
// had any matching income.
func (d *Detector) variableIncomeWeekly(summaries map[string]*models.MonthlySummary, today time.Time) (decimal.Decimal, int) {
	vi := d.rules.VariableIncome
	if !vi.Enabled {
		return decimal.Zero, 0
	}
	windowStart := today.AddDate(0, 0, -vi.WindowDays)

	weekSums := make(map[string]decimal.Decimal)
	for _, s := range summaries {
		for _, top := range s.Tree {
			for _, tx := range top.SubtreeTransactions() {
				if tx.Date.Before(windowStart) || !tx.Amount.IsPositive() {
					continue
				}
				if !d.matchesVariableIncome(tx) {
					continue
				}
				week := dateutils.ToISODate(dateutils.WeekStart(tx.Date))
				weekSums[week] = weekSums[week].Add(tx.Amount)
			}
		}
	}

	weeks := make([]string, 0, len(weekSums))
	for w := range weekSums {
		weeks = append(weeks, w)
	}
	sort.Strings(weeks)
	vals := make([]decimal.Decimal, len(weeks))
	for i, w := range weeks {
		vals[i] = weekSums[w]
	}

	switch {
	case len(vals) >= vi.MinWeeks:
		return trimmedMean(vals, vi.TrimPct), len(vals)
	case len(vals) > 0:
		return mean(vals), len(vals)
	default:
		return decimal.Zero, 0
	}
}

func (d *Detector) matchesVariableIncome(tx models.Transaction) bool {
	vi := d.rules.VariableIncome
	descUp := strings.ToUpper(tx.Description)
	subUp := strings.ToUpper(tx.SubSubcategory)
	if subUp == "" {
		subUp = strings.ToUpper(tx.Subcategory)
	}

	hit := false
	for _, m := range vi.IncludeMerchants {
		if strings.Contains(descUp, strings.ToUpper(m)) {
			hit = true
			break
		}
	}
	if !hit {
		for _, k := range vi.IncludeKeywords {
			if strings.Contains(descUp, strings.ToUpper(k)) {
				hit = true
				break
			}
		}
	}
	if !hit && subUp != "" {
		for _, s := range vi.IncludeSubcategories {
			if subUp == strings.ToUpper(s) {
				hit = true
				break
			}
		}
	}
	if !hit {
		return false
	}

	for _, m := range vi.ExcludeMerchants {
		if strings.Contains(descUp, strings.ToUpper(m)) {
			return false
		}
	}
	// Salary-style deposits belong to recurring income, not the variable
	// estimate; counting them twice would inflate income_expected.
	for _, k := range d.rules.IncomeKeywords {
		if strings.Contains(descUp, strings.ToUpper(k)) {
			return false
		}
	}
	return true
}

// trimmedMean drops the k lowest and k highest values, k = n*trimPct capped
// at 45%, and averages the rest. Falls back to the plain mean when trimming
// would consume everything.
func trimmedMean(vals []decimal.Decimal, trimPct float64) decimal.Decimal {
	if len(vals) == 0 {
		return decimal.Zero
	}
	if trimPct < 0 {
		trimPct = 0
	}
	if trimPct > 0.45 {
		trimPct = 0.45
	}
	sorted := append([]decimal.Decimal(nil), vals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	k := int(float64(len(sorted)) * trimPct)
	if len(sorted)-2*k > 0 {
		sorted = sorted[k : len(sorted)-k]
	}
	return mean(sorted)
}

func mean(vals []decimal.Decimal) decimal.Decimal {
	if len(vals) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(v)
	}
	return total.Div(decimal.NewFromInt(int64(len(vals))))
}
