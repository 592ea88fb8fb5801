package recurring

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/models"
)

type stepKind int

const (
	stepDays stepKind = iota
	stepMonths
	stepYears
)

// cadenceStep advances a date by one billing interval.
type cadenceStep struct {
	kind stepKind
	n    int
}

func (s cadenceStep) next(t time.Time) time.Time {
	switch s.kind {
	case stepDays:
		return t.AddDate(0, 0, s.n)
	case stepMonths:
		return addMonthsClamped(t, s.n)
	default:
		return addMonthsClamped(t, 12*s.n)
	}
}

// addMonthsClamped adds months keeping the day-of-month, clamping to the last
// day of the target month so Jan 31 + 1 month lands on Feb 28 rather than
// rolling into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

// stepForFreq returns the projection interval for a cadence label.
func stepForFreq(freq string) cadenceStep {
	switch freq {
	case models.FreqBiweekly:
		return cadenceStep{kind: stepDays, n: 14}
	case models.FreqBimonthly:
		return cadenceStep{kind: stepMonths, n: 2}
	case models.FreqQuarterly:
		return cadenceStep{kind: stepMonths, n: 3}
	case models.FreqSemiannual:
		return cadenceStep{kind: stepMonths, n: 6}
	case models.FreqAnnual:
		return cadenceStep{kind: stepYears, n: 1}
	default:
		return cadenceStep{kind: stepMonths, n: 1}
	}
}

// cadenceFromDays maps a median gap between charges onto a cadence label.
// Bands are deliberately wide: real billing dates drift around weekends and
// month lengths. Gaps outside every band return ok=false.
func cadenceFromDays(days float64) (freq string, ok bool) {
	switch {
	case days <= 0:
		return "", false
	case days >= 26 && days <= 35:
		return models.FreqMonthly, true
	case days >= 11 && days <= 17:
		return models.FreqBiweekly, true
	case days >= 50 && days <= 75:
		return models.FreqBimonthly, true
	case days >= 80 && days <= 105:
		return models.FreqQuarterly, true
	case days >= 350 && days <= 390:
		return models.FreqAnnual, true
	default:
		return "", false
	}
}

func medianInts(nums []int) float64 {
	if len(nums) == 0 {
		return 0
	}
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func medianDecimals(nums []decimal.Decimal) decimal.Decimal {
	if len(nums) == 0 {
		return decimal.Zero
	}
	sorted := append([]decimal.Decimal(nil), nums...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}
