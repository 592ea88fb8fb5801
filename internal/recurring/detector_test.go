package recurring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

func mkTx(date, desc string, amount float64, category string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:        d,
		Description: desc,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
	}
}

// summariesFor builds a minimal month->summary map with one top node per
// category, enough tree for the detector's leaf walk.
func summariesFor(txs ...models.Transaction) map[string]*models.MonthlySummary {
	byMonth := make(map[string]*models.MonthlySummary)
	for _, tx := range txs {
		mk := tx.MonthKey()
		s, ok := byMonth[mk]
		if !ok {
			s = &models.MonthlySummary{Month: mk}
			byMonth[mk] = s
		}
		var top *models.CategoryNode
		for _, n := range s.Tree {
			if n.Name == tx.Category {
				top = n
				break
			}
		}
		if top == nil {
			top = &models.CategoryNode{Name: tx.Category}
			s.Tree = append(s.Tree, top)
		}
		top.Transactions = append(top.Transactions, tx)
	}
	return byMonth
}

func newTestDetector() *Detector {
	return NewDetector(DefaultRules(), logging.NewMockLogger())
}

func testOptions(now string) Options {
	d, err := time.Parse("2006-01-02", now)
	if err != nil {
		panic(err)
	}
	return Options{HorizonDays: 45, MinOccurrences: 2, Now: d}
}

func TestDetectMonthlyStream(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-02-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-03-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-04-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-05-05", "SPOTIFY USA", -9.99, "Subscriptions"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-05-20"))

	require.Len(t, report.Streams, 1)
	s := report.Streams[0]
	assert.Equal(t, models.FreqMonthly, s.Freq)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, "9.99", s.Amount.StringFixed(2))
	assert.Equal(t, "2023-01-05", s.First)
	assert.Equal(t, "2023-05-05", s.Last)
	assert.Equal(t, "2023-06-05", s.Next)
	assert.False(t, s.IsIncome)
	assert.False(t, s.Missed)

	assert.Equal(t, "9.99", report.FloorTotal.StringFixed(2))
	assert.Equal(t, "-9.99", report.Leftover.StringFixed(2))
}

func TestDenyMerchantNeverStreams(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-10", "NETFLIX.COM", -15.49, "Subscriptions"),
		mkTx("2023-02-10", "NETFLIX.COM", -15.49, "Subscriptions"),
		mkTx("2023-03-10", "NETFLIX.COM", -15.49, "Subscriptions"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-03-20"))
	assert.Empty(t, report.Streams)
}

func TestCreditCardPaymentsExcluded(t *testing.T) {
	summaries := summariesFor(
		// AUTOPAY would qualify by keyword, but card payments are rejected
		// before any allow rule fires.
		mkTx("2023-01-15", "CHASE CARD AUTOPAY", -450.00, "Credit Card"),
		mkTx("2023-02-15", "CHASE CARD AUTOPAY", -450.00, "Credit Card"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-02-20"))
	assert.Empty(t, report.Streams)
}

func TestSarasotaWaterAliasCollapses(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-12", "PAYMENTUS SARASOTA CO UTILIT", -88.40, "Rent/Utilities"),
		mkTx("2023-02-11", "SARASOTA COUNTY UTILITIES", -91.15, "Rent/Utilities"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-02-20"))

	require.Len(t, report.Streams, 1)
	assert.Equal(t, 2, report.Streams[0].Count)
	assert.Equal(t, models.FreqMonthly, report.Streams[0].Freq)
}

func TestBiweeklyIncomeStream(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-02", "PARALON PAYROLL", 1000.00, "Income"),
		mkTx("2023-01-16", "PARALON PAYROLL", 1000.00, "Income"),
		mkTx("2023-01-30", "PARALON PAYROLL", 1000.00, "Income"),
		mkTx("2023-02-13", "PARALON PAYROLL", 1000.00, "Income"),
		mkTx("2023-02-27", "PARALON PAYROLL", 1000.00, "Income"),
		mkTx("2023-03-13", "PARALON PAYROLL", 1000.00, "Income"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-03-20"))

	require.Len(t, report.Streams, 1)
	s := report.Streams[0]
	assert.Equal(t, models.FreqBiweekly, s.Freq)
	assert.True(t, s.IsIncome)

	// Biweekly income converts at two occurrences per month.
	assert.Equal(t, "2000.00", report.IncomeRecurring.StringFixed(2))
	assert.True(t, report.FloorTotal.IsZero())
	assert.Equal(t, report.IncomeExpected.String(), report.Leftover.String())
}

func TestSplitVendorByAmount(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-03", "STRAIGHT TALK PAYMENT", -47.84, "Phone"),
		mkTx("2023-02-03", "STRAIGHT TALK PAYMENT", -47.84, "Phone"),
		mkTx("2023-01-18", "STRAIGHT TALK PAYMENT", -50.16, "Phone"),
		mkTx("2023-02-18", "STRAIGHT TALK PAYMENT", -50.16, "Phone"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-02-25"))

	require.Len(t, report.Streams, 2)
	labels := []string{report.Streams[0].Merchant, report.Streams[1].Merchant}
	assert.Contains(t, labels, "STRAIGHT TALK (JL Line)")
	assert.Contains(t, labels, "STRAIGHT TALK (Rachel Line)")
}

func TestSingleSamsClubChargeIsAnnual(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-20", "SAMSCLUB MEMBERSHIP RENEWAL", -110.00, "Subscriptions"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-02-01"))

	require.Len(t, report.Streams, 1)
	assert.Equal(t, models.FreqAnnual, report.Streams[0].Freq)
	assert.Equal(t, "2024-01-20", report.Streams[0].Next)
}

func TestForceMonthlyVendors(t *testing.T) {
	summaries := summariesFor(
		// A single sighting normally needs min_occ, but ADOBE allows singles
		// and is pinned monthly.
		mkTx("2023-02-10", "ADOBE CREATIVE CLOUD", -54.99, "Subscriptions"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-02-20"))

	require.Len(t, report.Streams, 1)
	assert.Equal(t, models.FreqMonthly, report.Streams[0].Freq)
}

func TestVariableIncomeEstimate(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-05-01", "MOBILE DEPOSIT", 400.00, "Income"),
		mkTx("2023-05-08", "MOBILE DEPOSIT", 500.00, "Income"),
		mkTx("2023-05-15", "MOBILE DEPOSIT", 600.00, "Income"),
		mkTx("2023-05-22", "MOBILE DEPOSIT", 500.00, "Income"),
	)

	report := newTestDetector().Detect(summaries, testOptions("2023-06-01"))

	// Mobile deposits are denied as streams but feed the variable estimate:
	// four weekly buckets averaging 500, times 4.33.
	assert.Empty(t, report.Streams)
	assert.Equal(t, "2165.00", report.VariableIncomeMonthly.StringFixed(2))
	assert.Equal(t, "2165.00", report.IncomeExpected.StringFixed(2))
}

func TestUpcomingProjection(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-04-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-05-05", "SPOTIFY USA", -9.99, "Subscriptions"),
	)

	opts := testOptions("2023-05-20")
	opts.HorizonDays = 75
	report := newTestDetector().Detect(summaries, opts)

	require.Len(t, report.Upcoming, 2)
	assert.Equal(t, "2023-06-05", report.Upcoming[0].Date)
	assert.Equal(t, "2023-07-05", report.Upcoming[1].Date)
}

func TestMissedStreamFlagged(t *testing.T) {
	summaries := summariesFor(
		mkTx("2023-01-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-02-05", "SPOTIFY USA", -9.99, "Subscriptions"),
	)

	// Next expected 2023-03-05; well past the grace period by now.
	report := newTestDetector().Detect(summaries, testOptions("2023-04-01"))

	require.Len(t, report.Streams, 1)
	assert.True(t, report.Streams[0].Missed)
}

func TestWindowCutoffExcludesOldRows(t *testing.T) {
	summaries := summariesFor(
		mkTx("2022-01-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-04-05", "SPOTIFY USA", -9.99, "Subscriptions"),
		mkTx("2023-05-05", "SPOTIFY USA", -9.99, "Subscriptions"),
	)

	opts := testOptions("2023-05-20")
	opts.WindowDays = 60
	report := newTestDetector().Detect(summaries, opts)

	require.Len(t, report.Streams, 1)
	assert.Equal(t, 2, report.Streams[0].Count)
}

func TestCadenceFromDays(t *testing.T) {
	tests := []struct {
		days     float64
		expected string
		ok       bool
	}{
		{14, models.FreqBiweekly, true},
		{30, models.FreqMonthly, true},
		{35, models.FreqMonthly, true},
		{61, models.FreqBimonthly, true},
		{91, models.FreqQuarterly, true},
		{365, models.FreqAnnual, true},
		{5, "", false},
		{200, "", false},
		{0, "", false},
	}

	for _, tc := range tests {
		freq, ok := cadenceFromDays(tc.days)
		assert.Equal(t, tc.ok, ok, "days=%v", tc.days)
		assert.Equal(t, tc.expected, freq, "days=%v", tc.days)
	}
}

func TestNormMerchant(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PAYPAL *NETFLIX.COM 402-935-7733", "PAYPAL NETFLIX"},
		{"", "(unknown)"},
		{"12345", "(unknown)"},
		{"THE ONLINE PURCHASE SHOP", "THE SHOP"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, normMerchant(tc.input), "input=%q", tc.input)
	}
}

func TestCmpKey(t *testing.T) {
	assert.Equal(t, "SARASOTACOUTILIT", cmpKey("Sarasota Co. Utilit!"))
	assert.Equal(t, "STRAIGHTTALK", cmpKey("straight-talk"))
	assert.Equal(t, "", cmpKey("  --  "))
}
