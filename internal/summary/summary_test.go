package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

func emptyOverrides() config.DescriptionOverrides {
	return config.DescriptionOverrides{
		ByTxID:        map[string]string{},
		ByFingerprint: map[string]string{},
	}
}

func buildFromRaws(t *testing.T, raws []models.RawTransaction) map[string]*models.MonthlySummary {
	t.Helper()
	cfg := config.DefaultConfig()
	builder := NewBuilder(logging.NewMockLogger())
	txs := builder.NormalizeAll(raws, cfg, emptyOverrides())
	return BuildMonthlySummaries(txs, cfg, logging.NewMockLogger())
}

func TestNormalizeSignConvention(t *testing.T) {
	cfg := config.DefaultConfig()
	builder := NewBuilder(logging.NewMockLogger())

	raws := []models.RawTransaction{
		{Date: "2023-05-01", Description: "PR PAYMENT FINANCIAL SERVIC", Amount: "1250.00"},
		{Date: "2023-05-02", Description: "PUBLIX SUPER MAR", Amount: "-54.10"},
		{Date: "2023-05-03", Description: "WALMART RETURN OF GOODS", Amount: "21.99"},
	}
	txs := builder.NormalizeAll(raws, cfg, emptyOverrides())
	require.Len(t, txs, 3)

	income, purchase, ret := txs[0], txs[1], txs[2]

	assert.Equal(t, models.CategoryIncome, income.Category)
	assert.Equal(t, "1250", income.Amount.String())
	assert.True(t, income.ExpenseAmount.IsZero())

	assert.Equal(t, "Groceries/Home", purchase.Category)
	assert.Equal(t, "-54.1", purchase.Amount.String())
	assert.Equal(t, "54.1", purchase.ExpenseAmount.String())

	assert.True(t, ret.IsReturn)
	assert.Equal(t, "21.99", ret.Amount.String())
	assert.Equal(t, "-21.99", ret.ExpenseAmount.String())
}

func TestNormalizeDropsPendingAndBadDates(t *testing.T) {
	cfg := config.DefaultConfig()
	logger := logging.NewMockLogger()
	builder := NewBuilder(logger)

	raws := []models.RawTransaction{
		{Date: "2023-05-01", Description: "PUBLIX", Amount: "-10.00", Pending: true},
		{Date: "garbage", Description: "PUBLIX", Amount: "-10.00"},
		{Date: "2023-05-01", Description: "PUBLIX", Amount: "-10.00"},
	}
	txs := builder.NormalizeAll(raws, cfg, emptyOverrides())

	assert.Len(t, txs, 1)
	assert.True(t, logger.HasEntry("WARN", "Dropping transaction with unparseable date"))
}

func TestOwnerTagging(t *testing.T) {
	cfg := config.DefaultConfig()
	builder := NewBuilder(logging.NewMockLogger())

	raws := []models.RawTransaction{
		{Date: "2023-05-01", Description: "ATM WITHDRAWAL CARD 6466", Amount: "-100.00"},
		{Date: "2023-05-02", Description: "ATM WITHDRAWAL CARD 3453", Amount: "-60.00"},
		{Date: "2023-05-03", Description: "ATM WITHDRAWAL CARD 9999", Amount: "-40.00"},
	}
	txs := builder.NormalizeAll(raws, cfg, emptyOverrides())
	require.Len(t, txs, 3)

	assert.Equal(t, models.OwnerRachel, txs[0].Owner)
	assert.Equal(t, models.OwnerJL, txs[1].Owner)
	assert.Equal(t, models.OwnerUnknown, txs[2].Owner)
}

func TestBuildMonthlySummariesDedupes(t *testing.T) {
	raw := models.RawTransaction{Date: "2023-05-02", Description: "PUBLIX SUPER MAR", Amount: "-54.10"}
	summaries := buildFromRaws(t, []models.RawTransaction{raw, raw})

	s := summaries["2023-05"]
	require.NotNil(t, s)
	assert.Len(t, s.AllTransactions, 1)
	assert.Equal(t, "54.1", s.ExpenseTotal.String())
}

func TestBuildMonthlySummariesExcludesTransfers(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "ACH TRANSFER TO SAVINGS", Amount: "-500.00"},
		{Date: "2023-05-03", Description: "PUBLIX SUPER MAR", Amount: "-20.00"},
	})

	s := summaries["2023-05"]
	require.NotNil(t, s)
	assert.Len(t, s.AllTransactions, 1)
	assert.Equal(t, "20", s.ExpenseTotal.String())
}

func TestReturnsNetAgainstPurchases(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "PUBLIX SUPER MAR", Amount: "-50.00"},
		{Date: "2023-05-10", Description: "PUBLIX REFUND", Amount: "-20.00"},
	})

	s := summaries["2023-05"]
	require.NotNil(t, s)

	// The refund nets against spend inside the category without touching
	// income.
	assert.Equal(t, "30", s.ExpenseTotal.String())
	assert.True(t, s.IncomeTotal.IsZero())

	top := s.CategoryNodeByName("Groceries/Home")
	require.NotNil(t, top)
	assert.Equal(t, "30", top.Total.String())
}

func TestSentinelAmountsPruned(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "PLACEHOLDER ROW", Amount: "10002.02"},
		{Date: "2023-05-03", Description: "PLACEHOLDER ROW TWO", Amount: "-10002.02"},
		{Date: "2023-05-04", Description: "PUBLIX SUPER MAR", Amount: "-25.00"},
	})

	s := summaries["2023-05"]
	require.NotNil(t, s)
	assert.Len(t, s.AllTransactions, 1)
	assert.True(t, s.IncomeTotal.IsZero())
	assert.Equal(t, "25", s.ExpenseTotal.String())
}

func TestHiddenCategoriesExcluded(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "BEST BUY 00005629", Amount: "-899.00"},
		{Date: "2023-05-03", Description: "PUBLIX SUPER MAR", Amount: "-40.00"},
	})

	s := summaries["2023-05"]
	require.NotNil(t, s)
	// Camera is hidden by default: the purchase classifies but never reaches
	// the headline totals or the transaction list.
	assert.Len(t, s.AllTransactions, 1)
	assert.Equal(t, "40", s.ExpenseTotal.String())
	assert.Nil(t, s.CategoryNodeByName("Camera"))
}

func TestTransactionsOnInternalNodesCounted(t *testing.T) {
	// A manual subcategory under a flat category gives the top node a child
	// while plain rows stay attached to the top node itself. Both must reach
	// the headline totals.
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "UNMAPPED VENDOR ONE", Amount: "-10.00"},
		{Date: "2023-05-03", Description: "UNMAPPED VENDOR TWO", Amount: "-20.00", Subcategory: "Stuff"},
	})

	s := summaries["2023-05"]
	require.NotNil(t, s)
	assert.Len(t, s.AllTransactions, 2)
	assert.Equal(t, "30", s.ExpenseTotal.String())

	top := s.CategoryNodeByName("Miscellaneous")
	require.NotNil(t, top)
	assert.Equal(t, "30", top.Total.String())
	require.NotNil(t, top.Child("Stuff"))
	assert.Equal(t, "20", top.Child("Stuff").Total.String())
}

func TestNetCashFlowInvariant(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-01", Description: "PR PAYMENT FINANCIAL SERVIC", Amount: "1000.00"},
		{Date: "2023-05-02", Description: "PUBLIX SUPER MAR", Amount: "-300.00"},
		{Date: "2023-06-01", Description: "PR PAYMENT FINANCIAL SERVIC", Amount: "1000.00"},
	})

	for _, s := range summaries {
		assert.True(t, s.NetCashFlow.Equal(s.IncomeTotal.Sub(s.ExpenseTotal)))
	}
	assert.Equal(t, "700", summaries["2023-05"].NetCashFlow.String())
	assert.Equal(t, "1000", summaries["2023-06"].NetCashFlow.String())
}

func TestBuildMonthlySummariesIdempotent(t *testing.T) {
	raws := []models.RawTransaction{
		{Date: "2023-05-01", Description: "PR PAYMENT FINANCIAL SERVIC", Amount: "1000.00"},
		{Date: "2023-05-02", Description: "PUBLIX SUPER MAR", Amount: "-300.00"},
		{Date: "2023-05-04", Description: "SPOTIFY USA", Amount: "-9.99"},
	}

	first := buildFromRaws(t, raws)
	second := buildFromRaws(t, raws)
	assert.Equal(t, first, second)
}

func TestVenmoExactCap(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "VENMO PAYMENT A", Amount: "-200.00"},
		{Date: "2023-05-03", Description: "VENMO PAYMENT B", Amount: "-75.00"},
	})

	s := summaries["2023-05"]
	require.NotNil(t, s)
	// Only the exact-amount Venmo transaction survives the category cap.
	assert.Len(t, s.AllTransactions, 1)
	assert.Equal(t, "200", s.ExpenseTotal.String())
}

func TestAllTransactionsQuery(t *testing.T) {
	summaries := buildFromRaws(t, []models.RawTransaction{
		{Date: "2023-05-02", Description: "PUBLIX SUPER MAR", Amount: "-54.10"},
		{Date: "2023-06-01", Description: "SPOTIFY USA", Amount: "-9.99"},
	})

	all := AllTransactions(summaries, "")
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, "SPOTIFY USA", all[0].Description)

	filtered := AllTransactions(summaries, "publix")
	require.Len(t, filtered, 1)
	assert.Equal(t, "PUBLIX SUPER MAR", filtered[0].Description)
}

func TestBuildForecast(t *testing.T) {
	now := time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC)
	summaries := map[string]*models.MonthlySummary{
		"2023-04": {Month: "2023-04", NetCashFlow: decimal.NewFromInt(300)},
		"2023-05": {Month: "2023-05", NetCashFlow: decimal.NewFromInt(600)},
		"2023-06": {Month: "2023-06", NetCashFlow: decimal.NewFromInt(900)},
		// Current month is still accruing and must be ignored.
		"2023-07": {Month: "2023-07", NetCashFlow: decimal.NewFromInt(-9999)},
	}

	forecast := BuildForecast(summaries, decimal.NewFromInt(1000), 28, now)

	assert.Equal(t, "600", forecast.MonthlyNet.String())
	require.Len(t, forecast.Points, 4)
	assert.Equal(t, "2023-07-17", forecast.Points[0].Date)
	// Positive trend never crosses zero.
	assert.Equal(t, -1, forecast.RunwayDays)

	for _, p := range forecast.Points {
		assert.True(t, p.Optimistic.GreaterThanOrEqual(p.Expected))
		assert.True(t, p.Pessimistic.LessThanOrEqual(p.Expected))
	}
}

func TestBuildForecastRunway(t *testing.T) {
	now := time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC)
	summaries := map[string]*models.MonthlySummary{
		"2023-06": {Month: "2023-06", NetCashFlow: decimal.NewFromInt(-433)},
	}

	// Weekly net is -100; pessimistic band is wider for negative trends.
	forecast := BuildForecast(summaries, decimal.NewFromInt(350), 70, now)

	assert.True(t, forecast.WeeklyNet.Equal(decimal.NewFromInt(-100)))
	assert.Greater(t, forecast.RunwayDays, 0)
	assert.LessOrEqual(t, forecast.RunwayDays, 70)
}
