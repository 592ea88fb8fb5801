package categorizer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

func newTestEngine() *Engine {
	return NewEngine(logging.NewMockLogger())
}

func TestCategorizePrecedence(t *testing.T) {
	engine := newTestEngine()
	cfg := config.DefaultConfig()

	tests := []struct {
		name        string
		desc        string
		amount      decimal.Decimal
		expected    string
		expectedSub string
	}{
		{
			// The custom key pins category and subcategory before any scan.
			name:        "Custom keyword wins over everything",
			desc:        "VENMO",
			amount:      decimal.NewFromFloat(-200.0),
			expected:    "Animal",
			expectedSub: "Pet Sitting",
		},
		{
			name:     "Transfer beats keyword scan",
			desc:     "ROBINHOOD FUNDS TRANSFER",
			amount:   decimal.NewFromFloat(-500),
			expected: models.CategoryTransfers,
		},
		{
			name:     "Check at 264 is a fee",
			desc:     "CHECK 1042",
			amount:   decimal.NewFromInt(-264),
			expected: models.CategoryFees,
		},
		{
			name:     "Check at 2500 is rent",
			desc:     "CHECK 1043",
			amount:   decimal.NewFromInt(-2500),
			expected: models.CategoryRentUtilities,
		},
		{
			name:     "Costco at 65 is the membership",
			desc:     "COSTCO WHSE #0123",
			amount:   decimal.NewFromInt(-65),
			expected: models.CategorySubscriptions,
		},
		{
			name:     "Costco at other amounts scans normally",
			desc:     "COSTCO WHSE #0123",
			amount:   decimal.NewFromFloat(-120.55),
			expected: "Groceries/Home",
		},
		{
			name:     "Hard Rock credit is bet winnings",
			desc:     "HARD ROCK DIGITAL",
			amount:   decimal.NewFromFloat(75.50),
			expected: models.CategoryBet,
		},
		{
			name:     "Walmart at exactly 212.93 is the phone bill",
			desc:     "WALMART.COM 8009666546",
			amount:   decimal.NewFromFloat(-212.93),
			expected: models.CategoryPhone,
		},
		{
			name:     "Sarasota County PU is utilities at any amount",
			desc:     "SARASOTA COUNTY PU FL",
			amount:   decimal.NewFromFloat(-87.12),
			expected: models.CategoryRentUtilities,
		},
		{
			name:     "Income keywords scan before spending categories",
			desc:     "PR PAYMENT FINANCIAL SERVIC",
			amount:   decimal.NewFromFloat(1250.00),
			expected: models.CategoryIncome,
		},
		{
			name:     "Unknown negative falls back to Miscellaneous",
			desc:     "TOTALLY UNKNOWN VENDOR",
			amount:   decimal.NewFromFloat(-12.34),
			expected: models.CategoryMiscellaneous,
		},
		{
			name:     "Unknown positive falls back to Income",
			desc:     "TOTALLY UNKNOWN DEPOSIT",
			amount:   decimal.NewFromFloat(12.34),
			expected: models.CategoryIncome,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.Categorize(tc.desc, tc.amount, cfg)
			assert.Equal(t, tc.expected, result.Category)
			if tc.expectedSub != "" {
				assert.Equal(t, tc.expectedSub, result.Subcategory)
			}
		})
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	engine := newTestEngine()
	cfg := config.DefaultConfig()

	first := engine.Categorize("SPOTIFY USA", decimal.NewFromFloat(-9.99), cfg)
	for i := 0; i < 50; i++ {
		again := engine.Categorize("SPOTIFY USA", decimal.NewFromFloat(-9.99), cfg)
		assert.Equal(t, first, again)
	}
}

func TestKeywordMatches(t *testing.T) {
	strict := []string{"ACE", "GAS"}

	tests := []struct {
		name     string
		desc     string
		keyword  string
		expected bool
	}{
		{"Plain substring", "NETFLIX.COM CHARGE", "NETFLIX", true},
		{"Strict word matches whole word", "ACE HARDWARE #123", "ACE", true},
		{"Strict word rejects embedded match", "PALACE THEATER", "ACE", false},
		{"Strict GAS rejects VEGAS", "LAS VEGAS TRIP", "GAS", false},
		{"Non-strict embedded still matches", "PREPAYMENT", "PAY", true},
		{"Empty keyword never matches", "ANYTHING", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KeywordMatches(tc.desc, tc.keyword, strict))
		})
	}
}

func TestFormatCustomAmount(t *testing.T) {
	assert.Equal(t, "200.0", formatCustomAmount(decimal.NewFromInt(200)))
	assert.Equal(t, "15.49", formatCustomAmount(decimal.NewFromFloat(15.49)))
}
