// Package recurring detects repeating bills and income streams from the
// monthly summaries and projects their upcoming occurrences.
package recurring

import "github.com/shopspring/decimal"

// AmountLabel renames a stream when a merchant's representative amount lands
// on a known cents value. Used to split shared vendors into per-person lines.
type AmountLabel struct {
	MerchantContains string
	Amount           decimal.Decimal
	Label            string
}

// VariableIncomeRules controls the trimmed-mean estimate of irregular income
// such as mobile check deposits and cash tips.
type VariableIncomeRules struct {
	Enabled              bool
	WindowDays           int
	MinWeeks             int
	TrimPct              float64
	IncludeMerchants     []string
	IncludeKeywords      []string
	IncludeSubcategories []string
	ExcludeMerchants     []string
}

// Rules holds every knob of the recurring detector. DefaultRules reflects the
// household's current billing landscape; callers may tweak a copy.
type Rules struct {
	// Top-level categories always treated as recurring. Income is handled
	// separately through IncomeKeywords.
	Categories []string

	// Vendor-priority merchants: transactions matching these skip the
	// amount-proximity clustering and always form a stream.
	Merchants []string

	// Description keywords that hint a charge repeats.
	Keywords []string

	// Income is recurring only when one of these appears in the description.
	IncomeKeywords []string

	DenyMerchants     []string
	DenySubcategories []string

	// Merchants allowed two charges per month without demoting biweekly.
	TwoPerMonthMerchants []string

	// Vendors whose charges split into separate streams per distinct amount.
	SplitVendorByAmount []string

	AmountLabels []AmountLabel

	// Per-merchant override for how many charges per calendar month a
	// biweekly stream may carry before demotion to monthly.
	BiweeklyMaxPerMonth map[string]int

	// Vendors that form a stream from a single sighting.
	AllowSingleOccurrences []string

	// Collapse vendor name variants into one canonical stream key.
	CanonicalVendorAliases map[string][]string

	// Extra credit-card issuers beyond the built-in deny list.
	CreditCardDenyMerchants     []string
	CreditCardDenySubcategories []string

	// Days past the expected date before a stream counts as missed.
	GraceDays int

	VariableIncome VariableIncomeRules
}

// DefaultRules returns the stock detector configuration.
func DefaultRules() Rules {
	return Rules{
		Categories: []string{
			"Subscriptions",
			"Rent/Utilities",
			"Utilities",
			"Insurance",
			"Auto Insurance",
			"Phone",
			"Internet",
			"Mortgage",
			"Loan Payments",
			"Vehicles",
		},
		Merchants: []string{
			"BRIDGECREST", "TUNDRA",
			"FPL", "FLORIDA POWER AND LIGHT", "FLORIDA POWER & LIGHT",
			"SARASOTA CO UTILIT",
			"SARASOTA COUNTY UTILIT",
			"SARASOTA COUNTY UTILITIES",
			"PAYMENTUS",
			"Sarasota Water",
			"VERIZON FINANCIA",
			"FRONTIER",
			"PELOTON", "SPOTIFY",
			"AMZNFREETIME",
			"ADOBE",
			"OPENAI", "OPENAI CHATGPT", "OPENAI CHATGPT SU", "CHATGPT",
			"MICROSOFT ULTIMATE",
			"MICROSOFT XBOX",
			"XBOX GAME PASS",
			"XBOX",
			"STRAIGHT TALK", "STRAIGHTTALK",
		},
		Keywords: []string{
			"AUTOPAY", "AUTO PAY", "AUTO-PAY",
			"MONTHLY",
			"SUBSCRIPTION", "MEMBERSHIP",
			"PREMIUM", "INSURANCE",
			"RENT",
			"INTERNET", "PHONE",
			"UTILITY", "UTILITIES",
			"RECURRING",
			"BILL PAY", "BILL PAYMENT",
		},
		IncomeKeywords: []string{
			"PARALON",
			"PR PAYMENT FINANCIAL SERVIC",
		},
		DenyMerchants: []string{
			"YOUTUBE TV", "NETFLIX", "PRIME VIDEO",
			"BURTS GAS", "BURT'S GAS", "BURT S GAS",
			"ADVANCE AUTO", "VIOC", "VALVOLINE",
			"HARD ROCK BET", "HARDROCKBET", "HARDROCK",
			"VIATRUSTLY", "VIA TRUSTLY", "TRUSTLY",
			"WALMART", "WAL-MART", "WM SUPERCENTER", "WMT.COM",
			"ARLYN ROSS CARWASH",
			"SARASOTA PARK METE",
			"SARASOTA COUNTY PU FL", "SARASOTA COUNTY PU", "SARASOTA CO PU",
			"MOBILE DEPOSIT", "MOBILE CHECK DEPOSIT", "MOB DEPOSIT",
			"VERIZON WRLS", "VERIZON WIRELESS",
			"AMERICAN EXPRESS", "AMEX", "AMEX EPAYMENT",
			"CAPITAL ONE", "CAPITALONE",
			"CITI", "CITICARD", "CITICARDS", "CITI CARD",
			"DISCOVER",
			"CHASE", "CHASE CREDIT", "CHASE CARD",
			"BARCLAYS", "BARCLAYCARD",
			"SYNCHRONY", "SYNCB",
			"BANKCARD", "CREDIT CARD",
		},
		DenySubcategories:    []string{"Gas"},
		TwoPerMonthMerchants: []string{"STRAIGHT TALK", "STRAIGHTTALK"},
		SplitVendorByAmount: []string{
			"STRAIGHT TALK", "STRAIGHTTALK",
			"VERIZON FINANCIA",
		},
		AmountLabels: []AmountLabel{
			{MerchantContains: "STRAIGHT TALK", Amount: decimal.NewFromFloat(47.84), Label: "STRAIGHT TALK (JL Line)"},
			{MerchantContains: "STRAIGHT TALK", Amount: decimal.NewFromFloat(50.16), Label: "STRAIGHT TALK (Rachel Line)"},
			{MerchantContains: "STRAIGHTTALK", Amount: decimal.NewFromFloat(47.84), Label: "STRAIGHT TALK (JL Line)"},
			{MerchantContains: "STRAIGHTTALK", Amount: decimal.NewFromFloat(50.16), Label: "STRAIGHT TALK (Rachel Line)"},
			{MerchantContains: "VERIZON FINANCIA", Amount: decimal.NewFromFloat(20.25), Label: "VERIZON DEVICE FINANCE"},
		},
		BiweeklyMaxPerMonth: map[string]int{
			"STRAIGHT TALK":               2,
			"STRAIGHTTALK":                2,
			"PR PAYMENT FINANCIAL SERVIC": 3,
			"PARALON":                     3,
		},
		AllowSingleOccurrences: []string{
			"VERIZON FINANCIA",
			"ADOBE",
			"OPENAI", "OPENAI CHATGPT", "OPENAI CHATGPT SU", "CHATGPT",
			"MICROSOFT", "MICROSOFT ULTIMATE",
			"XBOX", "XBOX GAME PASS",
			"STRAIGHT TALK", "STRAIGHTTALK",
			"SARASOTA CO UTILIT",
			"SARASOTA COUNTY UTILIT",
			"SARASOTA COUNTY UTILITIES",
			"PAYMENTUS",
			"Sarasota Water",
		},
		CanonicalVendorAliases: map[string][]string{
			"Sarasota Water": {
				"SARASOTA CO UTILIT",
				"SARASOTA COUNTY UTILIT",
				"SARASOTA COUNTY UTILITIES",
				"PAYMENTUS",
			},
		},
		GraceDays: 7,
		VariableIncome: VariableIncomeRules{
			Enabled:              true,
			WindowDays:           120,
			MinWeeks:             3,
			TrimPct:              0.20,
			IncludeMerchants:     []string{"MOBILE DEPOSIT", "MOBILE CHECK DEPOSIT", "MOB DEPOSIT"},
			IncludeKeywords:      []string{"TIP", "TIPS", "CASH TIP", "CASH TIPS"},
			IncludeSubcategories: []string{"TIPS", "CASH TIPS", "CASH"},
		},
	}
}
