package categorizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/models"
)

// customKeywordRule resolves exact "DESC - $AMOUNT" overrides. These exist so
// a single recurring transaction (the $200 Venmo pet-sitting charge) can be
// pinned to a category and subcategory no other rule would pick.
type customKeywordRule struct{}

func (customKeywordRule) Name() string { return "custom-keyword" }

func (customKeywordRule) Apply(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) (Result, bool) {
	key := desc + " - $" + formatCustomAmount(amount.Abs())
	if rule, ok := cfg.CustomTransactionKeywords[key]; ok {
		return Result{Category: rule.Category, Subcategory: rule.Subcategory}, true
	}
	return Result{}, false
}

// formatCustomAmount renders an amount the way the override keys store it:
// no trailing zeros, but integral values keep one decimal place ("200.0").
func formatCustomAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// transferRule runs before everything except custom overrides so generic
// keyword noise can never reclassify an account transfer.
type transferRule struct{}

func (transferRule) Name() string { return "transfer" }

func (transferRule) Apply(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) (Result, bool) {
	for _, kw := range cfg.TransferKeywords {
		if strings.Contains(desc, kw) {
			return Result{Category: models.CategoryTransfers}, true
		}
	}
	return Result{}, false
}

// numericException pins a (keyword, exact absolute amount) pair to a
// category. The same merchant string means different things at different
// amounts, so these run before the generic keyword scan.
type numericException struct {
	keyword    string
	exactAbs   decimal.Decimal
	creditOnly bool
	category   string
}

var numericExceptions = []numericException{
	{keyword: "CHECK", exactAbs: decimal.NewFromInt(264), category: models.CategoryFees},
	{keyword: "CHECK", exactAbs: decimal.NewFromInt(2500), category: models.CategoryRentUtilities},
	{keyword: "COSTCO", exactAbs: decimal.NewFromInt(65), category: models.CategorySubscriptions},
	{keyword: "HARD ROCK", creditOnly: true, category: models.CategoryBet},
	{keyword: "WALMART", exactAbs: decimal.NewFromFloat(212.93), category: models.CategoryPhone},
	{keyword: "SARASOTA COUNTY PU", category: models.CategoryRentUtilities},
}

type numericExceptionRule struct{}

func (numericExceptionRule) Name() string { return "numeric-exception" }

func (numericExceptionRule) Apply(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) (Result, bool) {
	for _, exc := range numericExceptions {
		if !strings.Contains(desc, exc.keyword) {
			continue
		}
		if exc.creditOnly && !amount.IsPositive() {
			continue
		}
		if !exc.exactAbs.IsZero() && !models.AmountsEqual(amount.Abs(), exc.exactAbs) {
			continue
		}
		return Result{Category: exc.category}, true
	}
	return Result{}, false
}

// keywordScanRule is the general first-match-wins scan. Income is always
// scanned first; the remaining categories follow the config's explicit order.
type keywordScanRule struct{}

func (keywordScanRule) Name() string { return "keyword-scan" }

func (keywordScanRule) Apply(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) (Result, bool) {
	if matchesAny(desc, cfg.KeywordsFor(models.CategoryIncome), cfg.StrictBoundaryKeywords) {
		return Result{Category: models.CategoryIncome}, true
	}
	for _, entry := range cfg.CategoryKeywords {
		if entry.Category == models.CategoryIncome {
			continue
		}
		if matchesAny(desc, entry.Keywords, cfg.StrictBoundaryKeywords) {
			return Result{Category: entry.Category}, true
		}
	}
	return Result{}, false
}

// fallbackRule always matches: positive bank amounts land in Income,
// everything else in Miscellaneous.
type fallbackRule struct{}

func (fallbackRule) Name() string { return "fallback" }

func (fallbackRule) Apply(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) (Result, bool) {
	if amount.IsPositive() {
		return Result{Category: models.CategoryIncome}, true
	}
	return Result{Category: models.CategoryMiscellaneous}, true
}
