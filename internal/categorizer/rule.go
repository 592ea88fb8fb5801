// Package categorizer assigns a top-level category to a transaction from its
// normalized description and bank-signed amount.
//
// Classification precedence is enforced by construction: the engine evaluates
// an explicit ordered rule list (custom keyword overrides, transfers, fixed
// numeric exceptions, keyword scan, fallback) and the first rule that claims
// a transaction wins.
package categorizer

import (
	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/logging"
)

// Result is a rule's classification outcome. Subcategory is only pinned by
// custom "DESC - $AMOUNT" overrides; everything else leaves it to the
// hierarchy matcher.
type Result struct {
	Category    string
	Subcategory string
}

// Rule is one step of the classification chain. Apply reports whether the
// rule claims the transaction.
type Rule interface {
	Name() string
	Apply(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) (Result, bool)
}

// Engine evaluates the rule chain in order. Deterministic: the same
// description, amount, and config always yield the same category.
type Engine struct {
	rules  []Rule
	logger logging.Logger
}

// NewEngine creates the engine with the production rule order. The fallback
// rule always matches, so Categorize never fails to assign a category.
func NewEngine(logger logging.Logger) *Engine {
	return &Engine{
		rules: []Rule{
			customKeywordRule{},
			transferRule{},
			numericExceptionRule{},
			keywordScanRule{},
			fallbackRule{},
		},
		logger: logger,
	}
}

// Categorize runs the rule chain. desc must already be normalized; amount is
// the bank-signed value (sign conventions are applied downstream).
func (e *Engine) Categorize(desc string, amount decimal.Decimal, cfg config.EffectiveConfig) Result {
	for _, rule := range e.rules {
		if result, ok := rule.Apply(desc, amount, cfg); ok {
			e.logger.Debug("Categorized transaction",
				logging.Field{Key: logging.FieldCategory, Value: result.Category},
				logging.Field{Key: logging.FieldReason, Value: rule.Name()})
			return result
		}
	}
	// Unreachable: fallbackRule always matches.
	return Result{Category: "Miscellaneous"}
}
