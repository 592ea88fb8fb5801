// Package summary normalizes raw transactions through the classification
// pipeline and aggregates them into per-month category trees with pruned,
// reconciled totals.
package summary

import (
	"strings"

	"jlowell/ledgersum/internal/categorizer"
	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/dateutils"
	"jlowell/ledgersum/internal/hierarchy"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
	"jlowell/ledgersum/internal/normalize"

	"github.com/shopspring/decimal"
)

// Builder runs the per-transaction pipeline: normalize, override, categorize,
// walk the hierarchy, then apply the dashboard sign convention.
type Builder struct {
	engine *categorizer.Engine
	logger logging.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(logger logging.Logger) *Builder {
	return &Builder{
		engine: categorizer.NewEngine(logger),
		logger: logger,
	}
}

// NormalizeAll converts raw export records into normalized transactions.
// Pending rows are excluded, rows with unparseable dates are dropped with a
// warning, and unparseable amounts coerce to zero. Never returns an error:
// malformed input data degrades row by row.
func (b *Builder) NormalizeAll(raws []models.RawTransaction, cfg config.EffectiveConfig, overrides config.DescriptionOverrides) []models.Transaction {
	out := make([]models.Transaction, 0, len(raws))
	for _, raw := range raws {
		tx, ok := b.normalizeOne(raw, cfg, overrides)
		if ok {
			out = append(out, tx)
		}
	}
	return out
}

func (b *Builder) normalizeOne(raw models.RawTransaction, cfg config.EffectiveConfig, overrides config.DescriptionOverrides) (models.Transaction, bool) {
	if raw.Pending {
		return models.Transaction{}, false
	}

	date, err := dateutils.ParseDateString(raw.Date)
	if err != nil {
		b.logger.Warn("Dropping transaction with unparseable date",
			logging.Field{Key: logging.FieldDate, Value: raw.Date})
		return models.Transaction{}, false
	}

	bankAmount := models.ParseAmount(raw.Amount)

	// The override replaces the description before any classification, so a
	// relabeled transaction is categorized from the replacement text.
	overridden := normalize.ApplyOverride(raw.TxID, date, bankAmount, raw.Description, overrides)
	desc := normalize.Clean(overridden)

	result := b.engine.Categorize(desc, bankAmount, cfg)

	manualSub := raw.Subcategory
	if manualSub == "" {
		manualSub = result.Subcategory
	}
	assigned := hierarchy.Assign(result.Category, desc, cfg, manualSub, raw.SubSubcategory)

	isReturn := result.Category != models.CategoryIncome &&
		matchesAnyPlain(desc, cfg.ReturnKeywords)

	amount, expense := signConvention(result.Category, bankAmount, isReturn)

	return models.Transaction{
		Date:              date,
		Description:       desc,
		Amount:            amount,
		Category:          result.Category,
		Subcategory:       assigned.Subcategory,
		SubSubcategory:    assigned.SubSubcategory,
		SubSubSubcategory: assigned.SubSubSubcategory,
		IsReturn:          isReturn,
		ExpenseAmount:     expense,
		Owner:             ownerFor(result.Category, desc),
	}, true
}

// signConvention maps a bank-signed amount onto the dashboard convention:
// income positive, purchases negative, returns positive. ExpenseAmount is
// positive for purchases and negative for returns so returns net off spend
// inside their category; income carries no expense amount.
func signConvention(category string, bankAmount decimal.Decimal, isReturn bool) (amount, expense decimal.Decimal) {
	abs := bankAmount.Abs()
	switch {
	case category == models.CategoryIncome:
		return abs, decimal.Zero
	case isReturn:
		return abs, abs.Neg()
	default:
		return abs.Neg(), abs
	}
}

// ownerFor tags cash withdrawals with the household member whose card digits
// appear in the description.
func ownerFor(category, desc string) string {
	if category != models.CategoryWithdrawals {
		return ""
	}
	switch {
	case strings.Contains(desc, "6466"):
		return models.OwnerRachel
	case strings.Contains(desc, "3453"), strings.Contains(desc, "8842"):
		return models.OwnerJL
	default:
		return models.OwnerUnknown
	}
}

func matchesAnyPlain(desc string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
