package summary

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

// BuildMonthlySummaries groups normalized transactions by calendar month and
// builds the pruned category tree and headline totals for each. Re-running on
// the same inputs yields identical output: there is no hidden state.
func BuildMonthlySummaries(txs []models.Transaction, cfg config.EffectiveConfig, logger logging.Logger) map[string]*models.MonthlySummary {
	kept := filterTransactions(txs, cfg, logger)

	byMonth := make(map[string][]models.Transaction)
	for _, tx := range kept {
		key := tx.MonthKey()
		byMonth[key] = append(byMonth[key], tx)
	}

	summaries := make(map[string]*models.MonthlySummary, len(byMonth))
	for month, monthTxs := range byMonth {
		s := &models.MonthlySummary{Month: month}
		s.Tree = buildTree(monthTxs)
		pruneSummary(s)
		summaries[month] = s
	}

	logger.Info("Built monthly summaries",
		logging.Field{Key: logging.FieldCount, Value: len(summaries)})
	return summaries
}

// filterTransactions applies deduplication, omit rules, and category caps.
// Everything removed here vanishes from all totals, not just the display.
func filterTransactions(txs []models.Transaction, cfg config.EffectiveConfig, logger logging.Logger) []models.Transaction {
	seen := make(map[string]bool, len(txs))
	out := make([]models.Transaction, 0, len(txs))

	for _, tx := range txs {
		// Refreshed exports repeat records; the first occurrence wins.
		key := dedupeKey(tx)
		if seen[key] {
			continue
		}
		seen[key] = true

		if omitted(tx, cfg) {
			logger.Debug("Omitted transaction by config rule",
				logging.Field{Key: logging.FieldCategory, Value: tx.Category},
				logging.Field{Key: logging.FieldAmount, Value: tx.Amount.StringFixed(2)})
			continue
		}

		// Transfers move money between accounts; they never hit income or
		// expense totals. Hidden categories are excluded the same way.
		if tx.Category == models.CategoryTransfers || cfg.IsHidden(tx.Category) {
			continue
		}

		if capRule, ok := cfg.CapFor(tx.Category); ok && !withinCap(tx, capRule) {
			continue
		}

		out = append(out, tx)
	}
	return out
}

func dedupeKey(tx models.Transaction) string {
	return tx.DateKey() + "|" + tx.Amount.StringFixed(2) + "|" + tx.Category + "|" + tx.Description
}

func omitted(tx models.Transaction, cfg config.EffectiveConfig) bool {
	for _, kw := range cfg.OmitKeywords {
		if kw != "" && strings.Contains(tx.Description, kw) {
			return true
		}
	}
	abs := tx.Amount.Abs()
	for _, rule := range cfg.AmountOmitRules {
		if rule.Contains != "" && !strings.Contains(tx.Description, rule.Contains) {
			continue
		}
		if abs.LessThan(rule.MinAbs) {
			continue
		}
		if !rule.MaxAbs.IsZero() && abs.GreaterThan(rule.MaxAbs) {
			continue
		}
		return true
	}
	return false
}

func withinCap(tx models.Transaction, capRule config.CategoryCap) bool {
	abs := tx.Amount.Abs()
	if !capRule.ExactAbs.IsZero() {
		return models.AmountsEqual(abs, capRule.ExactAbs)
	}
	if !capRule.MaxAbs.IsZero() {
		return abs.LessThanOrEqual(capRule.MaxAbs)
	}
	return true
}

// buildTree assembles the month's category tree. Transactions attach to the
// deepest node their hierarchy path reaches; totals are computed afterwards
// as a pure pass over the finished tree.
func buildTree(txs []models.Transaction) []*models.CategoryNode {
	root := &models.CategoryNode{}
	for _, tx := range txs {
		node := root
		for _, label := range tx.HierarchyPath() {
			node = node.EnsureChild(label)
		}
		node.Transactions = append(node.Transactions, tx)
	}
	for _, top := range root.Children {
		recomputeTotals(top, top.Name == models.CategoryIncome)
	}
	return root.Children
}

// recomputeTotals recalculates every node's total bottom-up. Income nodes sum
// absolute amounts; all other nodes sum expense amounts, which is what lets
// returns net off purchases without touching income.
func recomputeTotals(node *models.CategoryNode, isIncome bool) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range node.Transactions {
		total = total.Add(contribution(tx, isIncome))
	}
	for _, child := range node.Children {
		total = total.Add(recomputeTotals(child, isIncome))
	}
	node.Total = models.RoundCents(total)
	return node.Total
}

func contribution(tx models.Transaction, isIncome bool) decimal.Decimal {
	if isIncome {
		return tx.Amount.Abs()
	}
	return tx.ExpenseAmount
}

// AllTransactions flattens every month's kept transactions, filters by a
// case-insensitive substring query over description and category, and sorts
// newest first. Serves the dashboard's transaction search view.
func AllTransactions(summaries map[string]*models.MonthlySummary, query string) []models.Transaction {
	var out []models.Transaction
	for _, s := range summaries {
		out = append(out, s.AllTransactions...)
	}
	if q := strings.ToUpper(strings.TrimSpace(query)); q != "" {
		filtered := out[:0]
		for _, tx := range out {
			if strings.Contains(strings.ToUpper(tx.Description), q) ||
				strings.Contains(strings.ToUpper(tx.Category), q) {
				filtered = append(filtered, tx)
			}
		}
		out = filtered
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Description < out[j].Description
	})
	return out
}
