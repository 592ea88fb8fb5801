package summary

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/models"
)

// pruneSummary is the hide-rule post-pass. It runs after aggregation on
// purpose: hide rules are reporting exclusions, so the classifier never needs
// to know about sentinel amounts. Steps: strip hidden transactions, recompute
// totals bottom-up, drop empty nodes, then rebuild the month's headline
// totals from the surviving transactions.
func pruneSummary(s *models.MonthlySummary) {
	var tree []*models.CategoryNode
	for _, top := range s.Tree {
		stripHidden(top)
		recomputeTotals(top, top.Name == models.CategoryIncome)
		dropEmptyChildren(top)
		if nodeEmpty(top) {
			continue
		}
		tree = append(tree, top)
	}
	s.Tree = tree

	income := decimal.Zero
	expenseNet := decimal.Zero
	var all []models.Transaction
	for _, top := range s.Tree {
		kept := top.SubtreeTransactions()
		all = append(all, kept...)
		for _, tx := range kept {
			if top.Name == models.CategoryIncome {
				income = income.Add(tx.Amount.Abs())
			} else {
				expenseNet = expenseNet.Add(tx.ExpenseAmount)
			}
		}
	}

	s.IncomeTotal = models.RoundCents(income)
	// A month where returns outweigh purchases reports zero expenses, not a
	// negative number.
	expense := models.RoundCents(expenseNet)
	if expense.IsNegative() {
		expense = decimal.Zero
	}
	s.ExpenseTotal = expense
	s.NetCashFlow = s.IncomeTotal.Sub(s.ExpenseTotal)

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.Before(all[j].Date)
		}
		return all[i].Description < all[j].Description
	})
	s.AllTransactions = all
}

// stripHidden removes individual transactions marked for exclusion: the
// placeholder sentinel amount (either sign) and the known Robinhood transfer
// that slips past the transfer keywords.
func stripHidden(node *models.CategoryNode) {
	kept := node.Transactions[:0]
	for _, tx := range node.Transactions {
		if hiddenTransaction(tx) {
			continue
		}
		kept = append(kept, tx)
	}
	node.Transactions = kept
	for _, child := range node.Children {
		stripHidden(child)
	}
}

func hiddenTransaction(tx models.Transaction) bool {
	diff := tx.Amount.Abs().Sub(models.HideSentinelAmount).Abs()
	if diff.LessThanOrEqual(models.TotalEpsilon) {
		return true
	}
	if strings.Contains(tx.Description, "ROBINHOOD") &&
		tx.Amount.Add(decimal.NewFromInt(450)).Abs().LessThanOrEqual(models.TotalEpsilon) {
		return true
	}
	return false
}

// dropEmptyChildren removes, bottom-up, every node left with no transactions,
// no children, and a ~zero total.
func dropEmptyChildren(node *models.CategoryNode) {
	kept := node.Children[:0]
	for _, child := range node.Children {
		dropEmptyChildren(child)
		if nodeEmpty(child) {
			continue
		}
		kept = append(kept, child)
	}
	node.Children = kept
}

func nodeEmpty(node *models.CategoryNode) bool {
	return len(node.Transactions) == 0 &&
		len(node.Children) == 0 &&
		node.Total.Abs().LessThanOrEqual(models.TotalEpsilon)
}
