// Package models defines the domain types shared by the classification and
// aggregation packages: raw and normalized transactions, category trees,
// monthly summaries, and recurring streams.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransaction is a single record from a bank/Plaid export or a manual
// entry file, before normalization. Amount is kept as a string here because
// exports are inconsistent about formatting; parsing happens during
// normalization and a bad value coerces to zero rather than failing the batch.
type RawTransaction struct {
	Date           string `csv:"date" json:"date"`
	Description    string `csv:"description" json:"description"`
	Amount         string `csv:"amount" json:"amount"`
	Pending        bool   `csv:"pending" json:"pending"`
	TxID           string `csv:"tx_id" json:"tx_id,omitempty"`
	Subcategory    string `csv:"subcategory" json:"subcategory,omitempty"`
	SubSubcategory string `csv:"sub_subcategory" json:"sub_subcategory,omitempty"`
}

// Transaction is a normalized, categorized transaction.
//
// Amount carries the dashboard sign convention, not the bank's: income is
// positive, expense purchases are negative, expense returns are positive.
// ExpenseAmount is the derived value used for category totals (positive for
// purchases, negative for returns) so returns net off spend within their
// category without touching income.
type Transaction struct {
	Date              time.Time       `json:"date"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Category          string          `json:"category"`
	Subcategory       string          `json:"subcategory,omitempty"`
	SubSubcategory    string          `json:"sub_subcategory,omitempty"`
	SubSubSubcategory string          `json:"sub_sub_subcategory,omitempty"`
	IsReturn          bool            `json:"is_return"`
	ExpenseAmount     decimal.Decimal `json:"expense_amount"`
	Owner             string          `json:"owner,omitempty"`
}

// MonthKey returns the YYYY-MM grouping key for the transaction date.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}

// DateKey returns the transaction date as an ISO YYYY-MM-DD string.
func (t Transaction) DateKey() string {
	return t.Date.Format("2006-01-02")
}

// HierarchyPath returns the assigned labels from category down to the deepest
// assigned level, skipping empty levels.
func (t Transaction) HierarchyPath() []string {
	path := []string{t.Category}
	for _, label := range []string{t.Subcategory, t.SubSubcategory, t.SubSubSubcategory} {
		if label == "" {
			break
		}
		path = append(path, label)
	}
	return path
}
