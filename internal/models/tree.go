package models

import "github.com/shopspring/decimal"

// CategoryNode is one node of a per-month category tree. Each transaction
// attaches to the deepest node its hierarchy path reaches, which may be an
// internal node; every node's Total is the rounded sum over its subtree,
// recomputed bottom-up whenever the tree changes.
// Trees are rebuilt fresh on every aggregation pass and never mutated across
// builds.
type CategoryNode struct {
	Name         string          `json:"name"`
	Total        decimal.Decimal `json:"total"`
	Transactions []Transaction   `json:"transactions,omitempty"`
	Children     []*CategoryNode `json:"children,omitempty"`
}

// Child returns the direct child with the given name, or nil.
func (n *CategoryNode) Child(name string) *CategoryNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// EnsureChild returns the direct child with the given name, appending a new
// empty child when none exists. Insertion order is preserved so tree output
// is deterministic.
func (n *CategoryNode) EnsureChild(name string) *CategoryNode {
	if c := n.Child(name); c != nil {
		return c
	}
	c := &CategoryNode{Name: name}
	n.Children = append(n.Children, c)
	return c
}

// SubtreeTransactions returns every transaction attached anywhere in the
// subtree. A node that gains children can still hold its own transactions, so
// the walk must not stop at leaves.
func (n *CategoryNode) SubtreeTransactions() []Transaction {
	out := append([]Transaction{}, n.Transactions...)
	for _, c := range n.Children {
		out = append(out, c.SubtreeTransactions()...)
	}
	return out
}

// Walk visits the node and every descendant depth-first.
func (n *CategoryNode) Walk(visit func(*CategoryNode)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// MonthlySummary holds one calendar month's aggregated view: headline totals,
// the category tree, and the flat transaction list. Invariant after pruning:
// NetCashFlow == IncomeTotal - ExpenseTotal and both totals are non-negative.
type MonthlySummary struct {
	Month           string          `json:"month"`
	IncomeTotal     decimal.Decimal `json:"income_total"`
	ExpenseTotal    decimal.Decimal `json:"expense_total"`
	NetCashFlow     decimal.Decimal `json:"net_cash_flow"`
	Tree            []*CategoryNode `json:"tree"`
	AllTransactions []Transaction   `json:"all_transactions"`
}

// CategoryNodeByName returns the top-level tree node for a category, or nil.
func (s *MonthlySummary) CategoryNodeByName(name string) *CategoryNode {
	for _, n := range s.Tree {
		if n.Name == name {
			return n
		}
	}
	return nil
}
