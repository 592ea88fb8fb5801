package models

import "github.com/shopspring/decimal"

// Category names with hardwired behavior elsewhere in the engine.
const (
	CategoryIncome        = "Income"
	CategoryTransfers     = "Transfers"
	CategoryMiscellaneous = "Miscellaneous"
	CategoryWithdrawals   = "Withdrawals"
	CategoryVenmo         = "Venmo"
	CategoryCreditCard    = "Credit Card"
	CategoryRentUtilities = "Rent/Utilities"
	CategorySubscriptions = "Subscriptions"
	CategoryFees          = "Fees"
	CategoryBet           = "Bet"
	CategoryPhone         = "Phone"
)

// SentinelOther is the bucket label assigned when a hierarchy level exists
// for a category but none of its keywords match.
const SentinelOther = "🟡 Other/Uncategorized"

// Owner labels for tagged withdrawal transactions.
const (
	OwnerJL      = "JL"
	OwnerRachel  = "Rachel"
	OwnerUnknown = "Unknown"
)

// HideSentinelAmount marks placeholder transactions that must be stripped
// from all reported totals. Both signs are treated as sentinels.
var HideSentinelAmount = decimal.NewFromFloat(10002.02)

// TotalEpsilon is the tolerance used when comparing rounded totals to zero
// and when matching sentinel amounts.
var TotalEpsilon = decimal.NewFromFloat(0.005)

// File permissions for config and report files written by the resolver and
// report packages.
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
