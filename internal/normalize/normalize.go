// Package normalize canonicalizes raw transaction descriptions and applies
// the user's manual description overrides before classification.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jlowell/ledgersum/internal/config"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Clean canonicalizes a raw bank description: strips non-breaking spaces,
// trims, uppercases, removes hyphens, and collapses whitespace runs to one
// space. Pure and deterministic.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\u00a0", " ")
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "")
	return whitespaceRe.ReplaceAllString(s, " ")
}

// Fingerprint builds the content key used to attach a description override to
// a transaction that carries no stable id: ISO date, amount to the cent, and
// the uppercased trimmed original description.
func Fingerprint(date time.Time, amount decimal.Decimal, originalDesc string) string {
	return fmt.Sprintf("%s|%s|%s",
		date.Format("2006-01-02"),
		amount.StringFixed(2),
		strings.ToUpper(strings.TrimSpace(originalDesc)))
}

// ApplyOverride returns the replacement description for a transaction, or the
// original when no override matches. Lookup order: exact transaction id, then
// the content fingerprint with the stored amount, then with the negated
// amount (banks disagree about debit sign). A miss is a silent no-op.
func ApplyOverride(txID string, date time.Time, amount decimal.Decimal, originalDesc string, overrides config.DescriptionOverrides) string {
	if txID != "" {
		if repl, ok := overrides.ByTxID[txID]; ok && repl != "" {
			return repl
		}
	}
	if repl, ok := overrides.ByFingerprint[Fingerprint(date, amount, originalDesc)]; ok && repl != "" {
		return repl
	}
	if repl, ok := overrides.ByFingerprint[Fingerprint(date, amount.Neg(), originalDesc)]; ok && repl != "" {
		return repl
	}
	return originalDesc
}
