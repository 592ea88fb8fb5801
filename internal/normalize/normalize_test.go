package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"jlowell/ledgersum/internal/config"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Uppercases and trims", "  netflix.com  ", "NETFLIX.COM"},
		{"Removes hyphens", "WAL-MART", "WALMART"},
		{"Collapses whitespace", "CHECK   DEPOSIT\t123", "CHECK DEPOSIT 123"},
		{"Non-breaking spaces", "CARD\u00a0PURCHASE", "CARD PURCHASE"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.input))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{"  Wal-Mart  Store #123 ", "PAYPAL *NETFLIX", "a b - c"}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once))
	}
}

func TestFingerprint(t *testing.T) {
	date := time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC)
	got := Fingerprint(date, decimal.NewFromFloat(-15.49), " Netflix.com ")
	assert.Equal(t, "2023-04-02|-15.49|NETFLIX.COM", got)
}

func TestApplyOverride(t *testing.T) {
	date := time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(-15.49)

	overrides := config.DescriptionOverrides{
		ByTxID: map[string]string{"tx-1": "STREAMING SERVICE"},
		ByFingerprint: map[string]string{
			"2023-04-02|15.49|NETFLIX.COM": "STREAMING SERVICE BY PRINT",
		},
	}

	t.Run("TxID wins", func(t *testing.T) {
		got := ApplyOverride("tx-1", date, amount, "NETFLIX.COM", overrides)
		assert.Equal(t, "STREAMING SERVICE", got)
	})

	t.Run("Fingerprint matches with negated amount", func(t *testing.T) {
		// Stored fingerprint carries the opposite sign; lookup retries negated.
		got := ApplyOverride("", date, amount, "NETFLIX.COM", overrides)
		assert.Equal(t, "STREAMING SERVICE BY PRINT", got)
	})

	t.Run("Miss is a no-op", func(t *testing.T) {
		got := ApplyOverride("", date, amount, "SOMETHING ELSE", overrides)
		assert.Equal(t, "SOMETHING ELSE", got)
	})
}
