package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlowell/ledgersum/internal/models"
)

func sampleSummaries() map[string]*models.MonthlySummary {
	tx := models.Transaction{
		Date:          time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC),
		Description:   "PUBLIX SUPER MAR",
		Amount:        decimal.NewFromFloat(-54.10),
		Category:      "Groceries/Home",
		Subcategory:   "Box Stores",
		ExpenseAmount: decimal.NewFromFloat(54.10),
	}
	return map[string]*models.MonthlySummary{
		"2023-05": {
			Month:           "2023-05",
			ExpenseTotal:    decimal.NewFromFloat(54.10),
			NetCashFlow:     decimal.NewFromFloat(-54.10),
			AllTransactions: []models.Transaction{tx},
		},
	}
}

func TestWriteSummariesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaries(&buf, sampleSummaries(), FormatJSON))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "2023-05", entries[0]["month"])
}

func TestWriteSummariesCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaries(&buf, sampleSummaries(), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "month")
	assert.Contains(t, lines[1], "PUBLIX SUPER MAR")
	assert.Contains(t, lines[1], "-54.10")
}

func TestWriteSummariesUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteSummaries(&buf, sampleSummaries(), "xml"))
}

func TestWriteRecurringJSON(t *testing.T) {
	var buf bytes.Buffer
	rr := models.RecurringReport{
		Streams: []models.RecurringStream{
			{Merchant: "SPOTIFY", Amount: decimal.NewFromFloat(9.99), Count: 5, Freq: models.FreqMonthly},
		},
		FloorTotal: decimal.NewFromFloat(9.99),
	}
	require.NoError(t, WriteRecurring(&buf, rr, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	streams := decoded["streams"].([]any)
	require.Len(t, streams, 1)
	assert.Equal(t, "SPOTIFY", streams[0].(map[string]any)["merchant"])
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat(FormatJSON))
	assert.True(t, ValidFormat(FormatCSV))
	assert.True(t, ValidFormat(FormatYAML))
	assert.False(t, ValidFormat("xml"))
	assert.False(t, ValidFormat(""))
}
