package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlowell/ledgersum/internal/logging"
)

func TestReadCSV(t *testing.T) {
	data := strings.NewReader(
		"date,description,amount,pending,tx_id\n" +
			"2023-05-02,PUBLIX SUPER MAR,-54.10,false,tx-1\n" +
			"2023-05-03,SPOTIFY USA,-9.99,true,tx-2\n")

	rows, err := ReadCSV(data, logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "PUBLIX SUPER MAR", rows[0].Description)
	assert.Equal(t, "-54.10", rows[0].Amount)
	assert.False(t, rows[0].Pending)
	assert.True(t, rows[1].Pending)
	assert.Equal(t, "tx-1", rows[0].TxID)
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "missing.csv"), logging.NewMockLogger())
	assert.Error(t, err)
}

func TestReadManualFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing file is not an error", func(t *testing.T) {
		rows, err := ReadManualFile(filepath.Join(dir, "none.json"), logging.NewMockLogger())
		assert.NoError(t, err)
		assert.Nil(t, rows)
	})

	t.Run("Valid file loads", func(t *testing.T) {
		path := filepath.Join(dir, "manual.json")
		payload := `[{"date": "2023-05-04", "description": "CASH TIPS", "amount": "120.00", "subcategory": "JL Pay"}]`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

		rows, err := ReadManualFile(path, logging.NewMockLogger())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "CASH TIPS", rows[0].Description)
		assert.Equal(t, "JL Pay", rows[0].Subcategory)
	})

	t.Run("Malformed file errors", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
		_, err := ReadManualFile(path, logging.NewMockLogger())
		assert.Error(t, err)
	})
}
