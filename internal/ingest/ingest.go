// Package ingest reads bank export CSV files and manual-entry JSON files
// into raw transaction records.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

// ReadCSVFile reads a bank export CSV into raw transactions. The header row
// must carry the export's column names; unknown columns are ignored.
func ReadCSVFile(path string, logger logging.Logger) ([]models.RawTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file",
			logging.Field{Key: logging.FieldFile, Value: path})
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadCSV(file, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Read bank export",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadCSV parses raw transactions from a CSV reader.
func ReadCSV(r io.Reader, logger logging.Logger) ([]models.RawTransaction, error) {
	var rows []models.RawTransaction
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV data")
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// ReadManualFile reads manually entered transactions from a JSON array file.
// A missing file is not an error: manual entries are optional.
func ReadManualFile(path string, logger logging.Logger) ([]models.RawTransaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading manual entries: %w", err)
	}
	var rows []models.RawTransaction
	if err := json.Unmarshal(data, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse manual entries",
			logging.Field{Key: logging.FieldFile, Value: path})
		return nil, fmt.Errorf("error parsing manual entries: %w", err)
	}
	logger.Info("Read manual entries",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}
