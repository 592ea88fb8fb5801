// Package report serializes monthly summaries, recurring reports, and
// forecasts for the dashboard and for file export.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"jlowell/ledgersum/internal/models"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// ValidFormat reports whether the format name is one we can write.
func ValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatCSV, FormatYAML:
		return true
	}
	return false
}

// monthEntry keeps exported summaries in chronological order; a JSON object
// keyed by month would serialize fine but loses ordering for YAML readers.
type monthEntry struct {
	Month   string                 `json:"month" yaml:"month"`
	Summary *models.MonthlySummary `json:"summary" yaml:"summary"`
}

// csvRow is the flat per-transaction export shape.
type csvRow struct {
	Month             string `csv:"month"`
	Date              string `csv:"date"`
	Description       string `csv:"description"`
	Category          string `csv:"category"`
	Subcategory       string `csv:"subcategory"`
	SubSubcategory    string `csv:"sub_subcategory"`
	SubSubSubcategory string `csv:"sub_sub_subcategory"`
	Amount            string `csv:"amount"`
	ExpenseAmount     string `csv:"expense_amount"`
	Owner             string `csv:"owner"`
}

// WriteSummaries serializes the monthly summaries in the requested format.
// CSV flattens to one row per transaction; JSON and YAML keep the tree.
func WriteSummaries(w io.Writer, summaries map[string]*models.MonthlySummary, format string) error {
	months := make([]string, 0, len(summaries))
	for m := range summaries {
		months = append(months, m)
	}
	sort.Strings(months)

	switch format {
	case FormatCSV:
		var rows []csvRow
		for _, month := range months {
			for _, tx := range summaries[month].AllTransactions {
				rows = append(rows, csvRow{
					Month:             month,
					Date:              tx.DateKey(),
					Description:       tx.Description,
					Category:          tx.Category,
					Subcategory:       tx.Subcategory,
					SubSubcategory:    tx.SubSubcategory,
					SubSubSubcategory: tx.SubSubSubcategory,
					Amount:            tx.Amount.StringFixed(2),
					ExpenseAmount:     tx.ExpenseAmount.StringFixed(2),
					Owner:             tx.Owner,
				})
			}
		}
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("error writing CSV report: %w", err)
		}
		return nil
	case FormatYAML:
		entries := make([]monthEntry, 0, len(months))
		for _, month := range months {
			entries = append(entries, monthEntry{Month: month, Summary: summaries[month]})
		}
		if err := yaml.NewEncoder(w).Encode(entries); err != nil {
			return fmt.Errorf("error writing YAML report: %w", err)
		}
		return nil
	case FormatJSON:
		entries := make([]monthEntry, 0, len(months))
		for _, month := range months {
			entries = append(entries, monthEntry{Month: month, Summary: summaries[month]})
		}
		return writeJSON(w, entries)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteRecurring serializes a recurring report. CSV flattens to one row per
// stream.
func WriteRecurring(w io.Writer, report models.RecurringReport, format string) error {
	switch format {
	case FormatCSV:
		type streamRow struct {
			Merchant string `csv:"merchant"`
			Amount   string `csv:"amount"`
			Count    int    `csv:"count"`
			Total    string `csv:"total"`
			Freq     string `csv:"freq"`
			First    string `csv:"first"`
			Last     string `csv:"last"`
			Next     string `csv:"next"`
			IsIncome bool   `csv:"is_income"`
			Missed   bool   `csv:"missed"`
		}
		rows := make([]streamRow, 0, len(report.Streams))
		for _, s := range report.Streams {
			rows = append(rows, streamRow{
				Merchant: s.Merchant,
				Amount:   s.Amount.StringFixed(2),
				Count:    s.Count,
				Total:    s.Total.StringFixed(2),
				Freq:     s.Freq,
				First:    s.First,
				Last:     s.Last,
				Next:     s.Next,
				IsIncome: s.IsIncome,
				Missed:   s.Missed,
			})
		}
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("error writing CSV report: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewEncoder(w).Encode(report); err != nil {
			return fmt.Errorf("error writing YAML report: %w", err)
		}
		return nil
	case FormatJSON:
		return writeJSON(w, report)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// WriteForecast serializes a balance forecast as JSON or YAML.
func WriteForecast(w io.Writer, forecast models.Forecast, format string) error {
	switch format {
	case FormatYAML:
		if err := yaml.NewEncoder(w).Encode(forecast); err != nil {
			return fmt.Errorf("error writing YAML report: %w", err)
		}
		return nil
	case FormatJSON, FormatCSV:
		// The forecast is a small nested object; CSV callers get JSON too.
		return writeJSON(w, forecast)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing JSON report: %w", err)
	}
	return nil
}
