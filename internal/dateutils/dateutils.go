// Package dateutils provides the date parsing and calendar helpers used
// throughout the engine.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants for the export formats the engine accepts.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutUS        = "01/02/2006"
	DateLayoutSlashISO  = "2006/01/02"
	DateLayoutMonthOnly = "2006-01"
)

// CommonFormats is the ordered list of layouts tried when parsing an export
// date. ISO first because manual entries and Plaid both emit it.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutUS,
	DateLayoutSlashISO,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDateString attempts to parse a date string using each accepted layout
// in order. Returns an error when none match; callers drop such rows rather
// than failing the batch.
func ParseDateString(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the YYYY-MM grouping key for a date.
func MonthKey(date time.Time) string {
	return date.Format(DateLayoutMonthOnly)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// WeekStart returns the Monday that begins the ISO week containing the date.
func WeekStart(date time.Time) time.Time {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
