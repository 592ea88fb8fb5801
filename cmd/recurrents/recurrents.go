// Package recurrents handles the recurring stream detection command.
package recurrents

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jlowell/ledgersum/cmd/root"
	"jlowell/ledgersum/internal/recurring"
	"jlowell/ledgersum/internal/report"
)

var (
	window  string
	horizon int
	minOcc  int
)

// Cmd represents the recurrents command.
var Cmd = &cobra.Command{
	Use:   "recurrents",
	Short: "Detect recurring bills and income streams",
	Long: `Analyzes the classified transactions for repeating charges and deposits,
projects their upcoming occurrences, and reports the monthly floor and
expected income.`,
	RunE: recurrentsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&window, "window", "w", "all", "Trailing window in days, or 'all'")
	Cmd.Flags().IntVar(&horizon, "horizon", 0, "Projection horizon in days (default from settings)")
	Cmd.Flags().IntVar(&minOcc, "min-occ", 0, "Minimum sightings per stream (default from settings)")
}

func recurrentsFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Recurrents command called")

	summaries, _, err := root.BuildSummaries()
	if err != nil {
		return err
	}

	opts := recurring.Options{
		HorizonDays:    root.Settings.Recurring.HorizonDays,
		MinOccurrences: root.Settings.Recurring.MinOccurrences,
	}
	if horizon > 0 {
		opts.HorizonDays = horizon
	}
	if minOcc > 0 {
		opts.MinOccurrences = minOcc
	}
	if w := strings.TrimSpace(strings.ToLower(window)); w != "all" && w != "*" && w != "" {
		days, err := strconv.Atoi(w)
		if err != nil || days < 0 {
			root.Log.Warn("Ignoring invalid window value, using all history")
		} else {
			opts.WindowDays = days
		}
	}

	detector := recurring.NewDetector(recurring.DefaultRules(), root.Log)
	result := detector.Detect(summaries, opts)

	out, closeFn, err := root.OutputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	return report.WriteRecurring(out, result, root.SharedFlags.Format)
}
