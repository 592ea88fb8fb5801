// Package summarize handles the monthly summary command.
package summarize

import (
	"github.com/spf13/cobra"

	"jlowell/ledgersum/cmd/root"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/report"
)

// Cmd represents the summarize command.
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Build monthly category summaries from a bank export",
	Long: `Reads a bank export CSV, classifies every transaction, and writes the
per-month category trees with income, expense, and net totals.`,
	RunE: summarizeFunc,
}

func summarizeFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Summarize command called")

	summaries, _, err := root.BuildSummaries()
	if err != nil {
		return err
	}

	out, closeFn, err := root.OutputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := report.WriteSummaries(out, summaries, root.SharedFlags.Format); err != nil {
		return err
	}
	root.Log.Info("Wrote monthly summaries",
		logging.Field{Key: logging.FieldCount, Value: len(summaries)})
	return nil
}
