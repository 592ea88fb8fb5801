// Package forecast handles the balance projection command.
package forecast

import (
	"time"

	"github.com/spf13/cobra"

	"jlowell/ledgersum/cmd/root"
	"jlowell/ledgersum/internal/models"
	"jlowell/ledgersum/internal/report"
	"jlowell/ledgersum/internal/summary"
)

var (
	balance string
	horizon int
)

// Cmd represents the forecast command.
var Cmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project a balance forward from recent net cash flow",
	Long: `Averages the net cash flow of the last three complete months and projects
the given balance week by week, with optimistic and pessimistic bands and the
estimated runway before the balance crosses zero.`,
	RunE: forecastFunc,
}

func init() {
	Cmd.Flags().StringVarP(&balance, "balance", "b", "0", "Current balance to project from")
	Cmd.Flags().IntVar(&horizon, "horizon", 90, "Projection horizon in days")
}

func forecastFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Forecast command called")

	summaries, _, err := root.BuildSummaries()
	if err != nil {
		return err
	}

	result := summary.BuildForecast(summaries, models.ParseAmount(balance), horizon, time.Now())

	out, closeFn, err := root.OutputWriter()
	if err != nil {
		return err
	}
	defer closeFn()

	return report.WriteForecast(out, result, root.SharedFlags.Format)
}
