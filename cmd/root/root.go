// Package root contains the root command and the state shared by all
// subcommands.
package root

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jlowell/ledgersum/internal/config"
	"jlowell/ledgersum/internal/ingest"
	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
	"jlowell/ledgersum/internal/summary"
)

// CommonFlags are the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Manual string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Settings holds the resolved application settings.
	Settings *config.Settings

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "ledgersum",
		Short: "Classify bank transactions and summarize them by month.",
		Long: `ledgersum ingests bank export CSV files, categorizes every transaction
through the keyword engine, and produces monthly category trees, recurring
bill detection, and a simple balance forecast.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ledgersum!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			settings, err := config.InitializeSettings()
			if err != nil {
				return err
			}
			Settings = settings
			Log = config.NewLogger(settings)

			if SharedFlags.Format == "" {
				SharedFlags.Format = settings.Report.Format
			}
			return nil
		},
	}
)

// Init initializes the root command and all shared flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input bank export CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Manual, "manual", "m", "", "Manual entries JSON file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: json, csv, or yaml")
}

// ResolveConfig loads the merged keyword configuration and the description
// override table using the paths from Settings.
func ResolveConfig() (config.EffectiveConfig, config.DescriptionOverrides) {
	dir := Settings.Data.Directory
	resolver := config.NewResolver(
		filepath.Join(dir, Settings.Data.SeedFile),
		filepath.Join(dir, Settings.Data.OverrideFile),
		Log,
	)
	cfg := resolver.Resolve()
	overrides := resolver.LoadDescriptionOverrides(filepath.Join(dir, Settings.Data.DescOverrides))
	return cfg, overrides
}

// BuildSummaries runs the full pipeline for the input flags: read exports and
// manual entries, normalize, and aggregate into monthly summaries.
func BuildSummaries() (map[string]*models.MonthlySummary, config.EffectiveConfig, error) {
	if SharedFlags.Input == "" {
		return nil, config.EffectiveConfig{}, fmt.Errorf("no input file specified (use --input)")
	}

	cfg, overrides := ResolveConfig()

	raws, err := ingest.ReadCSVFile(SharedFlags.Input, Log)
	if err != nil {
		return nil, config.EffectiveConfig{}, err
	}
	if SharedFlags.Manual != "" {
		manual, err := ingest.ReadManualFile(SharedFlags.Manual, Log)
		if err != nil {
			return nil, config.EffectiveConfig{}, err
		}
		raws = append(raws, manual...)
	}

	builder := summary.NewBuilder(Log)
	txs := builder.NormalizeAll(raws, cfg, overrides)
	return summary.BuildMonthlySummaries(txs, cfg, Log), cfg, nil
}

// OutputWriter opens the output destination named by the shared flags, or
// stdout when none is set. The caller owns the returned close function.
func OutputWriter() (*os.File, func(), error) {
	if SharedFlags.Output == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.OpenFile(SharedFlags.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening output file: %w", err)
	}
	closeFn := func() {
		if err := file.Close(); err != nil {
			Log.WithError(err).Warn("Failed to close output file")
		}
	}
	return file, closeFn, nil
}
