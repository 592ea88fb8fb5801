package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"jlowell/ledgersum/internal/logging"
)

// Settings is the application-level configuration (paths, logging, detector
// knobs), distinct from the EffectiveConfig keyword data the engine consumes.
type Settings struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory     string `mapstructure:"directory" yaml:"directory"`
		SeedFile      string `mapstructure:"seed_file" yaml:"seed_file"`
		OverrideFile  string `mapstructure:"override_file" yaml:"override_file"`
		DescOverrides string `mapstructure:"desc_overrides" yaml:"desc_overrides"`
	} `mapstructure:"data" yaml:"data"`

	Recurring struct {
		HorizonDays    int `mapstructure:"horizon_days" yaml:"horizon_days"`
		MinOccurrences int `mapstructure:"min_occurrences" yaml:"min_occurrences"`
	} `mapstructure:"recurring" yaml:"recurring"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeSettings loads settings with hierarchical precedence: defaults,
// then an optional YAML config file, then LEDGERSUM_* environment variables.
func InitializeSettings() (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.ledgersum")
	v.AddConfigPath(".ledgersum")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LEDGERSUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Unreadable config file is not fatal; defaults and env still apply.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := validateSettings(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", ".")
	v.SetDefault("data.seed_file", "filter_config_seed.json")
	v.SetDefault("data.override_file", "filter_overrides.json")
	v.SetDefault("data.desc_overrides", "desc_overrides.json")

	v.SetDefault("recurring.horizon_days", 45)
	v.SetDefault("recurring.min_occurrences", 2)

	v.SetDefault("report.format", "json")
}

func validateSettings(settings *Settings) error {
	if _, err := logrus.ParseLevel(settings.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", settings.Log.Level)
	}
	if settings.Log.Format != "text" && settings.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", settings.Log.Format)
	}
	if settings.Recurring.HorizonDays < 1 {
		return fmt.Errorf("recurring.horizon_days must be positive, got: %d", settings.Recurring.HorizonDays)
	}
	if settings.Recurring.MinOccurrences < 1 {
		return fmt.Errorf("recurring.min_occurrences must be positive, got: %d", settings.Recurring.MinOccurrences)
	}
	switch settings.Report.Format {
	case "json", "csv", "yaml":
	default:
		return fmt.Errorf("invalid report format: %s", settings.Report.Format)
	}
	return nil
}

// NewLogger builds the application logger from the settings.
func NewLogger(settings *Settings) logging.Logger {
	return logging.NewLogrusAdapter(settings.Log.Level, settings.Log.Format)
}
