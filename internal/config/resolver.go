package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"jlowell/ledgersum/internal/logging"
	"jlowell/ledgersum/internal/models"
)

// Resolver loads the three configuration layers and produces the merged
// EffectiveConfig snapshot. It owns the file paths; the engine itself never
// touches the filesystem.
type Resolver struct {
	SeedPath     string
	OverridePath string
	logger       logging.Logger
}

// NewResolver creates a Resolver for the given seed and live-override paths.
func NewResolver(seedPath, overridePath string, logger logging.Logger) *Resolver {
	return &Resolver{
		SeedPath:     seedPath,
		OverridePath: overridePath,
		logger:       logger,
	}
}

// Resolve builds a fresh EffectiveConfig: code defaults, then the seed
// overlay, then the live override overlay. On first call it copies the seed
// file verbatim into the override location if no override exists yet.
// A malformed or missing layer is treated as absent and the merge degrades
// to the layers below it; Resolve never fails.
func (r *Resolver) Resolve() EffectiveConfig {
	r.seedIfMissing()

	cfg := DefaultConfig()

	if overlay, ok := r.loadOverlay(r.SeedPath, "seed"); ok {
		cfg = cfg.Merge(overlay)
	}
	if overlay, ok := r.loadOverlay(r.OverridePath, "override"); ok {
		cfg = cfg.Merge(overlay)
	}

	return cfg
}

// seedIfMissing copies the seed file's bytes into the override location when
// the override file does not exist yet. Idempotent.
func (r *Resolver) seedIfMissing() {
	if r.SeedPath == "" || r.OverridePath == "" {
		return
	}
	if _, err := os.Stat(r.OverridePath); err == nil {
		return
	}
	data, err := os.ReadFile(r.SeedPath)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.OverridePath), models.PermissionDirectory); err != nil {
		r.logger.WithError(err).Warn("Could not create override config directory",
			logging.Field{Key: logging.FieldFile, Value: r.OverridePath})
		return
	}
	if err := os.WriteFile(r.OverridePath, data, models.PermissionConfigFile); err != nil {
		r.logger.WithError(err).Warn("Could not seed override config file",
			logging.Field{Key: logging.FieldFile, Value: r.OverridePath})
		return
	}
	r.logger.Info("Seeded override config from seed file",
		logging.Field{Key: logging.FieldFile, Value: r.OverridePath})
}

func (r *Resolver) loadOverlay(path, layer string) (Overlay, bool) {
	if path == "" {
		return Overlay{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.WithError(err).Warn("Could not read config layer",
				logging.Field{Key: logging.FieldLayer, Value: layer},
				logging.Field{Key: logging.FieldFile, Value: path})
		}
		return Overlay{}, false
	}
	var overlay Overlay
	if err := json.Unmarshal(data, &overlay); err != nil {
		// Malformed JSON degrades to the layers below rather than failing.
		r.logger.WithError(err).Warn("Malformed config layer ignored",
			logging.Field{Key: logging.FieldLayer, Value: layer},
			logging.Field{Key: logging.FieldFile, Value: path})
		return Overlay{}, false
	}
	return overlay, true
}

// DescriptionOverrides is the user's manual relabeling table: by transaction
// id when the export carries one, else by content fingerprint. The engine
// consumes it read-only; persistence belongs to the admin layer.
type DescriptionOverrides struct {
	ByTxID        map[string]string `json:"by_txid"`
	ByFingerprint map[string]string `json:"by_fingerprint"`
}

// LoadDescriptionOverrides reads the overrides file. Missing or malformed
// files yield an empty table, never an error.
func (r *Resolver) LoadDescriptionOverrides(path string) DescriptionOverrides {
	empty := DescriptionOverrides{
		ByTxID:        map[string]string{},
		ByFingerprint: map[string]string{},
	}
	if path == "" {
		return empty
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}
	var overrides DescriptionOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		r.logger.WithError(err).Warn("Malformed description overrides ignored",
			logging.Field{Key: logging.FieldFile, Value: path})
		return empty
	}
	if overrides.ByTxID == nil {
		overrides.ByTxID = map[string]string{}
	}
	if overrides.ByFingerprint == nil {
		overrides.ByFingerprint = map[string]string{}
	}
	return overrides
}
