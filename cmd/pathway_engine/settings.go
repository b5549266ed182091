package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/pathway-tracker/internal/config"
	"github.com/jonathan/pathway-tracker/internal/engine"
)

// settings resolves configuration in order of precedence: flags, environment,
// config file, defaults.
func (o *rootOptions) settings() (config.Config, error) {
	cfg := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if o.catalogDir != "" {
		cfg.CatalogDir = o.catalogDir
	}

	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// loadData reads catalog data from cfg.CatalogDir, or the embedded catalog when unset.
func loadData(ctx context.Context, cfg config.Config) (*engine.Data, error) {
	if cfg.CatalogDir == "" {
		data, err := engine.LoadDefault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return data, nil
	}
	data, err := engine.LoadFS(ctx, os.DirFS(cfg.CatalogDir))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", cfg.CatalogDir, err)
	}
	return data, nil
}

// offlineEngine builds an engine with in-memory selections for one-shot commands.
func (o *rootOptions) offlineEngine(ctx context.Context) (*engine.Engine, error) {
	cfg, err := o.settings()
	if err != nil {
		return nil, err
	}
	data, err := loadData(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return engine.New(data, engine.Options{CacheSize: cfg.ProgressCacheSize})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
