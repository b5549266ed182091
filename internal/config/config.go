// Package config provides configuration loading and validation for the engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultPort              = 8080
	DefaultLogMode           = "dev"
	DefaultProgressCacheSize = 1024
)

// Config holds engine settings loaded from a JSON file and the environment.
// All fields are optional; missing values use defaults.
type Config struct {
	DatabaseURL       string `json:"database_url,omitempty"`        // PostgreSQL connection URL; empty uses in-memory selections
	CatalogDir        string `json:"catalog_dir,omitempty"`         // Directory with pathways/, specialties.yaml, milestones.yaml; empty uses embedded data
	Port              int    `json:"port,omitempty"`                // HTTP listen port
	LogMode           string `json:"log_mode,omitempty"`            // "dev" or "prod"
	ProgressCacheSize int    `json:"progress_cache_size,omitempty"` // Memoized progress results kept
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from DATABASE_URL, CATALOG_DIR, PORT, LOG_MODE and
// PROGRESS_CACHE_SIZE when they are set. Unparseable numbers are an error.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CATALOG_DIR"); v != "" {
		c.CatalogDir = v
	}
	if v := os.Getenv("LOG_MODE"); v != "" {
		c.LogMode = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("PROGRESS_CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PROGRESS_CACHE_SIZE %q: %w", v, err)
		}
		c.ProgressCacheSize = size
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ProgressCacheSize < 0 {
		return fmt.Errorf("config error: 'progress_cache_size' must be non-negative")
	}
	switch strings.ToLower(c.LogMode) {
	case "", "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("config error: unknown 'log_mode' %q", c.LogMode)
	}

	if c.CatalogDir != "" {
		info, err := os.Stat(c.CatalogDir)
		if err != nil {
			return fmt.Errorf("config error: catalog directory not found: %s", c.CatalogDir)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: catalog_dir is not a directory: %s", c.CatalogDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults,
// then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CatalogDir == "" {
		result.CatalogDir = defaults.CatalogDir
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ProgressCacheSize == 0 {
		result.ProgressCacheSize = defaults.ProgressCacheSize
	}

	if result.LogMode == "" {
		result.LogMode = DefaultLogMode
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.ProgressCacheSize == 0 {
		result.ProgressCacheSize = DefaultProgressCacheSize
	}

	return result
}
