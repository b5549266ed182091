package main

import (
	"context"
	"fmt"

	"github.com/jonathan/pathway-tracker/internal/db"
	"github.com/jonathan/pathway-tracker/internal/engine"
	"github.com/jonathan/pathway-tracker/internal/logging"
	"github.com/jonathan/pathway-tracker/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server that exposes the catalog, milestone aggregation, progress and
pathway selection endpoints. With DATABASE_URL set, selections and achievements are
read from PostgreSQL; otherwise selections are kept in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides PORT and config)")
	return cmd
}

func runServe(ctx context.Context, root *rootOptions, port int) error {
	cfg, err := root.settings()
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}

	logger, err := logging.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	data, err := loadData(ctx, cfg)
	if err != nil {
		return err
	}

	opts := engine.Options{CacheSize: cfg.ProgressCacheSize}
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return err
		}
		opts.Store = database
		opts.Achievements = database
		logger.Info("using database for selections and achievements")
	} else {
		logger.Warn("DATABASE_URL not set, selections are kept in memory and user progress is unavailable")
	}

	eng, err := engine.New(data, opts)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	logger.Info("catalog loaded",
		"pathways", eng.Catalog().Len(),
		"countries", len(eng.Catalog().Countries()),
		"catalog_dir", cfg.CatalogDir,
	)

	return server.New(server.Config{Port: cfg.Port}, eng, logger).Start()
}
