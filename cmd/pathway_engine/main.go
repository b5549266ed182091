// Package main provides the entry point for the pathway engine CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
	catalogDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "pathway_engine",
		Short:         "Pathway requirement resolution and progress engine",
		Long:          "Resolves licensing pathway requirements, aggregates career path milestones and computes per-pathway progress, from the command line or via REST API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to JSON config file")
	cmd.PersistentFlags().StringVar(&opts.catalogDir, "catalog-dir", "", "Catalog directory with pathways/, specialties.yaml and milestones.yaml (overrides CATALOG_DIR)")

	cmd.AddCommand(
		newServeCmd(opts),
		newResolveCmd(opts),
		newProgressCmd(opts),
		newMilestonesCmd(opts),
		newPathsCmd(opts),
		newValidateCatalogCmd(opts),
	)
	return cmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
