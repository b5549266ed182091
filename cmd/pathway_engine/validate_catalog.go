package main

import (
	"fmt"

	"github.com/jonathan/pathway-tracker/internal/engine"
	"github.com/spf13/cobra"
)

func newValidateCatalogCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-catalog",
		Short: "Validate catalog data files",
		Long:  "Load the pathway registries, specialty index and milestone index, validating each against its schema, and report counts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.settings()
			if err != nil {
				return err
			}
			data, err := loadData(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if _, err := engine.New(data, engine.Options{}); err != nil {
				return err
			}

			source := cfg.CatalogDir
			if source == "" {
				source = "embedded catalog"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d pathways in %d countries, %d specialties, %d milestone paths)\n",
				source,
				data.Catalog.Len(),
				len(data.Catalog.Countries()),
				len(data.Specialties.Specialties()),
				len(data.Milestones.Paths()),
			)
			return err
		},
	}
}
