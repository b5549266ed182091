package main

import (
	"github.com/jonathan/pathway-tracker/internal/observability"
	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/spf13/cobra"
)

func newResolveCmd(root *rootOptions) *cobra.Command {
	var (
		requiredOnly bool
		pretty       bool
	)
	cmd := &cobra.Command{
		Use:   "resolve <pathway-id>",
		Short: "Print a pathway definition",
		Long:  "Resolve a pathway by exact catalog id and print its definition as JSON. With --required, print only the required items in order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := root.offlineEngine(cmd.Context())
			if err != nil {
				return err
			}
			def, err := eng.ResolvePathway(args[0])
			if err != nil {
				return err
			}
			if pretty {
				observability.NewPrinter(cmd.OutOrStdout()).PrintPathway(def)
				return nil
			}
			if requiredOnly {
				return printJSON(cmd.OutOrStdout(), types.RequiredItems(def))
			}
			return printJSON(cmd.OutOrStdout(), def)
		},
	}
	cmd.Flags().BoolVar(&requiredOnly, "required", false, "Print only required items, sorted by order")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print a human-readable summary instead of JSON")
	return cmd
}
