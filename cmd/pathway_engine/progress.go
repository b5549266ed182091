package main

import (
	"fmt"

	"github.com/jonathan/pathway-tracker/internal/observability"
	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/spf13/cobra"
)

func newProgressCmd(root *rootOptions) *cobra.Command {
	var (
		achieved []string
		summary  bool
		pretty   bool
	)
	cmd := &cobra.Command{
		Use:   "progress <pathway>",
		Short: "Compute progress against a pathway",
		Long:  "Compute completion of a pathway id or custom pathway name from a list of achieved milestone names.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := root.offlineEngine(cmd.Context())
			if err != nil {
				return err
			}
			p := eng.ComputeProgress(args[0], achieved)
			if pretty {
				observability.NewPrinter(cmd.OutOrStdout()).PrintProgress(p)
				return nil
			}
			if summary {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), progressSummary(p))
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringSliceVarP(&achieved, "achieved", "a", nil, "Achieved milestone names (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a one-line summary instead of JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print completed items and next steps in a box")
	return cmd
}

func progressSummary(p types.Progress) string {
	if !p.Resolved {
		return fmt.Sprintf("%s: no catalog data", p.Name)
	}
	line := fmt.Sprintf("%s: %d/%d required (%s)", p.Name, p.CompletedCount, p.TotalRequired, p.PercentComplete)
	if p.NextRequirement != nil {
		line += ", next: " + p.NextRequirement.Name
	}
	return line
}
