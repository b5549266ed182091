package main

import (
	"github.com/jonathan/pathway-tracker/internal/milestones"
	"github.com/jonathan/pathway-tracker/internal/observability"
	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/spf13/cobra"
)

type milestonesOutput struct {
	Mode       milestones.Mode   `json:"mode"`
	Milestones []types.Milestone `json:"milestones"`
}

func newMilestonesCmd(root *rootOptions) *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "milestones [career-path...]",
		Short: "Aggregate milestone templates for career paths",
		Long:  "Print the deduplicated milestone templates for the given career path names, followed by the common set. Any unknown name switches to every registered path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := root.offlineEngine(cmd.Context())
			if err != nil {
				return err
			}
			ms, mode := eng.AggregateMilestones(args)
			if pretty {
				observability.NewPrinter(cmd.OutOrStdout()).PrintMilestones(ms, string(mode))
				return nil
			}
			return printJSON(cmd.OutOrStdout(), milestonesOutput{Mode: mode, Milestones: ms})
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Print milestones grouped by category instead of JSON")
	return cmd
}
