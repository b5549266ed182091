package main

import (
	"github.com/jonathan/pathway-tracker/internal/types"
	"github.com/spf13/cobra"
)

type pathsOutput struct {
	Specialty string                    `json:"specialty"`
	Mapped    bool                      `json:"mapped"`
	Paths     []types.CareerPath        `json:"paths"`
	Exams     []string                  `json:"exams,omitempty"`
	Pathways  []types.PathwayDefinition `json:"pathways,omitempty"`
}

func newPathsCmd(root *rootOptions) *cobra.Command {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "paths <specialty>",
		Short: "List career paths for a specialty",
		Long:  "Print the curated career paths and exams for a specialty. Unmapped specialties get the default path list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := root.offlineEngine(cmd.Context())
			if err != nil {
				return err
			}
			out := pathsOutput{
				Specialty: args[0],
				Mapped:    eng.SpecialtyMapped(args[0]),
				Paths:     eng.PathsFor(args[0]),
				Exams:     eng.ExamsFor(args[0]),
			}
			if resolve {
				out.Pathways = eng.ResolveCareerPaths(args[0])
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Also print the catalog pathways the career paths link to")
	return cmd
}
