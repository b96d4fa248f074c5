package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/domain"
)

var infoParallelFlag int

// infoCmd represents the info command.
var infoCmd = newInfoCmd()

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [paths...]",
		Short: "Summarize morphology files",
		Long: `Info loads each morphology file and prints a summary table: node
count, root id, leaf and branch counts, tree depth, total cable length and
the review flag. Directories contribute all their neuron files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Info(domain.InfoArgs{
				Paths:   parsePaths(args),
				Threads: infoParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&infoParallelFlag, "parallel", "p", 1, "number of parallel workers for loading files")

	return cmd
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
