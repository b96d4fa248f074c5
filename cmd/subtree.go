package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/domain"
	m "github.com/arborlab/arbor/internal/model"
)

var subtreeNodeFlag int64
var subtreeOutFlag string

// subtreeCmd represents the subtree command.
var subtreeCmd = newSubtreeCmd()

func newSubtreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtree <file>",
		Short: "Extract the subtree rooted at a node",
		Long: `Subtree collects the given node and all its descendants under the
current rooting. Without --out the node ids are listed; with --out the
induced sub-morphology is written to a new file with the node as root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Subtree(domain.SubtreeArgs{
				Path: m.Path(args[0]),
				Node: m.NodeID(subtreeNodeFlag),
				Out:  m.Path(subtreeOutFlag),
			})
		},
	}
	cmd.Flags().Int64VarP(&subtreeNodeFlag, "node", "n", 0, "id of the subtree root")
	cmd.Flags().StringVarP(&subtreeOutFlag, "out", "o", "", "write the induced sub-morphology to this file")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func init() {
	rootCmd.AddCommand(subtreeCmd)
}
