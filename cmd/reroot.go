package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/domain"
	m "github.com/arborlab/arbor/internal/model"
)

var rerootNodeFlag int64
var rerootOutFlag string

// rerootCmd represents the reroot command.
var rerootCmd = newRerootCmd()

func newRerootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reroot <file>",
		Short: "Reroot a morphology at a node",
		Long: `Reroot restructures the tree so the given node becomes the root,
preserving the undirected skeleton, and saves the result (in place unless
--out is given).`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Reroot(domain.RerootArgs{
				Path: m.Path(args[0]),
				Node: m.NodeID(rerootNodeFlag),
				Out:  m.Path(rerootOutFlag),
			})
		},
	}
	cmd.Flags().Int64VarP(&rerootNodeFlag, "node", "n", 0, "id of the node to become the new root")
	cmd.Flags().StringVarP(&rerootOutFlag, "out", "o", "", "write the result to this file instead of in place")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

func init() {
	rootCmd.AddCommand(rerootCmd)
}
