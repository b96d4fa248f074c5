// Package cmd provides the root command and CLI setup for arbor.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arborlab/arbor/internal/adapter"
	"github.com/arborlab/arbor/internal/controller"
	"github.com/arborlab/arbor/internal/domain"
	m "github.com/arborlab/arbor/internal/model"
)

var store adapter.MorphologyStore
var scanner adapter.FolderScanner
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	store = adapter.NewLocalStore()
	scanner = adapter.NewLocalScanner()
	workflow = domain.NewWorkflow(store, scanner, ui)
}

var autoSaveFlag bool
var plainFlag bool
var maxSelectFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arbor [paths...]",
		Short: "Neuron morphology inspection and editing tool",
		Long: `Arbor loads neuron morphology files (SWC, native .arbor, CSV point
clouds) and opens an interactive session for inspecting and editing them:
pick nodes, reroot the tree at a picked node, extract subtrees, flag files
for review, and navigate a folder of reconstructions.

Paths can be individual files or directories; directories contribute all
their neuron files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			wf := workflow
			if plainFlag {
				wf = domain.NewWorkflow(store, scanner, controller.NewSimpleUI(cmd))
			}

			return wf.Session(domain.SessionArgs{
				Paths:     parsePaths(args),
				AutoSave:  autoSaveFlag,
				MaxSelect: maxSelectFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&autoSaveFlag, "autosave", "a", false, "save the current file before navigating to another")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "force plain text output even on a terminal")
	cmd.Flags().IntVar(&maxSelectFlag, "max-select", 0, "maximum number of simultaneously selected nodes")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
