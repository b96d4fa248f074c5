package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/arborlab/arbor/internal/model"
)

// SimpleUI implements UI with plain text on the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummaries renders one table row per loaded file.
func (s *SimpleUI) DisplaySummaries(summaries []m.Summary) error {
	if len(summaries) == 0 {
		s.printf("No morphology files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Kind", "Nodes", "Root", "Leaves", "Branches", "Depth", "Cable", "Flag"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER,
	})

	totalNodes := 0

	for _, summary := range summaries {
		table.Append(summaryRow(summary))
		totalNodes += summary.Nodes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summaries)),
		"", fmt.Sprintf("%d", totalNodes), "", "", "", "", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySubtree lists the node ids of an extracted subtree.
func (s *SimpleUI) DisplaySubtree(path m.Path, seed m.NodeID, ids []m.NodeID) error {
	s.printf("Subtree of node %d in %s: %d nodes\n", seed, path, len(ids))

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}

	s.printf("%s\n", strings.Join(parts, " "))

	return nil
}

// DisplayReroot confirms a completed reroot operation.
func (s *SimpleUI) DisplayReroot(path m.Path, newRoot m.NodeID, saved m.Path) error {
	s.printf("Rerooted %s at node %d -> %s\n", path, newRoot, saved)
	return nil
}

// RunSession has no interactive mode in plain text; it prints the current
// file's summary and points at the TUI.
func (s *SimpleUI) RunSession(session Session) error {
	if err := s.DisplaySummaries([]m.Summary{session.Summary()}); err != nil {
		return err
	}

	s.printf("Interactive editing requires a terminal. Use the reroot and subtree commands instead.\n")

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func summaryRow(summary m.Summary) []string {
	flag := ""
	if summary.Flagged {
		flag = "*"
	}

	if summary.Kind == m.KindCloud {
		return []string{
			string(summary.Path), string(summary.Kind),
			fmt.Sprintf("%d", summary.Nodes), "-", "-", "-", "-", "-", flag,
		}
	}

	return []string{
		string(summary.Path), string(summary.Kind),
		fmt.Sprintf("%d", summary.Nodes),
		fmt.Sprintf("%d", summary.Root),
		fmt.Sprintf("%d", summary.Leaves),
		fmt.Sprintf("%d", summary.Branches),
		fmt.Sprintf("%d", summary.MaxDepth),
		fmt.Sprintf("%.1f", summary.CableLength),
		flag,
	}
}
