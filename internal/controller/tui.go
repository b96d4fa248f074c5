package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/arborlab/arbor/internal/model"
)

// TUI implements UI using Bubble Tea for the interactive session and
// compact text for one-shot displays.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySummaries prints one compact line per file.
func (t *TUI) DisplaySummaries(summaries []m.Summary) error {
	for _, summary := range summaries {
		if summary.Kind == m.KindCloud {
			_, _ = fmt.Fprintf(t.output, "%s  %d points (cloud)\n", summary.Path, summary.Nodes)
			continue
		}

		flag := ""
		if summary.Flagged {
			flag = "  [flagged]"
		}

		_, _ = fmt.Fprintf(t.output, "%s  %d nodes, root %d, %d leaves, cable %.1f%s\n",
			summary.Path, summary.Nodes, summary.Root, summary.Leaves, summary.CableLength, flag)
	}

	return nil
}

// DisplaySubtree lists the node ids of an extracted subtree.
func (t *TUI) DisplaySubtree(path m.Path, seed m.NodeID, ids []m.NodeID) error {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}

	_, _ = fmt.Fprintf(t.output, "Subtree of node %d in %s: %d nodes\n%s\n",
		seed, path, len(ids), strings.Join(parts, " "))

	return nil
}

// DisplayReroot confirms a completed reroot operation.
func (t *TUI) DisplayReroot(path m.Path, newRoot m.NodeID, saved m.Path) error {
	_, _ = fmt.Fprintf(t.output, "Rerooted %s at node %d -> %s\n", path, newRoot, saved)
	return nil
}

// RunSession drives the interactive editing session.
func (t *TUI) RunSession(session Session) error {
	model := newSessionModel(session)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
