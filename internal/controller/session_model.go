package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/arborlab/arbor/internal/model"
)

// nodeItem is one morphology node in the session's node list.
type nodeItem struct {
	sample   m.Sample
	isRoot   bool
	selected bool
	masked   bool
}

func (n nodeItem) FilterValue() string {
	return fmt.Sprintf("%d %s", n.sample.ID, structureName(n.sample.Type))
}

// nodeDelegate renders a single node row.
type nodeDelegate struct{}

func (d nodeDelegate) Height() int  { return 1 }
func (d nodeDelegate) Spacing() int { return 0 }
func (d nodeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d nodeDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	node, ok := item.(nodeItem)
	if !ok {
		return
	}

	marker := " "

	switch {
	case node.selected:
		marker = "●"
	case node.masked:
		marker = "▸"
	}

	rootTag := ""
	if node.isRoot {
		rootTag = " root"
	}

	line := fmt.Sprintf("%s %6d  %-8s %9.1f %9.1f %9.1f%s",
		marker, node.sample.ID, structureName(node.sample.Type),
		node.sample.Pos.X, node.sample.Pos.Y, node.sample.Pos.Z, rootTag)

	style := d.rowStyle(node, index == lm.Index())
	_, _ = fmt.Fprint(w, style.Render(truncateToWidth(line, lm.Width())))
}

func (d nodeDelegate) rowStyle(node nodeItem, isCursor bool) lipgloss.Style {
	if isCursor {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	switch {
	case node.selected:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	case node.masked:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case node.isRoot:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}
}

// sessionModel is the Bubble Tea model for the interactive session.
type sessionModel struct {
	session  Session
	width    int
	height   int
	nodeList list.Model
	status   string
}

func newSessionModel(session Session) sessionModel {
	nodeList := list.New([]list.Item{}, nodeDelegate{}, 80, 20)
	nodeList.SetShowPagination(false)
	nodeList.SetShowFilter(true)
	nodeList.SetShowHelp(false)
	nodeList.SetShowTitle(false)
	nodeList.SetShowStatusBar(false)
	nodeList.FilterInput.Placeholder = "Filter by id or type…"

	sm := sessionModel{session: session, nodeList: nodeList}
	sm.refreshItems(true)

	return sm
}

func (sm sessionModel) Init() tea.Cmd {
	return nil
}

func (sm sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.nodeList.SetWidth(sm.width)

		return sm, nil

	case tea.KeyMsg:
		if sm.nodeList.FilterState() == list.Filtering {
			return sm.passToList(msg)
		}

		return sm.handleKey(msg)
	}

	return sm, nil
}

func (sm sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return sm, tea.Quit

	case "enter", " ":
		sm.status = sm.toggleAtCursor()
		sm.refreshItems(false)

	case "r":
		if err := sm.session.RerootAtSelection(); err != nil {
			sm.status = err.Error()
		} else {
			sm.status = fmt.Sprintf("rerooted at node %d", sm.session.Summary().Root)
		}

		sm.refreshItems(false)

	case "s":
		ids, err := sm.session.SubtreeAtSelection()
		if err != nil {
			sm.status = err.Error()
		} else {
			sm.status = fmt.Sprintf("subtree mask: %d nodes", len(ids))
		}

		sm.refreshItems(false)

	case "c":
		sm.session.ClearSelection()
		sm.session.ClearMask()
		sm.status = "selection cleared"
		sm.refreshItems(false)

	case "f":
		if sm.session.ToggleFlag() {
			sm.status = "flagged"
		} else {
			sm.status = "unflagged"
		}

	case "a":
		sm.session.SetAutoSave(!sm.session.AutoSave())
		sm.status = fmt.Sprintf("auto-save %v", sm.session.AutoSave())

	case "w":
		if err := sm.session.SaveCurrent(); err != nil {
			sm.status = err.Error()
		} else {
			sm.status = "saved " + sm.session.Filename()
		}

	case "left", "h":
		sm.status = sm.navigate(sm.session.Prev, sm.session.CanPrev())
		sm.refreshItems(true)

	case "right", "l":
		sm.status = sm.navigate(sm.session.Next, sm.session.CanNext())
		sm.refreshItems(true)

	default:
		return sm.passToList(msg)
	}

	return sm, nil
}

func (sm sessionModel) passToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	sm.nodeList, cmd = sm.nodeList.Update(msg)

	return sm, cmd
}

// toggleAtCursor flips the selection of the node under the cursor. This is
// the terminal stand-in for a 3D pick: the list cursor resolves the node
// id the way the renderer's picker would.
func (sm *sessionModel) toggleAtCursor() string {
	item, ok := sm.nodeList.SelectedItem().(nodeItem)
	if !ok {
		return ""
	}

	if err := sm.session.ToggleSelect(item.sample.ID); err != nil {
		return err.Error()
	}

	return fmt.Sprintf("%d selected", len(sm.session.Selected()))
}

func (sm *sessionModel) navigate(move func() error, can bool) string {
	if !can {
		return "no more files"
	}

	if err := move(); err != nil {
		return err.Error()
	}

	return sm.session.Filename()
}

// refreshItems rebuilds the node list from the session. resetCursor is set
// when the underlying file changed.
func (sm *sessionModel) refreshItems(resetCursor bool) {
	selected := make(map[m.NodeID]bool)
	for _, id := range sm.session.Selected() {
		selected[id] = true
	}

	masked := make(map[m.NodeID]bool)
	for _, id := range sm.session.Mask() {
		masked[id] = true
	}

	root := sm.session.Summary().Root

	samples := sm.session.Samples()
	items := make([]list.Item, 0, len(samples))

	for _, sample := range samples {
		items = append(items, nodeItem{
			sample:   sample,
			isRoot:   sample.ID == root,
			selected: selected[sample.ID],
			masked:   masked[sample.ID],
		})
	}

	index := sm.nodeList.Index()
	sm.nodeList.SetItems(items)

	if resetCursor {
		sm.nodeList.Select(0)
	} else if index < len(items) {
		sm.nodeList.Select(index)
	}
}

func (sm sessionModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render(fmt.Sprintf("arbor — %s  (%s)", sm.session.Filename(), sm.session.FileCounter()))

	summary := sm.session.Summary()
	flag := ""

	if summary.Flagged {
		flag = "  ⚑"
	}

	header := summaryStyle.Render(fmt.Sprintf(
		"Nodes: %s   Root: %s   Leaves: %s   Cable: %s   Selected: %s%s",
		accentStyle.Render(fmt.Sprintf("%d", summary.Nodes)),
		accentStyle.Render(fmt.Sprintf("%d", summary.Root)),
		accentStyle.Render(fmt.Sprintf("%d", summary.Leaves)),
		accentStyle.Render(fmt.Sprintf("%.1f", summary.CableLength)),
		accentStyle.Render(fmt.Sprintf("%d", len(sm.session.Selected()))),
		flag,
	))

	table := sm.renderTable()

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Padding(0, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(sm.width)

	footer := footerStyle.Render("↑/↓ move • enter select • r reroot • s subtree • c clear • f flag • ←/→ file • w save • a auto-save • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		header,
		table,
		statusStyle.Render(sm.status),
		footer,
	)
}

func (sm sessionModel) renderTable() string {
	listHeight := sm.height - 10
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := sm.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	sm.nodeList.SetHeight(listHeight)
	sm.nodeList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("  %6s  %-8s %9s %9s %9s", "ID", "Type", "X", "Y", "Z"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			sm.nodeList.View(),
		),
	)
}

func structureName(t m.StructureType) string {
	switch t {
	case m.StructureSoma:
		return "soma"
	case m.StructureAxon:
		return "axon"
	case m.StructureBasalDendrite:
		return "basal"
	case m.StructureApicalDendrite:
		return "apical"
	default:
		return "undef"
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0
	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
