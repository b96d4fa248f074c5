package domain

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arborlab/arbor/internal/adapter"
	"github.com/arborlab/arbor/internal/controller"
	m "github.com/arborlab/arbor/internal/model"
)

// InfoArgs configures Workflow.Info.
type InfoArgs struct {
	Paths []m.Path
	// Threads bounds concurrent file loads. <= 0 means 1.
	Threads int
}

// RerootArgs configures Workflow.Reroot.
type RerootArgs struct {
	Path m.Path
	Node m.NodeID
	// Out is the destination file; empty saves in place.
	Out m.Path
}

// SubtreeArgs configures Workflow.Subtree.
type SubtreeArgs struct {
	Path m.Path
	Node m.NodeID
	// Out, when set, saves the induced sub-morphology to a new file.
	Out m.Path
}

// SessionArgs configures Workflow.Session.
type SessionArgs struct {
	Paths     []m.Path
	AutoSave  bool
	MaxSelect int
}

// Workflow ties the adapters, the tree engine and the UI together. It is
// what the commands call.
type Workflow interface {
	Info(args InfoArgs) error
	Reroot(args RerootArgs) error
	Subtree(args SubtreeArgs) error
	Session(args SessionArgs) error
}

type workflow struct {
	store adapter.MorphologyStore
	fs    adapter.FolderScanner
	ui    controller.UI
}

// NewWorkflow creates a Workflow using the provided store, scanner and UI.
func NewWorkflow(store adapter.MorphologyStore, fs adapter.FolderScanner, ui controller.UI) Workflow {
	return &workflow{store: store, fs: fs, ui: ui}
}

// Info loads every resolved file, summarizes it and hands the summaries to
// the UI. Loads fan out across Threads workers; the engine itself stays
// single-threaded per file.
func (w *workflow) Info(args InfoArgs) error {
	files, err := w.fs.Expand(args.Paths...)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return ErrNoFiles
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	var mu sync.Mutex

	summaries := make([]m.Summary, 0, len(files))

	var g errgroup.Group

	g.SetLimit(threads)

	for _, file := range files {
		file := file
		g.Go(func() error {
			summary, err := w.summarize(file)
			if err != nil {
				return err
			}

			mu.Lock()
			summaries = append(summaries, summary)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Path < summaries[j].Path })

	return w.ui.DisplaySummaries(summaries)
}

// Reroot loads a morphology, reroots it at the requested node and saves
// the result.
func (w *workflow) Reroot(args RerootArgs) error {
	doc, tree, err := w.loadTree(args.Path)
	if err != nil {
		return err
	}

	if err := tree.Reroot(args.Node); err != nil {
		return err
	}

	doc.Samples = tree.Samples()

	out := args.Out
	if out == "" {
		out = args.Path
	}

	if err := w.store.Save(out, doc); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	return w.ui.DisplayReroot(args.Path, args.Node, out)
}

// Subtree loads a morphology and extracts the subtree rooted at the
// requested node. With Out set the induced sub-morphology is written to a
// new file; otherwise the ids are listed.
func (w *workflow) Subtree(args SubtreeArgs) error {
	doc, tree, err := w.loadTree(args.Path)
	if err != nil {
		return err
	}

	set, err := tree.Subtree(args.Node)
	if err != nil {
		return err
	}

	if args.Out == "" {
		return w.ui.DisplaySubtree(args.Path, args.Node, set.IDs())
	}

	sub := m.Document{Kind: m.KindNeuron, Flagged: doc.Flagged}

	for _, sample := range tree.Samples() {
		if !set.Contains(sample.ID) {
			continue
		}

		if sample.ID == args.Node {
			sample.Parent = m.NoParent
		}

		sub.Samples = append(sub.Samples, sample)
	}

	if err := w.store.Save(args.Out, sub); err != nil {
		return fmt.Errorf("save %s: %w", args.Out, err)
	}

	return w.ui.DisplaySubtree(args.Path, args.Node, set.IDs())
}

// Session opens an interactive editing session over the resolved files.
func (w *workflow) Session(args SessionArgs) error {
	session := NewSession(w.store, w.fs, SessionConfig{
		AutoSave:  args.AutoSave,
		Mode:      SingleSelect,
		MaxSelect: args.MaxSelect,
	})

	if err := session.Open(args.Paths...); err != nil {
		return err
	}

	return w.ui.RunSession(session)
}

func (w *workflow) summarize(path m.Path) (m.Summary, error) {
	doc, err := w.store.Load(path)
	if err != nil {
		return m.Summary{}, fmt.Errorf("load %s: %w", path, err)
	}

	var tree *Tree

	if doc.Kind == m.KindNeuron {
		tree, err = FromSamples(doc.Samples)
		if err != nil {
			return m.Summary{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return Summarize(path, doc, tree), nil
}

func (w *workflow) loadTree(path m.Path) (m.Document, *Tree, error) {
	doc, err := w.store.Load(path)
	if err != nil {
		return m.Document{}, nil, fmt.Errorf("load %s: %w", path, err)
	}

	if doc.Kind != m.KindNeuron {
		return m.Document{}, nil, ErrNoTree
	}

	tree, err := FromSamples(doc.Samples)
	if err != nil {
		return m.Document{}, nil, fmt.Errorf("load %s: %w", path, err)
	}

	return doc, tree, nil
}
