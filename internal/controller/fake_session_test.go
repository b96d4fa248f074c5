package controller

import (
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// fakeSession is a scriptable Session for controller tests. The domain
// session lives a package above the controller, so the tests here drive
// the interface with a hand-rolled fake instead.
type fakeSession struct {
	filename string
	counter  string
	samples  []m.Sample
	summary  m.Summary

	selected []m.NodeID
	mask     []m.NodeID
	flagged  bool
	autoSave bool

	canNext bool
	canPrev bool

	rerootErr  error
	subtreeErr error
	saveErr    error

	rerootCalls int
	saveCalls   int
	nextCalls   int
	prevCalls   int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		filename: "cell.swc",
		counter:  "1/1",
		samples: []m.Sample{
			{Node: m.Node{ID: 1, Type: m.StructureSoma}, Parent: m.NoParent},
			{Node: m.Node{ID: 2, Type: m.StructureAxon, Pos: r3.Vec{Y: 10}}, Parent: 1},
			{Node: m.Node{ID: 3, Type: m.StructureBasalDendrite, Pos: r3.Vec{X: 5, Y: 10}}, Parent: 2},
		},
		summary: m.Summary{
			Path:        "cell.swc",
			Kind:        m.KindNeuron,
			Nodes:       3,
			Root:        1,
			Leaves:      1,
			MaxDepth:    2,
			CableLength: 15,
		},
	}
}

func (f *fakeSession) Filename() string    { return f.filename }
func (f *fakeSession) FileCounter() string { return f.counter }
func (f *fakeSession) Summary() m.Summary  { return f.summary }

func (f *fakeSession) Samples() []m.Sample {
	out := make([]m.Sample, len(f.samples))
	copy(out, f.samples)

	return out
}

func (f *fakeSession) Selected() []m.NodeID { return f.selected }

func (f *fakeSession) IsSelected(id m.NodeID) bool {
	for _, s := range f.selected {
		if s == id {
			return true
		}
	}

	return false
}

func (f *fakeSession) ToggleSelect(id m.NodeID) error {
	for i, s := range f.selected {
		if s == id {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			return nil
		}
	}

	f.selected = append(f.selected, id)

	return nil
}

func (f *fakeSession) ClearSelection() { f.selected = nil }

func (f *fakeSession) RerootAtSelection() error {
	f.rerootCalls++
	return f.rerootErr
}

func (f *fakeSession) SubtreeAtSelection() ([]m.NodeID, error) {
	if f.subtreeErr != nil {
		return nil, f.subtreeErr
	}

	f.mask = []m.NodeID{2, 3}

	return f.mask, nil
}

func (f *fakeSession) Mask() []m.NodeID { return f.mask }
func (f *fakeSession) ClearMask()       { f.mask = nil }

func (f *fakeSession) Next() error {
	f.nextCalls++
	return nil
}

func (f *fakeSession) Prev() error {
	f.prevCalls++
	return nil
}

func (f *fakeSession) CanNext() bool { return f.canNext }
func (f *fakeSession) CanPrev() bool { return f.canPrev }

func (f *fakeSession) Flagged() bool { return f.flagged }

func (f *fakeSession) ToggleFlag() bool {
	f.flagged = !f.flagged
	return f.flagged
}

func (f *fakeSession) AutoSave() bool           { return f.autoSave }
func (f *fakeSession) SetAutoSave(enabled bool) { f.autoSave = enabled }

func (f *fakeSession) SaveCurrent() error {
	f.saveCalls++
	return f.saveErr
}
