package model

import "gonum.org/v1/gonum/spatial/r3"

// Bounds is the axis-aligned bounding box of a set of samples.
type Bounds struct {
	Min r3.Vec
	Max r3.Vec
}

// Summary describes a loaded document for display purposes.
// Tree-derived fields (Root, Leaves, Branches, MaxDepth, CableLength)
// are only meaningful when Kind is KindNeuron.
type Summary struct {
	Path        Path
	Kind        DocKind
	Nodes       int
	Root        NodeID
	Leaves      int
	Branches    int
	MaxDepth    int
	CableLength float64
	Bounds      Bounds
	Flagged     bool
}
