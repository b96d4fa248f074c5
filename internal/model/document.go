package model

// Path represents a file system path.
type Path string

// DocKind distinguishes connected morphologies from loose point clouds.
type DocKind string

const (
	// KindNeuron is a morphology with parent links forming a rooted tree.
	KindNeuron DocKind = "neuron"
	// KindCloud is a bare point cloud without connectivity.
	KindCloud DocKind = "cloud"
)

// Document is the content of one loaded morphology file.
type Document struct {
	Kind    DocKind
	Samples []Sample
	// Flagged is a per-file review marker carried through save/load.
	Flagged bool
}
