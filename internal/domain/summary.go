package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// Summarize computes display statistics for a loaded document. tree may be
// nil for point-cloud documents, in which case only count and bounds are
// filled in.
func Summarize(path m.Path, doc m.Document, tree *Tree) m.Summary {
	s := m.Summary{
		Path:    path,
		Kind:    doc.Kind,
		Nodes:   len(doc.Samples),
		Root:    m.NoParent,
		Bounds:  sampleBounds(doc.Samples),
		Flagged: doc.Flagged,
	}

	if tree == nil {
		return s
	}

	s.Root = tree.Root()

	for _, id := range tree.IDs() {
		switch len(tree.Children(id)) {
		case 0:
			s.Leaves++
		case 1:
			// pass-through point, neither leaf nor branch
		default:
			s.Branches++
		}

		if pid, ok := tree.Parent(id); ok {
			n, _ := tree.Node(id)
			pn, _ := tree.Node(pid)
			s.CableLength += r3.Norm(r3.Sub(n.Pos, pn.Pos))
		}
	}

	s.MaxDepth = maxDepth(tree)

	return s
}

// maxDepth returns the edge count of the longest root-to-leaf path.
func maxDepth(t *Tree) int {
	type frame struct {
		idx   int
		depth int
	}

	deepest := 0

	stack := []frame{{idx: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > deepest {
			deepest = f.depth
		}

		for _, ci := range t.children[f.idx] {
			stack = append(stack, frame{idx: ci, depth: f.depth + 1})
		}
	}

	return deepest
}

func sampleBounds(samples []m.Sample) m.Bounds {
	if len(samples) == 0 {
		return m.Bounds{}
	}

	b := m.Bounds{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}

	for _, s := range samples {
		b.Min.X = math.Min(b.Min.X, s.Pos.X)
		b.Min.Y = math.Min(b.Min.Y, s.Pos.Y)
		b.Min.Z = math.Min(b.Min.Z, s.Pos.Z)
		b.Max.X = math.Max(b.Max.X, s.Pos.X)
		b.Max.Y = math.Max(b.Max.Y, s.Pos.Y)
		b.Max.Z = math.Max(b.Max.Z, s.Pos.Z)
	}

	return b
}
