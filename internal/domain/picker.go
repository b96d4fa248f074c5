package domain

import (
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// Picker resolves a world-space position, already unprojected by the
// rendering layer, to the nearest morphology node.
type Picker struct {
	// Threshold is the maximum world-space distance at which a pick still
	// resolves to a node. <= 0 means unlimited.
	Threshold float64
}

// Pick returns the id of the node closest to pos, or ok=false when no
// node lies within the threshold. Equidistant candidates resolve to the
// lowest node id so picks are deterministic.
func (p Picker) Pick(t *Tree, pos r3.Vec) (m.NodeID, bool) {
	if t == nil || t.Len() == 0 {
		return m.NoParent, false
	}

	best := m.NoParent
	bestDist := 0.0

	for _, n := range t.nodes {
		d := r3.Norm(r3.Sub(n.Pos, pos))

		switch {
		case best == m.NoParent, d < bestDist:
			best = n.ID
			bestDist = d
		case d == bestDist && n.ID < best:
			best = n.ID
		}
	}

	if p.Threshold > 0 && bestDist > p.Threshold {
		return m.NoParent, false
	}

	return best, true
}
