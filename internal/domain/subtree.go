package domain

import (
	"sort"

	m "github.com/arborlab/arbor/internal/model"
)

// NodeSet is a set of node identifiers, typically the result of a subtree
// extraction.
type NodeSet map[m.NodeID]struct{}

// Contains reports whether id is in the set.
func (s NodeSet) Contains(id m.NodeID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s NodeSet) Len() int {
	return len(s)
}

// IDs returns the set's identifiers in ascending order.
func (s NodeSet) IDs() []m.NodeID {
	out := make([]m.NodeID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Subtree returns seed and every node reachable from it through child
// links under the current rooting. It is a pure query: the tree is not
// mutated and repeated calls return the same set until the tree changes.
// A leaf seed yields a singleton set. Unknown seeds fail with
// *UnknownNodeError.
func (t *Tree) Subtree(seed m.NodeID) (NodeSet, error) {
	si, ok := t.index[seed]
	if !ok {
		return nil, &UnknownNodeError{Node: seed}
	}

	set := make(NodeSet)
	set[seed] = struct{}{}

	stack := []int{si}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ci := range t.children[cur] {
			id := t.nodes[ci].ID
			if set.Contains(id) {
				continue
			}

			set[id] = struct{}{}
			stack = append(stack, ci)
		}
	}

	return set, nil
}
