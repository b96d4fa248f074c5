package domain

import m "github.com/arborlab/arbor/internal/model"

// Reroot restructures the tree in place so newRoot becomes the root. The
// undirected skeleton is unchanged; only the direction of the parent links
// is reassigned, each visited node adopting its traversal predecessor as
// parent. An unknown id fails with *UnknownNodeError before any mutation.
//
// The replacement parent table is built to the side and committed only
// after the traversal has proven it covered every node, so a failure
// leaves the previous state untouched.
func (t *Tree) Reroot(newRoot m.NodeID) error {
	ni, ok := t.index[newRoot]
	if !ok {
		return &UnknownNodeError{Node: newRoot}
	}

	newParent := make([]int, len(t.nodes))
	for i := range newParent {
		newParent[i] = noIndex
	}

	visited := make([]bool, len(t.nodes))
	visited[ni] = true
	count := 1

	queue := []int{ni}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Undirected neighbors: the old parent plus the indexed children.
		neighbors := t.children[cur]
		if pi := t.parent[cur]; pi != noIndex {
			neighbors = append(neighbors[:len(neighbors):len(neighbors)], pi)
		}

		for _, nb := range neighbors {
			if visited[nb] {
				continue
			}

			visited[nb] = true
			newParent[nb] = cur
			count++
			queue = append(queue, nb)
		}
	}

	// Should not happen for a validly constructed tree.
	if count != len(t.nodes) {
		return &MalformedTreeError{Reason: "tree is not fully connected", Node: m.NoParent}
	}

	t.parent = newParent
	t.rebuildChildren()
	t.root = ni
	// Selections are invalidated by policy even when newRoot was already
	// the root: indices picked before the call no longer mean what the
	// user intended.
	t.gen++

	return nil
}
