package domain

import (
	"sort"

	m "github.com/arborlab/arbor/internal/model"
)

// noIndex is the arena sentinel for "no parent".
const noIndex = -1

// Tree is a rooted neuron morphology held in arena-style flat tables:
// nodes indexed by position, parent links as arena indices and a derived
// children index that is kept consistent with every mutation. Node
// identifiers never leave the tree as pointers, so collaborators hold ids
// and look nodes up on demand.
type Tree struct {
	nodes    []m.Node
	index    map[m.NodeID]int
	parent   []int
	children [][]int
	root     int
	// gen counts structural mutations; Selection uses it to detect that
	// its ids may no longer mean what the user intended.
	gen uint64
}

// NewTree validates and builds a Tree from a node table and a parent
// relation. Nodes absent from parentOf (or mapped to NoParent) are root
// candidates; exactly one must exist. Duplicate ids, references to unknown
// nodes, multiple roots, cycles and disconnected components all fail with
// *MalformedTreeError.
func NewTree(nodes []m.Node, parentOf map[m.NodeID]m.NodeID) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, &MalformedTreeError{Reason: "no nodes", Node: m.NoParent}
	}

	t := &Tree{
		nodes:    make([]m.Node, len(nodes)),
		index:    make(map[m.NodeID]int, len(nodes)),
		parent:   make([]int, len(nodes)),
		children: make([][]int, len(nodes)),
	}
	copy(t.nodes, nodes)

	for i, n := range t.nodes {
		if _, dup := t.index[n.ID]; dup {
			return nil, &MalformedTreeError{Reason: "duplicate node id", Node: n.ID}
		}

		t.index[n.ID] = i
	}

	for child := range parentOf {
		if _, ok := t.index[child]; !ok {
			return nil, &MalformedTreeError{Reason: "edge references unknown node", Node: child}
		}
	}

	root := noIndex

	for i, n := range t.nodes {
		pid, ok := parentOf[n.ID]
		if !ok || pid == m.NoParent {
			if root != noIndex {
				return nil, &MalformedTreeError{Reason: "multiple roots", Node: n.ID}
			}

			root = i
			t.parent[i] = noIndex

			continue
		}

		pi, ok := t.index[pid]
		if !ok {
			return nil, &MalformedTreeError{Reason: "parent is not a known node", Node: pid}
		}

		if pi == i {
			return nil, &MalformedTreeError{Reason: "node is its own parent", Node: n.ID}
		}

		t.parent[i] = pi
		t.children[pi] = append(t.children[pi], i)
	}

	if root == noIndex {
		return nil, &MalformedTreeError{Reason: "no root", Node: m.NoParent}
	}

	// Every node must be reachable from the root through child links;
	// anything less means a cycle or a disconnected component.
	if t.countReachable(root) != len(t.nodes) {
		return nil, &MalformedTreeError{Reason: "cycle or disconnected component", Node: m.NoParent}
	}

	t.root = root

	return t, nil
}

// FromSamples builds a Tree from raw file samples.
func FromSamples(samples []m.Sample) (*Tree, error) {
	nodes := make([]m.Node, len(samples))
	parentOf := make(map[m.NodeID]m.NodeID, len(samples))

	for i, s := range samples {
		nodes[i] = s.Node
		parentOf[s.ID] = s.Parent
	}

	return NewTree(nodes, parentOf)
}

// Root returns the identifier of the current root node.
func (t *Tree) Root() m.NodeID {
	return t.nodes[t.root].ID
}

// Parent returns the parent of id. ok is false for the root or for an
// unknown id.
func (t *Tree) Parent(id m.NodeID) (m.NodeID, bool) {
	i, ok := t.index[id]
	if !ok || t.parent[i] == noIndex {
		return m.NoParent, false
	}

	return t.nodes[t.parent[i]].ID, true
}

// Children returns the child identifiers of id via the maintained children
// index. The result is a copy; mutating it does not affect the tree.
func (t *Tree) Children(id m.NodeID) []m.NodeID {
	i, ok := t.index[id]
	if !ok {
		return nil
	}

	out := make([]m.NodeID, 0, len(t.children[i]))
	for _, ci := range t.children[i] {
		out = append(out, t.nodes[ci].ID)
	}

	return out
}

// Node returns the node named by id.
func (t *Tree) Node(id m.NodeID) (m.Node, bool) {
	i, ok := t.index[id]
	if !ok {
		return m.Node{}, false
	}

	return t.nodes[i], true
}

// Has reports whether id exists in the tree.
func (t *Tree) Has(id m.NodeID) bool {
	_, ok := t.index[id]
	return ok
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IDs returns all node identifiers in ascending order.
func (t *Tree) IDs() []m.NodeID {
	out := make([]m.NodeID, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n.ID)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Nodes returns a copy of the node table in storage order.
func (t *Tree) Nodes() []m.Node {
	out := make([]m.Node, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Samples exports the tree as raw samples under the current rooting, in
// ascending id order. This is what adapters persist.
func (t *Tree) Samples() []m.Sample {
	out := make([]m.Sample, 0, len(t.nodes))

	for _, n := range t.nodes {
		s := m.Sample{Node: n, Parent: m.NoParent}
		if pid, ok := t.Parent(n.ID); ok {
			s.Parent = pid
		}

		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Generation returns the structural mutation counter. It moves on every
// reroot, including a reroot at the current root.
func (t *Tree) Generation() uint64 {
	return t.gen
}

// countReachable walks child links from start and returns the number of
// distinct nodes visited.
func (t *Tree) countReachable(start int) int {
	visited := make([]bool, len(t.nodes))
	visited[start] = true
	count := 1

	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ci := range t.children[cur] {
			if visited[ci] {
				continue
			}

			visited[ci] = true
			count++
			stack = append(stack, ci)
		}
	}

	return count
}

// rebuildChildren derives the children index from the parent table.
func (t *Tree) rebuildChildren() {
	t.children = make([][]int, len(t.nodes))
	for i, pi := range t.parent {
		if pi != noIndex {
			t.children[pi] = append(t.children[pi], i)
		}
	}
}
