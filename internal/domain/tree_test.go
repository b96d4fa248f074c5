package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// specimen builds the reference tree used across the engine tests:
//
//	1 (root) ── 2 ── 4
//	        └── 3
func specimen(t *testing.T) *Tree {
	t.Helper()

	tree, err := NewTree(
		[]m.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
		map[m.NodeID]m.NodeID{2: 1, 3: 1, 4: 2},
	)
	require.NoError(t, err)

	return tree
}

// parentMap snapshots the full parent relation of a tree.
func parentMap(t *Tree) map[m.NodeID]m.NodeID {
	out := make(map[m.NodeID]m.NodeID)

	for _, id := range t.IDs() {
		if pid, ok := t.Parent(id); ok {
			out[id] = pid
		} else {
			out[id] = m.NoParent
		}
	}

	return out
}

func TestNewTree(t *testing.T) {
	t.Run("builds a valid tree with maintained children index", func(t *testing.T) {
		tree := specimen(t)

		assert.Equal(t, m.NodeID(1), tree.Root())
		assert.Equal(t, 4, tree.Len())
		assert.Equal(t, []m.NodeID{1, 2, 3, 4}, tree.IDs())

		pid, ok := tree.Parent(4)
		require.True(t, ok)
		assert.Equal(t, m.NodeID(2), pid)

		_, ok = tree.Parent(1)
		assert.False(t, ok, "root has no parent")

		assert.ElementsMatch(t, []m.NodeID{2, 3}, tree.Children(1))
		assert.Equal(t, []m.NodeID{4}, tree.Children(2))
		assert.Empty(t, tree.Children(4))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewTree(nil, nil)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, "no nodes", mt.Reason)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := NewTree([]m.Node{{ID: 1}, {ID: 1}}, nil)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, m.NodeID(1), mt.Node)
	})

	t.Run("rejects a parent reference to an unknown node", func(t *testing.T) {
		_, err := NewTree(
			[]m.Node{{ID: 1}, {ID: 2}},
			map[m.NodeID]m.NodeID{2: 99},
		)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, m.NodeID(99), mt.Node)
	})

	t.Run("rejects an edge naming an unknown child", func(t *testing.T) {
		_, err := NewTree(
			[]m.Node{{ID: 1}},
			map[m.NodeID]m.NodeID{42: 1},
		)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, m.NodeID(42), mt.Node)
	})

	t.Run("rejects multiple roots", func(t *testing.T) {
		_, err := NewTree(
			[]m.Node{{ID: 1}, {ID: 2}, {ID: 3}},
			map[m.NodeID]m.NodeID{3: 1},
		)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, "multiple roots", mt.Reason)
	})

	t.Run("rejects a pure cycle", func(t *testing.T) {
		_, err := NewTree(
			[]m.Node{{ID: 1}, {ID: 2}},
			map[m.NodeID]m.NodeID{1: 2, 2: 1},
		)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, "no root", mt.Reason)
	})

	t.Run("rejects a self parent", func(t *testing.T) {
		_, err := NewTree(
			[]m.Node{{ID: 1}, {ID: 2}},
			map[m.NodeID]m.NodeID{2: 2},
		)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, m.NodeID(2), mt.Node)
	})

	t.Run("rejects a disconnected cycle alongside a valid root", func(t *testing.T) {
		_, err := NewTree(
			[]m.Node{{ID: 1}, {ID: 2}, {ID: 3}},
			map[m.NodeID]m.NodeID{2: 3, 3: 2},
		)

		var mt *MalformedTreeError
		require.ErrorAs(t, err, &mt)
		assert.Equal(t, "cycle or disconnected component", mt.Reason)
	})
}

func TestTreeLookups(t *testing.T) {
	tree := specimen(t)

	t.Run("Node returns stored coordinates", func(t *testing.T) {
		tree, err := NewTree(
			[]m.Node{{ID: 7, Pos: r3.Vec{X: 1, Y: 2, Z: 3}, Radius: 0.5}},
			nil,
		)
		require.NoError(t, err)

		n, ok := tree.Node(7)
		require.True(t, ok)
		assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, n.Pos)
		assert.Equal(t, 0.5, n.Radius)
	})

	t.Run("Has distinguishes known from unknown ids", func(t *testing.T) {
		assert.True(t, tree.Has(3))
		assert.False(t, tree.Has(99))
	})

	t.Run("Children returns a copy", func(t *testing.T) {
		kids := tree.Children(1)
		require.NotEmpty(t, kids)

		kids[0] = 999
		assert.NotContains(t, tree.Children(1), m.NodeID(999))
	})

	t.Run("lookups on unknown ids are safe", func(t *testing.T) {
		_, ok := tree.Parent(99)
		assert.False(t, ok)
		assert.Nil(t, tree.Children(99))

		_, ok = tree.Node(99)
		assert.False(t, ok)
	})
}

func TestSamplesExport(t *testing.T) {
	samples := []m.Sample{
		{Node: m.Node{ID: 10, Pos: r3.Vec{X: 1}}, Parent: m.NoParent},
		{Node: m.Node{ID: 20, Pos: r3.Vec{X: 2}}, Parent: 10},
		{Node: m.Node{ID: 30, Pos: r3.Vec{X: 3}}, Parent: 20},
	}

	tree, err := FromSamples(samples)
	require.NoError(t, err)

	assert.Equal(t, samples, tree.Samples(), "export must reproduce the loaded samples under the same rooting")
}
