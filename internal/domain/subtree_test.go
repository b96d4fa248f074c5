package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/arborlab/arbor/internal/model"
)

func TestSubtree(t *testing.T) {
	t.Run("collects the seed and all descendants", func(t *testing.T) {
		tree := specimen(t)

		set, err := tree.Subtree(2)
		require.NoError(t, err)

		assert.Equal(t, []m.NodeID{2, 4}, set.IDs())
		assert.True(t, set.Contains(2))
		assert.False(t, set.Contains(1))
	})

	t.Run("seeded at the root it returns the full node set", func(t *testing.T) {
		tree := specimen(t)

		set, err := tree.Subtree(tree.Root())
		require.NoError(t, err)

		assert.Equal(t, tree.IDs(), set.IDs())
	})

	t.Run("a leaf seed returns a singleton", func(t *testing.T) {
		tree := specimen(t)

		set, err := tree.Subtree(4)
		require.NoError(t, err)

		assert.Equal(t, []m.NodeID{4}, set.IDs())
	})

	t.Run("every member's ancestor chain terminates at the seed", func(t *testing.T) {
		tree, err := NewTree(
			[]m.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}},
			map[m.NodeID]m.NodeID{2: 1, 3: 2, 4: 2, 5: 3, 6: 1},
		)
		require.NoError(t, err)

		const seed = m.NodeID(2)

		set, err := tree.Subtree(seed)
		require.NoError(t, err)

		for _, id := range set.IDs() {
			cur := id
			for cur != seed {
				pid, ok := tree.Parent(cur)
				require.True(t, ok, "chain from %d left the tree before reaching the seed", id)
				cur = pid
			}
		}
	})

	t.Run("unknown seed fails without mutating", func(t *testing.T) {
		tree := specimen(t)
		gen := tree.Generation()

		_, err := tree.Subtree(42)

		var unknown *UnknownNodeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, m.NodeID(42), unknown.Node)
		assert.Equal(t, gen, tree.Generation())
	})

	t.Run("repeatable until the tree changes", func(t *testing.T) {
		tree := specimen(t)

		first, err := tree.Subtree(2)
		require.NoError(t, err)

		second, err := tree.Subtree(2)
		require.NoError(t, err)
		assert.Equal(t, first.IDs(), second.IDs())

		require.NoError(t, tree.Reroot(4))

		after, err := tree.Subtree(2)
		require.NoError(t, err)
		assert.NotEqual(t, first.IDs(), after.IDs(), "rerooting flips descent direction along the 2-4 edge")
		assert.Equal(t, []m.NodeID{1, 2, 3}, after.IDs())
	})
}
