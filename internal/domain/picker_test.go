package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

func pickerTree(t *testing.T) *Tree {
	t.Helper()

	tree, err := NewTree(
		[]m.Node{
			{ID: 1, Pos: r3.Vec{X: 0, Y: 0, Z: 0}},
			{ID: 2, Pos: r3.Vec{X: 10, Y: 0, Z: 0}},
			{ID: 3, Pos: r3.Vec{X: 0, Y: 10, Z: 0}},
		},
		map[m.NodeID]m.NodeID{2: 1, 3: 1},
	)
	require.NoError(t, err)

	return tree
}

func TestPickerPick(t *testing.T) {
	t.Run("resolves to the nearest node", func(t *testing.T) {
		tree := pickerTree(t)
		p := Picker{Threshold: 5}

		id, ok := p.Pick(tree, r3.Vec{X: 9, Y: 1, Z: 0})
		require.True(t, ok)
		assert.Equal(t, m.NodeID(2), id)
	})

	t.Run("misses beyond the threshold", func(t *testing.T) {
		tree := pickerTree(t)
		p := Picker{Threshold: 2}

		_, ok := p.Pick(tree, r3.Vec{X: 5, Y: 5, Z: 5})
		assert.False(t, ok)
	})

	t.Run("zero threshold means unlimited range", func(t *testing.T) {
		tree := pickerTree(t)
		p := Picker{}

		id, ok := p.Pick(tree, r3.Vec{X: 1000, Y: 0, Z: 0})
		require.True(t, ok)
		assert.Equal(t, m.NodeID(2), id)
	})

	t.Run("equidistant candidates resolve to the lowest id", func(t *testing.T) {
		tree := pickerTree(t)
		p := Picker{Threshold: 100}

		// (8,8,0) is equidistant from nodes 2 and 3 and farther from 1.
		id, ok := p.Pick(tree, r3.Vec{X: 8, Y: 8, Z: 0})
		require.True(t, ok)
		assert.Equal(t, m.NodeID(2), id)
	})

	t.Run("nil tree never resolves", func(t *testing.T) {
		p := Picker{Threshold: 1}

		_, ok := p.Pick(nil, r3.Vec{})
		assert.False(t, ok)
	})
}
