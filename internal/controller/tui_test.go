package controller

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/arborlab/arbor/internal/model"
)

func TestTUIDisplaySummaries(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	err := ui.DisplaySummaries([]m.Summary{
		{Path: "a.swc", Kind: m.KindNeuron, Nodes: 7, Root: 1, Leaves: 3, CableLength: 61.25, Flagged: true},
		{Path: "cloud.csv", Kind: m.KindCloud, Nodes: 100},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"a.swc  7 nodes, root 1, 3 leaves, cable 61.2  [flagged]\n"+
			"cloud.csv  100 points (cloud)\n",
		buf.String())
}

func TestTUIDisplaySubtree(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	require.NoError(t, ui.DisplaySubtree("a.swc", 2, []m.NodeID{2, 4}))
	assert.Equal(t, "Subtree of node 2 in a.swc: 2 nodes\n2 4\n", buf.String())
}

func TestTUIDisplayReroot(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	require.NoError(t, ui.DisplayReroot("a.swc", 5, "a.swc"))
	assert.Equal(t, "Rerooted a.swc at node 5 -> a.swc\n", buf.String())
}
