package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

func writeFile(t *testing.T, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestLoadSWC(t *testing.T) {
	t.Run("reads the sample morphology", func(t *testing.T) {
		doc, err := loadSWC("testdata/purkinje.swc")
		require.NoError(t, err)

		assert.Equal(t, m.KindNeuron, doc.Kind)
		assert.False(t, doc.Flagged)
		require.Len(t, doc.Samples, 7)

		root := doc.Samples[0]
		assert.Equal(t, m.NodeID(1), root.ID)
		assert.Equal(t, m.StructureSoma, root.Type)
		assert.Equal(t, 5.0, root.Radius)
		assert.Equal(t, m.NoParent, root.Parent)

		tip := doc.Samples[3]
		assert.Equal(t, m.NodeID(4), tip.ID)
		assert.Equal(t, m.StructureBasalDendrite, tip.Type)
		assert.Equal(t, r3.Vec{X: 10, Y: 20}, tip.Pos)
		assert.Equal(t, m.NodeID(3), tip.Parent)
	})

	t.Run("reads the review flag", func(t *testing.T) {
		path := writeFile(t, "flagged.swc", "# arbor-flag: true\n1 1 0 0 0 1 -1\n")

		doc, err := loadSWC(path)
		require.NoError(t, err)
		assert.True(t, doc.Flagged)
	})

	t.Run("skips comments and blank lines", func(t *testing.T) {
		path := writeFile(t, "sparse.swc", "# header\n\n1 1 0 0 0 1 -1\n\n# trailing\n")

		doc, err := loadSWC(path)
		require.NoError(t, err)
		assert.Len(t, doc.Samples, 1)
	})

	t.Run("reports the offending line", func(t *testing.T) {
		path := writeFile(t, "short.swc", "1 1 0 0 0 1 -1\n2 3 0 0\n")

		_, err := loadSWC(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), string(path)+":2:")
		assert.Contains(t, err.Error(), "expected 7 columns, got 4")
	})

	t.Run("rejects non-numeric fields", func(t *testing.T) {
		path := writeFile(t, "junk.swc", "one 1 0 0 0 1 -1\n")

		_, err := loadSWC(path)
		assert.ErrorContains(t, err, `bad id "one"`)
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		path := writeFile(t, "empty.swc", "# only comments\n")

		_, err := loadSWC(path)
		assert.ErrorContains(t, err, "no samples")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSWC("testdata/nonexistent.swc")
		assert.ErrorContains(t, err, "open swc")
	})
}

func TestSaveSWC(t *testing.T) {
	t.Run("round-trips a document", func(t *testing.T) {
		doc, err := loadSWC("testdata/purkinje.swc")
		require.NoError(t, err)

		doc.Flagged = true

		out := m.Path(filepath.Join(t.TempDir(), "copy.swc"))
		require.NoError(t, saveSWC(out, doc))

		back, err := loadSWC(out)
		require.NoError(t, err)
		assert.True(t, back.Flagged)
		assert.Equal(t, doc.Samples, back.Samples)
	})

	t.Run("writes the header comment", func(t *testing.T) {
		doc := m.Document{
			Kind:    m.KindNeuron,
			Samples: []m.Sample{{Node: m.Node{ID: 1, Type: m.StructureSoma, Radius: 2.5}, Parent: m.NoParent}},
		}

		out := m.Path(filepath.Join(t.TempDir(), "one.swc"))
		require.NoError(t, saveSWC(out, doc))

		data, err := os.ReadFile(string(out))
		require.NoError(t, err)
		assert.Equal(t, "# id type x y z radius parent\n1 1 0 0 0 2.5 -1\n", string(data))
	})
}
