package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// arborFile is the native JSON layout. Unlike SWC it carries the review
// flag as first-class metadata.
type arborFile struct {
	Flagged bool        `json:"flagged"`
	Nodes   []arborNode `json:"nodes"`
}

type arborNode struct {
	ID     int64   `json:"id"`
	Type   int     `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Parent int64   `json:"parent"`
}

func loadArbor(path m.Path) (m.Document, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("open arbor file: %w", err)
	}

	var file arborFile
	if err := json.Unmarshal(data, &file); err != nil {
		return m.Document{}, fmt.Errorf("parse arbor file %s: %w", path, err)
	}

	if len(file.Nodes) == 0 {
		return m.Document{}, fmt.Errorf("%s: no samples", path)
	}

	doc := m.Document{Kind: m.KindNeuron, Flagged: file.Flagged}

	for _, n := range file.Nodes {
		doc.Samples = append(doc.Samples, m.Sample{
			Node: m.Node{
				ID:     m.NodeID(n.ID),
				Type:   m.StructureType(n.Type),
				Pos:    r3.Vec{X: n.X, Y: n.Y, Z: n.Z},
				Radius: n.Radius,
			},
			Parent: m.NodeID(n.Parent),
		})
	}

	return doc, nil
}

func saveArbor(path m.Path, doc m.Document) error {
	file := arborFile{Flagged: doc.Flagged, Nodes: make([]arborNode, 0, len(doc.Samples))}

	for _, s := range doc.Samples {
		file.Nodes = append(file.Nodes, arborNode{
			ID:     int64(s.ID),
			Type:   int(s.Type),
			X:      s.Pos.X,
			Y:      s.Pos.Y,
			Z:      s.Pos.Z,
			Radius: s.Radius,
			Parent: int64(s.Parent),
		})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode arbor file: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write arbor file: %w", err)
	}

	return nil
}
