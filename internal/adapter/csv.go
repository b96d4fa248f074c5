package adapter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// loadCSV reads a point-cloud CSV. The header must contain x, y and z
// columns (case-insensitive); any other columns are ignored. The result
// has no connectivity, so ids are assigned from the row order.
func loadCSV(path m.Path) (m.Document, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return m.Document{}, fmt.Errorf("read csv: %w", err)
	}

	if len(records) < 2 {
		return m.Document{}, fmt.Errorf("%s: no data rows", path)
	}

	cols, err := coordinateColumns(records[0])
	if err != nil {
		return m.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	doc := m.Document{Kind: m.KindCloud}

	for i, record := range records[1:] {
		var pos [3]float64

		for axis, col := range cols {
			pos[axis], err = strconv.ParseFloat(record[col], 64)
			if err != nil {
				return m.Document{}, fmt.Errorf("%s: row %d: bad value %q", path, i+2, record[col])
			}
		}

		doc.Samples = append(doc.Samples, m.Sample{
			Node: m.Node{
				ID:  m.NodeID(i + 1),
				Pos: r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]},
			},
			Parent: m.NoParent,
		})
	}

	return doc, nil
}

// coordinateColumns locates the x, y and z columns in a CSV header.
func coordinateColumns(header []string) ([3]int, error) {
	cols := [3]int{-1, -1, -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			cols[0] = i
		case "y":
			cols[1] = i
		case "z":
			cols[2] = i
		}
	}

	for _, c := range cols {
		if c == -1 {
			return cols, fmt.Errorf("header must contain x, y and z columns")
		}
	}

	return cols, nil
}
