package adapter

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	m "github.com/arborlab/arbor/internal/model"
)

// flagComment marks a reviewed file. SWC has no metadata section, so the
// flag rides along as a comment line the reader understands.
const flagComment = "# arbor-flag: true"

// loadSWC reads a standard seven-column SWC file:
//
//	id type x y z radius parent
//
// Lines starting with # are comments. parent -1 marks the root.
func loadSWC(path m.Path) (m.Document, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return m.Document{}, fmt.Errorf("open swc: %w", err)
	}
	defer f.Close()

	doc := m.Document{Kind: m.KindNeuron}

	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if line == flagComment {
				doc.Flagged = true
			}

			continue
		}

		sample, err := parseSWCLine(line)
		if err != nil {
			return m.Document{}, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}

		doc.Samples = append(doc.Samples, sample)
	}

	if err := scanner.Err(); err != nil {
		return m.Document{}, fmt.Errorf("read swc: %w", err)
	}

	if len(doc.Samples) == 0 {
		return m.Document{}, fmt.Errorf("%s: no samples", path)
	}

	return doc, nil
}

func parseSWCLine(line string) (m.Sample, error) {
	fields := strings.Fields(line)
	if len(fields) != 7 {
		return m.Sample{}, fmt.Errorf("expected 7 columns, got %d", len(fields))
	}

	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return m.Sample{}, fmt.Errorf("bad id %q", fields[0])
	}

	typ, err := strconv.Atoi(fields[1])
	if err != nil {
		return m.Sample{}, fmt.Errorf("bad type %q", fields[1])
	}

	var coords [4]float64

	for i, field := range fields[2:6] {
		coords[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return m.Sample{}, fmt.Errorf("bad value %q", field)
		}
	}

	parent, err := strconv.ParseInt(fields[6], 10, 64)
	if err != nil {
		return m.Sample{}, fmt.Errorf("bad parent %q", fields[6])
	}

	return m.Sample{
		Node: m.Node{
			ID:     m.NodeID(id),
			Type:   m.StructureType(typ),
			Pos:    r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]},
			Radius: coords[3],
		},
		Parent: m.NodeID(parent),
	}, nil
}

// saveSWC writes doc in standard SWC column order. Samples are written in
// the order they appear in the document.
func saveSWC(path m.Path, doc m.Document) error {
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create swc: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "# id type x y z radius parent")

	if doc.Flagged {
		fmt.Fprintln(w, flagComment)
	}

	for _, s := range doc.Samples {
		fmt.Fprintf(w, "%d %d %g %g %g %g %d\n",
			s.ID, s.Type, s.Pos.X, s.Pos.Y, s.Pos.Z, s.Radius, s.Parent)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write swc: %w", err)
	}

	return nil
}
