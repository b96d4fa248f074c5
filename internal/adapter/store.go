// Package adapter provides file-format and filesystem adapters for
// morphology documents.
package adapter

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/arborlab/arbor/internal/model"
)

// MorphologyStore loads and saves morphology documents, dispatching on the
// file extension.
type MorphologyStore interface {
	Load(path m.Path) (m.Document, error)
	Save(path m.Path, doc m.Document) error
	Supported(path m.Path) bool
}

type localStore struct{}

// NewLocalStore constructs a MorphologyStore backed by the local
// filesystem. Supported formats: .swc, .arbor and .csv point clouds.
func NewLocalStore() MorphologyStore {
	return &localStore{}
}

func (s *localStore) Load(path m.Path) (m.Document, error) {
	switch ext(path) {
	case ".swc":
		return loadSWC(path)
	case ".arbor":
		return loadArbor(path)
	case ".csv":
		return loadCSV(path)
	default:
		return m.Document{}, fmt.Errorf("unsupported file format %q", ext(path))
	}
}

func (s *localStore) Save(path m.Path, doc m.Document) error {
	switch ext(path) {
	case ".swc":
		return saveSWC(path, doc)
	case ".arbor":
		return saveArbor(path, doc)
	default:
		return fmt.Errorf("unsupported save format %q", ext(path))
	}
}

func (s *localStore) Supported(path m.Path) bool {
	switch ext(path) {
	case ".swc", ".arbor", ".csv":
		return true
	default:
		return false
	}
}

func ext(path m.Path) string {
	return strings.ToLower(filepath.Ext(string(path)))
}
