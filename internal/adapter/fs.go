package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/arborlab/arbor/internal/model"
)

// FolderScanner resolves user-supplied paths to loadable morphology files.
type FolderScanner interface {
	// Expand turns a mix of files and directories into a sorted list of
	// loadable files. Directories contribute their neuron files
	// (non-recursive), matching how a session walks a dataset folder.
	Expand(paths ...m.Path) ([]m.Path, error)
	IsDir(path m.Path) bool
}

type localScanner struct{}

// NewLocalScanner constructs a FolderScanner for the local filesystem.
func NewLocalScanner() FolderScanner {
	return &localScanner{}
}

func (s *localScanner) Expand(paths ...m.Path) ([]m.Path, error) {
	var out []m.Path

	seen := make(map[m.Path]bool)

	for _, path := range paths {
		info, err := os.Stat(string(path))
		if err != nil {
			return nil, fmt.Errorf("path error: %w", err)
		}

		if !info.IsDir() {
			if !seen[path] {
				seen[path] = true
				out = append(out, path)
			}

			continue
		}

		files, err := scanFolder(path)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}

	return out, nil
}

func (s *localScanner) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// scanFolder lists the neuron files in dir, sorted by name. Point-cloud
// CSVs are skipped here: a folder scan feeds session navigation, which
// only makes sense across tree-structured files.
func scanFolder(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("scan folder: %w", err)
	}

	var files []m.Path

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".swc", ".arbor":
			files = append(files, m.Path(filepath.Join(string(dir), entry.Name())))
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

// Stem returns the file name without directory or extension, used for
// jump-by-name lookups.
func Stem(path m.Path) string {
	base := filepath.Base(string(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
