package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arborlab/arbor/internal/adapter"
	m "github.com/arborlab/arbor/internal/model"
)

// ErrExactlyOne is returned by selection-driven operations that need
// exactly one selected node.
var ErrExactlyOne = errors.New("exactly one node must be selected")

// ErrNoFiles is returned when Open finds nothing loadable.
var ErrNoFiles = errors.New("no loadable morphology files")

// SessionConfig controls session behavior.
type SessionConfig struct {
	// AutoSave writes the current document back before navigating away
	// from it.
	AutoSave bool
	// Mode and MaxSelect configure the selection (see Selection).
	Mode      Mode
	MaxSelect int
}

// Session owns the editing state for a set of morphology files: the file
// list, the current document and its tree, the selection and the subtree
// mask. All operations are synchronous and run on the caller's goroutine;
// the session is the single owner of its tree and selection.
type Session struct {
	store adapter.MorphologyStore
	fs    adapter.FolderScanner
	cfg   SessionConfig

	files []m.Path
	idx   int
	doc   m.Document
	tree  *Tree
	sel   *Selection

	mask    NodeSet
	maskGen uint64
	dirty   bool
}

// NewSession creates an empty session. Call Open before anything else.
func NewSession(store adapter.MorphologyStore, fs adapter.FolderScanner, cfg SessionConfig) *Session {
	return &Session{
		store: store,
		fs:    fs,
		cfg:   cfg,
		sel:   NewSelection(nil, cfg.Mode, cfg.MaxSelect),
	}
}

// Open resolves paths (directories expand to their neuron files) and loads
// the first one.
func (s *Session) Open(paths ...m.Path) error {
	files, err := s.fs.Expand(paths...)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return ErrNoFiles
	}

	s.files = files
	s.idx = 0

	return s.loadCurrent()
}

// Path returns the path of the current file.
func (s *Session) Path() m.Path {
	if len(s.files) == 0 {
		return ""
	}

	return s.files[s.idx]
}

// Filename returns the base name of the current file.
func (s *Session) Filename() string {
	return filepath.Base(string(s.Path()))
}

// FileCounter returns the 1-based position within the file list, e.g. "2/7".
func (s *Session) FileCounter() string {
	if len(s.files) == 0 {
		return ""
	}

	return fmt.Sprintf("%d/%d", s.idx+1, len(s.files))
}

// CanNext reports whether a following file exists.
func (s *Session) CanNext() bool {
	return s.idx < len(s.files)-1
}

// CanPrev reports whether a preceding file exists.
func (s *Session) CanPrev() bool {
	return s.idx > 0
}

// Next navigates to the following file, auto-saving first when enabled.
func (s *Session) Next() error {
	if !s.CanNext() {
		return nil
	}

	if err := s.saveIfNeeded(); err != nil {
		return err
	}

	s.idx++

	return s.loadCurrent()
}

// Prev navigates to the preceding file, auto-saving first when enabled.
func (s *Session) Prev() error {
	if !s.CanPrev() {
		return nil
	}

	if err := s.saveIfNeeded(); err != nil {
		return err
	}

	s.idx--

	return s.loadCurrent()
}

// JumpToIndex navigates to the 1-based file position.
func (s *Session) JumpToIndex(index int) error {
	i := index - 1
	if i < 0 || i >= len(s.files) {
		return fmt.Errorf("file index %d out of range 1..%d", index, len(s.files))
	}

	if err := s.saveIfNeeded(); err != nil {
		return err
	}

	s.idx = i

	return s.loadCurrent()
}

// JumpToName navigates to the file whose stem matches name,
// case-insensitively.
func (s *Session) JumpToName(name string) error {
	want := strings.ToLower(name)

	for i, f := range s.files {
		if strings.ToLower(adapter.Stem(f)) != want {
			continue
		}

		if err := s.saveIfNeeded(); err != nil {
			return err
		}

		s.idx = i

		return s.loadCurrent()
	}

	return fmt.Errorf("no file named %q", name)
}

// Tree returns the current tree, nil for point-cloud documents.
func (s *Session) Tree() *Tree {
	return s.tree
}

// Samples returns the current document's samples under the latest rooting.
func (s *Session) Samples() []m.Sample {
	out := make([]m.Sample, len(s.doc.Samples))
	copy(out, s.doc.Samples)

	return out
}

// Summary describes the current document.
func (s *Session) Summary() m.Summary {
	return Summarize(s.Path(), s.doc, s.tree)
}

// Select adds id to the selection.
func (s *Session) Select(id m.NodeID) error {
	if s.tree == nil {
		return ErrNoTree
	}

	return s.sel.Select(id)
}

// ToggleSelect flips the selection state of id, the way a repeated pick
// does.
func (s *Session) ToggleSelect(id m.NodeID) error {
	if s.tree == nil {
		return ErrNoTree
	}

	return s.sel.Toggle(id)
}

// ClearSelection empties the selection.
func (s *Session) ClearSelection() {
	s.sel.Clear()
}

// Selected returns the selected ids in pick order.
func (s *Session) Selected() []m.NodeID {
	return s.sel.Current()
}

// IsSelected reports whether id is selected.
func (s *Session) IsSelected(id m.NodeID) bool {
	return s.sel.IsSelected(id)
}

// RerootAtSelection reroots the current tree at the single selected node.
// The selection is invalidated by the reroot itself and the subtree mask
// is dropped, since both referred to the previous rooting.
func (s *Session) RerootAtSelection() error {
	id, err := s.singleSelection()
	if err != nil {
		return err
	}

	if err := s.tree.Reroot(id); err != nil {
		return err
	}

	s.doc.Samples = s.tree.Samples()
	s.mask = nil
	s.dirty = true

	return nil
}

// SubtreeAtSelection extracts the subtree rooted at the single selected
// node, stores it as the current mask and returns its ids in ascending
// order.
func (s *Session) SubtreeAtSelection() ([]m.NodeID, error) {
	id, err := s.singleSelection()
	if err != nil {
		return nil, err
	}

	set, err := s.tree.Subtree(id)
	if err != nil {
		return nil, err
	}

	s.mask = set
	s.maskGen = s.tree.Generation()

	return set.IDs(), nil
}

// Mask returns the current subtree mask ids, or nil when no mask is active
// or the tree has changed since it was computed.
func (s *Session) Mask() []m.NodeID {
	if s.mask == nil || s.tree == nil || s.maskGen != s.tree.Generation() {
		return nil
	}

	return s.mask.IDs()
}

// ClearMask drops the subtree mask.
func (s *Session) ClearMask() {
	s.mask = nil
}

// Flagged reports the current document's review flag.
func (s *Session) Flagged() bool {
	return s.doc.Flagged
}

// SetFlag sets the review flag.
func (s *Session) SetFlag(flagged bool) {
	if s.doc.Flagged != flagged {
		s.doc.Flagged = flagged
		s.dirty = true
	}
}

// ToggleFlag flips the review flag and returns the new value.
func (s *Session) ToggleFlag() bool {
	s.SetFlag(!s.doc.Flagged)
	return s.doc.Flagged
}

// AutoSave reports whether auto-save is enabled.
func (s *Session) AutoSave() bool {
	return s.cfg.AutoSave
}

// SetAutoSave enables or disables auto-save.
func (s *Session) SetAutoSave(enabled bool) {
	s.cfg.AutoSave = enabled
}

// SaveCurrent writes the current document back to its file.
func (s *Session) SaveCurrent() error {
	if len(s.files) == 0 {
		return ErrNoFiles
	}

	if err := s.store.Save(s.Path(), s.doc); err != nil {
		return fmt.Errorf("save %s: %w", s.Path(), err)
	}

	s.dirty = false

	return nil
}

// SaveAs writes the current document to a new path.
func (s *Session) SaveAs(path m.Path) error {
	if err := s.store.Save(path, s.doc); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}

func (s *Session) singleSelection() (m.NodeID, error) {
	if s.tree == nil {
		return m.NoParent, ErrNoTree
	}

	sel := s.sel.Current()
	if len(sel) != 1 {
		return m.NoParent, ErrExactlyOne
	}

	return sel[0], nil
}

func (s *Session) saveIfNeeded() error {
	if !s.cfg.AutoSave || !s.dirty {
		return nil
	}

	return s.SaveCurrent()
}

// loadCurrent replaces the session state with the file at the current
// index. The selection is rebound (and therefore cleared) and the mask
// dropped; both referred to the previous document.
func (s *Session) loadCurrent() error {
	doc, err := s.store.Load(s.Path())
	if err != nil {
		return fmt.Errorf("load %s: %w", s.Path(), err)
	}

	var tree *Tree

	if doc.Kind == m.KindNeuron {
		tree, err = FromSamples(doc.Samples)
		if err != nil {
			return fmt.Errorf("load %s: %w", s.Path(), err)
		}
	}

	s.doc = doc
	s.tree = tree
	s.sel.Bind(tree)
	s.mask = nil
	s.dirty = false

	return nil
}
