package domain

import (
	"slices"

	m "github.com/arborlab/arbor/internal/model"
)

// Mode controls how Select treats an existing selection.
type Mode int

const (
	// SingleSelect replaces the current selection on every Select.
	SingleSelect Mode = iota
	// MultiSelect appends to the current selection up to a configured
	// maximum.
	MultiSelect
)

// DefaultMaxSelect bounds a MultiSelect selection when no explicit
// maximum is configured.
const DefaultMaxSelect = 16

// Selection holds the node identifiers the user has picked. It references
// nodes by id only and is bound to one Tree at a time.
//
// Invalidation is structural rather than a caller courtesy: the selection
// snapshots the tree's generation counter and silently clears itself as
// soon as it observes that the tree was rerooted underneath it.
type Selection struct {
	mode Mode
	max  int
	tree *Tree
	gen  uint64
	ids  []m.NodeID
}

// NewSelection creates a Selection bound to tree. max bounds MultiSelect
// and defaults to DefaultMaxSelect when <= 0.
func NewSelection(tree *Tree, mode Mode, max int) *Selection {
	if max <= 0 {
		max = DefaultMaxSelect
	}

	s := &Selection{mode: mode, max: max}
	s.Bind(tree)

	return s
}

// Bind attaches the selection to a replacement tree and clears it.
func (s *Selection) Bind(tree *Tree) {
	s.tree = tree
	s.ids = nil

	if tree != nil {
		s.gen = tree.Generation()
	}
}

// Select adds id to the selection (SingleSelect replaces, MultiSelect
// appends). Ids absent from the bound tree fail with *UnknownNodeError
// and change nothing; a full MultiSelect selection fails with
// ErrSelectionFull.
func (s *Selection) Select(id m.NodeID) error {
	s.revalidate()

	if s.tree == nil || !s.tree.Has(id) {
		return &UnknownNodeError{Node: id}
	}

	if s.mode == SingleSelect {
		s.ids = s.ids[:0]
		s.ids = append(s.ids, id)

		return nil
	}

	if slices.Contains(s.ids, id) {
		return nil
	}

	if len(s.ids) >= s.max {
		return ErrSelectionFull
	}

	s.ids = append(s.ids, id)

	return nil
}

// Toggle flips the membership of id, matching how interactive picking
// behaves: picking a selected node deselects it.
func (s *Selection) Toggle(id m.NodeID) error {
	s.revalidate()

	if s.tree == nil || !s.tree.Has(id) {
		return &UnknownNodeError{Node: id}
	}

	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return nil
	}

	return s.Select(id)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = s.ids[:0]

	if s.tree != nil {
		s.gen = s.tree.Generation()
	}
}

// Current returns the selected identifiers in insertion order.
func (s *Selection) Current() []m.NodeID {
	s.revalidate()

	out := make([]m.NodeID, len(s.ids))
	copy(out, s.ids)

	return out
}

// Count returns the number of selected identifiers.
func (s *Selection) Count() int {
	s.revalidate()
	return len(s.ids)
}

// IsSelected reports whether id is currently selected.
func (s *Selection) IsSelected(id m.NodeID) bool {
	s.revalidate()
	return slices.Contains(s.ids, id)
}

// revalidate clears the selection if the bound tree has structurally
// changed since the ids were picked.
func (s *Selection) revalidate() {
	if s.tree == nil {
		s.ids = nil
		return
	}

	if s.gen != s.tree.Generation() {
		s.ids = s.ids[:0]
		s.gen = s.tree.Generation()
	}
}
