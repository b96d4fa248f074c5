// Package domain contains the morphology tree engine and the editing
// session that coordinates it.
package domain

import (
	"errors"
	"fmt"

	m "github.com/arborlab/arbor/internal/model"
)

// MalformedTreeError reports input that does not form a single rooted,
// acyclic, connected tree. The operation that returned it committed no
// mutation.
type MalformedTreeError struct {
	Reason string
	// Node is the offending node where one can be named, NoParent otherwise.
	Node m.NodeID
}

func (e *MalformedTreeError) Error() string {
	if e.Node != m.NoParent {
		return fmt.Sprintf("malformed tree: %s (node %d)", e.Reason, e.Node)
	}

	return fmt.Sprintf("malformed tree: %s", e.Reason)
}

// UnknownNodeError reports a node identifier that does not exist in the
// current tree. Callers can recover by re-picking; no mutation happened.
type UnknownNodeError struct {
	Node m.NodeID
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %d", e.Node)
}

// ErrSelectionFull is returned when a multi-select selection has reached
// its configured maximum.
var ErrSelectionFull = errors.New("selection limit reached")

// ErrNoTree is returned for tree operations on a point-cloud document.
var ErrNoTree = errors.New("document has no tree structure")
