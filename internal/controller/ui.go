// Package controller provides the user-facing output layers: a plain text
// UI and an interactive Bubble Tea session.
package controller

import (
	m "github.com/arborlab/arbor/internal/model"
)

// Session is the slice of the editing session the UI drives. It is
// implemented by the domain session; the controller never reaches into
// tree internals, it works with ids and samples only.
type Session interface {
	Filename() string
	FileCounter() string
	Summary() m.Summary
	Samples() []m.Sample

	Selected() []m.NodeID
	IsSelected(id m.NodeID) bool
	ToggleSelect(id m.NodeID) error
	ClearSelection()

	RerootAtSelection() error
	SubtreeAtSelection() ([]m.NodeID, error)
	Mask() []m.NodeID
	ClearMask()

	Next() error
	Prev() error
	CanNext() bool
	CanPrev() bool

	Flagged() bool
	ToggleFlag() bool
	AutoSave() bool
	SetAutoSave(enabled bool)
	SaveCurrent() error
}

// UI defines how results reach the user. Implementations differ in output
// method (plain text vs interactive TUI).
type UI interface {
	DisplaySummaries(summaries []m.Summary) error
	DisplaySubtree(path m.Path, seed m.NodeID, ids []m.NodeID) error
	DisplayReroot(path m.Path, newRoot m.NodeID, saved m.Path) error
	RunSession(session Session) error
}
