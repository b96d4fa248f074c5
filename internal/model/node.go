// Package model defines the data structures for neuron morphology documents.
package model

import "gonum.org/v1/gonum/spatial/r3"

// NodeID is a stable identifier naming one sampled point of a morphology.
type NodeID int64

// NoParent marks a node without a parent (the root).
const NoParent NodeID = -1

// StructureType is the SWC structure label of a sample.
type StructureType int

const (
	// StructureUndefined represents an unlabeled sample.
	StructureUndefined StructureType = 0
	// StructureSoma represents a cell body sample.
	StructureSoma StructureType = 1
	// StructureAxon represents an axonal sample.
	StructureAxon StructureType = 2
	// StructureBasalDendrite represents a basal dendrite sample.
	StructureBasalDendrite StructureType = 3
	// StructureApicalDendrite represents an apical dendrite sample.
	StructureApicalDendrite StructureType = 4
)

// Node is one sampled point of a neuron: identifier, structure label,
// position in world space and sampling radius.
type Node struct {
	ID     NodeID
	Type   StructureType
	Pos    r3.Vec
	Radius float64
}

// Sample is one raw record from a morphology file: a node plus its parent
// reference, before any tree validation has happened.
type Sample struct {
	Node
	Parent NodeID
}
