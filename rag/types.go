// SPDX-License-Identifier: MIT
// Package rag defines the resource-allocation graph model: process and
// resource nodes on a bounded 2-D canvas, request/assignment edges between
// them, and the derived cycle annotation.
//
// Errors:
//
//	ErrNodeNotFound - requested node does not exist.
//	ErrUnknownKind  - a kind name could not be parsed.
//	ErrBadFile      - a graph file has an empty or duplicate node name.
package rag

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("rag: node not found")

	// ErrUnknownKind indicates an unrecognised node kind name.
	ErrUnknownKind = errors.New("rag: unknown node kind")

	// ErrBadFile indicates a graph file with an empty or duplicate node name.
	ErrBadFile = errors.New("rag: invalid graph file")
)

// Kind distinguishes process nodes from resource nodes.
type Kind int

const (
	// KindProcess is a process (drawn as a circle, label prefix "P").
	KindProcess Kind = iota
	// KindResource is a resource type (drawn as a square, label prefix "R").
	KindResource
)

// String returns "process" or "resource".
func (k Kind) String() string {
	switch k {
	case KindProcess:
		return "process"
	case KindResource:
		return "resource"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Letter returns the label prefix of the kind.
func (k Kind) Letter() string {
	if k == KindResource {
		return "R"
	}

	return "P"
}

// ParseKind maps "process"/"p" and "resource"/"r" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "process", "p":
		return KindProcess, nil
	case "resource", "r":
		return KindResource, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Default display radii per kind.
const (
	ProcessRadius  = 25.0
	ResourceRadius = 20.0
)

// radiusOf returns the display radius of kind.
func radiusOf(k Kind) float64 {
	if k == KindResource {
		return ResourceRadius
	}

	return ProcessRadius
}

// Node is a process or resource placed on the canvas.
//
// For resources X, Y is the centre of a square with half-side Radius.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string

	// Kind is process or resource.
	Kind Kind

	// X, Y is the centre position, always within the canvas minus Radius.
	X, Y float64

	// Radius is the display radius (circle) or half-side (square).
	Radius float64

	// Label is Kind.Letter() followed by the same-kind count at insertion
	// time. Labels are not guaranteed unique.
	Label string
}

// Edge connects two nodes. Direction is retained for arrow rendering;
// cycle semantics are undirected.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// InCycle is derived by cycle detection and never set by callers.
	InCycle bool
}

// EdgeKind classifies an edge by the kinds of its endpoints.
type EdgeKind int

const (
	// EdgeOther joins two nodes of the same kind (e.g. wait-for edges).
	EdgeOther EdgeKind = iota
	// EdgeRequest points from a process to a resource it waits for.
	EdgeRequest
	// EdgeAssignment points from a resource to the process holding it.
	EdgeAssignment
)

// String returns "request", "assignment" or "other".
func (k EdgeKind) String() string {
	switch k {
	case EdgeRequest:
		return "request"
	case EdgeAssignment:
		return "assignment"
	default:
		return "other"
	}
}

// Mode selects which view of the graph the presentation layer renders.
type Mode int

const (
	// ModeRAG renders the full resource-allocation graph.
	ModeRAG Mode = iota
	// ModeWaitFor renders the process-only wait-for reduction.
	ModeWaitFor
)

// String returns "rag" or "waitfor".
func (m Mode) String() string {
	if m == ModeWaitFor {
		return "waitfor"
	}

	return "rag"
}

// Detection is the outcome of a cycle-detection run over the graph.
type Detection struct {
	// HasCycle reports whether any cycle exists.
	HasCycle bool

	// CycleEdges lists the edges with InCycle set, in insertion order.
	CycleEdges []Edge

	// Cycles lists each cycle as a closed sequence of node IDs.
	Cycles [][]string
}

// Summary is the at-a-glance description of a graph used by the
// "analyse graph" action of the presentation layer.
type Summary struct {
	Processes int
	Resources int
	Edges     int
	HasCycle  bool
}
