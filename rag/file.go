// SPDX-License-Identifier: MIT
// Package: rag
//
// file.go — YAML graph documents.
//
//	nodes:
//	  - {name: P0, kind: process}
//	  - {name: R0, kind: resource, x: 120, y: 80}
//	edges:
//	  - {from: P0, to: R0}
//
// Node names become node IDs. Nodes without a position are placed
// randomly; edges that AddEdge would ignore (self loops, duplicates) are
// reported back as skipped.

package rag

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a graph.
type File struct {
	Nodes []FileNode `yaml:"nodes"`
	Edges []FileEdge `yaml:"edges"`
}

// FileNode names a node; x and y are optional.
type FileNode struct {
	Name string   `yaml:"name"`
	Kind string   `yaml:"kind"`
	X    *float64 `yaml:"x,omitempty"`
	Y    *float64 `yaml:"y,omitempty"`
}

// FileEdge joins two node names.
type FileEdge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DecodeFile reads a YAML graph document. Unknown keys are rejected.
func DecodeFile(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("DecodeFile: %w", err)
	}

	return f, nil
}

// LoadFile opens path and calls DecodeFile.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("LoadFile: %w", err)
	}
	defer fh.Close()

	return DecodeFile(fh)
}

// Build creates a Graph from f.
//
// Steps:
//  1. Validate names (non-empty, unique) and kinds.
//  2. Insert nodes in file order, placed at (x, y) or randomly.
//  3. Insert edges; unknown endpoints fail, ignored edges are returned.
//
// Complexity: O(E·(V+E)), one detection per inserted edge.
func (f File) Build(opts ...GraphOption) (*Graph, []FileEdge, error) {
	// 1) Validate.
	kinds := make([]Kind, len(f.Nodes))
	names := make(map[string]struct{}, len(f.Nodes))
	for k, n := range f.Nodes {
		if n.Name == "" {
			return nil, nil, fmt.Errorf("Build: node %d: empty name: %w", k, ErrBadFile)
		}
		if _, dup := names[n.Name]; dup {
			return nil, nil, fmt.Errorf("Build: node %q: duplicate name: %w", n.Name, ErrBadFile)
		}
		names[n.Name] = struct{}{}

		kind, err := ParseKind(n.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("Build: node %q: %w", n.Name, err)
		}
		kinds[k] = kind
	}

	// 2) Nodes.
	g := NewGraph(opts...)
	g.mu.Lock()
	for k, n := range f.Nodes {
		x := g.rng.Float64()*(g.width-2*placementMargin) + placementMargin
		y := g.rng.Float64()*(g.height-2*placementMargin) + placementMargin
		if n.X != nil {
			x = *n.X
		}
		if n.Y != nil {
			y = *n.Y
		}
		g.insertNode(n.Name, kinds[k], x, y)
	}
	g.mu.Unlock()

	// 3) Edges.
	var skipped []FileEdge
	for _, e := range f.Edges {
		for _, end := range []string{e.From, e.To} {
			if _, ok := names[end]; !ok {
				return nil, nil, fmt.Errorf("Build: edge %s→%s: %q: %w", e.From, e.To, end, ErrNodeNotFound)
			}
		}
		if _, ok := g.AddEdge(e.From, e.To); !ok {
			skipped = append(skipped, e)
		}
	}

	return g, skipped, nil
}

// Export returns g as a File with explicit positions.
func (g *Graph) Export() File {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f := File{
		Nodes: make([]FileNode, len(g.nodes)),
		Edges: make([]FileEdge, len(g.edges)),
	}
	for k, n := range g.nodes {
		x, y := n.X, n.Y
		f.Nodes[k] = FileNode{Name: n.ID, Kind: n.Kind.String(), X: &x, Y: &y}
	}
	for k, e := range g.edges {
		f.Edges[k] = FileEdge{From: e.From, To: e.To}
	}

	return f
}

// Encode writes f as YAML.
func (f File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}
