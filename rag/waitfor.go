// SPDX-License-Identifier: MIT
// File: waitfor.go
// Role: Wait-for reduction of a resource-allocation graph.

package rag

import "math/rand"

// WaitFor derives the process-only wait-for graph.
//
// For every request edge P → R and assignment edge R → Q with P != Q, the
// result contains P → Q ("P waits for Q"). Process nodes keep their IDs,
// labels and positions; resource nodes and same-kind edges are dropped.
// Cycle detection has already run on the returned graph.
//
// Complexity: O(V + E²) in the worst case (request × assignment pairs).
func (g *Graph) WaitFor() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w := &Graph{
		width:  g.width,
		height: g.height,
		rng:    rand.New(rand.NewSource(defaultSeed)),
		idFn:   g.idFn,
		index:  make(map[string]int),
		mode:   ModeWaitFor,
	}
	for _, n := range g.nodes {
		if n.Kind == KindProcess {
			w.index[n.ID] = len(w.nodes)
			w.nodes = append(w.nodes, n)
		}
	}

	// holders[r] lists processes a resource is assigned to, in edge order.
	holders := make(map[string][]string)
	for _, e := range g.edges {
		if g.edgeKind(e) == EdgeAssignment {
			holders[e.From] = append(holders[e.From], e.To)
		}
	}
	for _, e := range g.edges {
		if g.edgeKind(e) != EdgeRequest {
			continue
		}
		for _, q := range holders[e.To] {
			if q == e.From || w.findEdge(e.From, q) >= 0 {
				continue // no self wait, simple graph
			}
			w.edges = append(w.edges, Edge{From: e.From, To: q})
		}
	}
	w.detect()

	return w
}

// Active returns the graph the current mode renders: g itself in ModeRAG,
// a freshly derived wait-for graph in ModeWaitFor.
func (g *Graph) Active() *Graph {
	if g.Mode() == ModeWaitFor {
		return g.WaitFor()
	}

	return g
}
