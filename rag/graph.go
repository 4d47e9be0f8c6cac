// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph construction, node and edge lifecycle, cycle re-detection.
// Determinism:
//   - Nodes() and Edges() return insertion order.
//   - Placement is random only through the injected *rand.Rand.
// Concurrency:
//   - All state guarded by one sync.RWMutex; mutations take the write lock,
//     queries the read lock. The detector runs under the write lock so the
//     InCycle flags never lag behind the edge list.

package rag

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/katalvlaran/lvdeadlock/cycle"
)

// Graph is the resource-allocation graph playground.
//
// It owns nodes and edges exclusively; cycle detection only annotates
// Edge.InCycle. A Graph is a simple graph: no self loops and at most one
// edge per unordered node pair.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	width, height float64
	rng           *rand.Rand
	idFn          func() string

	// Storage, insertion ordered.
	nodes []Node
	index map[string]int // node ID → position in nodes
	edges []Edge

	// Detection state
	hasCycle bool
	cycles   [][]string

	mode Mode
}

// NewGraph creates an empty Graph. Defaults: 800×600 canvas, seed 1
// placement RNG, UUID node IDs, ModeRAG.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		width:  DefaultWidth,
		height: DefaultHeight,
		idFn:   defaultIDFunc,
		index:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return g
}

// Bounds returns the canvas width and height.
func (g *Graph) Bounds() (float64, float64) {
	return g.width, g.height
}

// AddNode inserts a node of kind at a random position inside the canvas
// margin and returns it.
//
// The label is kind's letter followed by the number of same-kind nodes
// already present, so labels follow the live count rather than a counter.
//
// Complexity: O(V) for the label count.
func (g *Graph) AddNode(kind Kind) Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	x := g.rng.Float64()*(g.width-2*placementMargin) + placementMargin
	y := g.rng.Float64()*(g.height-2*placementMargin) + placementMargin

	return g.insertNode(g.idFn(), kind, x, y)
}

// AddNodeAt inserts a node of kind at (x, y), clamped to the canvas.
// Complexity: O(V).
func (g *Graph) AddNodeAt(kind Kind, x, y float64) Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.insertNode(g.idFn(), kind, x, y)
}

// insertNode appends a node with id; caller holds the write lock.
func (g *Graph) insertNode(id string, kind Kind, x, y float64) Node {
	n := Node{
		ID:     id,
		Kind:   kind,
		Radius: radiusOf(kind),
		Label:  kind.Letter() + strconv.Itoa(g.countKind(kind)),
	}
	n.X, n.Y = g.clamp(x, y, n.Radius)

	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return n
}

// countKind returns the number of nodes of kind; caller holds a lock.
func (g *Graph) countKind(kind Kind) int {
	var c int
	for _, n := range g.nodes {
		if n.Kind == kind {
			c++
		}
	}

	return c
}

// clamp confines (x, y) to [r, w-r]×[r, h-r].
func (g *Graph) clamp(x, y, r float64) (float64, float64) {
	return clampRange(x, r, g.width-r), clampRange(y, r, g.height-r)
}

// clampRange confines v to [lo, hi]; when the canvas is smaller than the
// node (lo > hi) the lower bound wins.
func clampRange(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}

	return v
}

// AddEdge connects from → to and re-runs cycle detection.
//
// It is a no-op returning (Edge{}, false) when from == to, when either node
// is unknown, or when an edge already joins the pair in either direction.
//
// Complexity: O(E) duplicate scan + O(V+E) detection.
func (g *Graph) AddEdge(from, to string) (Edge, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to {
		return Edge{}, false
	}
	if _, ok := g.index[from]; !ok {
		return Edge{}, false
	}
	if _, ok := g.index[to]; !ok {
		return Edge{}, false
	}
	if g.findEdge(from, to) >= 0 {
		return Edge{}, false
	}

	g.edges = append(g.edges, Edge{From: from, To: to})
	g.detect()

	return g.edges[len(g.edges)-1], true
}

// RemoveEdge deletes the edge joining a and b (either orientation) and
// re-runs cycle detection. Reports whether an edge was removed.
// Complexity: O(E) + O(V+E) detection.
func (g *Graph) RemoveEdge(a, b string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := g.findEdge(a, b)
	if k < 0 {
		return false
	}
	g.edges = append(g.edges[:k], g.edges[k+1:]...)
	g.detect()

	return true
}

// HasEdge reports whether an edge joins a and b in either direction.
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findEdge(a, b) >= 0
}

// findEdge returns the index of the edge joining a and b, or -1.
func (g *Graph) findEdge(a, b string) int {
	for k, e := range g.edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return k
		}
	}

	return -1
}

// MoveNode repositions node id to (x, y), clamped so the node stays fully
// inside the canvas. Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(1).
func (g *Graph) MoveNode(id string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[id]
	if !ok {
		return ErrNodeNotFound
	}
	n := &g.nodes[i]
	n.X, n.Y = g.clamp(x, y, n.Radius)

	return nil
}

// Clear drops all nodes and edges and resets detection state. The mode
// and configuration survive.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.index = make(map[string]int)
	g.hasCycle = false
	g.cycles = nil
}

// DetectCycles re-runs cycle detection and returns its outcome.
// Complexity: O(V+E).
func (g *Graph) DetectCycles() Detection {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.detect()

	return g.detection()
}

// Detection returns the outcome of the most recent detection run without
// re-running it.
func (g *Graph) Detection() Detection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.detection()
}

// detect recomputes every InCycle flag; caller holds the write lock.
func (g *Graph) detect() {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	in := make([]cycle.Edge, len(g.edges))
	for k, e := range g.edges {
		in[k] = cycle.Edge{From: e.From, To: e.To}
	}

	res := cycle.Detect(ids, in)
	for k := range g.edges {
		g.edges[k].InCycle = res.InCycle[k]
	}
	g.hasCycle = res.HasCycle
	g.cycles = res.Cycles
}

// detection assembles a Detection; caller holds a lock.
func (g *Graph) detection() Detection {
	d := Detection{HasCycle: g.hasCycle}
	for _, e := range g.edges {
		if e.InCycle {
			d.CycleEdges = append(d.CycleEdges, e)
		}
	}
	for _, c := range g.cycles {
		d.Cycles = append(d.Cycles, append([]string(nil), c...))
	}

	return d
}

// HasCycle reports the result of the most recent detection run.
func (g *Graph) HasCycle() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasCycle
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Node(nil), g.nodes...)
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NodeAt returns the first node (insertion order) containing point (x, y):
// inside the circle for processes, inside the square for resources.
// Complexity: O(V).
func (g *Graph) NodeAt(x, y float64) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.nodes {
		if n.contains(x, y) {
			return n, true
		}
	}

	return Node{}, false
}

// contains reports whether (x, y) hits the node's shape.
func (n Node) contains(x, y float64) bool {
	dx, dy := x-n.X, y-n.Y
	if n.Kind == KindResource {
		return dx >= -n.Radius && dx <= n.Radius && dy >= -n.Radius && dy <= n.Radius
	}

	return dx*dx+dy*dy <= n.Radius*n.Radius
}

// EdgeKind classifies e by its endpoint kinds. Unknown endpoints yield
// EdgeOther.
func (g *Graph) EdgeKind(e Edge) EdgeKind {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeKind(e)
}

// edgeKind is EdgeKind without locking.
func (g *Graph) edgeKind(e Edge) EdgeKind {
	fi, okF := g.index[e.From]
	ti, okT := g.index[e.To]
	if !okF || !okT {
		return EdgeOther
	}
	from, to := g.nodes[fi].Kind, g.nodes[ti].Kind
	switch {
	case from == KindProcess && to == KindResource:
		return EdgeRequest
	case from == KindResource && to == KindProcess:
		return EdgeAssignment
	default:
		return EdgeOther
	}
}

// Mode returns the current view mode.
func (g *Graph) Mode() Mode {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mode
}

// SetMode switches the view mode.
func (g *Graph) SetMode(m Mode) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.mode = m
}

// Summary counts processes, resources and edges and reports the most
// recent cycle status.
// Complexity: O(V).
func (g *Graph) Summary() Summary {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Summary{
		Processes: g.countKind(KindProcess),
		Resources: g.countKind(KindResource),
		Edges:     len(g.edges),
		HasCycle:  g.hasCycle,
	}
}
