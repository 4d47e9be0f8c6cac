package cycle

import "sort"

// detector carries traversal state for one Detect call.
type detector struct {
	ids   []string      // node index → ID
	adj   [][]incidence // node index → incident edges, input order
	state []int         // White/Gray/Black per node

	stack     []int // Gray path, node indices
	stackEdge []int // edge used to enter stack[k]; -1 for a root
	stackPos  []int // node index → position in stack, -1 if not on it

	inCycle []bool
	seen    map[string]struct{} // canonical cycle signatures
	cycles  [][]string
}

// Detect reports which edges of the undirected simple graph (nodes, edges)
// lie on a cycle. See the package documentation for the exact rules.
//
// Steps:
//  1. Index nodes; build adjacency, dropping self loops, unknown endpoints
//     and repeated unordered pairs.
//  2. DFS from each White node in input order.
//  3. Sort recorded cycles by signature.
//
// Complexity: O(N+E) traversal plus O(L) per closed cycle.
func Detect(nodes []string, edges []Edge) Result {
	d := newDetector(nodes, edges)

	// 2) Forest traversal covers disconnected components.
	for u := range d.ids {
		if d.state[u] == White {
			d.visit(u, -1)
		}
	}

	// 3) Deterministic output order.
	sort.Slice(d.cycles, func(i, j int) bool {
		return signature(d.cycles[i]) < signature(d.cycles[j])
	})

	return Result{
		HasCycle: len(d.cycles) > 0,
		InCycle:  d.inCycle,
		Cycles:   d.cycles,
	}
}

// newDetector performs step 1 of Detect.
func newDetector(nodes []string, edges []Edge) *detector {
	index := make(map[string]int, len(nodes))
	ids := make([]string, 0, len(nodes))
	for _, id := range nodes {
		if _, dup := index[id]; dup {
			continue // first occurrence wins
		}
		index[id] = len(ids)
		ids = append(ids, id)
	}

	d := &detector{
		ids:       ids,
		adj:       make([][]incidence, len(ids)),
		state:     make([]int, len(ids)),
		stack:     make([]int, 0, len(ids)),
		stackEdge: make([]int, 0, len(ids)),
		stackPos:  make([]int, len(ids)),
		inCycle:   make([]bool, len(edges)),
		seen:      make(map[string]struct{}),
	}
	for u := range d.stackPos {
		d.stackPos[u] = -1
	}

	type pair struct{ a, b int }
	present := make(map[pair]struct{}, len(edges))
	for k, e := range edges {
		u, okU := index[e.From]
		v, okV := index[e.To]
		if !okU || !okV || u == v {
			continue
		}
		key := pair{u, v}
		if u > v {
			key = pair{v, u} // unordered
		}
		if _, dup := present[key]; dup {
			continue
		}
		present[key] = struct{}{}
		d.adj[u] = append(d.adj[u], incidence{nbr: v, edge: k})
		d.adj[v] = append(d.adj[v], incidence{nbr: u, edge: k})
	}

	return d
}

// visit explores u, entered through edge via (-1 for a DFS root).
func (d *detector) visit(u, via int) {
	// 1) Push u onto the Gray path.
	d.state[u] = Gray
	d.stackPos[u] = len(d.stack)
	d.stack = append(d.stack, u)
	d.stackEdge = append(d.stackEdge, via)

	// 2) Explore incident edges.
	for _, inc := range d.adj[u] {
		if inc.edge == via {
			continue // trivial backtrack to parent
		}
		switch d.state[inc.nbr] {
		case White:
			d.visit(inc.nbr, inc.edge)
		case Gray:
			d.closeCycle(inc.nbr, inc.edge)
		}
		// Black: this edge was already seen as a back edge from the other side.
	}

	// 3) Pop and finish.
	d.stack = d.stack[:len(d.stack)-1]
	d.stackEdge = d.stackEdge[:len(d.stackEdge)-1]
	d.stackPos[u] = -1
	d.state[u] = Black
}

// closeCycle marks the back edge closing at ancestor v and every tree edge
// on the stack from v to the current top, then records the node cycle.
func (d *detector) closeCycle(v, closing int) {
	pos := d.stackPos[v]
	d.inCycle[closing] = true
	for k := pos + 1; k < len(d.stack); k++ {
		d.inCycle[d.stackEdge[k]] = true
	}

	seq := make([]string, 0, len(d.stack)-pos+1)
	for _, n := range d.stack[pos:] {
		seq = append(seq, d.ids[n])
	}
	seq = append(seq, d.ids[v]) // close the loop

	sig, canon := canonical(seq)
	if _, ok := d.seen[sig]; !ok {
		d.seen[sig] = struct{}{}
		d.cycles = append(d.cycles, canon)
	}
}
