package cycle

// Visitation state of a node during Detect.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the recursion stack.
	Black        // Black: node and all its descendants fully explored.
)

// Edge is an input edge between two node IDs. Direction is irrelevant to
// detection; it is carried so callers can map results back to their edges.
type Edge struct {
	From string
	To   string
}

// Result is the outcome of Detect.
type Result struct {
	// HasCycle reports whether at least one cycle exists.
	HasCycle bool

	// InCycle is parallel to the input edge slice: InCycle[k] is true iff
	// edges[k] participates in at least one cycle.
	InCycle []bool

	// Cycles lists each detected cycle once as a closed node sequence
	// [v0, v1, ..., v0] in canonical order, sorted by signature.
	Cycles [][]string
}

// CycleEdges returns the subset of edges flagged in r.InCycle, preserving
// input order. edges must be the slice passed to Detect.
func (r Result) CycleEdges(edges []Edge) []Edge {
	var out []Edge
	for k, in := range r.InCycle {
		if in {
			out = append(out, edges[k])
		}
	}

	return out
}

// incidence is one adjacency entry: the neighbour index reached via edge.
type incidence struct {
	nbr  int
	edge int
}
