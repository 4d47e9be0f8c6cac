package cycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdeadlock/cycle"
)

// square is the P0→R0→P1→R1→P0 resource-allocation cycle.
func square() ([]string, []cycle.Edge) {
	nodes := []string{"P0", "R0", "P1", "R1"}
	edges := []cycle.Edge{
		{From: "P0", To: "R0"},
		{From: "R0", To: "P1"},
		{From: "P1", To: "R1"},
		{From: "R1", To: "P0"},
	}

	return nodes, edges
}

func TestDetect_Empty(t *testing.T) {
	res := cycle.Detect(nil, nil)
	assert.False(t, res.HasCycle)
	assert.Empty(t, res.InCycle)
	assert.Nil(t, res.Cycles)
}

func TestDetect_FourNodeCycle(t *testing.T) {
	nodes, edges := square()
	res := cycle.Detect(nodes, edges)

	require.True(t, res.HasCycle)
	assert.Equal(t, []bool{true, true, true, true}, res.InCycle)
	assert.Equal(t, [][]string{{"P0", "R0", "P1", "R1", "P0"}}, res.Cycles)
	assert.Equal(t, edges, res.CycleEdges(edges))
}

func TestDetect_RemovingAnyEdgeBreaksCycle(t *testing.T) {
	nodes, edges := square()
	for drop := range edges {
		rest := make([]cycle.Edge, 0, len(edges)-1)
		rest = append(rest, edges[:drop]...)
		rest = append(rest, edges[drop+1:]...)

		res := cycle.Detect(nodes, rest)
		assert.False(t, res.HasCycle, "dropped edge %d", drop)
		assert.Equal(t, []bool{false, false, false}, res.InCycle, "dropped edge %d", drop)
	}
}

func TestDetect_SingleEdgeIsNotATwoCycle(t *testing.T) {
	res := cycle.Detect([]string{"P0", "R0"}, []cycle.Edge{{From: "P0", To: "R0"}})
	assert.False(t, res.HasCycle)
	assert.Equal(t, []bool{false}, res.InCycle)
}

// TestDetect_TailNotMarked: A-B-C-D-B; the A-B tail lies on no cycle.
func TestDetect_TailNotMarked(t *testing.T) {
	nodes := []string{"A", "B", "C", "D"}
	edges := []cycle.Edge{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "B"}}

	res := cycle.Detect(nodes, edges)
	require.True(t, res.HasCycle)
	assert.Equal(t, []bool{false, true, true, true}, res.InCycle)
	assert.Equal(t, [][]string{{"B", "C", "D", "B"}}, res.Cycles)
}

// TestDetect_DirectionIgnored: edges pointing "against" each other still
// close an undirected cycle.
func TestDetect_DirectionIgnored(t *testing.T) {
	nodes := []string{"P0", "R0", "P1"}
	edges := []cycle.Edge{{"P0", "R0"}, {"P1", "R0"}, {"P0", "P1"}}

	res := cycle.Detect(nodes, edges)
	assert.True(t, res.HasCycle)
	assert.Equal(t, []bool{true, true, true}, res.InCycle)
}

func TestDetect_DisjointComponents(t *testing.T) {
	nodes := []string{"A", "B", "C", "W", "X", "Y", "Z", "Q"}
	edges := []cycle.Edge{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"W", "X"}, {"X", "Y"}, {"Y", "Z"}, {"Z", "W"},
		{"Z", "Q"},
	}

	res := cycle.Detect(nodes, edges)
	require.True(t, res.HasCycle)
	assert.Equal(t, []bool{true, true, true, true, true, true, true, false}, res.InCycle)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "A"},
		{"W", "X", "Y", "Z", "W"},
	}, res.Cycles)
}

// TestDetect_SharedEdge: two triangles sharing B-C; every edge is on a cycle.
func TestDetect_SharedEdge(t *testing.T) {
	nodes := []string{"A", "B", "C", "D"}
	edges := []cycle.Edge{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"B", "D"}, {"D", "C"}}

	res := cycle.Detect(nodes, edges)
	require.True(t, res.HasCycle)
	assert.Equal(t, []bool{true, true, true, true, true}, res.InCycle)
	assert.Len(t, res.Cycles, 2)
}

func TestDetect_IgnoresInvalidEdges(t *testing.T) {
	nodes := []string{"A", "B"}
	edges := []cycle.Edge{
		{"A", "A"},       // self loop
		{"A", "B"},       // kept
		{"B", "A"},       // same unordered pair
		{"A", "missing"}, // unknown endpoint
	}

	res := cycle.Detect(nodes, edges)
	assert.False(t, res.HasCycle)
	assert.Equal(t, []bool{false, false, false, false}, res.InCycle)
}

func TestDetect_Idempotent(t *testing.T) {
	nodes, edges := square()
	assert.Equal(t, cycle.Detect(nodes, edges), cycle.Detect(nodes, edges))
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, cycle.MinimalRotation([]string{"B", "C", "A"}))
	assert.Equal(t, []string{"A", "A", "B"}, cycle.MinimalRotation([]string{"A", "B", "A"}))
	assert.Nil(t, cycle.MinimalRotation(nil))

	in := []string{"C", "A", "B"}
	_ = cycle.MinimalRotation(in)
	assert.Equal(t, []string{"C", "A", "B"}, in, "input must not be modified")
}
