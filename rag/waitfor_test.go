package rag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdeadlock/rag"
)

// TestWaitFor_Deadlock: P0 requests R0 held by P1; P1 requests R1 held by
// P2; P2 requests R2 held by P0. The wait-for graph is the triangle
// P0→P1→P2→P0.
func TestWaitFor_Deadlock(t *testing.T) {
	g := newTestGraph()
	p := []rag.Node{g.AddNode(rag.KindProcess), g.AddNode(rag.KindProcess), g.AddNode(rag.KindProcess)}
	r := []rag.Node{g.AddNode(rag.KindResource), g.AddNode(rag.KindResource), g.AddNode(rag.KindResource)}
	for i := 0; i < 3; i++ {
		_, ok := g.AddEdge(p[i].ID, r[i].ID) // request
		require.True(t, ok)
		_, ok = g.AddEdge(r[i].ID, p[(i+1)%3].ID) // assignment
		require.True(t, ok)
	}

	w := g.WaitFor()
	assert.Equal(t, rag.ModeWaitFor, w.Mode())
	assert.Equal(t, 3, w.NodeCount())
	assert.Equal(t, []rag.Edge{
		{From: p[0].ID, To: p[1].ID, InCycle: true},
		{From: p[1].ID, To: p[2].ID, InCycle: true},
		{From: p[2].ID, To: p[0].ID, InCycle: true},
	}, w.Edges())
	assert.True(t, w.HasCycle())

	got, ok := w.Node(p[1].ID)
	require.True(t, ok)
	assert.Equal(t, p[1], got, "process nodes keep identity and position")
}

func TestWaitFor_NoSelfWait(t *testing.T) {
	g := newTestGraph()
	p := g.AddNode(rag.KindProcess)
	r := g.AddNode(rag.KindResource)
	g.AddEdge(p.ID, r.ID)
	g.AddNode(rag.KindProcess)

	w := g.WaitFor()
	assert.Equal(t, 2, w.NodeCount())
	assert.Equal(t, 0, w.EdgeCount())
	assert.False(t, w.HasCycle())
}

func TestActive(t *testing.T) {
	g, _ := square(t)
	assert.Same(t, g, g.Active())

	g.SetMode(rag.ModeWaitFor)
	w := g.Active()
	assert.NotSame(t, g, w)
	assert.Equal(t, 2, w.NodeCount())
	// P0→R0→P1 and P1→R1→P0 reduce to one undirected pair.
	assert.Equal(t, 1, w.EdgeCount())
	assert.False(t, w.HasCycle())
	assert.Equal(t, "waitfor", g.Mode().String())
}
