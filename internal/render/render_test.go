package render

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdeadlock/rag"
	"github.com/katalvlaran/lvdeadlock/scores"
	"github.com/katalvlaran/lvdeadlock/simulator"
)

func TestPrinter_Snapshot(t *testing.T) {
	g := simulator.New()
	_, err := g.LoadLevel(1)
	require.NoError(t, err)
	require.NoError(t, g.SelectProcess(1))

	var buf bytes.Buffer
	New(&buf, false).Snapshot(g.Snapshot())
	out := buf.String()

	assert.Contains(t, out, "Level 1  phase: loaded  score: 0  time: 60s")
	assert.Contains(t, out, "[7 4 3]")
	assert.Contains(t, out, "selected")
	assert.Contains(t, out, "[5 4 3]")
	assert.Contains(t, out, "SAFE sequence: P1 → P0")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes without colour")
}

func TestPrinter_Levels(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Levels(simulator.DefaultCatalog())

	assert.Contains(t, buf.String(), "P1 → P3 → P0 → P2")
	assert.Contains(t, buf.String(), "Basic scenario")
}

func TestPrinter_Graph(t *testing.T) {
	n := 0
	g := rag.NewGraph(rag.WithIDFunc(func() string { n++; return "n" + strconv.Itoa(n) }))
	p0 := g.AddNode(rag.KindProcess)
	r0 := g.AddNode(rag.KindResource)
	p1 := g.AddNode(rag.KindProcess)
	r1 := g.AddNode(rag.KindResource)
	g.AddEdge(p0.ID, r0.ID)
	g.AddEdge(r0.ID, p1.ID)
	g.AddEdge(p1.ID, r1.ID)
	g.AddEdge(r1.ID, p0.ID)

	var buf bytes.Buffer
	New(&buf, false).Graph(g)
	out := buf.String()

	assert.Contains(t, out, "n1 (P0)")
	assert.Contains(t, out, "request")
	assert.Contains(t, out, "assignment")
	assert.Contains(t, out, "DEADLOCK 1 cycle(s):")
	assert.Contains(t, out, "n1 → n2 → n3 → n4 → n1")

	g.RemoveEdge(r1.ID, p0.ID)
	buf.Reset()
	New(&buf, false).Graph(g)
	assert.Contains(t, buf.String(), "No deadlock cycle.")
}

func TestPrinter_Scores(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Scores(nil)
	assert.Contains(t, buf.String(), "No high scores yet.")

	b := scores.NewBoard()
	b.Record(800, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	buf.Reset()
	New(&buf, false).Scores(b.Entries())
	assert.Contains(t, buf.String(), "800")
	assert.Contains(t, buf.String(), "2024-05-01")
}

func TestSequence(t *testing.T) {
	assert.Equal(t, "-", sequence(nil))
	assert.Equal(t, "P2", sequence([]int{2}))
}
