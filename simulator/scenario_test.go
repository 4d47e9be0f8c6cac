package simulator_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdeadlock/banker"
	"github.com/katalvlaran/lvdeadlock/simulator"
)

const catalogYAML = `
levels:
  - level: 1
    description: two processes
    max:        [[7, 5, 3], [3, 2, 2]]
    allocation: [[0, 1, 0], [2, 0, 0]]
    available:  [5, 4, 3]
  - level: 3
    max:        [[2]]
    allocation: [[1]]
    available:  [1]
`

func TestLoadCatalog(t *testing.T) {
	c, err := simulator.LoadCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, c.Levels())
	assert.Equal(t, "two processes", c[1].Description)
	assert.Equal(t, banker.Vector{5, 4, 3}, c[1].Available)
	assert.Equal(t, 1, c[3].Processes())
	assert.Equal(t, 1, c[3].Resources())
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"zero level", "levels:\n  - level: 0\n    max: [[1]]\n    allocation: [[0]]\n    available: [1]\n", simulator.ErrBadLevel},
		{"duplicate", "levels:\n  - {level: 1, max: [[1]], allocation: [[0]], available: [1]}\n  - {level: 1, max: [[1]], allocation: [[0]], available: [1]}\n", simulator.ErrBadLevel},
		{"shape", "levels:\n  - {level: 1, max: [[1, 1]], allocation: [[0]], available: [1]}\n", banker.ErrBadShape},
		{"negative", "levels:\n  - {level: 1, max: [[1]], allocation: [[0]], available: [-1]}\n", banker.ErrNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := simulator.LoadCatalog(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := simulator.LoadCatalog(strings.NewReader("levels:\n  - {level: 1, bogus: 2}\n"))
	assert.Error(t, err, "unknown fields are rejected")
}

func TestWriteCatalog_ReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, simulator.WriteCatalog(&buf, simulator.DefaultCatalog()))

	back, err := simulator.LoadCatalog(&buf)
	require.NoError(t, err)
	assert.Equal(t, simulator.DefaultCatalog(), back)
}

func TestLoadScenario(t *testing.T) {
	doc := "max: [[3, 2, 2]]\nallocation: [[2, 0, 0]]\navailable: [1, 2, 2]\n"
	s, err := simulator.LoadScenario(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, s.Safety().Safe)

	_, err = simulator.LoadScenario(strings.NewReader("max: [[1]]\nallocation: [[2]]\navailable: [0]\n"))
	assert.ErrorIs(t, err, banker.ErrAllocationExceedsMax)
}

func TestDefaultCatalog_Safety(t *testing.T) {
	c := simulator.DefaultCatalog()
	assert.Equal(t, banker.SafetyResult{Safe: true, Sequence: []int{1, 0}}, c[1].Safety())
	assert.Equal(t, banker.SafetyResult{Safe: true, Sequence: []int{1, 3, 0, 2}}, c[2].Safety())

	// Cloning detaches the matrices.
	cp := c.Clone()
	cp[1].Max[0][0] = 0
	assert.Equal(t, 7, c[1].Max[0][0])
}

func TestGenerateScenario_Ranges(t *testing.T) {
	s := simulator.DefaultSettings()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		sc := simulator.GenerateScenario(rng, s, 5, 3)
		require.NoError(t, sc.Validate())
		require.Equal(t, 5, sc.Processes())
		require.Equal(t, 3, sc.Resources())
		for i := range sc.Max {
			for j := range sc.Max[i] {
				require.GreaterOrEqual(t, sc.Max[i][j], 1)
				require.LessOrEqual(t, sc.Max[i][j], s.MaxDemand)
				require.LessOrEqual(t, sc.Allocation[i][j], sc.Max[i][j])
			}
		}
	}
}

func TestGenerateScenario_Deterministic(t *testing.T) {
	s := simulator.DefaultSettings()
	a := simulator.GenerateScenario(rand.New(rand.NewSource(7)), s, 4, 3)
	b := simulator.GenerateScenario(rand.New(rand.NewSource(7)), s, 4, 3)
	assert.Equal(t, a, b)
}

func TestTrim(t *testing.T) {
	sc := simulator.Scenario{
		Max:        banker.Matrix{{2}, {2}},
		Allocation: banker.Matrix{{1}, {1}},
		Available:  banker.Vector{0},
	}
	rounds, safe := simulator.Trim(&sc, 10)
	assert.True(t, safe)
	assert.Equal(t, 1, rounds)
	assert.Equal(t, banker.Vector{2}, sc.Available)

	// P0's max exceeds total supply: trimming drains allocation and gives up.
	sc = unsafeTwoProcess()
	rounds, safe = simulator.Trim(&sc, 10)
	assert.False(t, safe)
	assert.Equal(t, 2, rounds)
	assert.Equal(t, banker.Vector{5, 4, 2}, sc.Available)

	sc = unsafeTwoProcess()
	rounds, safe = simulator.Trim(&sc, 0)
	assert.False(t, safe)
	assert.Zero(t, rounds)
}
