package banker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvdeadlock/banker"
)

func TestValidateState(t *testing.T) {
	tests := []struct {
		name  string
		max   banker.Matrix
		alloc banker.Matrix
		avail banker.Vector
		want  error
	}{
		{"valid", banker.Matrix{{1, 2}}, banker.Matrix{{0, 2}}, banker.Vector{1, 1}, nil},
		{"empty", banker.Matrix{}, banker.Matrix{}, banker.Vector{}, banker.ErrBadShape},
		{"row mismatch", banker.Matrix{{1}, {1}}, banker.Matrix{{0}}, banker.Vector{1}, banker.ErrBadShape},
		{"ragged max", banker.Matrix{{1, 1}, {1}}, banker.Matrix{{0, 0}, {0, 0}}, banker.Vector{1, 1}, banker.ErrBadShape},
		{"ragged alloc", banker.Matrix{{1, 1}}, banker.Matrix{{0}}, banker.Vector{1, 1}, banker.ErrBadShape},
		{"available length", banker.Matrix{{1, 1}}, banker.Matrix{{0, 0}}, banker.Vector{1}, banker.ErrBadShape},
		{"negative available", banker.Matrix{{1}}, banker.Matrix{{0}}, banker.Vector{-1}, banker.ErrNegative},
		{"negative max", banker.Matrix{{-1}}, banker.Matrix{{-2}}, banker.Vector{0}, banker.ErrNegative},
		{"negative alloc", banker.Matrix{{1}}, banker.Matrix{{-1}}, banker.Vector{0}, banker.ErrNegative},
		{"alloc over max", banker.Matrix{{1}}, banker.Matrix{{2}}, banker.Vector{0}, banker.ErrAllocationExceedsMax},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := banker.ValidateState(tc.max, tc.alloc, tc.avail)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMatrixHelpers(t *testing.T) {
	m := banker.Matrix{{1, 2}, {3, 4}}
	c := m.Clone()
	c[0][0] = 9

	assert.Equal(t, 1, m[0][0], "Clone must not alias rows")
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 6, m.ColumnSum(1))
	assert.Equal(t, banker.Vector{3, 4}, m.Row(1))
	assert.True(t, m.Equal(banker.Matrix{{1, 2}, {3, 4}}))
	assert.False(t, m.Equal(c))
	assert.Nil(t, banker.Matrix(nil).Clone())
	assert.Equal(t, banker.Vector{5, 8}, banker.Totals(m, banker.Vector{1, 2}))

	v := banker.Vector{1, 1}
	v.AddInPlace(banker.Vector{2, 3})
	assert.Equal(t, banker.Vector{3, 4}, v)
	v.SubInPlace(banker.Vector{3, 4})
	assert.Equal(t, banker.Vector{0, 0}, v)
	assert.True(t, v.LessEq(banker.Vector{0, 1}))
	assert.False(t, banker.Vector{2, 0}.LessEq(banker.Vector{1, 5}))
}
