package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical_DirectionAndStartAgree(t *testing.T) {
	want := []string{"A", "B", "C", "D", "A"}
	for _, closed := range [][]string{
		{"A", "B", "C", "D", "A"},
		{"C", "D", "A", "B", "C"},
		{"A", "D", "C", "B", "A"},
		{"D", "C", "B", "A", "D"},
	} {
		sig, out := canonical(closed)
		assert.Equal(t, "A,B,C,D,A", sig, "from %v", closed)
		assert.Equal(t, want, out, "from %v", closed)
	}
}

func TestCanonical_LeavesInputAlone(t *testing.T) {
	in := []string{"C", "B", "A", "C"}
	_, out := canonical(in)
	assert.Equal(t, []string{"C", "B", "A", "C"}, in)
	assert.Equal(t, []string{"A", "B", "C", "A"}, out)
}
