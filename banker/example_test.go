package banker_test

import (
	"fmt"

	"github.com/katalvlaran/lvdeadlock/banker"
)

// ExampleFindSafeSequence runs the safety algorithm on a two-process,
// three-resource state where P1 must finish before P0 can.
func ExampleFindSafeSequence() {
	max := banker.Matrix{{7, 5, 3}, {3, 2, 2}}
	alloc := banker.Matrix{{0, 1, 0}, {2, 0, 0}}
	need := banker.ComputeNeed(max, alloc)

	res := banker.FindSafeSequence(alloc, need, banker.Vector{5, 4, 3})
	fmt.Println("need:", need)
	fmt.Println("safe:", res.Safe, "sequence:", res.Sequence)

	// Output:
	// need: [[7 4 3] [1 2 2]]
	// safe: true sequence: [1 0]
}
