// SPDX-License-Identifier: MIT

// Package banker implements the Banker's Algorithm safety check over
// integer allocation, need and available matrices.
//
// What:
//
//   - ComputeNeed: Need = Max − Allocation, elementwise.
//   - FindSafeSequence: classical safety algorithm with a deterministic
//     "restart from the top, lowest index first" scan.
//   - IsSafe: convenience wrapper deriving Need first.
//   - Replay: re-executes a sequence and reports the final work vector.
//   - ValidateState: shape and range checks for scenarios that come from
//     outside the program (catalog files, CLI input).
//
// Why:
//
//   - A state is safe when some execution order lets every process obtain
//     its remaining need and finish; the Banker's Algorithm refuses any
//     transition that leaves the system without such an order.
//
// Errors:
//
//   - ErrBadShape              empty, ragged or mismatched matrices/vectors
//   - ErrNegative              negative cell in Max, Allocation or Available
//   - ErrAllocationExceedsMax  Allocation[i][j] > Max[i][j]
//   - ErrSequenceViolation     Replay scheduled a process whose need exceeds work
//
// ComputeNeed and FindSafeSequence are pure and never fail: callers must
// ensure dimensions agree (mismatched shapes are a programming error and
// panic with an index error). Use ValidateState at the boundary.
//
// Complexity:
//
//   - ComputeNeed:      O(P·R)
//   - FindSafeSequence: O(P²·R) time, O(P+R) extra memory
//
// Example:
//
//	max := banker.Matrix{{7, 5, 3}, {3, 2, 2}}
//	alloc := banker.Matrix{{0, 1, 0}, {2, 0, 0}}
//	res := banker.FindSafeSequence(alloc, banker.ComputeNeed(max, alloc), banker.Vector{5, 4, 3})
//	// res.Safe == true, res.Sequence == [1 0]
package banker
