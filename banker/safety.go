// SPDX-License-Identifier: MIT
// Package banker: need derivation and the safety algorithm.
//
// Determinism:
//   - FindSafeSequence restarts its scan from index 0 after every success,
//     so the lowest eligible process index always finishes first.
//   - No function here mutates its arguments.

package banker

import "fmt"

// ComputeNeed returns Need = Max − Allocation elementwise.
//
// Contract:
//   - max and allocation must have the same P×R shape; a mismatch panics
//     with an index error (programming error, not a runtime condition).
//
// Complexity: O(P·R) time and memory.
func ComputeNeed(max, allocation Matrix) Matrix {
	need := make(Matrix, len(max))
	for i, maxRow := range max {
		need[i] = make([]int, len(maxRow))
		for j, mx := range maxRow {
			need[i][j] = mx - allocation[i][j] // remaining demand
		}
	}

	return need
}

// FindSafeSequence runs the Banker's safety algorithm.
//
// Steps:
//  1. work := copy(available); finished[i] = false for all i.
//  2. Scan i = 0..P-1; the first unfinished i with need[i] <= work is
//     eligible: work += allocation[i], finished[i] = true, append i,
//     and restart the scan from i = 0.
//  3. Stop when a full pass finds no eligible process.
//  4. Safe iff every process finished.
//
// When the state is unsafe the partial sequence is returned as-is.
//
// Complexity: O(P²·R) time, O(P+R) memory.
func FindSafeSequence(allocation, need Matrix, available Vector) SafetyResult {
	// 1) Scratch state; inputs stay untouched.
	work := available.Clone()
	finished := make([]bool, len(allocation))
	sequence := make([]int, 0, len(allocation))

	// 2) Each outer iteration schedules at most one process.
	for len(sequence) < len(allocation) {
		i := firstEligible(need, work, finished)
		if i < 0 {
			break // full pass without progress
		}
		work.AddInPlace(allocation[i]) // process finishes and releases its holdings
		finished[i] = true
		sequence = append(sequence, i)
	}

	return SafetyResult{
		Safe:     len(sequence) == len(allocation),
		Sequence: sequence,
	}
}

// firstEligible returns the lowest unfinished index whose need fits in work,
// or -1 when none does.
func firstEligible(need Matrix, work Vector, finished []bool) int {
	for i := range need {
		if !finished[i] && Vector(need[i]).LessEq(work) {
			return i
		}
	}

	return -1
}

// IsSafe derives Need from max and allocation and runs FindSafeSequence.
// Complexity: O(P²·R).
func IsSafe(max, allocation Matrix, available Vector) SafetyResult {
	return FindSafeSequence(allocation, ComputeNeed(max, allocation), available)
}

// Replay executes sequence in order starting from available, returning the
// final work vector. Each scheduled process must satisfy need[i] <= work at
// the moment it runs; otherwise ErrSequenceViolation is returned (wrapped
// with the offending step). Out-of-range or repeated indices are rejected
// with ErrBadShape.
//
// Complexity: O(len(sequence)·R).
func Replay(allocation, need Matrix, available Vector, sequence []int) (Vector, error) {
	work := available.Clone()
	seen := make([]bool, len(allocation))
	for step, i := range sequence {
		if i < 0 || i >= len(allocation) || seen[i] {
			return nil, fmt.Errorf("Replay: step %d process %d: %w", step, i, ErrBadShape)
		}
		if !Vector(need[i]).LessEq(work) {
			return nil, fmt.Errorf("Replay: step %d process %d: %w", step, i, ErrSequenceViolation)
		}
		work.AddInPlace(allocation[i])
		seen[i] = true
	}

	return work, nil
}
