// SPDX-License-Identifier: MIT
// Package banker: matrix and vector value types.
//
// Matrix is row-major [process][resource]; Vector is indexed by resource.
// Both are plain slices so they can be built with composite literals and
// serialised without adapters. Helpers below never alias their inputs.

package banker

import "errors"

// Sentinel errors for the banker package. Match them with errors.Is.
var (
	// ErrBadShape indicates an empty, ragged or mismatched matrix/vector.
	ErrBadShape = errors.New("banker: invalid shape")

	// ErrNegative indicates a negative instance count.
	ErrNegative = errors.New("banker: negative value")

	// ErrAllocationExceedsMax indicates Allocation[i][j] > Max[i][j].
	ErrAllocationExceedsMax = errors.New("banker: allocation exceeds maximum demand")

	// ErrSequenceViolation indicates that Replay scheduled a process
	// whose need exceeded the running work vector.
	ErrSequenceViolation = errors.New("banker: sequence violates need <= work")
)

// Matrix is a P×R grid of non-negative instance counts.
type Matrix [][]int

// Vector is a length-R row of instance counts.
type Vector []int

// SafetyResult is the outcome of FindSafeSequence.
//
// Safe reports whether every process could finish. Sequence is the order
// in which processes finished during the scan; when Safe is false it holds
// the partial order reached before the scan stalled.
type SafetyResult struct {
	Safe     bool
	Sequence []int
}

// NewMatrix returns a zero-filled rows×cols matrix.
// Complexity: O(rows·cols).
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}

	return m
}

// Rows returns the number of process rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of resource columns (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Clone returns a deep copy. A nil matrix clones to nil.
// Complexity: O(P·R).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...) // copy row storage
	}

	return out
}

// Row returns a copy of row i as a Vector.
func (m Matrix) Row(i int) Vector {
	return append(Vector(nil), m[i]...)
}

// ColumnSum returns Σ_i m[i][j].
// Complexity: O(P).
func (m Matrix) ColumnSum(j int) int {
	var s int
	for i := range m {
		s += m[i][j]
	}

	return s
}

// Equal reports whether m and o have identical shape and values.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if !Vector(m[i]).Equal(o[i]) {
			return false
		}
	}

	return true
}

// Clone returns a copy of v. A nil vector clones to nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}

	return append(Vector(nil), v...)
}

// Equal reports whether v and o have identical length and values.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for j := range v {
		if v[j] != o[j] {
			return false
		}
	}

	return true
}

// LessEq reports whether v[j] <= o[j] for every j. Lengths must match.
func (v Vector) LessEq(o Vector) bool {
	for j := range v {
		if v[j] > o[j] {
			return false
		}
	}

	return true
}

// AddInPlace adds o into v elementwise.
func (v Vector) AddInPlace(o Vector) {
	for j := range v {
		v[j] += o[j]
	}
}

// SubInPlace subtracts o from v elementwise.
func (v Vector) SubInPlace(o Vector) {
	for j := range v {
		v[j] -= o[j]
	}
}

// Totals returns available[j] + Σ_i allocation[i][j] for each resource,
// i.e. the implicit total supply of the system.
// Complexity: O(P·R).
func Totals(allocation Matrix, available Vector) Vector {
	out := available.Clone()
	for j := range out {
		out[j] += allocation.ColumnSum(j)
	}

	return out
}
