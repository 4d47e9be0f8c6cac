// SPDX-License-Identifier: MIT
// Package: banker
//
// Purpose:
//  - Single source of truth for the checks a scenario must pass before the
//    pure algorithms may run on it.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match with errors.Is and still log where the check failed.
//
// Validation order (fixed): shape → negatives → allocation <= max.

package banker

import "fmt"

// validatorErrorf wraps err with the validator tag and the offending cell.
func validatorErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, i, j, err)
}

// ValidateShape ensures max and allocation are non-empty P×R matrices with
// equal, rectangular shapes and that available has length R.
// Complexity: O(P).
func ValidateShape(max, allocation Matrix, available Vector) error {
	p, r := max.Rows(), max.Cols()
	if p == 0 || r == 0 {
		return fmt.Errorf("ValidateShape: empty max: %w", ErrBadShape)
	}
	if allocation.Rows() != p {
		return fmt.Errorf("ValidateShape: allocation has %d rows, want %d: %w", allocation.Rows(), p, ErrBadShape)
	}
	if len(available) != r {
		return fmt.Errorf("ValidateShape: available has %d entries, want %d: %w", len(available), r, ErrBadShape)
	}
	for i := 0; i < p; i++ {
		if len(max[i]) != r {
			return validatorErrorf("ValidateShape: max row", i, len(max[i]), ErrBadShape)
		}
		if len(allocation[i]) != r {
			return validatorErrorf("ValidateShape: allocation row", i, len(allocation[i]), ErrBadShape)
		}
	}

	return nil
}

// ValidateState runs ValidateShape, then rejects negative counts and any
// allocation above the declared maximum.
// Complexity: O(P·R).
func ValidateState(max, allocation Matrix, available Vector) error {
	if err := ValidateShape(max, allocation, available); err != nil {
		return err
	}
	for j, v := range available {
		if v < 0 {
			return validatorErrorf("ValidateState: available", 0, j, ErrNegative)
		}
	}
	for i := range max {
		for j := range max[i] {
			switch {
			case max[i][j] < 0:
				return validatorErrorf("ValidateState: max", i, j, ErrNegative)
			case allocation[i][j] < 0:
				return validatorErrorf("ValidateState: allocation", i, j, ErrNegative)
			case allocation[i][j] > max[i][j]:
				return validatorErrorf("ValidateState: allocation", i, j, ErrAllocationExceedsMax)
			}
		}
	}

	return nil
}
