// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for structural checks on Dense tables.
//  - Return plain sentinel errors wrapped with a validator tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-nil and has Rows() == Cols().
// Complexity: O(1).
func ValidateSquare[E Element](m *Dense[E]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// IsSymmetric reports whether m is square and m[i,j] == m[j,i] for all i<j.
// Exact comparison: norm tables hold exact values, no epsilon policy applies.
// Complexity: O(n²).
func IsSymmetric[E Element](m *Dense[E]) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}
