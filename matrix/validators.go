// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check walks each stored entry once and looks up its mirror.
//
// AI-Hints:
//  - Use ValidateSymmetric before handing an operator to LDLᵀ or CG.
//  - Use ValidateVecLen for any MulVec-like operation.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *CSR) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *CSR) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is accepted only when n == 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n != 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite reports ErrNaNInf when any stored entry of m is NaN or ±Inf.
// Complexity: O(nnz).
func ValidateFinite(m *CSR) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ tol for every stored entry.
// Entries missing on one side are compared against an implicit zero.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(nnz · log(maxRowNNZ)).
func ValidateSymmetric(m *CSR, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var mirror float64
	var i, k, j int
	for i = 0; i < m.r; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			j = m.indices[k]
			if j == i {
				continue
			}
			mirror, _ = m.At(j, i) // indices are in range by construction
			if math.Abs(m.data[k]-mirror) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}
