// SPDX-License-Identifier: MIT
// Package matrix — sparse vectors.
//
// Vector keeps its nonzero positions sorted ascending so iteration order is
// deterministic and lookups are O(log nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Vector is a sparse vector of fixed length.
type Vector struct {
	n       int       // logical length
	indices []int     // ascending positions
	values  []float64 // aligned with indices
}

// NewVector returns an all-zero sparse vector of length n.
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, matrixErrorf("NewVector", ErrBadShape)
	}

	return &Vector{n: n}, nil
}

// Len returns the logical length.
func (v *Vector) Len() int { return v.n }

// NNZ returns the number of stored entries.
func (v *Vector) NNZ() int { return len(v.indices) }

// Indices returns the stored positions (ascending, read-only alias).
func (v *Vector) Indices() []int { return v.indices }

// Set stores val at position i, overwriting any previous value (coeffRef semantics).
// Errors: ErrOutOfRange, ErrNaNInf.
// Complexity: O(log nnz) lookup, O(nnz) on out-of-order insertion.
func (v *Vector) Set(i int, val float64) error {
	if i < 0 || i >= v.n {
		return matrixErrorf(opVectorSet, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return matrixErrorf(opVectorSet, fmt.Errorf("%d: %w", i, ErrNaNInf))
	}
	k := sort.SearchInts(v.indices, i)
	if k < len(v.indices) && v.indices[k] == i {
		v.values[k] = val
		return nil
	}
	// Insert keeping ascending order; appends are the common (sorted) path.
	v.indices = append(v.indices, 0)
	v.values = append(v.values, 0)
	copy(v.indices[k+1:], v.indices[k:])
	copy(v.values[k+1:], v.values[k:])
	v.indices[k] = i
	v.values[k] = val

	return nil
}

// At returns the value at position i (0 when not stored).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.n {
		return 0, matrixErrorf(opVectorAt, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	k := sort.SearchInts(v.indices, i)
	if k < len(v.indices) && v.indices[k] == i {
		return v.values[k], nil
	}

	return 0, nil
}

// Do calls fn for each stored entry in ascending position order.
func (v *Vector) Do(fn func(i int, val float64)) {
	for k, i := range v.indices {
		fn(i, v.values[k])
	}
}

// Dense returns a freshly allocated dense copy.
// Complexity: O(n).
func (v *Vector) Dense() []float64 {
	out := make([]float64, v.n)
	for k, i := range v.indices {
		out[i] = v.values[k]
	}

	return out
}

// MulDiagonal returns y = d ⊙ v as a dense slice, where d is the diagonal of m.
// It is the product of a diagonal matrix with a sparse vector and touches
// only the stored positions of v.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(nnz(m) + n).
func MulDiagonal(m *CSR, v *Vector) ([]float64, error) {
	if m == nil || v == nil {
		return nil, matrixErrorf(opDiagonal, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opDiagonal, ErrNonSquare)
	}
	if v.n != m.r {
		return nil, matrixErrorf(opDiagonal, ErrDimensionMismatch)
	}
	d := m.Diagonal()
	y := make([]float64, v.n)
	for k, i := range v.indices {
		y[i] = d[i] * v.values[k]
	}

	return y, nil
}
