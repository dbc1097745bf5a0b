// SPDX-License-Identifier: MIT
// Package matrix — compressed sparse row storage.
//
// CSR is the canonical container handed to the Laplacian builder, the
// constraint assembler and both solvers. It is immutable after construction:
// every kernel allocates a fresh result and never writes into its operands,
// which makes a CSR safe to share across goroutines.

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// CSR is a compressed sparse row matrix of float64 values.
// Row i owns indices[indptr[i]:indptr[i+1]] (strictly ascending) and the
// matching data slice.
type CSR struct {
	r, c    int       // number of rows and columns
	indptr  []int     // len r+1, row offsets into indices/data
	indices []int     // column indices, ascending within a row
	data    []float64 // values aligned with indices
}

var _ Matrix = (*CSR)(nil)

// NewCSR returns an r×c matrix with no stored entries.
// Complexity: O(r).
func NewCSR(rows, cols int) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewCSR", ErrBadShape)
	}

	return &CSR{r: rows, c: cols, indptr: make([]int, rows+1)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *CSR) NNZ() int { return len(m.indices) }

// At returns the entry at (i, j); entries not stored read as 0.
// Complexity: O(log nnz(row i)).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrixErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], j)
	if k < hi && m.indices[k] == j {
		return m.data[k], nil
	}

	return 0, nil
}

// Row returns the column indices and values stored in row i.
// The slices alias internal storage and MUST be treated as read-only.
// Out-of-range rows return nil slices.
func (m *CSR) Row(i int) ([]int, []float64) {
	if i < 0 || i >= m.r {
		return nil, nil
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi], m.data[lo:hi]
}

// Neighbors returns the column pattern of row i (read-only alias).
// Together with Rows it lets a square CSR act as an adjacency structure
// for graph traversals (fill-reducing orderings).
func (m *CSR) Neighbors(i int) []int {
	cols, _ := m.Row(i)

	return cols
}

// Diagonal returns a fresh slice holding the main diagonal (zeros where absent).
// Complexity: O(nnz).
func (m *CSR) Diagonal() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	d := make([]float64, n)
	var i, k int
	for i = 0; i < n; i++ {
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			if m.indices[k] == i {
				d[i] = m.data[k]
				break
			}
		}
	}

	return d
}

// Do calls fn for each stored entry in row-major order until fn returns false.
func (m *CSR) Do(fn func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if !fn(i, m.indices[k], m.data[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy.
// Complexity: O(nnz + rows).
func (m *CSR) Clone() *CSR {
	out := &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  make([]int, len(m.indptr)),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	copy(out.indptr, m.indptr)
	copy(out.indices, m.indices)
	copy(out.data, m.data)

	return out
}

// Permute returns the symmetric permutation B = P·A·Pᵀ with
// B[i][j] = A[perm[i]][perm[j]]. perm must be a permutation of [0, n).
// Errors: ErrNonSquare, ErrDimensionMismatch (len(perm) != n), ErrOutOfRange
// (perm is not a permutation).
// Complexity: O(nnz log(maxRowNNZ)).
func (m *CSR) Permute(perm []int) (*CSR, error) {
	if m.r != m.c {
		return nil, matrixErrorf("Permute", ErrNonSquare)
	}
	if len(perm) != m.r {
		return nil, matrixErrorf("Permute", ErrDimensionMismatch)
	}
	inv := make([]int, m.r)
	for i := range inv {
		inv[i] = -1
	}
	for i, p := range perm {
		if p < 0 || p >= m.r || inv[p] != -1 {
			return nil, matrixErrorf("Permute", ErrOutOfRange)
		}
		inv[p] = i
	}

	out := &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  make([]int, m.r+1),
		indices: make([]int, 0, len(m.indices)),
		data:    make([]float64, 0, len(m.data)),
	}
	var lo, hi, k int
	for i, old := range perm {
		lo, hi = m.indptr[old], m.indptr[old+1]
		start := len(out.indices)
		for k = lo; k < hi; k++ {
			out.indices = append(out.indices, inv[m.indices[k]])
			out.data = append(out.data, m.data[k])
		}
		sort.Sort(rowSorter{cols: out.indices[start:], vals: out.data[start:]})
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// MulVecTo computes dst = m·x sequentially.
// Errors: ErrDimensionMismatch when len(x) != Cols or len(dst) != Rows.
// Complexity: O(nnz).
func (m *CSR) MulVecTo(dst, x []float64) error {
	if len(x) != m.c || len(dst) != m.r {
		return matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	m.mulRows(dst, x, 0, m.r)

	return nil
}

// mulRows computes dst[i] = (m·x)[i] for i in [from, to). No validation.
func (m *CSR) mulRows(dst, x []float64, from, to int) {
	var acc float64
	var i, k int
	for i = from; i < to; i++ {
		acc = 0
		for k = m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.data[k] * x[m.indices[k]]
		}
		dst[i] = acc
	}
}

// String implements fmt.Stringer for debugging small matrices (one row per line).
func (m *CSR) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if k > m.indptr[i] {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d:%g", m.indices[k], m.data[k])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
