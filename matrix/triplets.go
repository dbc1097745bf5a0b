// SPDX-License-Identifier: MIT
// Package matrix — coordinate-format (COO) assembly.
//
// Purpose:
//   - Collect (row, col, value) entries in any order, duplicates allowed.
//   - Compress them into CSR with duplicates summed (assembly semantics).
//
// Determinism:
//   - ToCSR is a stable counting sort by row followed by an ordered merge by
//     column; the same Append sequence always yields bitwise-identical CSR.
//
// AI-Hints:
//   - Reserve the expected entry count up front; Laplacian assembly emits
//     exactly 4 entries per edge.
//   - Duplicates are summed, so per-edge contributions can be appended
//     blindly and the diagonal accumulates for free.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Triplets is a growable coordinate-format sparse matrix builder.
type Triplets struct {
	r, c int       // shape
	data []Triplet // entries in append order
	opts Options   // numeric policy captured at creation
}

// NewTriplets returns an empty rows×cols builder.
// Zero-sized shapes are legal (empty meshes); negative ones return ErrBadShape.
// Complexity: O(1).
func NewTriplets(rows, cols int, opts ...Option) (*Triplets, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewTriplets", ErrBadShape)
	}

	return &Triplets{r: rows, c: cols, opts: gatherOptions(opts...)}, nil
}

// Rows returns the number of rows.
func (t *Triplets) Rows() int { return t.r }

// Cols returns the number of columns.
func (t *Triplets) Cols() int { return t.c }

// Len returns the number of appended entries (duplicates included).
func (t *Triplets) Len() int { return len(t.data) }

// Reserve grows the internal buffer to hold at least n more entries.
func (t *Triplets) Reserve(n int) {
	if n <= 0 {
		return
	}
	if cap(t.data)-len(t.data) < n {
		grown := make([]Triplet, len(t.data), len(t.data)+n)
		copy(grown, t.data)
		t.data = grown
	}
}

// Append records v at (i, j). Entries at the same position are summed by ToCSR.
// Errors: ErrOutOfRange for bad indices, ErrNaNInf for non-finite v under the
// default numeric policy.
// Complexity: amortized O(1).
func (t *Triplets) Append(i, j int, v float64) error {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return matrixErrorf(opAppend, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	if t.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return matrixErrorf(opAppend, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
	}
	t.data = append(t.data, Triplet{Row: i, Col: j, Val: v})

	return nil
}

// ToCSR compresses the collected entries into a CSR matrix.
// Implementation:
//   - Stage 1: count entries per row, prefix-sum into row pointers.
//   - Stage 2: scatter entries into row buckets (stable).
//   - Stage 3: per row, sort by column and sum duplicates in place.
//
// Complexity: O(nnz log(maxRowNNZ)) time, O(nnz + rows) space.
func (t *Triplets) ToCSR() *CSR {
	counts := make([]int, t.r+1)
	for _, e := range t.data {
		counts[e.Row+1]++
	}
	for i := 0; i < t.r; i++ {
		counts[i+1] += counts[i]
	}

	// Scatter into row buckets preserving append order inside each row.
	next := make([]int, t.r)
	copy(next, counts[:t.r])
	cols := make([]int, len(t.data))
	vals := make([]float64, len(t.data))
	var pos int
	for _, e := range t.data {
		pos = next[e.Row]
		cols[pos] = e.Col
		vals[pos] = e.Val
		next[e.Row]++
	}

	// Sort each row by column and merge duplicates.
	indptr := make([]int, t.r+1)
	indices := make([]int, 0, len(t.data))
	data := make([]float64, 0, len(t.data))
	for i := 0; i < t.r; i++ {
		lo, hi := counts[i], counts[i+1]
		sort.Stable(rowSorter{cols: cols[lo:hi], vals: vals[lo:hi]})
		for k := lo; k < hi; k++ {
			last := len(indices) - 1
			if last >= indptr[i] && indices[last] == cols[k] {
				data[last] += vals[k] // duplicate (i,j): sum
				continue
			}
			indices = append(indices, cols[k])
			data = append(data, vals[k])
		}
		if t.opts.dropZeros {
			indices, data = dropRowZeros(indices, data, indptr[i])
		}
		indptr[i+1] = len(indices)
	}

	return &CSR{r: t.r, c: t.c, indptr: indptr, indices: indices, data: data}
}

// dropRowZeros compacts exact zeros out of the row that starts at from.
func dropRowZeros(indices []int, data []float64, from int) ([]int, []float64) {
	w := from
	for k := from; k < len(indices); k++ {
		if data[k] == 0 {
			continue
		}
		indices[w] = indices[k]
		data[w] = data[k]
		w++
	}

	return indices[:w], data[:w]
}

// rowSorter sorts a row's column indices and drags the values along.
type rowSorter struct {
	cols []int
	vals []float64
}

func (s rowSorter) Len() int           { return len(s.cols) }
func (s rowSorter) Less(a, b int) bool { return s.cols[a] < s.cols[b] }
func (s rowSorter) Swap(a, b int) {
	s.cols[a], s.cols[b] = s.cols[b], s.cols[a]
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
}
