// SPDX-License-Identifier: MIT
// Package: solver
//
// ldlt.go — simplicial LDLᵀ factorization (Direct).
//
// Pipeline:
//   1. Order: reverse Cuthill–McKee over the pattern of A (bfs package),
//      then B = P·A·Pᵀ.
//   2. Symbolic: elimination tree and column counts of L from the lower
//      triangle of B.
//   3. Numeric: up-looking factorization; row k of L is found by a sparse
//      triangular solve restricted to the elimination-tree reach of row k.
//   4. Solve: L·y = P·b, z = D⁻¹·y, Lᵀ·w = z, x = Pᵀ·w.
//
// Pivot policy: a pivot d_k with |d_k| ≤ PivotTolerance·Σ_j|B_kj| (its own
// row, so penalty rows do not raise the bar for Laplacian rows), or a
// non-finite one, is recorded as NumericalIssue and treated as exactly zero:
// its column of L is dropped and z_k = 0. The result is a pseudo-solution
// that stays finite (e.g. an unconstrained Laplacian gives x = 0).
//
// Complexity: O(Σ |L_k|²) numeric work where L_k is column k of L;
// O(nnz(L)) memory. RCM keeps nnz(L) within the profile of B.

package solver

import (
	"context"
	"math"

	"github.com/katalvlaran/harmonic/bfs"
	"github.com/katalvlaran/harmonic/matrix"
)

// ctxCheckEvery is how many columns are factored between context checks.
const ctxCheckEvery = 1024

// LDLT is the Direct strategy.
type LDLT struct {
	opts Options
}

// Method returns Direct.
func (s *LDLT) Method() Method { return Direct }

// factor holds L (column-compressed, strictly lower), D and the ordering.
type factor struct {
	n      int
	perm   []int // perm[k] = original index at position k
	lp     []int // column pointers of L
	li     []int // row indices of L
	lx     []float64
	d      []float64
	singul []bool // pivots treated as zero
}

// Solve factors A and solves A·x = b.
func (s *LDLT) Solve(ctx context.Context, A *matrix.CSR, b []float64) (*Result, error) {
	if err := validate(A, b); err != nil {
		return &Result{Status: InvalidInput, Method: Direct}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, issue, err := s.factorize(ctx, A)
	if err != nil {
		return nil, err
	}
	x := f.solve(b)

	res := &Result{X: x, Status: Success, Method: Direct}
	if issue {
		res.Status = NumericalIssue
	}
	res.Residual = relativeResidual(A, x, b)

	return res, nil
}

// factorize runs ordering, symbolic and numeric phases.
// issue reports whether any pivot was treated as zero.
func (s *LDLT) factorize(ctx context.Context, A *matrix.CSR) (*factor, bool, error) {
	n := A.Rows()
	perm, err := bfs.ReverseCuthillMcKee(ctx, A)
	if err != nil {
		return nil, false, err
	}
	B, err := A.Permute(perm)
	if err != nil {
		return nil, false, err
	}

	f := &factor{n: n, perm: perm}
	parent, lnz := etree(B)
	f.lp = make([]int, n+1)
	for k := 0; k < n; k++ {
		f.lp[k+1] = f.lp[k] + lnz[k]
	}
	f.li = make([]int, f.lp[n])
	f.lx = make([]float64, f.lp[n])
	f.d = make([]float64, n)
	f.singul = make([]bool, n)

	var (
		y       = make([]float64, n)
		pattern = make([]int, n)
		flag    = make([]int, n)
		fill    = make([]int, n) // entries already stored in column i
		issue   bool
	)
	for k := 0; k < n; k++ {
		if k%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, false, err
			}
		}

		// Scatter row k of the lower triangle into y and collect the
		// elimination-tree reach in topological order (pattern[top:]).
		top := n
		flag[k] = k
		cols, vals := B.Row(k)
		scale := 0.0
		for p, i := range cols {
			scale += math.Abs(vals[p])
			if i > k {
				continue
			}
			y[i] += vals[p]
			depth := 0
			for ; flag[i] != k; i = parent[i] {
				pattern[depth] = i
				depth++
				flag[i] = k
			}
			for depth > 0 {
				top--
				depth--
				pattern[top] = pattern[depth]
			}
		}

		// Sparse triangular solve for row k of L, and the pivot d_k.
		dk := y[k]
		y[k] = 0
		for ; top < n; top++ {
			i := pattern[top]
			yi := y[i]
			y[i] = 0
			end := f.lp[i] + fill[i]
			for p := f.lp[i]; p < end; p++ {
				y[f.li[p]] -= f.lx[p] * yi
			}
			lki := 0.0
			if !f.singul[i] {
				lki = yi / f.d[i]
			}
			dk -= lki * yi
			f.li[end] = k
			f.lx[end] = lki
			fill[i]++
		}
		if math.Abs(dk) <= s.opts.PivotTolerance*scale || math.IsNaN(dk) || math.IsInf(dk, 0) {
			f.singul[k] = true
			issue = true
			dk = 0
		}
		f.d[k] = dk
	}

	return f, issue, nil
}

// etree computes the elimination tree of the symmetric matrix B (parent[k]
// = -1 for roots) and the number of off-diagonal entries in each column of L.
func etree(B *matrix.CSR) (parent, lnz []int) {
	n := B.Rows()
	parent = make([]int, n)
	lnz = make([]int, n)
	flag := make([]int, n)
	for k := 0; k < n; k++ {
		parent[k] = -1
		flag[k] = k
		for _, i := range B.Neighbors(k) {
			if i >= k {
				continue
			}
			for ; flag[i] != k; i = parent[i] {
				if parent[i] == -1 {
					parent[i] = k
				}
				lnz[i]++
				flag[i] = k
			}
		}
	}

	return parent, lnz
}

// solve applies the factorization to b (original ordering) and returns x.
func (f *factor) solve(b []float64) []float64 {
	n := f.n
	w := make([]float64, n)
	for k, old := range f.perm {
		w[k] = b[old]
	}
	// L·y = w (unit lower, column-oriented).
	for j := 0; j < n; j++ {
		for p := f.lp[j]; p < f.lp[j+1]; p++ {
			w[f.li[p]] -= f.lx[p] * w[j]
		}
	}
	// D·z = y, zero pivots give z = 0.
	for j := 0; j < n; j++ {
		if f.singul[j] {
			w[j] = 0
			continue
		}
		w[j] /= f.d[j]
	}
	// Lᵀ·x = z.
	for j := n - 1; j >= 0; j-- {
		for p := f.lp[j]; p < f.lp[j+1]; p++ {
			w[j] -= f.lx[p] * w[f.li[p]]
		}
	}

	x := make([]float64, n)
	for k, old := range f.perm {
		x[old] = w[k]
	}

	return x
}
