// SPDX-License-Identifier: MIT
// Package matrix — sparse linear-algebra kernels.
//
// Purpose:
//   - Element-wise combination of CSR operands (Add, Sub) by ordered row merge.
//   - Scalar scaling and matrix–vector products (sequential and parallel).
//
// Determinism & Policy:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - ParMulVecTo splits rows into contiguous blocks; each dst[i] is written by
//     exactly one worker with the same accumulation order as MulVecTo, so the
//     parallel result is bitwise identical to the sequential one.

package matrix

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Add returns a + b for same-shaped CSR operands.
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *CSR) (*CSR, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b for same-shaped CSR operands.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *CSR) (*CSR, error) { return addSub(a, b, -1, opSub) }

// addSub merges the sorted rows of a and b computing a + sign*b.
// Positions present in either operand are kept even when the sum is zero,
// so the structural pattern is the union of both patterns.
func addSub(a, b *CSR, sign float64, tag string) (*CSR, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}

	out := &CSR{
		r:       a.r,
		c:       a.c,
		indptr:  make([]int, a.r+1),
		indices: make([]int, 0, len(a.indices)+len(b.indices)),
		data:    make([]float64, 0, len(a.data)+len(b.data)),
	}
	var ka, kb, ea, eb int
	for i := 0; i < a.r; i++ {
		ka, ea = a.indptr[i], a.indptr[i+1]
		kb, eb = b.indptr[i], b.indptr[i+1]
		for ka < ea || kb < eb {
			switch {
			case kb >= eb || (ka < ea && a.indices[ka] < b.indices[kb]):
				out.indices = append(out.indices, a.indices[ka])
				out.data = append(out.data, a.data[ka])
				ka++
			case ka >= ea || b.indices[kb] < a.indices[ka]:
				out.indices = append(out.indices, b.indices[kb])
				out.data = append(out.data, sign*b.data[kb])
				kb++
			default: // same column in both rows
				out.indices = append(out.indices, a.indices[ka])
				out.data = append(out.data, a.data[ka]+sign*b.data[kb])
				ka++
				kb++
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Scale returns alpha·m. alpha must be finite.
// Complexity: O(nnz).
func Scale(m *CSR, alpha float64) (*CSR, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out := m.Clone()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}

// MulVec returns y = m·x in a freshly allocated slice.
// Complexity: O(nnz).
func MulVec(m *CSR, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	y := make([]float64, m.r)
	if err := m.MulVecTo(y, x); err != nil {
		return nil, err
	}

	return y, nil
}

// ParMulVecTo computes dst = m·x, splitting rows across WithThreads workers.
// With one thread, or fewer rows than two blocks of WithMinRowsPerTask, it
// runs the sequential kernel inline without spawning goroutines.
//
// Contract: len(x) == Cols, len(dst) == Rows. ctx cancels pending blocks.
// Complexity: O(nnz) work, O(nnz/threads) span.
//
// AI-Hints:
//   - Resolve options once outside hot loops (e.g. CG iterations) and reuse them.
func ParMulVecTo(ctx context.Context, m *CSR, dst, x []float64, opts ...Option) error {
	if m == nil {
		return matrixErrorf(opParMulVec, ErrNilMatrix)
	}
	if len(x) != m.c || len(dst) != m.r {
		return matrixErrorf(opParMulVec, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.threads <= 1 || m.r < 2*o.minRows {
		m.mulRows(dst, x, 0, m.r)
		return nil
	}

	block := (m.r + o.threads - 1) / o.threads
	if block < o.minRows {
		block = o.minRows
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.threads)
	for from := 0; from < m.r; from += block {
		from, to := from, from+block
		if to > m.r {
			to = m.r
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m.mulRows(dst, x, from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return matrixErrorf(opParMulVec, err)
	}

	return nil
}
