// SPDX-License-Identifier: MIT
// Package field writes solver output into caller-owned per-vertex buffers.
//
// The harmonic system is solved in the negative-definite form (L − P)·x = P·c,
// so the field is the negated solution: out[i] = −x[i].
package field

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Scalar is the set of field value types.
type Scalar interface {
	~float32 | ~float64
}

// minChunk is the smallest slice a worker receives.
const minChunk = 4096

// Materialize stores −x[i] into out[i] for every i, splitting the range into
// at most threads chunks. Chunks are disjoint, so workers never share a slot;
// Materialize returns after every chunk is written.
//
// threads < 1 is treated as 1. A cancelled ctx stops chunks that have not
// started; out may then be partially written.
// Errors: ErrLengthMismatch, ctx.Err().
func Materialize[T Scalar](ctx context.Context, x []float64, out []T, threads int) error {
	if len(x) != len(out) {
		return fmt.Errorf("Materialize: len(x)=%d, len(out)=%d: %w", len(x), len(out), ErrLengthMismatch)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	n := len(x)
	if threads < 1 {
		threads = 1
	}
	if threads == 1 || n < 2*minChunk {
		negate(x, out)
		return nil
	}

	chunk := (n + threads - 1) / threads
	if chunk < minChunk {
		chunk = minChunk
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for from := 0; from < n; from += chunk {
		to := min(from+chunk, n)
		xs, dst := x[from:to], out[from:to]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			negate(xs, dst)
			return nil
		})
	}

	return g.Wait()
}

func negate[T Scalar](x []float64, out []T) {
	for i, v := range x {
		out[i] = T(-v)
	}
}
