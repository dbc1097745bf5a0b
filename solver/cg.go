// SPDX-License-Identifier: MIT
// Package: solver
//
// cg.go — Jacobi-preconditioned conjugate gradient (Iterative).
//
// Stopping rule: ‖M⁻¹r_k‖ ≤ Tolerance·‖M⁻¹b‖ with M = diag(A), checked after
// every update. Penalty rows carry alpha on both sides of that ratio, so the
// criterion does not loosen as logAlpha grows the way ‖r‖/‖b‖ does.
// Budget: MaxIterations, default max(2n, 1000); exhausting it yields
// NoConvergence with the last iterate.
//
// The recurrence is sign-agnostic: on a negative-definite A with its own
// (negative) diagonal as preconditioner every step equals CG on −A·x = −b.
//
// The matrix–vector product runs on matrix.ParMulVecTo with the configured
// thread count; vector kernels come from gonum/floats.

package solver

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/harmonic/matrix"
)

// CG is the Iterative strategy.
type CG struct {
	opts Options
}

// Method returns Iterative.
func (s *CG) Method() Method { return Iterative }

// Solve runs preconditioned CG from x₀ = 0.
func (s *CG) Solve(ctx context.Context, A *matrix.CSR, b []float64) (*Result, error) {
	if err := validate(A, b); err != nil {
		return &Result{Status: InvalidInput, Method: Iterative}, nil
	}

	n := A.Rows()
	x := make([]float64, n)
	res := &Result{X: x, Status: Success, Method: Iterative}
	if floats.Norm(b, 2) == 0 {
		return res, nil
	}

	mopts := []matrix.Option{matrix.WithThreads(s.opts.Threads)}
	if s.opts.MinRowsPerTask > 0 {
		mopts = append(mopts, matrix.WithMinRowsPerTask(s.opts.MinRowsPerTask))
	}

	// Inverse diagonal; zero entries fall back to the identity.
	minv := A.Diagonal()
	for i, d := range minv {
		if d == 0 {
			minv[i] = 1
			continue
		}
		minv[i] = 1 / d
	}

	r := append([]float64(nil), b...)
	z := make([]float64, n)
	floats.MulTo(z, minv, r)
	p := append([]float64(nil), z...)
	q := make([]float64, n)
	rz := floats.Dot(r, z)
	ref := floats.Norm(z, 2)
	znorm := ref
	target := s.opts.Tolerance * ref
	budget := s.opts.maxIterations(n)

	for it := 1; it <= budget; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := matrix.ParMulVecTo(ctx, A, q, p, mopts...); err != nil {
			return nil, err
		}
		pq := floats.Dot(p, q)
		if pq == 0 || math.IsNaN(pq) || math.IsInf(pq, 0) {
			res.Status, res.Iterations = NumericalIssue, it
			res.Residual = znorm / ref
			return res, nil
		}
		alpha := rz / pq
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, q)

		floats.MulTo(z, minv, r)
		znorm = floats.Norm(z, 2)
		res.Iterations, res.Residual = it, znorm/ref
		if znorm <= target {
			return res, nil
		}

		rzNext := floats.Dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		// p = z + beta·p
		floats.Scale(beta, p)
		floats.Add(p, z)
	}
	res.Status = NoConvergence

	return res, nil
}
