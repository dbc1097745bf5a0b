// SPDX-License-Identifier: MIT
// Package: solver
//
// solver.go — the Strategy contract and the Solve entry point.
//
// Contract:
//   • Strategies never panic and never return a numerical failure as an
//     error: breakdowns are reported through Result.Status, together with the
//     best-effort X. The error return is reserved for context cancellation.
//   • Malformed systems yield Status InvalidInput with a nil X.
//   • Inputs are never mutated.

package solver

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/harmonic/matrix"
)

// Result is the outcome of a solve.
type Result struct {
	X          []float64 // solution or best-effort pseudo-solution; nil on InvalidInput
	Status     Status
	Method     Method // Direct or Iterative, never Auto
	Iterations int    // CG iterations; 0 for Direct
	Residual   float64 // Direct: ‖A·x − b‖/‖b‖; Iterative: ‖M⁻¹r‖/‖M⁻¹b‖, M = diag(A)
}

// Err returns Status.Err().
func (r *Result) Err() error { return r.Status.Err() }

// Strategy solves A·x = b for a square symmetric sparse A.
type Strategy interface {
	Method() Method
	Solve(ctx context.Context, A *matrix.CSR, b []float64) (*Result, error)
}

// New returns the Strategy for a concrete method (Direct or Iterative).
// Errors: ErrUnknownMethod (Auto must be resolved with Select first).
func New(method Method, opts ...Option) (Strategy, error) {
	o := gatherOptions(opts...)
	switch method {
	case Direct:
		return &LDLT{opts: o}, nil
	case Iterative:
		return &CG{opts: o}, nil
	default:
		return nil, fmt.Errorf("New: %v: %w", method, ErrUnknownMethod)
	}
}

// Solve resolves method against the size of A (Auto counts the stored
// off-diagonal pairs of A as edges) and runs the matching Strategy.
func Solve(ctx context.Context, method Method, A *matrix.CSR, b []float64, opts ...Option) (*Result, error) {
	if method == Auto && A != nil {
		o := gatherOptions(opts...)
		edges := (A.NNZ() - countDiagonal(A)) / 2
		var err error
		if method, err = Select(Auto, A.Rows(), edges, o.Threshold); err != nil {
			return nil, err
		}
	} else if method == Auto {
		method = Direct
	}
	s, err := New(method, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(ctx, A, b)
}

// validate checks the structural preconditions shared by both strategies.
func validate(A *matrix.CSR, b []float64) error {
	if err := matrix.ValidateSquare(A); err != nil {
		return err
	}
	if len(b) != A.Rows() {
		return fmt.Errorf("len(b)=%d, n=%d: %w", len(b), A.Rows(), matrix.ErrDimensionMismatch)
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrix.ErrNaNInf
		}
	}
	if err := matrix.ValidateFinite(A); err != nil {
		return err
	}

	return matrix.ValidateSymmetric(A, matrix.DefaultEpsilon)
}

// relativeResidual returns ‖A·x − b‖ / ‖b‖ (absolute when b = 0).
func relativeResidual(A *matrix.CSR, x, b []float64) float64 {
	r, err := matrix.MulVec(A, x)
	if err != nil {
		return math.Inf(1)
	}
	floats.Sub(r, b)
	num := floats.Norm(r, 2)
	if den := floats.Norm(b, 2); den > 0 {
		return num / den
	}

	return num
}

func countDiagonal(A *matrix.CSR) int {
	c := 0
	for i := 0; i < A.Rows(); i++ {
		cols, _ := A.Row(i)
		for _, j := range cols {
			if j == i {
				c++
				break
			}
		}
	}

	return c
}
