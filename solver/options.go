// SPDX-License-Identifier: MIT
// Package: solver
//
// options.go — functional options for both strategies.
// Option constructors panic on nonsensical values (programmer error);
// solvers themselves never panic.

package solver

import "math"

const (
	// DefaultTolerance is the CG stopping criterion on the Jacobi-preconditioned
	// relative residual ‖M⁻¹r‖/‖M⁻¹b‖.
	DefaultTolerance = 1e-10

	// DefaultPivotTolerance flags an LDLᵀ pivot d_k with |d_k| ≤ tol·Σ_j|A_kj|,
	// the absolute sum of the pivot's own row.
	DefaultPivotTolerance = 1e-12

	// minIterations is the floor of the default CG budget max(2n, 1000).
	minIterations = 1000
)

// Option configures a solve.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	Tolerance      float64
	MaxIterations  int // 0 means max(2n, 1000)
	PivotTolerance float64
	Threads        int
	MinRowsPerTask int // 0 keeps the matrix package default
	Threshold      int // Auto selection score threshold
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		PivotTolerance: DefaultPivotTolerance,
		Threads:        1,
		Threshold:      DefaultThreshold,
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// maxIterations resolves the CG budget for an n×n system.
func (o Options) maxIterations(n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	if 2*n > minIterations {
		return 2 * n
	}

	return minIterations
}

// WithTolerance sets the CG relative residual target. Panics unless 0 < tol < 1.
func WithTolerance(tol float64) Option {
	if !(tol > 0 && tol < 1) {
		panic("solver: WithTolerance: tol must be in (0,1)")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps CG iterations. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("solver: WithMaxIterations: n must be >= 1")
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithPivotTolerance sets the relative pivot threshold of LDLᵀ.
// Panics when tol is negative or not finite.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("solver: WithPivotTolerance: tol must be finite and >= 0")
	}
	return func(o *Options) { o.PivotTolerance = tol }
}

// WithThreads sets the worker count of the CG matrix–vector product.
// Panics when n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic("solver: WithThreads: n must be >= 1")
	}
	return func(o *Options) { o.Threads = n }
}

// WithMinRowsPerTask sets the smallest row block of a parallel product.
// Panics when n < 1.
func WithMinRowsPerTask(n int) Option {
	if n < 1 {
		panic("solver: WithMinRowsPerTask: n must be >= 1")
	}
	return func(o *Options) { o.MinRowsPerTask = n }
}

// WithThreshold sets the Auto selection threshold. Panics when t < 0.
func WithThreshold(t int) Option {
	if t < 0 {
		panic("solver: WithThreshold: threshold must be >= 0")
	}
	return func(o *Options) { o.Threshold = t }
}
