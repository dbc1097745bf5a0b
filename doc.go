// Package harmonic computes harmonic scalar fields over triangle and
// tetrahedral meshes.
//
// Given a few constrained vertices with target values, Execute returns the
// field that minimizes the Laplacian energy while approximately matching the
// targets through a quadratic penalty of strength alpha = 10^logAlpha:
//
//	(L − P)·x = P·c,   out = −x
//
// where L is the mesh Laplacian (cotangent or combinatorial weights,
// negative semi-definite), P the diagonal penalty matrix and c the
// constraint vector. Larger logAlpha pins constrained vertices more tightly
// and worsens conditioning.
//
// Usage
//
//	m, _ := builder.BuildMesh(nil, builder.Grid(64, 64))
//	op, err := harmonic.New(m,
//	    harmonic.WithSolvingMethod(solver.Auto),
//	    harmonic.WithThreads(4),
//	    harmonic.WithLogger(logger),
//	)
//	out := make([]float64, m.VertexNumber())
//	res, err := harmonic.Execute(ctx, op, []int{0, last}, []float64{0, 1}, out)
//	var se *harmonic.SolveError
//	if errors.As(err, &se) {
//	    // out holds a best-effort field; se.Status says why.
//	}
//
// Constraint coupling
//
//	ids are deduplicated and sorted ascending before values are assigned:
//	the i-th distinct id receives values[i]. Pass ids sorted and unique to
//	keep values aligned with them.
//
// Solver selection
//
//	Auto runs Direct (sparse LDLᵀ) when 2E + V ≤ threshold (default 500000)
//	and Iterative (Jacobi-preconditioned CG) above it. WithFallback retries
//	with the other strategy after NumericalIssue or NoConvergence.
//
// Observability
//
//	Each run gets a uuid run id, logged under "run" with charmbracelet/log
//	and attached to an OpenTelemetry span named "harmonic.Execute".
//
// Concurrency
//
//	An Operator is immutable after New; concurrent Execute calls are safe as
//	long as each uses its own output buffer.
package harmonic
