// Package solver solves the sparse symmetric systems produced by the
// harmonic pipeline: A·x = b with A = L − P, where L is a mesh Laplacian
// (negative semi-definite) and P the diagonal penalty matrix.
//
// Strategies
//
//   - Direct (LDLT): reverse Cuthill–McKee ordering, elimination tree and an
//     up-looking LDLᵀ factorization. No pivoting is needed because A is
//     symmetric negative definite whenever every connected component carries
//     at least one constraint.
//   - Iterative (CG): conjugate gradient with a Jacobi (diagonal)
//     preconditioner, starting from x₀ = 0. The matrix–vector product runs
//     on the matrix package's parallel kernel.
//
// Auto selection
//
//	Select(Auto, V, E, threshold) picks Iterative when 2E + V > threshold
//	(DefaultThreshold = 500000) and Direct otherwise.
//
// Status
//
//	Every solve reports one of Success, NumericalIssue, NoConvergence,
//	InvalidInput. Non-success statuses carry a best-effort X (nil only for
//	InvalidInput); Status.Err maps them to sentinel errors for errors.Is.
//	The error return of Strategy.Solve is reserved for context cancellation.
//
// Usage
//
//	res, err := solver.Solve(ctx, solver.Auto, A, b, solver.WithThreads(4))
//	if err != nil {
//	    return err // ctx cancelled
//	}
//	if err := res.Err(); err != nil {
//	    // NumericalIssue, NoConvergence or InvalidInput
//	}
//
// Builds tagged nosolver compile the package with Available = false so the
// pipeline can report that no linear-algebra backend is present.
package solver
