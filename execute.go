// SPDX-License-Identifier: MIT
// Package: harmonic
//
// execute.go — one harmonic field computation.
//
// Pipeline: Laplacian L → constraints (P, c) → A = L − P, b = P·c →
// method selection → solve → out = −x.
//
// Every matrix is built fresh per call; the Operator and its topology are
// only read.

package harmonic

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/harmonic/constraint"
	"github.com/katalvlaran/harmonic/field"
	"github.com/katalvlaran/harmonic/laplacian"
	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/solver"
)

// solverAvailable mirrors solver.Available; tests flip it.
var solverAvailable = solver.Available

// Result describes a finished computation.
type Result struct {
	Status     solver.Status
	Method     solver.Method // the strategy that produced the field
	Weighting  laplacian.Weighting
	Iterations int
	Residual   float64 // as reported by solver.Result.Residual
	Elapsed    time.Duration
	Threads    int
	RunID      string
	FellBack   bool // the first strategy failed and the other one was used
}

// Execute computes the harmonic field over op's topology and writes it into
// out (length VertexNumber). ids and values form the constraint set: ids are
// deduplicated and sorted ascending, and the i-th distinct id takes
// values[i]. Values are matched by position in that sorted list, not by the
// position of the id in the input.
//
// Returns:
//   - nil error on Success.
//   - *SolveError when the solver reports NumericalIssue or NoConvergence; out
//     then holds the best-effort field. InvalidInput leaves out untouched.
//   - ErrSolverUnavailable in nosolver builds; out is untouched.
//   - ErrNilOperator, ErrOutputLength, constraint errors
//     (constraint.ErrVertexOutOfRange, ...) before any work is done.
//   - ctx.Err() when cancelled; out may be partially written.
func Execute[T field.Scalar](ctx context.Context, op *Operator, ids []int, values []T, out []T) (*Result, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	start := time.Now()
	runID := uuid.NewString()
	n, e := op.VertexNumber(), op.EdgeNumber()
	logger := op.logger.With("run", runID)

	ctx, span := op.tracer.Start(ctx, "harmonic.Execute", trace.WithAttributes(
		attribute.String("harmonic.run_id", runID),
		attribute.Int("harmonic.vertices", n),
		attribute.Int("harmonic.edges", e),
		attribute.Int("harmonic.constraints", len(ids)),
		attribute.String("harmonic.weighting", op.weighting.String()),
		attribute.Int("harmonic.threads", op.threads),
	))
	defer span.End()

	res, err := compute(ctx, op, ids, values, out, logger)
	if res != nil {
		res.RunID = runID
		res.Elapsed = time.Since(start)
		logger.Info("ending computation",
			"elapsed", res.Elapsed.Round(time.Microsecond),
			"weights", res.Weighting,
			"solver", res.Method,
			"threads", res.Threads,
		)
		span.SetAttributes(
			attribute.String("harmonic.method", res.Method.String()),
			attribute.String("harmonic.status", res.Status.String()),
			attribute.Int("harmonic.iterations", res.Iterations),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return res, err
}

// compute runs the pipeline. It returns a nil Result only for errors raised
// before the solver ran.
func compute[T field.Scalar](ctx context.Context, op *Operator, ids []int, values []T, out []T, logger *log.Logger) (*Result, error) {
	n := op.VertexNumber()
	if !solverAvailable {
		logger.Warn("solver support disabled, computation skipped")
		return nil, ErrSolverUnavailable
	}
	if len(out) != n {
		return nil, fmt.Errorf("Execute: len(out)=%d, vertices=%d: %w", len(out), n, ErrOutputLength)
	}
	logger.Debug("beginning computation", "vertices", n, "edges", op.EdgeNumber(), "constraints", len(ids))

	set, err := constraint.Assemble(n, ids, values, op.logAlpha)
	if err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}
	L, err := laplacian.Build(op.topo, op.weighting)
	if err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}
	A, err := matrix.Sub(L, set.Penalty)
	if err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}
	b, err := set.RHS()
	if err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}
	method, err := op.Resolve()
	if err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}

	sopts := []solver.Option{solver.WithThreads(op.threads)}
	sres, err := solver.Solve(ctx, method, A, b, sopts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("solver finished", "solver", sres.Method, "status", sres.Status,
		"iterations", sres.Iterations, "residual", sres.Residual)

	fellBack := false
	if op.fallback && (sres.Status == solver.NumericalIssue || sres.Status == solver.NoConvergence) {
		other := solver.Iterative
		if sres.Method == solver.Iterative {
			other = solver.Direct
		}
		logger.Warn("retrying with the other solver", "from", sres.Method, "to", other, "status", sres.Status)
		retry, err := solver.Solve(ctx, other, A, b, sopts...)
		if err != nil {
			return nil, err
		}
		if retry.Status == solver.Success {
			sres, fellBack = retry, true
		}
	}

	res := &Result{
		Status:     sres.Status,
		Method:     sres.Method,
		Weighting:  op.weighting,
		Iterations: sres.Iterations,
		Residual:   sres.Residual,
		Threads:    op.threads,
		FellBack:   fellBack,
	}
	if sres.Status == solver.InvalidInput {
		logger.Warn("invalid input", "solver", sres.Method)
		return res, &SolveError{Status: sres.Status, Method: sres.Method, Err: sres.Err()}
	}
	if err := field.Materialize(ctx, sres.X, out, op.threads); err != nil {
		return nil, err
	}
	if sres.Status != solver.Success {
		logger.Warn(sres.Status.String(), "solver", sres.Method, "residual", sres.Residual)
		return res, &SolveError{Status: sres.Status, Method: sres.Method, Err: sres.Err()}
	}

	return res, nil
}
