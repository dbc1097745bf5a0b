// SPDX-License-Identifier: MIT

package harmonic

import (
	"math"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/harmonic/constraint"
	"github.com/katalvlaran/harmonic/laplacian"
	"github.com/katalvlaran/harmonic/solver"
)

// Defaults applied by New.
const (
	DefaultThreads  = 1
	DefaultLogAlpha = constraint.DefaultLogAlpha
)

// Option configures an Operator. Constructors panic on nonsensical values.
type Option func(*Operator)

// WithCotanWeights selects cotangent (true, default) or combinatorial
// (false) Laplacian weights.
func WithCotanWeights(on bool) Option {
	return func(op *Operator) {
		op.weighting = laplacian.Combinatorial
		if on {
			op.weighting = laplacian.Cotangent
		}
	}
}

// WithSolvingMethod sets Auto (default), Direct or Iterative.
// Panics on a Method outside the enum.
func WithSolvingMethod(m solver.Method) Option {
	if m != solver.Auto && m != solver.Direct && m != solver.Iterative {
		panic("harmonic: WithSolvingMethod: unknown method")
	}
	return func(op *Operator) { op.method = m }
}

// WithLogAlpha sets the penalty exponent, alpha = 10^logAlpha.
// Panics on NaN or ±Inf; overflowing exponents are rejected by Execute.
func WithLogAlpha(logAlpha float64) Option {
	if math.IsNaN(logAlpha) || math.IsInf(logAlpha, 0) {
		panic("harmonic: WithLogAlpha: logAlpha must be finite")
	}
	return func(op *Operator) { op.logAlpha = logAlpha }
}

// WithThreads sets the worker count for the CG product and the output
// write. Panics when n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic("harmonic: WithThreads: n must be >= 1")
	}
	return func(op *Operator) { op.threads = n }
}

// WithThreshold sets the Auto selection threshold on 2E+V.
// Panics when t < 0.
func WithThreshold(t int) Option {
	if t < 0 {
		panic("harmonic: WithThreshold: threshold must be >= 0")
	}
	return func(op *Operator) { op.threshold = t }
}

// WithFallback retries with the other strategy when the first one reports
// NumericalIssue or NoConvergence. Off by default.
func WithFallback(on bool) Option {
	return func(op *Operator) { op.fallback = on }
}

// WithLogger sets the logger. Panics on nil. The default discards output.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("harmonic: WithLogger(nil)")
	}
	return func(op *Operator) { op.logger = l }
}

// WithTracerProvider sets the provider of the Execute span. Panics on nil.
// The default is the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("harmonic: WithTracerProvider(nil)")
	}
	return func(op *Operator) { op.tracerProvider = tp }
}
