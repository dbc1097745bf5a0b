// SPDX-License-Identifier: MIT
// Package: harmonic/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols, n, ...)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates jitter was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the assembled draft was rejected
// (nil constructor, or mesh validation failed).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter value that must surface
// as an error rather than a panic (e.g. an unknown Platonic solid).
var ErrOptionViolation = errors.New("builder: invalid option value")
