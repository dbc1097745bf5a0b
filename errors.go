// SPDX-License-Identifier: MIT
// Package: harmonic
//
// errors.go — sentinel errors and the SolveError wrapper.
//
// Boundary errors (nil topology, bad output length, bad constraints) are
// returned before any work is done and nothing is written. SolveError is
// returned after the best-effort field has been written.

package harmonic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/harmonic/solver"
)

var (
	// ErrNilTopology is returned by New when the topology is nil.
	ErrNilTopology = errors.New("harmonic: topology is nil")

	// ErrNilOperator is returned by Execute when op is nil.
	ErrNilOperator = errors.New("harmonic: operator is nil")

	// ErrOutputLength is returned when len(out) differs from the vertex count.
	ErrOutputLength = errors.New("harmonic: output length does not match vertex count")

	// ErrSolverUnavailable is returned when the module was built with the
	// nosolver tag. The output buffer is left untouched.
	ErrSolverUnavailable = errors.New("harmonic: solver support disabled")
)

// SolveError reports a non-success solver status. Err is the matching
// solver sentinel (solver.ErrNumericalIssue, ...), so errors.Is works on it.
type SolveError struct {
	Status solver.Status
	Method solver.Method
	Err    error
}

// Error implements error.
func (e *SolveError) Error() string {
	return fmt.Sprintf("harmonic: %s solver: %s", e.Method, e.Status)
}

// Unwrap returns the solver sentinel.
func (e *SolveError) Unwrap() error { return e.Err }
