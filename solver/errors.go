// SPDX-License-Identifier: MIT
// Package: solver
//
// errors.go — sentinel errors. Every non-success Status maps to exactly one
// sentinel through Status.Err, so callers can branch with errors.Is.

package solver

import "errors"

var (
	// ErrNumericalIssue reports a zero, tiny or non-finite pivot (Direct) or a
	// breakdown of the CG recurrence (Iterative).
	ErrNumericalIssue = errors.New("solver: numerical issue")

	// ErrNoConvergence reports that CG exhausted its iteration budget.
	ErrNoConvergence = errors.New("solver: no convergence")

	// ErrInvalidInput reports a nil, non-square or mismatched system.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrUnknownMethod reports a Method or method name outside the enum.
	ErrUnknownMethod = errors.New("solver: unknown method")
)
