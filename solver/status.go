// SPDX-License-Identifier: MIT

package solver

// Status is the outcome of a solve.
type Status int

const (
	// Success means the system was solved to the requested accuracy.
	Success Status = iota
	// NumericalIssue means the factorization or recurrence broke down; the
	// returned X is a best-effort pseudo-solution.
	NumericalIssue
	// NoConvergence means CG hit MaxIterations; X is the last iterate.
	NoConvergence
	// InvalidInput means the system was malformed; X is nil.
	InvalidInput
)

// String returns the log name of s.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case NumericalIssue:
		return "numerical issue"
	case NoConvergence:
		return "no convergence"
	case InvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Err returns nil for Success and the matching sentinel otherwise.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case NumericalIssue:
		return ErrNumericalIssue
	case NoConvergence:
		return ErrNoConvergence
	default:
		return ErrInvalidInput
	}
}
