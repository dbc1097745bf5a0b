// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse assembly and the
// parallel kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; thread counts are explicit
//     per call, never a process-wide knob.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by structural checks (symmetry).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Append/Set.
	DefaultValidateNaNInf = true

	// DefaultDropZeros removes entries that compress to exactly 0 in ToCSR.
	DefaultDropZeros = false

	// DefaultThreads is the worker count of parallel kernels (1 = sequential).
	DefaultThreads = 1

	// DefaultMinRowsPerTask is the smallest row block handed to a worker.
	// Smaller systems stay on the sequential path.
	DefaultMinRowsPerTask = 2048
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThreadsInvalid = "matrix: WithThreads: threads must be >= 1"
	panicMinRowsInvalid = "matrix: WithMinRowsPerTask: rows must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	dropZeros      bool // DefaultDropZeros
	threads        int  // DefaultThreads
	minRows        int  // DefaultMinRowsPerTask
}

// WithThreads sets the number of workers used by ParMulVecTo.
// Panics when threads < 1.
//
// AI-Hints:
//   - Pass the caller's explicit thread budget; there is no global setting.
func WithThreads(threads int) Option {
	if threads < 1 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = threads }
}

// WithMinRowsPerTask sets the smallest row block a worker receives.
// Panics when rows < 1.
func WithMinRowsPerTask(rows int) Option {
	if rows < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRows = rows }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Append/Set (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDropZeros removes entries that sum to exactly zero during ToCSR.
func WithDropZeros() Option {
	return func(o *Options) { o.dropZeros = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		dropZeros:      DefaultDropZeros,
		threads:        DefaultThreads,
		minRows:        DefaultMinRowsPerTask,
	}
}

// gatherOptions applies opts in order over the defaults (later wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
