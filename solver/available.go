// SPDX-License-Identifier: MIT

//go:build !nosolver

package solver

// Available reports whether the module was built with its linear solvers.
// Build with -tags nosolver to compile them out of the harmonic pipeline.
const Available = true
