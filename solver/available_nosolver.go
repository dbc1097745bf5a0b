// SPDX-License-Identifier: MIT

//go:build nosolver

package solver

// Available reports whether the module was built with its linear solvers.
const Available = false
