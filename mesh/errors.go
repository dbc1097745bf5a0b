// SPDX-License-Identifier: MIT
// Package: mesh
//
// errors.go — sentinel errors for mesh construction.
// Callers branch with errors.Is; context is attached with %w at call sites.

package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexOutOfRange indicates a cell or edge references a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrDegenerateCell indicates a cell repeats a vertex (e.g. triangle {0,0,1}).
	ErrDegenerateCell = errors.New("mesh: degenerate cell")

	// ErrNonFinitePoint indicates a vertex position with a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("mesh: non-finite vertex position")
)

// meshErrorf attaches an operation tag to err, preserving it for errors.Is.
func meshErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
