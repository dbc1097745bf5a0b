// SPDX-License-Identifier: MIT
// Package: solver
//
// method.go — solving methods and the selection heuristic.
//
// The heuristic estimates the nonzeros of the Laplacian, 2E + V (two
// off-diagonal entries per edge plus the diagonal), and switches to the
// iterative solver when that exceeds a threshold. Direct factorization is
// preferred below it.

package solver

import (
	"fmt"
	"strings"
)

// Method selects a solving strategy.
type Method int

const (
	// Auto picks Direct or Iterative from the system size.
	Auto Method = iota
	// Direct is the sparse LDLᵀ factorization.
	Direct
	// Iterative is Jacobi-preconditioned conjugate gradient.
	Iterative
)

// DefaultThreshold is the 2E+V score above which Auto selects Iterative.
const DefaultThreshold = 500000

// String returns "auto", "direct" or "iterative".
func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Direct:
		return "direct"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps auto|direct|cholesky|iterative|cg (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "direct", "cholesky", "ldlt":
		return Direct, nil
	case "iterative", "cg":
		return Iterative, nil
	default:
		return Auto, fmt.Errorf("ParseMethod: %q: %w", s, ErrUnknownMethod)
	}
}

// Score returns the nonzero estimate 2*edges + vertices.
func Score(vertices, edges int) int { return 2*edges + vertices }

// Select resolves method for a mesh of the given size. Direct and Iterative
// are returned unchanged; Auto yields Iterative when Score > threshold and
// Direct otherwise (a score equal to the threshold stays Direct).
// Errors: ErrUnknownMethod.
func Select(method Method, vertices, edges, threshold int) (Method, error) {
	switch method {
	case Direct, Iterative:
		return method, nil
	case Auto:
		if Score(vertices, edges) > threshold {
			return Iterative, nil
		}
		return Direct, nil
	default:
		return Auto, fmt.Errorf("Select: %v: %w", method, ErrUnknownMethod)
	}
}
