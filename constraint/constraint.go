// SPDX-License-Identifier: MIT
// Package constraint turns user (id, value) pairs into the penalty terms of
// the harmonic system.
//
// Positional coupling: ids are deduplicated and sorted ascending, and the
// i-th distinct id receives values[i]. Values are matched by position in the
// sorted distinct list, NOT by the index the id had in the input. With
// ids = [5, 2] and values = [10, 20], vertex 2 gets 10 and vertex 5 gets 20.
// Callers that want id-aligned values must pass ids already sorted and unique.
package constraint

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/harmonic/matrix"
)

// DefaultLogAlpha is the default penalty exponent: alpha = 10^5.
const DefaultLogAlpha = 5.0

// Scalar is the set of field value types.
type Scalar interface {
	~float32 | ~float64
}

// Set is the assembled constraint system over n vertices.
type Set struct {
	// IDs are the distinct constrained vertices, ascending.
	IDs []int
	// Values holds the target at each constrained vertex (sparse, length n).
	Values *matrix.Vector
	// Penalty is the n×n diagonal with Alpha at every constrained vertex.
	Penalty *matrix.CSR
	// Alpha is 10^logAlpha.
	Alpha float64
}

// Len returns the number of distinct constrained vertices.
func (s *Set) Len() int { return len(s.IDs) }

// RHS returns the dense right-hand side P·c (Alpha·value at constrained
// vertices, 0 elsewhere).
func (s *Set) RHS() ([]float64, error) {
	return matrix.MulDiagonal(s.Penalty, s.Values)
}

// Alpha returns 10^logAlpha or ErrInvalidLogAlpha when it is not finite and positive.
func Alpha(logAlpha float64) (float64, error) {
	a := math.Pow(10, logAlpha)
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return 0, fmt.Errorf("logAlpha=%g: %w", logAlpha, ErrInvalidLogAlpha)
	}

	return a, nil
}

// Distinct returns the sorted distinct ids, validated against [0, n).
func Distinct(n int, ids []int) ([]int, error) {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id < 0 || id >= n {
			return nil, fmt.Errorf("id %d (n=%d): %w", id, n, ErrVertexOutOfRange)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)

	return out, nil
}

// Assemble builds the constraint Set for an n-vertex mesh.
// Only the first len(distinct ids) entries of values are read; extra values
// are ignored. With no ids the vector and penalty are all zero.
//
// Errors: ErrBadSize, ErrVertexOutOfRange, ErrNotEnoughValues,
// ErrInvalidValue, ErrInvalidLogAlpha.
// Complexity: O(k log k) for k ids, plus O(n) for the penalty row pointers.
func Assemble[T Scalar](n int, ids []int, values []T, logAlpha float64) (*Set, error) {
	if n < 0 {
		return nil, fmt.Errorf("Assemble: n=%d: %w", n, ErrBadSize)
	}
	alpha, err := Alpha(logAlpha)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	distinct, err := Distinct(n, ids)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	if len(values) < len(distinct) {
		return nil, fmt.Errorf("Assemble: %d values for %d distinct ids: %w",
			len(values), len(distinct), ErrNotEnoughValues)
	}

	vec, err := matrix.NewVector(n)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	pen, err := matrix.NewTriplets(n, n)
	if err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	pen.Reserve(len(distinct))
	for i, id := range distinct {
		v := float64(values[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Assemble: value %d at vertex %d: %w", i, id, ErrInvalidValue)
		}
		if err = vec.Set(id, v); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
		if err = pen.Append(id, id, alpha); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
	}

	return &Set{IDs: distinct, Values: vec, Penalty: pen.ToCSR(), Alpha: alpha}, nil
}
