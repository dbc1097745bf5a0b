// SPDX-License-Identifier: MIT
// Package: constraint
//
// errors.go — sentinel errors for constraint assembly.

package constraint

import "errors"

var (
	// ErrVertexOutOfRange is returned when a constrained id lies outside [0, n).
	ErrVertexOutOfRange = errors.New("constraint: vertex id out of range")

	// ErrNotEnoughValues is returned when fewer values than distinct ids are given.
	ErrNotEnoughValues = errors.New("constraint: fewer values than distinct ids")

	// ErrInvalidValue is returned for a NaN or ±Inf constraint value.
	ErrInvalidValue = errors.New("constraint: value is NaN or Inf")

	// ErrInvalidLogAlpha is returned when 10^logAlpha is not a finite positive number.
	ErrInvalidLogAlpha = errors.New("constraint: penalty exponent out of range")

	// ErrBadSize is returned for a negative vertex count.
	ErrBadSize = errors.New("constraint: negative vertex count")
)
