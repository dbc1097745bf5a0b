// SPDX-License-Identifier: MIT
// Package: laplacian
//
// errors.go — sentinel errors for Laplacian assembly.

package laplacian

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGeometry is returned when cotangent weights are requested for a
	// topology that does not implement mesh.Geometry.
	ErrNoGeometry = errors.New("laplacian: cotangent weights need mesh geometry")

	// ErrInvalidTopology is returned when an edge or triangle references a
	// vertex outside [0, VertexNumber()).
	ErrInvalidTopology = errors.New("laplacian: invalid topology")

	// ErrUnknownWeighting is returned for a Weighting outside the enum.
	ErrUnknownWeighting = errors.New("laplacian: unknown weighting")

	// ErrNilTopology is returned when topo is nil.
	ErrNilTopology = errors.New("laplacian: topology is nil")
)

func laplacianErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
