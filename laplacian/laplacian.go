// SPDX-License-Identifier: MIT
// Package laplacian assembles the discrete Laplace operator of a mesh.
//
// Sign convention: off-diagonal entries hold +w(u,v) for every edge and the
// diagonal holds −Σ w over incident edges, so each row sums to zero and the
// operator is negative semidefinite when all weights are non-negative.
//
// Assembly goes through matrix.Triplets: every edge appends four entries and
// duplicates are summed, so contributions from several triangles sharing an
// edge accumulate without any lookup.
package laplacian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/harmonic/matrix"
	"github.com/katalvlaran/harmonic/mesh"
)

// Build returns the n×n Laplacian of topo, n = topo.VertexNumber().
// The stored pattern always contains the full diagonal and every topology
// edge in both directions, even where a cotangent weight sums to zero.
//
// Errors: ErrNilTopology, ErrUnknownWeighting, ErrNoGeometry (Cotangent on a
// plain Topology), ErrInvalidTopology.
// Complexity: O(V + E + T) appends, O(nnz log d) compression.
func Build(topo mesh.Topology, w Weighting, opts ...Option) (*matrix.CSR, error) {
	if topo == nil {
		return nil, laplacianErrorf("Build", ErrNilTopology)
	}
	o := options{areaEps: DefaultAreaEpsilon}
	for _, fn := range opts {
		fn(&o)
	}

	n := topo.VertexNumber()
	t, err := matrix.NewTriplets(n, n)
	if err != nil {
		return nil, laplacianErrorf("Build", err)
	}

	switch w {
	case Combinatorial:
		t.Reserve(n + 4*topo.EdgeNumber())
		err = pattern(t, topo, 1)
	case Cotangent:
		geo, ok := topo.(mesh.Geometry)
		if !ok {
			return nil, laplacianErrorf("Build", ErrNoGeometry)
		}
		t.Reserve(n + 4*topo.EdgeNumber() + 12*geo.TriangleNumber())
		if err = pattern(t, topo, 0); err == nil {
			err = cotanWeights(t, geo, o.areaEps)
		}
	default:
		return nil, laplacianErrorf("Build", fmt.Errorf("%d: %w", w, ErrUnknownWeighting))
	}
	if err != nil {
		return nil, laplacianErrorf("Build", err)
	}

	return t.ToCSR(), nil
}

// pattern emits the diagonal and every edge with weight w.
func pattern(t *matrix.Triplets, topo mesh.Topology, w float64) error {
	n := topo.VertexNumber()
	for i := 0; i < n; i++ {
		if err := t.Append(i, i, 0); err != nil {
			return err
		}
	}
	for e := 0; e < topo.EdgeNumber(); e++ {
		u, v := topo.Edge(e)
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			return fmt.Errorf("edge %d (%d,%d): %w", e, u, v, ErrInvalidTopology)
		}
		if err := addEdge(t, u, v, w); err != nil {
			return err
		}
	}

	return nil
}

// cotanWeights adds ½·cot(angle at a) to the edge opposite a, for every
// corner a of every non-degenerate triangle.
func cotanWeights(t *matrix.Triplets, geo mesh.Geometry, eps float64) error {
	n := geo.VertexNumber()
	for f := 0; f < geo.TriangleNumber(); f++ {
		tri := geo.Triangle(f)
		for _, v := range tri {
			if v < 0 || v >= n {
				return fmt.Errorf("triangle %d %v: %w", f, tri, ErrInvalidTopology)
			}
		}
		cots, ok := cotangents(geo.Point(tri[0]), geo.Point(tri[1]), geo.Point(tri[2]), eps)
		if !ok {
			continue
		}
		for corner := 0; corner < 3; corner++ {
			u, v := tri[(corner+1)%3], tri[(corner+2)%3]
			if err := addEdge(t, u, v, 0.5*cots[corner]); err != nil {
				return err
			}
		}
	}

	return nil
}

// cotangents returns the cotangent of the angle at each corner of (a,b,c).
// ok is false when the triangle is degenerate.
func cotangents(a, b, c r3.Vec, eps float64) (cots [3]float64, ok bool) {
	ab, bc, ca := r3.Sub(b, a), r3.Sub(c, b), r3.Sub(a, c)
	area2 := r3.Norm(r3.Cross(ab, r3.Scale(-1, ca)))
	scale := math.Max(r3.Norm2(ab), math.Max(r3.Norm2(bc), r3.Norm2(ca)))
	if !(area2 > eps*scale) {
		return cots, false
	}
	// corner a between ab and −ca, b between bc and −ab, c between ca and −bc.
	cots[0] = -r3.Dot(ab, ca) / area2
	cots[1] = -r3.Dot(bc, ab) / area2
	cots[2] = -r3.Dot(ca, bc) / area2

	return cots, true
}

// addEdge appends the symmetric contribution of weight w on edge (u,v).
func addEdge(t *matrix.Triplets, u, v int, w float64) error {
	if err := t.Append(u, v, w); err != nil {
		return err
	}
	if err := t.Append(v, u, w); err != nil {
		return err
	}
	if err := t.Append(u, u, -w); err != nil {
		return err
	}

	return t.Append(v, v, -w)
}
