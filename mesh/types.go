// SPDX-License-Identifier: MIT

// Package mesh: read-only views over simplicial meshes.
// This file contains ONLY the interfaces consumers depend on; the concrete
// Mesh lives in mesh.go and the edge-only Graph in graph.go.
package mesh

import "gonum.org/v1/gonum/spatial/r3"

// Topology is the minimal connectivity view: dense vertex ids in
// [0, VertexNumber()) and undirected edges in [0, EdgeNumber()).
// Implementations MUST be safe for concurrent readers.
type Topology interface {
	// VertexNumber returns the number of vertices.
	VertexNumber() int

	// EdgeNumber returns the number of undirected edges.
	EdgeNumber() int

	// Edge returns the endpoints of edge e with u < v.
	Edge(e int) (u, v int)
}

// Geometry extends Topology with triangle faces and vertex positions,
// which cotangent weighting needs. Volume meshes expose the faces of their
// tetrahedra here.
type Geometry interface {
	Topology

	// TriangleNumber returns the number of distinct triangles.
	TriangleNumber() int

	// Triangle returns the vertex ids of triangle t.
	Triangle(t int) [3]int

	// Point returns the position of vertex v.
	Point(v int) r3.Vec
}
