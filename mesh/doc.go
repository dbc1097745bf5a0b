// Package mesh provides the read-only mesh views consumed by the Laplacian
// builder and the solver selector.
//
// What
//
//   - Topology: vertex count, edge count and edge endpoints.
//   - Geometry: Topology plus triangle faces and r3.Vec vertex positions.
//   - Mesh: a concrete triangle or tetrahedral mesh built from points and cells.
//   - Graph: an edge-only Topology (combinatorial weighting only).
//
// Invariants
//
//   - Vertex ids are dense in [0, VertexNumber()).
//   - Edges are undirected, stored with u < v and sorted by (u, v).
//   - Triangles are unique regardless of winding; tetrahedra contribute
//     their four faces and six edges.
//   - Values are immutable after construction, so a Mesh may be shared by
//     concurrent solves.
//
// Errors
//
//   - ErrVertexOutOfRange  a cell references a vertex outside [0, n).
//   - ErrDegenerateCell    a cell repeats a vertex.
//   - ErrNonFinitePoint    a position has a NaN or ±Inf coordinate.
package mesh
