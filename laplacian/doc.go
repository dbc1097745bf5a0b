// Package laplacian builds the sparse Laplace operator a harmonic field
// minimizes.
//
// Weightings
//
//   - Combinatorial: w(u,v) = 1 for every edge; the diagonal is −degree.
//   - Cotangent:     w(u,v) = ½ Σ cot θ over the angles θ opposite (u,v) in
//     every incident triangle. Boundary edges get one term; tetrahedral
//     meshes sum over all incident faces. Degenerate triangles (relative
//     area ≤ DefaultAreaEpsilon) contribute nothing.
//
// The result is symmetric with zero row sums. Cotangent weights can be
// negative on meshes with obtuse angles; combinatorial weights never are.
//
// Errors
//
//   - ErrNilTopology, ErrUnknownWeighting.
//   - ErrNoGeometry       cotangent weights on a topology without positions.
//   - ErrInvalidTopology  an edge or triangle references a missing vertex.
package laplacian
