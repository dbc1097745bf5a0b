// Package bfs provides breadth-first search over an index-based adjacency
// structure, plus the reverse Cuthill–McKee ordering built on top of it.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: distance (edges) from start, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the root
//   - Supports neighbor ordering and a visited set shared across walks.
//   - PseudoPeripheral finds a low-degree vertex of near-maximal eccentricity.
//   - ReverseCuthillMcKee returns a bandwidth-reducing vertex permutation,
//     component by component.
//
// Graphs
//
//	Any type with Rows() int and Neighbors(v int) []int is a Graph. A square
//	*matrix.CSR qualifies directly: its column pattern is the adjacency, and the
//	stored diagonal is skipped.
//
// Determinism
//
//	Neighbors are enqueued in the order the graph reports them (ascending
//	column index for CSR), or stably sorted by WithNeighborLess. The visit
//	sequence and every ordering are fully reproducible.
//
// Complexity (V = vertices, E = stored off-diagonal entries)
//
//   - BFS:  O(V + E) time, O(V) memory.
//   - RCM:  O(k·(V + E) + E·log d) where k is the number of George–Liu
//     re-rooting rounds (small in practice) and d the maximum degree.
//
// Usage
//
//	perm, err := bfs.ReverseCuthillMcKee(ctx, A) // A is a square *matrix.CSR
//	if err != nil {
//	    // ErrGraphNil, ErrNeighborOutOfRange, or ctx.Err()
//	}
//	B, err := A.Permute(perm)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if an Option is invalid (nil or mis-sized visited set).
//   - ErrNeighborOutOfRange   if the graph reports an out-of-range neighbor.
package bfs
