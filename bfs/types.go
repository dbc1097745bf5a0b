// Package bfs provides tunable options and error definitions
// for breadth-first search over an index-based adjacency structure.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside [0, Rows()).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighborOutOfRange is returned when the graph reports a neighbor
	// index outside [0, Rows()).
	ErrNeighborOutOfRange = errors.New("bfs: neighbor index out of range")
)

// Graph is the adjacency view BFS walks. Vertices are the dense indices
// [0, Rows()); Neighbors(v) may include v itself (a stored diagonal), which
// BFS ignores. A square *matrix.CSR satisfies this interface.
type Graph interface {
	Rows() int
	Neighbors(v int) []int
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. a nil visited set), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// NeighborLess, when set, orders each vertex's unseen neighbors before
	// they are enqueued (Cuthill–McKee enqueues by ascending degree).
	NeighborLess func(a, b int) bool

	// Visited, when set, is shared across walks: vertices already marked are
	// treated as seen, and the walk marks every vertex it enqueues. Its length
	// must equal Rows().
	Visited []bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with a background context and
// natural neighbor order.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNeighborLess orders unseen neighbors with less before enqueueing them.
// The sort is stable, so ties keep the graph's natural order.
func WithNeighborLess(less func(a, b int) bool) Option {
	return func(o *BFSOptions) {
		if less != nil {
			o.NeighborLess = less
		}
	}
}

// WithVisited shares a visited set across walks (component-by-component scans).
func WithVisited(visited []bool) Option {
	return func(o *BFSOptions) {
		if visited == nil {
			o.err = fmt.Errorf("%w: visited set is nil", ErrOptionViolation)
			return
		}
		o.Visited = visited
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start; -1 when unreached.
//   - Parent: predecessor in the BFS tree; -1 for the start and unreached vertices.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Eccentricity returns the largest depth reached (0 for a single vertex).
func (r *BFSResult) Eccentricity() int {
	if len(r.Order) == 0 {
		return 0
	}

	return r.Depth[r.Order[len(r.Order)-1]]
}

// LastLevel returns the vertices at the maximum depth, in visit order.
func (r *BFSResult) LastLevel() []int {
	ecc := r.Eccentricity()
	var out []int
	for _, v := range r.Order {
		if r.Depth[v] == ecc {
			out = append(out, v)
		}
	}

	return out
}
