// Package bfs provides breadth-first search over an index-based adjacency
// structure, returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional neighbor ordering and a visited set shared across walks.
// It is the level-structure engine behind the reverse
// Cuthill–McKee ordering used by the direct solver.
package bfs

import (
	"context"
	"fmt"
	"sort"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited []bool
	scratch []int
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighborOutOfRange for a malformed
// graph, or ctx.Err() on cancellation.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Rows()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}
	visited := o.Visited
	if visited == nil {
		visited = make([]bool, n)
	} else if len(visited) != n {
		return nil, fmt.Errorf("%w: visited set has length %d, graph has %d vertices",
			ErrOptionViolation, len(visited), n)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: visited,
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and appends it to
// the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.v)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors collects unseen neighbors, optionally sorts them, and
// enqueues each in order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	n := len(w.visited)
	w.scratch = w.scratch[:0]
	for _, nbr := range w.graph.Neighbors(item.v) {
		if nbr < 0 || nbr >= n {
			return fmt.Errorf("%w: %d -> %d", ErrNeighborOutOfRange, item.v, nbr)
		}
		if nbr == item.v || w.visited[nbr] {
			continue
		}
		w.scratch = append(w.scratch, nbr)
	}
	if w.opts.NeighborLess != nil {
		sort.SliceStable(w.scratch, func(a, b int) bool {
			return w.opts.NeighborLess(w.scratch[a], w.scratch[b])
		})
	}
	for _, nbr := range w.scratch {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
