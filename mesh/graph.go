// SPDX-License-Identifier: MIT

package mesh

import "fmt"

// Graph is a Topology without geometry: a vertex count and an edge list.
// It supports combinatorial weighting only.
type Graph struct {
	n     int
	edges [][2]int
}

// NewGraph builds an edge-only topology over n vertices. Edges are
// normalized to u < v, deduplicated and sorted; self-loops are rejected
// with ErrDegenerateCell.
func NewGraph(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, meshErrorf("NewGraph", fmt.Errorf("n=%d: %w", n, ErrVertexOutOfRange))
	}
	es := newEdgeSet(len(edges))
	for i, e := range edges {
		if err := checkCell(n, e[:]); err != nil {
			return nil, meshErrorf("NewGraph", fmt.Errorf("edge %d: %w", i, err))
		}
		es.add(e[0], e[1])
	}

	return &Graph{n: n, edges: es.sorted()}, nil
}

// VertexNumber returns the number of vertices.
func (g *Graph) VertexNumber() int { return g.n }

// EdgeNumber returns the number of distinct edges.
func (g *Graph) EdgeNumber() int { return len(g.edges) }

// Edge returns the endpoints of edge e with u < v.
func (g *Graph) Edge(e int) (int, int) { return g.edges[e][0], g.edges[e][1] }
