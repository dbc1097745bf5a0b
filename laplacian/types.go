// SPDX-License-Identifier: MIT

package laplacian

// Weighting selects how edge weights are computed.
type Weighting int

const (
	// Combinatorial gives every edge weight 1 (graph Laplacian).
	Combinatorial Weighting = iota
	// Cotangent gives edge (u,v) weight ½·Σ cot of the angles opposite it.
	Cotangent
)

// String returns the short name used in logs: "combinatorial" or "cotan".
func (w Weighting) String() string {
	switch w {
	case Combinatorial:
		return "combinatorial"
	case Cotangent:
		return "cotan"
	default:
		return "unknown"
	}
}

// DefaultAreaEpsilon bounds the relative area below which a triangle is
// degenerate: |(b−a)×(c−a)| ≤ eps·maxEdge².
const DefaultAreaEpsilon = 1e-12

// Option configures Build.
type Option func(*options)

type options struct {
	areaEps float64
}

// WithAreaEpsilon overrides DefaultAreaEpsilon. Panics when eps < 0.
func WithAreaEpsilon(eps float64) Option {
	if eps < 0 {
		panic("laplacian: WithAreaEpsilon(eps<0)")
	}
	return func(o *options) { o.areaEps = eps }
}
