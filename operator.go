// SPDX-License-Identifier: MIT

package harmonic

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/harmonic/laplacian"
	"github.com/katalvlaran/harmonic/mesh"
	"github.com/katalvlaran/harmonic/solver"
)

// instrumentation is the tracer name of this package.
const instrumentation = "github.com/katalvlaran/harmonic"

// Operator holds the configuration of a harmonic field computation and a
// reference to a read-only topology. It owns no per-run state, so one
// Operator may serve concurrent Execute calls.
type Operator struct {
	topo mesh.Topology

	weighting laplacian.Weighting
	method    solver.Method
	logAlpha  float64
	threads   int
	threshold int
	fallback  bool

	logger         *log.Logger
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
}

// New returns an Operator over topo.
// Errors: ErrNilTopology; laplacian.ErrNoGeometry when cotangent weights are
// selected and topo does not implement mesh.Geometry.
func New(topo mesh.Topology, opts ...Option) (*Operator, error) {
	if topo == nil {
		return nil, ErrNilTopology
	}
	op := &Operator{
		topo:      topo,
		weighting: laplacian.Cotangent,
		method:    solver.Auto,
		logAlpha:  DefaultLogAlpha,
		threads:   DefaultThreads,
		threshold: solver.DefaultThreshold,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(op)
		}
	}
	if op.weighting == laplacian.Cotangent {
		if _, ok := topo.(mesh.Geometry); !ok {
			return nil, fmt.Errorf("New: %w", laplacian.ErrNoGeometry)
		}
	}
	if op.logger == nil {
		op.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if op.tracerProvider == nil {
		op.tracerProvider = otel.GetTracerProvider()
	}
	op.tracer = op.tracerProvider.Tracer(instrumentation)

	return op, nil
}

// VertexNumber returns the vertex count of the topology.
func (op *Operator) VertexNumber() int { return op.topo.VertexNumber() }

// EdgeNumber returns the edge count of the topology.
func (op *Operator) EdgeNumber() int { return op.topo.EdgeNumber() }

// Weighting returns the configured Laplacian weighting.
func (op *Operator) Weighting() laplacian.Weighting { return op.weighting }

// Method returns the configured method, Auto included.
func (op *Operator) Method() solver.Method { return op.method }

// Threads returns the configured worker count.
func (op *Operator) Threads() int { return op.threads }

// Resolve returns the method Execute will run first for this topology.
func (op *Operator) Resolve() (solver.Method, error) {
	return solver.Select(op.method, op.VertexNumber(), op.EdgeNumber(), op.threshold)
}
