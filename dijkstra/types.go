// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the route network.
//
// Options:
//
//	– WithMetric: which edge weight to minimise (core.MetricDistance by default, or core.MetricPrice).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source (or target) is outside [0, V).
//	– ErrUnknownMetric   if the selected metric is not a core.Metric constant.
//	– ErrNegativeWeight  if any edge carries a negative weight under the selected metric.
//	– core.ErrUnreachable from PathTo when the target is not connected to the source.
package dijkstra

import (
	"errors"
	"math"

	"github.com/bricktsre/Airline-graph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source or target index is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnknownMetric indicates an Options.Metric outside the declared core.Metric values.
	ErrUnknownMetric = errors.New("dijkstra: unknown weight metric")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Metric – the weight dimension to minimise.
type Options struct {
	Metric core.Metric
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMetric selects the weight dimension to minimise.
func WithMetric(m core.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// DefaultOptions returns Options minimising distance.
func DefaultOptions() Options {
	return Options{Metric: core.MetricDistance}
}

// Result is the shortest-path tree rooted at Source.
//
//	DistTo[v] – total selected weight of the best path Source→v (+Inf if unreachable)
//	EdgeTo[v] – last edge on that path (nil for Source and unreachable vertices)
type Result struct {
	Source int
	Metric core.Metric
	DistTo []float64
	EdgeTo []*core.Edge
}

// HasPathTo reports whether v is reachable from Source.
func (r *Result) HasPathTo(v int) bool {
	return v >= 0 && v < len(r.DistTo) && !math.IsInf(r.DistTo[v], 1)
}
