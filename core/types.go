// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, Metric, Route and Path declarations plus sentinel errors.
// Invariants:
//   - Edge values are immutable after NewEdge; identity is the *Edge pointer (and its ID once stored).
//   - Every stored edge appears in adj[v] and adj[w] exactly once; self-loops never enter a Graph.
//   - vertexCount is fixed at construction.

package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdge indicates a negative/non-finite weight, a negative or out-of-range
	// endpoint, or a self-loop.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrInvalidEndpoint indicates Other(v) was called with a vertex that is not incident to the edge.
	ErrInvalidEndpoint = errors.New("core: vertex is not an endpoint of edge")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrVertexNotFound indicates a vertex index outside [0, V).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnreachable indicates that no path connects the requested source and target.
	ErrUnreachable = errors.New("core: target unreachable from source")

	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")
)

// Metric selects which of the two edge weights an algorithm minimizes.
type Metric int

const (
	// MetricDistance selects Edge.Distance.
	MetricDistance Metric = iota

	// MetricPrice selects Edge.Price.
	MetricPrice
)

// Valid reports whether m is one of the declared metrics.
func (m Metric) Valid() bool { return m == MetricDistance || m == MetricPrice }

// String implements fmt.Stringer.
func (m Metric) String() string {
	switch m {
	case MetricDistance:
		return "distance"
	case MetricPrice:
		return "price"
	default:
		return "metric(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMetric maps "distance" or "price" to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "distance":
		return MetricDistance, nil
	case "price":
		return MetricPrice, nil
	default:
		return 0, fmt.Errorf("core: unknown metric %q", s)
	}
}

// Edge is an undirected route between two vertices carrying a distance and a price.
//
// The endpoints are unordered: Either returns the first one given to NewEdge and
// Other returns the opposite endpoint. All fields are unexported, so an Edge cannot
// be mutated once built; removing a route removes the *Edge from its Graph.
type Edge struct {
	id       string
	v, w     int
	distance int64
	price    float64
}

// NewEdge validates and builds an Edge.
//
// Errors:
//   - ErrInvalidEdge if v or w is negative, v == w, distance < 0,
//     or price is negative, NaN or infinite.
//
// Complexity: O(1).
func NewEdge(v, w int, distance int64, price float64) (*Edge, error) {
	switch {
	case v < 0 || w < 0:
		return nil, fmt.Errorf("%w: negative endpoint (%d,%d)", ErrInvalidEdge, v, w)
	case v == w:
		return nil, fmt.Errorf("%w: self-loop at %d", ErrInvalidEdge, v)
	case distance < 0:
		return nil, fmt.Errorf("%w: negative distance %d", ErrInvalidEdge, distance)
	case price < 0 || math.IsNaN(price) || math.IsInf(price, 0):
		return nil, fmt.Errorf("%w: bad price %v", ErrInvalidEdge, price)
	}

	return &Edge{v: v, w: w, distance: distance, price: price}, nil
}

// ID returns the identifier assigned when the edge was stored in a Graph ("" before that).
func (e *Edge) ID() string { return e.id }

// Either returns one endpoint of e.
func (e *Edge) Either() int { return e.v }

// Endpoints returns both endpoints in construction order.
func (e *Edge) Endpoints() (int, int) { return e.v, e.w }

// Other returns the endpoint of e that is not v.
// Returns ErrInvalidEndpoint if v is neither endpoint.
func (e *Edge) Other(v int) (int, error) {
	switch v {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return -1, fmt.Errorf("%w: %d not in %s", ErrInvalidEndpoint, v, e)
	}
}

// Connects reports whether e joins the unordered pair {a, b}.
func (e *Edge) Connects(a, b int) bool {
	return (e.v == a && e.w == b) || (e.v == b && e.w == a)
}

// Distance returns the distance weight.
func (e *Edge) Distance() int64 { return e.distance }

// Price returns the price weight.
func (e *Edge) Price() float64 { return e.price }

// Weight returns the weight selected by m as float64.
// An unknown metric yields NaN; engines validate the metric before relaxing.
func (e *Edge) Weight(m Metric) float64 {
	switch m {
	case MetricDistance:
		return float64(e.distance)
	case MetricPrice:
		return e.price
	default:
		return math.NaN()
	}
}

// Route returns the plain tuple view of e.
func (e *Edge) Route() Route {
	return Route{V: e.v, W: e.w, Distance: e.distance, Price: e.price}
}

// String renders e as "v-w(distance, price)".
func (e *Edge) String() string {
	return fmt.Sprintf("%d-%d(%d, %s)", e.v, e.w, e.distance, strconv.FormatFloat(e.price, 'f', -1, 64))
}

// Route is the construction tuple consumed by Graph.AddEdges and produced by Graph.Routes.
type Route struct {
	V, W     int
	Distance int64
	Price    float64
}

// Graph is an undirected multigraph over the fixed vertex set [0, V).
//
// edges keeps insertion order; adj[v] keeps the insertion order of the edges incident to v.
// mu guards edges, adj and nextEdgeID. Engines read through Edges/Adjacent snapshots and
// never mutate the graph.
type Graph struct {
	mu sync.RWMutex

	vertexCount int
	nextEdgeID  uint64
	edges       []*Edge
	adj         [][]*Edge
}
