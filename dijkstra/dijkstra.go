// Package dijkstra implements Dijkstra's shortest-path algorithm on the route network,
// minimising either distance or price with a single engine.
//
// Dijkstra computes the minimum-weight path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using an indexed
// min-priority queue, relaxing edges and decreasing keys in place.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Each vertex is inserted and extracted at most once.
//   - Each edge relaxation costs at most one DecreaseKey, O(log V).
//   - Space: O(V) for distTo, edgeTo and the queue.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights under the
//     selected metric and fail fast. Edge construction already forbids them; the scan keeps
//     the engine safe on its own.
//   - No early exit: the full shortest-path tree from the source is always computed.
//   - Relaxation is strict (<): on equal totals the first path found is kept.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/indexpq"
)

// Dijkstra computes the shortest-path tree from source under the selected metric.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Metric must be valid (ErrUnknownMetric).
//  3. source must be in [0, V) (ErrVertexNotFound).
//  4. No edge may have a negative selected weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.Metric.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, cfg.Metric)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	// 2) Pre-scan all edges under the selected metric. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if w := e.Weight(cfg.Metric); w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: edge %s %s=%v", ErrNegativeWeight, e, cfg.Metric, w)
		}
	}

	// 3) Initialise and run.
	n := g.V()
	r := &runner{
		g:      g,
		metric: cfg.Metric,
		distTo: make([]float64, n),
		edgeTo: make([]*core.Edge, n),
		pq:     indexpq.New[float64](n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Metric: cfg.Metric, DistTo: r.distTo, EdgeTo: r.edgeTo}, nil
}

// ShortestPath runs Dijkstra from source and returns the path to target.
//
// Returns core.ErrUnreachable (wrapped) when target is not connected to source.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (*core.Path, error) {
	res, err := Dijkstra(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}

// PathTo reconstructs the path Source→v by following EdgeTo backwards and reversing.
//
// Errors:
//   - ErrVertexNotFound if v is outside the graph.
//   - core.ErrUnreachable if DistTo[v] is +Inf.
func (r *Result) PathTo(v int) (*core.Path, error) {
	if v < 0 || v >= len(r.DistTo) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, v)
	}
	if !r.HasPathTo(v) {
		return nil, fmt.Errorf("%w: %d from %d", core.ErrUnreachable, v, r.Source)
	}

	// Walk back to the source collecting edges, then reverse.
	var edges []*core.Edge
	for cur := v; cur != r.Source; {
		e := r.EdgeTo[cur]
		edges = append(edges, e)
		prev, err := e.Other(cur)
		if err != nil {
			return nil, err
		}
		cur = prev
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &core.Path{Source: r.Source, Target: v, Edges: edges}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g      *core.Graph                  // The input graph; read-only within Dijkstra.
	metric core.Metric                  // Selected weight.
	distTo []float64                    // Best known total weight from the source.
	edgeTo []*core.Edge                 // Last edge on the best known path.
	pq     *indexpq.IndexMinPQ[float64] // Vertices keyed by distTo.
}

// init sets every distance to +∞, the source to 0, and enqueues the source.
func (r *runner) init(source int) {
	for v := range r.distTo {
		r.distTo[v] = math.Inf(1)
	}
	r.distTo[source] = 0
	// Fresh queue: Insert cannot fail here.
	_ = r.pq.Insert(source, 0)
}

// process extracts the closest vertex until the queue is exhausted.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, _, err := r.pq.DeleteMin()
		if err != nil {
			return err
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge incident to u and improves distTo of the far endpoint when
// distTo[u] + w(e) is strictly smaller, inserting or decreasing its key.
func (r *runner) relax(u int) error {
	adj, err := r.g.Adjacent(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %d: %w", u, err)
	}

	for _, e := range adj {
		v, err := e.Other(u)
		if err != nil {
			return err
		}
		newDist := r.distTo[u] + e.Weight(r.metric)
		if newDist >= r.distTo[v] {
			continue
		}
		r.distTo[v] = newDist
		r.edgeTo[v] = e
		if r.pq.Contains(v) {
			err = r.pq.DecreaseKey(v, newDist)
		} else {
			err = r.pq.Insert(v, newDist)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
