// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, predecessor links, and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// level by level, visiting neighbours in adjacency insertion order.
package bfs

import (
	"fmt"

	"github.com/bricktsre/Airline-graph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from src,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, src int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, src)
	}

	// Prepare walker
	n := g.V()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Source: src,
			Order:  make([]int, 0, n),
			Marked: make([]bool, n),
			DistTo: make([]int, n),
			Pred:   make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.DistTo[v] = -1
		w.res.Pred[v] = -1
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(src, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Marked[v] = true
	w.res.DistTo[v] = d
	w.res.Pred[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unmarked neighbour.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	adj, err := w.graph.Adjacent(item.v)
	if err != nil {
		return fmt.Errorf("bfs: failed to get edges of %d: %w", item.v, err)
	}
	for _, e := range adj {
		nbr, err := e.Other(item.v)
		if err != nil {
			return err
		}
		if !w.res.Marked[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}

// PathTo reconstructs the minimum-hop path from Source to dst on g.
//
// Each step back to the predecessor uses the first edge in the current vertex's
// adjacency whose other endpoint is that predecessor; this only matters when
// parallel edges exist. g must be the graph the search ran on.
//
// Returns core.ErrUnreachable (wrapped) if dst was not reached.
func (r *BFSResult) PathTo(g *core.Graph, dst int) (*core.Path, error) {
	if dst < 0 || dst >= len(r.Marked) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, dst)
	}
	if !r.Marked[dst] {
		return nil, fmt.Errorf("%w: %d from %d", core.ErrUnreachable, dst, r.Source)
	}

	// build reversed edge list
	edges := make([]*core.Edge, 0, r.DistTo[dst])
	for cur := dst; cur != r.Source; cur = r.Pred[cur] {
		e, err := edgeBetween(g, cur, r.Pred[cur])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	// reverse to get Source → dst
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &core.Path{Source: r.Source, Target: dst, Edges: edges}, nil
}

// HopPath runs BFS from src and returns the minimum-hop path to dst.
func HopPath(g *core.Graph, src, dst int, opts ...Option) (*core.Path, error) {
	res, err := BFS(g, src, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(g, dst)
}

// edgeBetween returns the first edge in v's adjacency whose other endpoint is u.
func edgeBetween(g *core.Graph, v, u int) (*core.Edge, error) {
	adj, err := g.Adjacent(v)
	if err != nil {
		return nil, err
	}
	for _, e := range adj {
		if w, _ := e.Other(v); w == u {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %d-%d", core.ErrEdgeNotFound, v, u)
}
