// Package dfs builds depth-first spanning trees on core.Graph.
//
// The traversal is iterative: an explicit stack of frames (vertex, next adjacency
// index) replaces recursion so that deep graphs cannot exhaust the goroutine stack.
// Discovery order and EdgeTo assignment are exactly those of the textbook recursive
// form that scans each adjacency list in insertion order:
//
//	dfs(v): mark v; for e in adj(v): w = e.Other(v); if !marked[w] { edgeTo[w] = e; dfs(w) }
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E). Per-vertex metadata is O(V); each live frame holds a copy
//     of its vertex's adjacency, O(E) summed over the stack.
package dfs

import (
	"fmt"

	"github.com/bricktsre/Airline-graph/core"
)

// frame is one suspended activation of the recursive form.
type frame struct {
	v    int          // vertex being expanded
	adj  []*core.Edge // snapshot of v's adjacency
	next int          // index of the next edge to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph   // underlying graph
	opts  DFSOptions    // traversal options
	res   *SpanningTree // result collector
	stack []frame       // explicit call stack
}

// Tree performs depth-first search on g from root and returns the spanning tree
// of root's component.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if root is outside [0, V).
//   - any error returned by OnVisit (wrapped).
func Tree(g *core.Graph, root int, opts ...Option) (*SpanningTree, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify root
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, root)
	}

	// 4. Initialize result with capacity hint
	n := g.V()
	res := &SpanningTree{
		Root:   root,
		Order:  make([]int, 0, n),
		Marked: make([]bool, n),
		EdgeTo: make([]*core.Edge, n),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}
	if err := walker.traverse(root); err != nil {
		return res, err
	}

	return res, nil
}

// discover marks v, runs the pre-order hook and pushes v's frame.
func (w *dfsWalker) discover(v int, via *core.Edge) error {
	w.res.Marked[v] = true
	w.res.EdgeTo[v] = via
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	adj, err := w.graph.Adjacent(v)
	if err != nil {
		return fmt.Errorf("dfs: Adjacent(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, adj: adj})

	return nil
}

// traverse runs the frame loop until the stack drains.
func (w *dfsWalker) traverse(root int) error {
	if err := w.discover(root, nil); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// 1. Frame exhausted: return to the caller.
		if top.next == len(top.adj) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 2. Examine the next edge; descend into an unmarked neighbour.
		e := top.adj[top.next]
		top.next++
		nbr, err := e.Other(top.v)
		if err != nil {
			return err
		}
		if w.res.Marked[nbr] {
			continue
		}
		// discover may grow the stack, so top must not be used after this point.
		if err = w.discover(nbr, e); err != nil {
			return err
		}
	}

	return nil
}
