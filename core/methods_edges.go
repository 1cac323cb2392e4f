// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdges/RemoveEdge/RemoveEdgeByID/Edges/Routes,
//       plus nextEdgeID().
// Determinism:
//   - Edges() and Routes() return insertion order.
//   - RemoveEdge(a, b) removes the first edge in insertion order joining {a, b}.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge builds an edge between a and b and stores it.
//
// Steps:
//  1. Check a and b against [0, V) (the I/O layer validates names; this keeps adj indexing safe).
//  2. Build the edge via NewEdge (weights, self-loop).
//  3. Lock, assign the next ID, append to edges, adj[a] and adj[b].
//
// Parallel edges between the same pair are allowed and kept in insertion order.
//
// Errors:
//   - ErrInvalidEdge for out-of-range endpoints or any NewEdge violation.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int, distance int64, price float64) (*Edge, error) {
	// 1) Range check
	if !g.HasVertex(a) || !g.HasVertex(b) {
		return nil, fmt.Errorf("%w: endpoint out of range (%d,%d) for V=%d", ErrInvalidEdge, a, b, g.vertexCount)
	}
	// 2) Construction rules
	e, err := NewEdge(a, b, distance, price)
	if err != nil {
		return nil, err
	}

	// 3) Store and link adjacency
	g.mu.Lock()
	defer g.mu.Unlock()
	e.id = nextEdgeID(g)
	g.edges = append(g.edges, e)
	g.adj[a] = append(g.adj[a], e)
	g.adj[b] = append(g.adj[b], e)

	return e, nil
}

// AddEdges stores every route in order. It stops at the first invalid route and
// returns its position; routes before it stay in the graph.
// Complexity: O(len(routes)).
func (g *Graph) AddEdges(routes []Route) error {
	for i, r := range routes {
		if _, err := g.AddEdge(r.V, r.W, r.Distance, r.Price); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
	}

	return nil
}

// RemoveEdge removes the first edge, in insertion order, whose unordered endpoint pair
// equals {a, b}, and returns it.
//
// When parallel edges exist only one is removed; callers that need a specific one
// should hold its ID and use RemoveEdgeByID.
//
// Errors:
//   - ErrEdgeNotFound if no edge joins a and b.
//
// Complexity: O(E + deg(a) + deg(b)).
func (g *Graph) RemoveEdge(a, b int) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var e *Edge
	for _, cand := range g.edges {
		if cand.Connects(a, b) {
			e = cand
			break
		}
	}
	if e == nil {
		return nil, fmt.Errorf("%w: no route %d-%d", ErrEdgeNotFound, a, b)
	}
	unlinkEdge(g, e)

	return e, nil
}

// RemoveEdgeByID removes the edge with the given identity and returns it.
//
// Errors:
//   - ErrEdgeNotFound if no stored edge has that ID.
//
// Complexity: O(E + deg(v) + deg(w)).
func (g *Graph) RemoveEdgeByID(id string) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		if e.id == id {
			unlinkEdge(g, e)
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: id %q", ErrEdgeNotFound, id)
}

// Edges returns a snapshot of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Routes returns the tuple view of Edges(), suitable for rebuilding an equal graph.
// Complexity: O(E).
func (g *Graph) Routes() []Route {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Route, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.Route())
	}

	return out
}

// unlinkEdge drops e from edges and from both adjacency buckets, preserving the
// relative order of the remaining entries. Caller holds the write lock.
func unlinkEdge(g *Graph, e *Edge) {
	g.edges = removePtr(g.edges, e)
	g.adj[e.v] = removePtr(g.adj[e.v], e)
	g.adj[e.w] = removePtr(g.adj[e.w], e)
}

// removePtr deletes the first occurrence of e by identity.
func removePtr(s []*Edge, e *Edge) []*Edge {
	for i, x := range s {
		if x == e {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// nextEdgeID returns a new unique textual edge ID. Caller holds the write lock.
func nextEdgeID(g *Graph) string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
