// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Adjacent, AdjacentVertices).
// Determinism:
//   - Adjacent(v) returns incident edges in insertion order.
//   - AdjacentVertices(v) returns unique neighbours in order of first incident edge.

package core

// Adjacent returns a snapshot of the edges incident to v in insertion order.
//
// Traversal engines depend on this order: DFS tree shape, BFS predecessor choice and
// Dijkstra tie handling all follow it.
//
// Errors:
//   - ErrVertexNotFound if v is outside [0, V).
//
// Complexity: O(deg(v)).
func (g *Graph) Adjacent(v int) ([]*Edge, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// AdjacentVertices returns the distinct neighbours of v, ordered by their first
// incident edge. Parallel edges contribute one entry.
//
// Errors:
//   - ErrVertexNotFound if v is outside [0, V).
//
// Complexity: O(deg(v)).
func (g *Graph) AdjacentVertices(v int) ([]int, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int]struct{}, len(g.adj[v]))
	out := make([]int, 0, len(g.adj[v]))
	for _, e := range g.adj[v] {
		w := e.w
		if w == v {
			w = e.v
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out, nil
}
