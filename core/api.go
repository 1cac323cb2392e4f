// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor and read-only getters.
// Policy:
//   - No algorithms here.
//   - Getters take the read lock; none of them allocate.

package core

// NewGraph creates a Graph with vertexCount isolated vertices [0, vertexCount).
//
// The vertex count never changes afterwards; edges are added with AddEdge.
//
// Errors:
//   - ErrNegativeVertexCount if vertexCount < 0.
//
// Complexity:
//   - Time O(V), Space O(V) for the empty adjacency buckets.
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}

	return &Graph{
		vertexCount: vertexCount,
		adj:         make([][]*Edge, vertexCount), // nil buckets grow on first append
	}, nil
}

// V returns the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) V() int {
	// vertexCount is immutable; no lock required.
	return g.vertexCount
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.vertexCount
}

// EdgeCount returns the number of stored edges (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the number of edges incident to v.
//
// Errors:
//   - ErrVertexNotFound if v is outside [0, V).
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}
