// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// cloneEmptyLocked returns a Graph with g's vertex count and ID counter but no edges.
// Caller holds g.mu.
func (g *Graph) cloneEmptyLocked() *Graph {
	return &Graph{
		vertexCount: g.vertexCount,
		nextEdgeID:  g.nextEdgeID,
		edges:       make([]*Edge, 0, len(g.edges)),
		adj:         make([][]*Edge, g.vertexCount),
	}
}

// Clone returns a copy of the Graph with the same edges, IDs and insertion orders.
//
// Edges are immutable and therefore shared: only the edge list and adjacency
// buckets are copied, so mutating the clone never affects g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked()
	clone.edges = append(clone.edges, g.edges...)
	for v, bucket := range g.adj {
		if len(bucket) > 0 {
			clone.adj[v] = append([]*Edge(nil), bucket...)
		}
	}

	return clone
}
