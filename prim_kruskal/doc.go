// Package prim_kruskal computes minimum spanning forests of a *core.Graph under the
// distance weight: Kruskal's algorithm and an eager variant of Prim's algorithm.
//
// What & Why
//
//   - A minimum spanning tree of a connected route network is the cheapest (by total
//     distance) set of V−1 routes that still connects every city. On a disconnected
//     network both algorithms return a spanning forest: one tree per component,
//     V−c edges for c components. A disconnected network is not an error.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]*core.Edge, int64, error)
//
//   - Strategy: order all edges by distance, ties by insertion order (stable sort over
//     g.Edges()), then take each edge whose endpoints lie in different union-find
//     components. Stop after V−1 edges or when edges run out.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, root int) ([]*core.Edge, int64, error)
//
//   - Strategy: grow a tree from root using an indexed min-priority queue keyed by vertex,
//     holding for each outside vertex the shortest known edge into the tree (decrease-key
//     instead of lazy duplicates). When the queue drains, restart from the lowest
//     unvisited vertex so that every component gets a tree.
//
//   - Complexity: O(E log V) time, O(V) space.
//
// Determinism
//
//   - Kruskal: equal distances are taken in edge insertion order.
//   - Prim: adjacency is scanned in insertion order, the queue breaks priority ties by
//     the smaller vertex index, and edges are reported in the order their far vertex
//     joins the tree.
//
// Both return the same total distance; with distinct distances they return the same edge set.
//
// Error Conditions
//
//   - ErrInvalidGraph  – graph is nil.
//   - ErrUnknownMethod – Compute was given an unknown method name.
//   - core.ErrVertexNotFound (Prim only) – root outside [0, V) on a non-empty graph.
package prim_kruskal
