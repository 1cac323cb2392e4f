// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, predecessor links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - DistTo: hop count per vertex (-1 if unreached)
//   - Pred:   predecessor per vertex in the BFS tree (-1 for the root)
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Minimum-connection itineraries: distance and price are ignored, every route counts as one hop.
//
// Determinism
//
//	Neighbours are enqueued in adjacency insertion order, so the visit sequence and the
//	reconstructed path are fully reproducible. When parallel routes join two cities the
//	first one inserted is reported.
//
// Complexity
//
//	Time:   O(V + E)
//	Memory: O(V)
//
// Example
//
//	p, err := bfs.HopPath(g, 0, 3)
//	if errors.Is(err, core.ErrUnreachable) { ... }
//	fmt.Println(p.Hops(), p.Vertices())
package bfs
