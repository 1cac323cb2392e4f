// Package dfs builds depth-first spanning trees on a core.Graph.
//
// What:
//
//   - Tree(g, root): one depth-first traversal from root recording, per vertex,
//     whether it was reached (Marked) and the tree edge that discovered it (EdgeTo).
//   - SpanningTree.PathTo(v): the unique root→v path inside that tree.
//
// A spanning tree captures exactly one path per reachable vertex. That path is
// neither the shortest nor the cheapest; it is whatever the insertion-ordered
// adjacency scan happened to reach first.
//
// Why:
//
//   - Budget-constrained itinerary listing (package budget) walks one tree per origin.
//   - Connectivity checks: Marked answers "same component as root".
//
// Complexity:
//
//   - Time O(V+E), Memory O(V+E) (frames keep adjacency snapshots)
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound; core.ErrUnreachable from PathTo.
package dfs
