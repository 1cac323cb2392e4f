// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph weighted by distance and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/unionfind"
)

// Kruskal computes a minimum spanning forest of graph by distance.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//
// Steps:
//  1. Validate graph != nil.
//  2. Snapshot graph.Edges() (insertion order).
//  3. Stable-sort by ascending distance, so equal distances keep insertion order.
//  4. Walk the sorted edges; take an edge iff its endpoints are in different components,
//     then union them.
//  5. Stop once V−1 edges are taken or edges run out.
//
// The result has exactly V−1 edges for a connected graph and fewer otherwise; the graph
// is never modified.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]*core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	// 2-3. Edges by ascending distance, ties in insertion order.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Distance() < edges[j].Distance()
	})

	// 4. Greedy selection with a fresh union-find per call.
	var (
		numVerts    = graph.V()
		uf          = unionfind.New(numVerts)
		mst         = make([]*core.Edge, 0, max(numVerts-1, 0))
		totalWeight int64
	)
	for _, e := range edges {
		// 5. Forest complete.
		if len(mst) >= numVerts-1 {
			break
		}
		u, v := e.Endpoints()
		// Union reports false when u and v are already connected (edge would close a cycle).
		if uf.Union(u, v) {
			mst = append(mst, e)
			totalWeight += e.Distance()
		}
	}

	return mst, totalWeight, nil
}
