// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a specified root vertex using an indexed min-priority queue.
package prim_kruskal

import (
	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/indexpq"
)

// Prim computes a minimum spanning forest of graph by distance, growing the first tree from root.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil.
//   - core.ErrVertexNotFound: if the graph has vertices and root is outside [0, V).
//
// Steps:
//  1. Validate graph and root.
//  2. Grow a tree from root: extract the closest outside vertex, record the edge that
//     reached it, scan its incident edges and insert or decrease-key each unvisited neighbour.
//  3. Repeat step 2 from every still-unvisited vertex in ascending order (one tree per component).
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(graph *core.Graph, root int) ([]*core.Edge, int64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.V()
	if n == 0 {
		return []*core.Edge{}, 0, nil
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	p := &primRunner{
		g:       graph,
		visited: make([]bool, n),
		edgeTo:  make([]*core.Edge, n),
		distTo:  make([]int64, n),
		pq:      indexpq.New[int64](n),
		mst:     make([]*core.Edge, 0, n-1),
	}

	// 2. Root tree first.
	if err := p.grow(root); err != nil {
		return nil, 0, err
	}
	// 3. Remaining components.
	for v := 0; v < n; v++ {
		if !p.visited[v] {
			if err := p.grow(v); err != nil {
				return nil, 0, err
			}
		}
	}

	return p.mst, p.total, nil
}

// primRunner holds the transient state of one Prim execution.
type primRunner struct {
	g       *core.Graph
	visited []bool               // vertex already in the forest
	edgeTo  []*core.Edge         // shortest known edge from the tree to v
	distTo  []int64              // distance of edgeTo[v]; valid while v is enqueued
	pq      *indexpq.IndexMinPQ[int64]
	mst     []*core.Edge
	total   int64
}

// grow builds one tree starting at s.
func (p *primRunner) grow(s int) error {
	if err := p.pq.Insert(s, 0); err != nil {
		return err
	}
	for !p.pq.IsEmpty() {
		v, _, err := p.pq.DeleteMin()
		if err != nil {
			return err
		}
		if e := p.edgeTo[v]; e != nil {
			p.mst = append(p.mst, e)
			p.total += e.Distance()
		}
		if err = p.scan(v); err != nil {
			return err
		}
	}

	return nil
}

// scan marks v visited and offers every edge to an unvisited neighbour.
func (p *primRunner) scan(v int) error {
	p.visited[v] = true
	adj, err := p.g.Adjacent(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		w, err := e.Other(v)
		if err != nil {
			return err
		}
		if p.visited[w] {
			continue
		}
		d := e.Distance()
		switch {
		case !p.pq.Contains(w) && p.edgeTo[w] == nil:
			// First edge seen into w.
			p.edgeTo[w], p.distTo[w] = e, d
			if err = p.pq.Insert(w, d); err != nil {
				return err
			}
		case d < p.distTo[w]:
			p.edgeTo[w], p.distTo[w] = e, d
			if err = p.pq.DecreaseKey(w, d); err != nil {
				return err
			}
		}
	}

	return nil
}
