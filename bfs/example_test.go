// Package bfs_test provides runnable examples for the bfs package.
package bfs_test

import (
	"fmt"

	"github.com/bricktsre/Airline-graph/bfs"
	"github.com/bricktsre/Airline-graph/core"
)

// ExampleHopPath finds the itinerary with the fewest connections.
func ExampleHopPath() {
	// 0 -- 1 -- 2 -- 3, plus a long direct route 0 -- 3.
	g, _ := core.NewGraph(4)
	g.AddEdge(0, 1, 100, 50)
	g.AddEdge(1, 2, 100, 50)
	g.AddEdge(2, 3, 100, 50)
	g.AddEdge(0, 3, 900, 400)

	p, _ := bfs.HopPath(g, 0, 3)
	fmt.Println("hops:", p.Hops(), "via", p.Vertices())

	// Output:
	// hops: 1 via [0 3]
}

// ExampleBFS prints hop distances from a single origin.
func ExampleBFS() {
	g, _ := core.NewGraph(5)
	g.AddEdge(0, 1, 1, 1)
	g.AddEdge(0, 2, 1, 1)
	g.AddEdge(2, 3, 1, 1)

	res, _ := bfs.BFS(g, 0)
	fmt.Println("order:", res.Order)
	fmt.Println("dist: ", res.DistTo)

	// Output:
	// order: [0 1 2 3]
	// dist:  [0 1 1 2 -1]
}
