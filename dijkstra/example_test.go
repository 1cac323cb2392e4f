// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/dijkstra"
)

// ExampleShortestPath compares the shortest and the cheapest itinerary between two cities.
func ExampleShortestPath() {
	// 1) Three cities: a direct long-haul and a cheaper connection through city 1.
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 2, 900, 420)
	g.AddEdge(0, 1, 500, 120)
	g.AddEdge(1, 2, 600, 150)

	// 2) Shortest by distance (the default metric).
	p, _ := dijkstra.ShortestPath(g, 0, 2)
	fmt.Println("shortest:", p.Vertices(), p.Distance())

	// 3) Cheapest by price.
	p, _ = dijkstra.ShortestPath(g, 0, 2, dijkstra.WithMetric(core.MetricPrice))
	fmt.Println("cheapest:", p.Vertices(), p.Price())

	// Output:
	// shortest: [0 2] 900
	// cheapest: [0 1 2] 270
}

// ExampleResult_PathTo shows the unreachable case.
func ExampleResult_PathTo() {
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 1, 10, 1)

	res, _ := dijkstra.Dijkstra(g, 0)
	_, err := res.PathTo(2)
	fmt.Println(err)

	// Output:
	// core: target unreachable from source: 2 from 0
}
