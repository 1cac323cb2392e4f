// Package airlinegraph is an in-memory route network: cities as vertices, routes as
// undirected edges carrying a distance and a price, and the classic queries over it.
//
// What is in the box
//
//	• core/          Graph, Edge, Path; insertion-ordered multigraph over [0, V)
//	• unionfind/     disjoint sets (path halving, union by rank)
//	• indexpq/       indexed min-priority queue with decrease-key
//	• prim_kruskal/  minimum spanning tree/forest by distance (Kruskal, Prim)
//	• dijkstra/      shortest path by distance or by price, one engine
//	• bfs/           fewest-connections path
//	• dfs/           depth-first spanning trees (iterative)
//	• budget/        itineraries priced under a ceiling, one per city pair per origin
//	• network/       city names and the route file format
//	• builder/       deterministic synthetic networks for tests and benchmarks
//	• config/        YAML settings for the CLI
//	• cmd/routenet/  the command-line front end
//
// Quick example:
//
//	n, _ := network.LoadFile("airline_data.txt")
//	from, _ := n.Index("Pittsburgh")
//	to, _ := n.Index("Erie")
//	p, _ := dijkstra.ShortestPath(n.Graph(), from, to, dijkstra.WithMetric(core.MetricPrice))
//	fmt.Println(n.PathNames(p), p.Price())
//
//	go install github.com/bricktsre/Airline-graph/cmd/routenet@latest
package airlinegraph
