// Package core defines the route network: an undirected multigraph over a fixed
// set of integer vertices [0, V) whose edges carry two independent non-negative
// weights, a distance and a price.
//
// The Graph G = (V,E):
//
//   - Fixed vertex count, chosen at NewGraph and never resized.
//   - Edges kept in insertion order; parallel edges between the same pair are allowed.
//   - adjacency[v] lists the incident edges of v in insertion order.
//   - Self-loops are rejected (ErrInvalidEdge).
//   - Stable edge identities ("e1", "e2", ...) assigned on insertion.
//
// Core Methods:
//
//	NewGraph(v int) (*Graph, error)                                     // O(V)
//	AddEdge(a, b int, distance int64, price float64) (*Edge, error)     // O(1)†
//	AddEdges(routes []Route) error                                      // O(R)
//	RemoveEdge(a, b int) (*Edge, error)      // first match by endpoint pair, O(E)
//	RemoveEdgeByID(id string) (*Edge, error) // by identity, O(E)
//	Edges() []*Edge                          // insertion order, O(E)
//	Routes() []Route                         // tuple view, O(E)
//	Adjacent(v int) ([]*Edge, error)         // insertion order, O(deg v)
//	AdjacentVertices(v int) ([]int, error)   // unique neighbours, O(deg v)
//	Clone() *Graph                           // copy shares immutable edges, O(V+E)
//
// Edge is immutable: Either/Other/Endpoints return endpoints, Distance/Price/Weight
// the weights. Other(v) on a vertex that is not an endpoint returns ErrInvalidEndpoint.
//
// Metric selects the weight dimension (MetricDistance, MetricPrice) consumed by the
// shortest-path engine; Path is the shared result shape of the path engines.
//
// Errors:
//
//	ErrInvalidEdge         – negative/non-finite weight, bad endpoint, self-loop
//	ErrInvalidEndpoint     – Other(v) with a non-incident vertex
//	ErrEdgeNotFound        – removal or lookup of an absent edge
//	ErrVertexNotFound      – vertex index outside [0, V)
//	ErrUnreachable         – no path between a source and a target
//	ErrNegativeVertexCount – NewGraph(v) with v < 0
//
// † amortized: slice appends.
//
// A Graph guards its storage with a RWMutex so that concurrent readers are safe, but
// the engines built on it are synchronous, single-threaded calls; callers interleaving
// AddEdge/RemoveEdge with traversals must order those calls themselves.
package core
