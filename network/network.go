// Package network binds city names to a core.Graph and reads and writes the
// route network text format.
//
// File format (line oriented, indices 1-based):
//
//	4                    city count V
//	Pittsburgh           V city names, one per line (may contain spaces)
//	Philadelphia
//	Harrisburg
//	Erie
//	1 2 305 150.00       then whitespace-separated "v w distance price" tuples
//	1 3 204 110.50
//
// Distances are integers; prices are decimal numbers.
package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bricktsre/Airline-graph/core"
)

// Sentinel errors for name resolution and file parsing.
var (
	ErrBadFormat     = errors.New("network: malformed route file")
	ErrUnknownCity   = errors.New("network: unknown city")
	ErrDuplicateCity = errors.New("network: duplicate city name")
)

// Network is a route graph plus the city name table that labels its vertices.
type Network struct {
	graph  *core.Graph
	cities []string
	index  map[string]int
}

// Route is an edge resolved to city names.
type Route struct {
	ID       string
	From     string
	To       string
	Distance int64
	Price    float64
}

// String renders "From to To is N miles for $P".
func (r Route) String() string {
	return fmt.Sprintf("%s to %s is %d miles for $%.2f", r.From, r.To, r.Distance, r.Price)
}

// New creates a network with no routes over the given cities.
// Names are matched exactly; blank or repeated names are rejected.
func New(cities []string) (*Network, error) {
	g, err := core.NewGraph(len(cities))
	if err != nil {
		return nil, err
	}
	n := &Network{
		graph:  g,
		cities: make([]string, len(cities)),
		index:  make(map[string]int, len(cities)),
	}
	for i, name := range cities {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: city %d has an empty name", ErrBadFormat, i+1)
		}
		if _, dup := n.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, name)
		}
		n.cities[i] = name
		n.index[name] = i
	}

	return n, nil
}

// Graph exposes the underlying graph for the algorithm packages.
func (n *Network) Graph() *core.Graph { return n.graph }

// Clone returns an independent copy; edits to the clone leave n untouched.
func (n *Network) Clone() *Network {
	index := make(map[string]int, len(n.index))
	for k, v := range n.index {
		index[k] = v
	}

	return &Network{graph: n.graph.Clone(), cities: n.Cities(), index: index}
}

// Cities returns a copy of the city table in vertex order.
func (n *Network) Cities() []string {
	return append([]string(nil), n.cities...)
}

// Index resolves a city name to its vertex.
func (n *Network) Index(name string) (int, error) {
	v, ok := n.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	return v, nil
}

// City returns the name of vertex v.
func (n *Network) City(v int) (string, error) {
	if v < 0 || v >= len(n.cities) {
		return "", fmt.Errorf("%w: vertex %d", ErrUnknownCity, v)
	}

	return n.cities[v], nil
}

// AddRoute adds a route between two named cities.
func (n *Network) AddRoute(from, to string, distance int64, price float64) (*core.Edge, error) {
	v, w, err := n.resolve(from, to)
	if err != nil {
		return nil, err
	}

	return n.graph.AddEdge(v, w, distance, price)
}

// RemoveRoute removes the first-inserted route between two named cities.
func (n *Network) RemoveRoute(from, to string) (*core.Edge, error) {
	v, w, err := n.resolve(from, to)
	if err != nil {
		return nil, err
	}

	return n.graph.RemoveEdge(v, w)
}

// Routes lists every route in insertion order.
func (n *Network) Routes() []Route {
	edges := n.graph.Edges()
	out := make([]Route, len(edges))
	for i, e := range edges {
		out[i] = n.Describe(e)
	}

	return out
}

// Describe resolves e's endpoints to names.
func (n *Network) Describe(e *core.Edge) Route {
	v, w := e.Endpoints()

	return Route{
		ID:       e.ID(),
		From:     n.cities[v],
		To:       n.cities[w],
		Distance: e.Distance(),
		Price:    e.Price(),
	}
}

// PathNames returns the city names along p in walk order.
func (n *Network) PathNames(p *core.Path) []string {
	vs := p.Vertices()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = n.cities[v]
	}

	return out
}

func (n *Network) resolve(from, to string) (int, int, error) {
	v, err := n.Index(from)
	if err != nil {
		return 0, 0, err
	}
	w, err := n.Index(to)
	if err != nil {
		return 0, 0, err
	}

	return v, w, nil
}
