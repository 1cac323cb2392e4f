// SPDX-License-Identifier: MIT

package core

// Path is an ordered walk of edges from Source to Target.
//
// Edges[0] is incident to Source and Edges[len-1] to Target; consecutive edges share
// an endpoint. A zero-hop path (Source == Target) has no edges.
type Path struct {
	Source int
	Target int
	Edges  []*Edge
}

// Hops returns the number of edges on the path.
func (p *Path) Hops() int { return len(p.Edges) }

// Vertices returns Source, every intermediate vertex, and Target in walk order.
func (p *Path) Vertices() []int {
	out := make([]int, 0, len(p.Edges)+1)
	cur := p.Source
	out = append(out, cur)
	for _, e := range p.Edges {
		// Edges on a Path are chained by construction, Other cannot fail here.
		next, err := e.Other(cur)
		if err != nil {
			break
		}
		out = append(out, next)
		cur = next
	}

	return out
}

// Distance sums the distance weights.
func (p *Path) Distance() int64 {
	var total int64
	for _, e := range p.Edges {
		total += e.distance
	}

	return total
}

// Price sums the price weights from Source towards Target.
func (p *Path) Price() float64 {
	var total float64
	for _, e := range p.Edges {
		total += e.price
	}

	return total
}

// Weight sums the weights selected by m from Source towards Target.
func (p *Path) Weight(m Metric) float64 {
	var total float64
	for _, e := range p.Edges {
		total += e.Weight(m)
	}

	return total
}
