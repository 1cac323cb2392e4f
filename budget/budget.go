// Package budget lists itineraries whose total price stays within a ceiling.
//
// For each origin a single depth-first spanning tree is built (package dfs) and the
// tree path to every other reachable city is priced edge by edge from the origin.
// A path is reported only if its running price never exceeds the ceiling; the
// ceiling itself is inclusive.
//
// Known limitation: the reported path for a pair is the spanning-tree path, not the
// cheapest one. A pair may be absent even though a cheaper route exists outside the
// tree, and the same city pair can appear twice, once per origin.
//
// Complexity:
//
//   - Paths:     O(V·(V+E)) time, one tree per origin.
//   - PathsFrom: O(V+E) time.
package budget

import (
	"errors"
	"fmt"
	"math"

	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/dfs"
)

// ErrBadMaxPrice is returned for a negative or NaN ceiling.
var ErrBadMaxPrice = errors.New("budget: max price must be a non-negative number")

// Paths returns every within-budget tree path for every origin.
// Results are ordered by origin, then by destination, both ascending.
func Paths(g *core.Graph, maxPrice float64) ([]*core.Path, error) {
	if g == nil {
		return nil, dfs.ErrGraphNil
	}
	if err := checkCeiling(maxPrice); err != nil {
		return nil, err
	}

	var out []*core.Path
	for root := 0; root < g.V(); root++ {
		paths, err := PathsFrom(g, root, maxPrice)
		if err != nil {
			return nil, err
		}
		out = append(out, paths...)
	}

	return out, nil
}

// PathsFrom returns the within-budget tree paths from a single origin, ordered by destination.
func PathsFrom(g *core.Graph, root int, maxPrice float64) ([]*core.Path, error) {
	if err := checkCeiling(maxPrice); err != nil {
		return nil, err
	}
	tree, err := dfs.Tree(g, root)
	if err != nil {
		return nil, err
	}

	var out []*core.Path
	for dst := 0; dst < g.V(); dst++ {
		if dst == root || !tree.HasPathTo(dst) {
			continue
		}
		p, err := tree.PathTo(dst)
		if err != nil {
			return nil, err
		}
		if withinBudget(p, maxPrice) {
			out = append(out, p)
		}
	}

	return out, nil
}

// priceTolerance is the relative slack allowed when comparing a summed price to the
// ceiling. Decimal cent prices do not add up exactly in float64 (0.10 + 0.20 > 0.30).
const priceTolerance = 1e-9

// withinBudget walks p from its source and stops as soon as the running price
// exceeds maxPrice.
func withinBudget(p *core.Path, maxPrice float64) bool {
	limit := maxPrice + priceTolerance*math.Max(1, maxPrice)
	var total float64
	for _, e := range p.Edges {
		total += e.Price()
		if total > limit {
			return false
		}
	}

	return true
}

func checkCeiling(maxPrice float64) error {
	if math.IsNaN(maxPrice) || maxPrice < 0 {
		return fmt.Errorf("%w: %v", ErrBadMaxPrice, maxPrice)
	}

	return nil
}
