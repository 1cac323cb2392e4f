// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Checks that are shared by the method, clone and concurrency tests.

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/bricktsre/Airline-graph/core"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3

	VOutOfRange = 99
)

// scenarioRoutes is the four-vertex network used throughout the engine tests:
// 0-1 (10, 5.0), 1-2 (20, 8.0), 0-2 (25, 3.0), 2-3 (5, 1.0).
var scenarioRoutes = []core.Route{
	{V: V0, W: V1, Distance: 10, Price: 5.0},
	{V: V1, W: V2, Distance: 20, Price: 8.0},
	{V: V0, W: V2, Distance: 25, Price: 3.0},
	{V: V2, W: V3, Distance: 5, Price: 1.0},
}

// MustGraph builds a graph with v vertices and the given routes or fails the test.
func MustGraph(t *testing.T, v int, routes []core.Route) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(v)
	MustErrorNil(t, err, "NewGraph")
	MustErrorNil(t, g.AddEdges(routes), "AddEdges")

	return g
}

// MustErrorNil fails if err != nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustErrorIs fails unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", ctx, target, err)
	}
}

// MustEqualInt fails if got != want.
func MustEqualInt(t *testing.T, got, want int, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", ctx, got, want)
	}
}

// MustEqualInts fails unless got and want hold the same sequence.
func MustEqualInts(t *testing.T, got, want []int, ctx string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", ctx, got, want)
		}
	}
}

// canonical orders endpoints low-high and sorts, giving a multiset key for route slices.
func canonical(routes []core.Route) []core.Route {
	out := make([]core.Route, len(routes))
	for i, r := range routes {
		if r.V > r.W {
			r.V, r.W = r.W, r.V
		}
		out[i] = r
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.V != b.V {
			return a.V < b.V
		}
		if a.W != b.W {
			return a.W < b.W
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}

		return a.Price < b.Price
	})

	return out
}

// MustSameRoutes fails unless got and want are equal as multisets up to endpoint order.
func MustSameRoutes(t *testing.T, got, want []core.Route, ctx string) {
	t.Helper()
	g, w := canonical(got), canonical(want)
	if len(g) != len(w) {
		t.Fatalf("%s: got %d routes, want %d", ctx, len(g), len(w))
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("%s: route %d: got %+v, want %+v", ctx, i, g[i], w[i])
		}
	}
}

// adjacencyConsistent checks that every edge appears exactly once in each endpoint's bucket
// and that buckets hold nothing else.
func adjacencyConsistent(t *testing.T, g *core.Graph) {
	t.Helper()
	seen := make(map[*core.Edge]int)
	for v := 0; v < g.V(); v++ {
		adj, err := g.Adjacent(v)
		MustErrorNil(t, err, "Adjacent")
		for _, e := range adj {
			if _, err := e.Other(v); err != nil {
				t.Fatalf("edge %s listed under non-endpoint %d", e, v)
			}
			seen[e]++
		}
	}
	for _, e := range g.Edges() {
		if seen[e] != 2 {
			t.Fatalf("edge %s appears %d times in adjacency, want 2", e, seen[e])
		}
		delete(seen, e)
	}
	if len(seen) != 0 {
		t.Fatalf("adjacency holds %d edges missing from Edges()", len(seen))
	}
}
