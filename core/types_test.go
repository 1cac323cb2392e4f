// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/bricktsre/Airline-graph/core"
)

// TestNewEdge_Validation covers every ErrInvalidEdge branch of NewEdge.
func TestNewEdge_Validation(t *testing.T) {
	cases := []struct {
		name     string
		v, w     int
		distance int64
		price    float64
	}{
		{"negative v", -1, 1, 1, 1},
		{"negative w", 0, -2, 1, 1},
		{"self loop", 3, 3, 1, 1},
		{"negative distance", 0, 1, -1, 1},
		{"negative price", 0, 1, 1, -0.5},
		{"NaN price", 0, 1, 1, math.NaN()},
		{"Inf price", 0, 1, 1, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := core.NewEdge(tc.v, tc.w, tc.distance, tc.price)
			MustErrorIs(t, err, core.ErrInvalidEdge, tc.name)
			if e != nil {
				t.Fatalf("%s: expected nil edge", tc.name)
			}
		})
	}

	// Zero weights are valid.
	e, err := core.NewEdge(0, 1, 0, 0)
	MustErrorNil(t, err, "zero weights")
	if e.Distance() != 0 || e.Price() != 0 {
		t.Fatalf("zero weights not preserved: %s", e)
	}
}

// TestEdge_Other verifies the undirected endpoint contract.
func TestEdge_Other(t *testing.T) {
	e, err := core.NewEdge(V1, V2, 7, 2.5)
	MustErrorNil(t, err, "NewEdge")

	w, err := e.Other(V1)
	MustErrorNil(t, err, "Other(1)")
	MustEqualInt(t, w, V2, "Other(1)")

	v, err := e.Other(V2)
	MustErrorNil(t, err, "Other(2)")
	MustEqualInt(t, v, V1, "Other(2)")

	_, err = e.Other(V3)
	MustErrorIs(t, err, core.ErrInvalidEndpoint, "Other(3)")

	MustEqualInt(t, e.Either(), V1, "Either")
	if !e.Connects(V2, V1) || e.Connects(V1, V3) {
		t.Fatalf("Connects must ignore endpoint order")
	}
}

// TestEdge_Weight checks metric selection.
func TestEdge_Weight(t *testing.T) {
	e, _ := core.NewEdge(0, 1, 12, 4.25)
	if got := e.Weight(core.MetricDistance); got != 12 {
		t.Fatalf("distance weight = %v", got)
	}
	if got := e.Weight(core.MetricPrice); got != 4.25 {
		t.Fatalf("price weight = %v", got)
	}
	if got := e.Weight(core.Metric(9)); !math.IsNaN(got) {
		t.Fatalf("unknown metric weight = %v, want NaN", got)
	}
}

// TestParseMetric covers both names and the failure path.
func TestParseMetric(t *testing.T) {
	for _, m := range []core.Metric{core.MetricDistance, core.MetricPrice} {
		got, err := core.ParseMetric(m.String())
		MustErrorNil(t, err, "ParseMetric")
		if got != m {
			t.Fatalf("ParseMetric(%q) = %v", m.String(), got)
		}
	}
	if _, err := core.ParseMetric("hops"); err == nil {
		t.Fatalf("ParseMetric(hops) must fail")
	}
	if core.Metric(5).Valid() {
		t.Fatalf("Metric(5) must be invalid")
	}
}

// TestPath_Aggregates checks Vertices/Hops/Distance/Price on a hand-built path.
func TestPath_Aggregates(t *testing.T) {
	a, _ := core.NewEdge(0, 2, 25, 3.0)
	b, _ := core.NewEdge(3, 2, 5, 1.0) // reversed endpoint order on purpose
	p := &core.Path{Source: 0, Target: 3, Edges: []*core.Edge{a, b}}

	MustEqualInts(t, p.Vertices(), []int{0, 2, 3}, "Vertices")
	MustEqualInt(t, p.Hops(), 2, "Hops")
	if p.Distance() != 30 || p.Price() != 4.0 || p.Weight(core.MetricPrice) != 4.0 {
		t.Fatalf("aggregates: distance=%d price=%v", p.Distance(), p.Price())
	}

	empty := &core.Path{Source: 1, Target: 1}
	MustEqualInts(t, empty.Vertices(), []int{1}, "zero-hop Vertices")
}
