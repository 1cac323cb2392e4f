package prim_kruskal_test

import (
	"testing"

	"github.com/bricktsre/Airline-graph/builder"
	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/prim_kruskal"
)

// benchNetwork builds a connected 500-city network with roughly 2,500 routes.
func benchNetwork(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(500,
		[]builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithDistanceFn(builder.UniformDistance(1, 100)),
		},
		builder.RandomTree(),
		builder.RandomSparse(0.016),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkKruskal measures Kruskal on the benchmark network.
func BenchmarkKruskal(b *testing.B) {
	g := benchNetwork(b) // pre‐build graph once
	b.ResetTimer()       // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures Prim on the same network, starting from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g := benchNetwork(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0)
	}
}
