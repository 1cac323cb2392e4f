package dfs_test

import (
	"testing"

	"github.com/bricktsre/Airline-graph/builder"
	"github.com/bricktsre/Airline-graph/dfs"
)

// BenchmarkTree measures one spanning tree on a random connected network.
func BenchmarkTree(b *testing.B) {
	g, err := builder.BuildGraph(5000, []builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomTree(), builder.RandomSparse(0.0012))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Tree(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
