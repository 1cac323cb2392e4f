// Package core_test verifies that concurrent readers and writers do not corrupt a core.Graph.
package core_test

import (
	"sync"
	"testing"

	"github.com/bricktsre/Airline-graph/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls all land and get unique IDs.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	errs := make([]error, num) // collected here; no *testing.T inside goroutines
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, errs[id] = g.AddEdge(0, id+1, int64(id), float64(id))
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	adj, err := g.Adjacent(0)
	require.NoError(t, err)
	require.Len(t, adj, num)

	ids := make(map[string]struct{}, num)
	for _, e := range g.Edges() {
		ids[e.ID()] = struct{}{}
	}
	require.Len(t, ids, num, "edge IDs must be unique")
}

// TestConcurrentAddRemoveEdge mixes AddEdge and RemoveEdgeByID with readers.
func TestConcurrentAddRemoveEdge(t *testing.T) {
	const rounds = 100
	g, err := core.NewGraph(rounds + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(3 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(0, id+1, 1, 1)
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_, _ = g.RemoveEdgeByID(e.ID())
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Adjacent(0)
			_ = g.Routes()
		}()
	}
	wg.Wait()

	// Whatever survived must still satisfy the adjacency invariant.
	adjacencyConsistent(t, g)
}
