// Package bfs_test contains unit tests for the BFS implementation.
package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/bricktsre/Airline-graph/bfs"
	"github.com/bricktsre/Airline-graph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildScenario returns 0-1 (10, 5.0), 1-2 (20, 8.0), 0-2 (25, 3.0), 2-3 (5, 1.0).
func buildScenario(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdges([]core.Route{
		{V: 0, W: 1, Distance: 10, Price: 5.0},
		{V: 1, W: 2, Distance: 20, Price: 8.0},
		{V: 0, W: 2, Distance: 25, Price: 3.0},
		{V: 2, W: 3, Distance: 5, Price: 1.0},
	}))

	return g
}

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := buildScenario(t)
	_, err = bfs.BFS(g, 4)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.HopPath(g, 0, 17)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_Scenario(t *testing.T) {
	g := buildScenario(t)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2}, res.DistTo)
	assert.Equal(t, []int{-1, 0, 0, 2}, res.Pred)

	p, err := res.PathTo(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Hops())
	assert.Equal(t, []int{0, 2, 3}, p.Vertices())
	assert.Equal(t, "e3", p.Edges[0].ID())
	assert.Equal(t, "e4", p.Edges[1].ID())
}

func TestHopPath_Unreachable(t *testing.T) {
	g, _ := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1, 1)

	_, err := bfs.HopPath(g, 0, 2)
	require.ErrorIs(t, err, core.ErrUnreachable)

	p, err := bfs.HopPath(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Hops())
}

func TestHopPath_ParallelEdgesFirstWins(t *testing.T) {
	g, _ := core.NewGraph(2)
	first, _ := g.AddEdge(0, 1, 100, 100)
	_, _ = g.AddEdge(1, 0, 1, 1)

	p, err := bfs.HopPath(g, 0, 1)
	require.NoError(t, err)
	require.Len(t, p.Edges, 1)
	assert.Same(t, first, p.Edges[0])
}

func TestBFS_MaxDepth(t *testing.T) {
	g := buildScenario(t)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Marked[3])

	_, err = res.PathTo(g, 3)
	require.ErrorIs(t, err, core.ErrUnreachable)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g := buildScenario(t)
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, depth int) error {
		seen = append(seen, v)
		if depth == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, seen)
}

// bruteHops returns the minimum edge count over all simple paths src→dst, or -1.
func bruteHops(g *core.Graph, src, dst int) int {
	best := -1
	onPath := make([]bool, g.V())
	var walk func(u, hops int)
	walk = func(u, hops int) {
		if u == dst {
			if best < 0 || hops < best {
				best = hops
			}
			return
		}
		onPath[u] = true
		adj, _ := g.Adjacent(u)
		for _, e := range adj {
			if v, _ := e.Other(u); !onPath[v] {
				walk(v, hops+1)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

func TestBFS_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 40; iter++ {
		n := 1 + r.Intn(7)
		g, err := core.NewGraph(n)
		require.NoError(t, err)
		for i, m := 0, r.Intn(2*n+1); i < m; i++ {
			a, b := r.Intn(n), r.Intn(n)
			if a != b {
				_, err = g.AddEdge(a, b, 1, 1)
				require.NoError(t, err)
			}
		}

		res, err := bfs.BFS(g, 0)
		require.NoError(t, err)
		for dst := 0; dst < n; dst++ {
			want := bruteHops(g, 0, dst)
			assert.Equal(t, want, res.DistTo[dst], "iter %d dst %d", iter, dst)
			if want >= 0 {
				p, err := res.PathTo(g, dst)
				require.NoError(t, err)
				assert.Equal(t, want, p.Hops())
			}
		}
	}
}
