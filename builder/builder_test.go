// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/bricktsre/Airline-graph/builder"
	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopologies(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		cons  builder.Constructor
		edges int
	}{
		{"path", 5, builder.Path(), 4},
		{"cycle", 5, builder.Cycle(), 5},
		{"star", 5, builder.Star(2), 4},
		{"complete", 5, builder.Complete(), 10},
		{"grid", 6, builder.Grid(2, 3), 7},
		{"sparse p=1", 4, builder.RandomSparse(1), 6},
		{"sparse p=0", 4, builder.RandomSparse(0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.n, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(2, nil, builder.Cycle())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(5, nil, builder.Grid(2, 2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(3, nil, builder.RandomTree())
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(3, nil, builder.Star(7))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = builder.BuildGraph(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	_, err = builder.BuildGraph(-1, nil)
	require.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestRandomTree_Connected(t *testing.T) {
	g, err := builder.BuildGraph(50, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomTree())
	require.NoError(t, err)
	require.Equal(t, 49, g.EdgeCount())

	uf := unionfind.New(g.V())
	for _, e := range g.Edges() {
		v, w := e.Endpoints()
		uf.Union(v, w)
	}
	assert.Equal(t, 1, uf.Count())
}

func TestDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithDistanceFn(builder.UniformDistance(10, 100)),
		builder.WithPriceFn(builder.UniformPrice(5, 50)),
	}
	a, err := builder.BuildGraph(20, opts, builder.RandomTree(), builder.RandomSparse(0.2))
	require.NoError(t, err)

	b, err := builder.BuildGraph(20, opts, builder.RandomTree(), builder.RandomSparse(0.2))
	require.NoError(t, err)

	assert.Equal(t, a.Routes(), b.Routes())
	for _, r := range a.Routes() {
		assert.GreaterOrEqual(t, r.Distance, int64(10))
		assert.LessOrEqual(t, r.Distance, int64(100))
		assert.GreaterOrEqual(t, r.Price, 5.0)
		assert.LessOrEqual(t, r.Price, 50.0)
	}
}
