// Package dfs defines types and options for depth-first spanning trees over a core.Graph.
package dfs

import (
	"errors"
	"fmt"

	"github.com/bricktsre/Airline-graph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Tree.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the root (or a queried vertex)
	// is outside the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error
}

// DefaultOptions returns a DFSOptions struct with no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnVisit: nil}
}

// WithOnVisit sets a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// SpanningTree is the depth-first tree rooted at Root.
//
//	Order  – vertices in discovery (pre-order) sequence, Root first
//	Marked – whether the vertex is reachable from Root
//	EdgeTo – the tree edge through which the vertex was discovered (nil for Root and unreached)
type SpanningTree struct {
	Root   int
	Order  []int
	Marked []bool
	EdgeTo []*core.Edge
}

// HasPathTo reports whether v lies in the tree.
func (t *SpanningTree) HasPathTo(v int) bool {
	return v >= 0 && v < len(t.Marked) && t.Marked[v]
}

// PathTo returns the unique tree path Root→v.
//
// Returns ErrStartVertexNotFound for indices outside the graph and
// core.ErrUnreachable (wrapped) when v is not in the tree.
func (t *SpanningTree) PathTo(v int) (*core.Path, error) {
	if v < 0 || v >= len(t.Marked) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, v)
	}
	if !t.Marked[v] {
		return nil, fmt.Errorf("%w: %d from %d", core.ErrUnreachable, v, t.Root)
	}

	var edges []*core.Edge
	for cur := v; cur != t.Root; {
		e := t.EdgeTo[cur]
		edges = append(edges, e)
		prev, err := e.Other(cur)
		if err != nil {
			return nil, err
		}
		cur = prev
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &core.Path{Source: t.Root, Target: v, Edges: edges}, nil
}
