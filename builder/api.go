// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point and topology constructors.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs, edge IDs included.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/bricktsre/Airline-graph/core"
)

// Constructor applies a deterministic graph mutation using the resolved builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n cities, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addRoute draws both weights and inserts v-w.
func addRoute(method string, g *core.Graph, cfg builderConfig, v, w int) error {
	d, p := cfg.distanceFn(cfg.rng), cfg.priceFn(cfg.rng)
	if _, err := g.AddEdge(v, w, d, p); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, v, w, err)
	}

	return nil
}

func need(method string, g *core.Graph, min int) error {
	if g.V() < min {
		return fmt.Errorf("%s: V=%d < min=%d: %w", method, g.V(), min, ErrTooFewVertices)
	}

	return nil
}

// Path links 0-1-2-…-(V-1). Requires V ≥ 2.
// Complexity: O(V).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need("Path", g, 2); err != nil {
			return err
		}
		for v := 1; v < g.V(); v++ {
			if err := addRoute("Path", g, cfg, v-1, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path plus the closing route (V-1)-0. Requires V ≥ 3.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need("Cycle", g, 3); err != nil {
			return err
		}
		if err := Path()(g, cfg); err != nil {
			return err
		}

		return addRoute("Cycle", g, cfg, g.V()-1, 0)
	}
}

// Star links hub to every other city in ascending order. Requires V ≥ 2.
func Star(hub int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := need("Star", g, 2); err != nil {
			return err
		}
		if !g.HasVertex(hub) {
			return fmt.Errorf("Star: hub %d: %w", hub, core.ErrVertexNotFound)
		}
		for v := 0; v < g.V(); v++ {
			if v == hub {
				continue
			}
			if err := addRoute("Star", g, cfg, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete links every unordered pair {i<j}, i ascending then j ascending.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < g.V(); i++ {
			for j := i + 1; j < g.V(); j++ {
				if err := addRoute("Complete", g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid lays cities out row-major on a rows×cols lattice and links horizontal then
// vertical neighbours. Requires V == rows*cols and rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols != g.V() {
			return fmt.Errorf("Grid: %dx%d over V=%d: %w", rows, cols, g.V(), ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := addRoute("Grid", g, cfg, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoute("Grid", g, cfg, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomTree links every city v ≥ 1 to a uniformly chosen earlier city, giving a
// connected network. Requires an RNG.
func RandomTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("RandomTree: %w", ErrNeedRandSource)
		}
		for v := 1; v < g.V(); v++ {
			if err := addRoute("RandomTree", g, cfg, cfg.rng.Intn(v), v); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse includes each unordered pair {i<j} independently with probability p.
// An RNG is required only when 0 < p < 1.
//
// Complexity: O(V²) Bernoulli trials.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < g.V(); i++ {
			for j := i + 1; j < g.V(); j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := addRoute("RandomSparse", g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
