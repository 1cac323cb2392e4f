// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • rng        = nil                 (pure/deterministic unless seeded)
//   • distanceFn = constant 1
//   • priceFn    = constant 1.0
//
// newBuilderConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

const (
	defaultDistance = int64(1)
	defaultPrice    = 1.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generators; rng may be nil when no seed was supplied.
	distanceFn func(*rand.Rand) int64
	priceFn    func(*rand.Rand) float64
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		distanceFn: func(*rand.Rand) int64 { return defaultDistance },
		priceFn:    func(*rand.Rand) float64 { return defaultPrice },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDistanceFn sets the per-route distance generator. Results must be non-negative.
func WithDistanceFn(fn func(*rand.Rand) int64) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.distanceFn = fn
		}
	}
}

// WithPriceFn sets the per-route price generator. Results must be non-negative and finite.
func WithPriceFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.priceFn = fn
		}
	}
}

// UniformDistance draws distances uniformly from [lo, hi]; constant lo without an RNG.
func UniformDistance(lo, hi int64) func(*rand.Rand) int64 {
	return func(r *rand.Rand) int64 {
		if r == nil || hi <= lo {
			return lo
		}

		return lo + r.Int63n(hi-lo+1)
	}
}

// UniformPrice draws prices from [lo, hi] in steps of 0.5; constant lo without an RNG.
// Half-unit steps keep price sums exact in float64.
func UniformPrice(lo, hi float64) func(*rand.Rand) float64 {
	return func(r *rand.Rand) float64 {
		steps := int((hi - lo) * 2)
		if r == nil || steps <= 0 {
			return lo
		}

		return lo + float64(r.Intn(steps+1))/2
	}
}
