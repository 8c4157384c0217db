// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
	"slices"
)

// BuilderOption customizes RandomTroop by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithItemsPerActor bounds the starting inventory size to [lo, hi].
// Panics if lo < 0 or hi < lo.
func WithItemsPerActor(lo, hi int) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithItemsPerActor requires 0 <= lo <= hi")
	}
	return func(c *builderConfig) {
		c.minItems, c.maxItems = lo, hi
	}
}

// WithMaxWorry bounds starting worry values to [1, max]. Panics on 0.
func WithMaxWorry(max uint64) BuilderOption {
	if max == 0 {
		panic("builder: WithMaxWorry(0)")
	}
	return func(c *builderConfig) {
		c.maxWorry = max
	}
}

// WithDivisors sets the pool routing divisors are drawn from.
// Panics on an empty pool or a zero divisor.
func WithDivisors(divisors ...uint64) BuilderOption {
	if len(divisors) == 0 || slices.Contains(divisors, 0) {
		panic("builder: WithDivisors needs positive divisors")
	}
	pool := slices.Clone(divisors)
	return func(c *builderConfig) {
		c.divisors = pool
	}
}

// WithMaxFactor bounds constant multipliers to [2, max]. Panics if max < 2.
func WithMaxFactor(max uint64) BuilderOption {
	if max < 2 {
		panic("builder: WithMaxFactor requires max >= 2")
	}
	return func(c *builderConfig) {
		c.maxFactor = max
	}
}

// WithMaxAddend bounds constant addends to [1, max]. Panics on 0.
func WithMaxAddend(max uint64) BuilderOption {
	if max == 0 {
		panic("builder: WithMaxAddend(0)")
	}
	return func(c *builderConfig) {
		c.maxAddend = max
	}
}

// WithSquareWeight sets the share of "old * old" operations.
// Panics unless 0 <= p <= 1.
func WithSquareWeight(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithSquareWeight requires p in [0,1]")
	}
	return func(c *builderConfig) {
		c.squareWeight = p
	}
}

// WithSelfThrows allows an actor to name itself as a throw target.
func WithSelfThrows() BuilderOption {
	return func(c *builderConfig) {
		c.selfThrows = true
	}
}
