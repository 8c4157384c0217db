// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = rngFromSeed(0)
//   • items/actor  = [1, 8]
//   • worry        = [1, 99]
//   • divisors     = first nine primes (2..23)
//   • factor       = [2, 19]   for "old * k"
//   • addend       = [1, 8]    for "old + k"
//   • squareWeight = 0.125     share of "old * old" operations
//   • selfThrows   = false

package builder

import (
	"math/rand"
	"slices"
)

// builderConfig aggregates all knobs used by RandomTroop.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng *rand.Rand

	minItems, maxItems int
	maxWorry           uint64
	divisors           []uint64

	maxFactor    uint64
	maxAddend    uint64
	squareWeight float64

	selfThrows bool
}

const (
	defaultMinItems     = 1
	defaultMaxItems     = 8
	defaultMaxWorry     = uint64(99)
	defaultMaxFactor    = uint64(19)
	defaultMaxAddend    = uint64(8)
	defaultSquareWeight = 0.125
)

var defaultDivisors = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}

// newBuilderConfig starts from the defaults and applies opts in order;
// later options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		minItems:     defaultMinItems,
		maxItems:     defaultMaxItems,
		maxWorry:     defaultMaxWorry,
		divisors:     slices.Clone(defaultDivisors),
		maxFactor:    defaultMaxFactor,
		maxAddend:    defaultMaxAddend,
		squareWeight: defaultSquareWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}
