// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// impl_random_troop.go - implementation of RandomTroop(n).
//
// Model:
//   - Actors are generated in index order 0..n-1; for each actor the draws
//     happen in a fixed order (items, operation, divisor, targets), so a
//     fixed seed gives a fixed troop.
//   - Operation mix: "old * old" with probability squareWeight, otherwise
//     an even split of "old * k" (k ∈ [2, maxFactor]) and "old + k"
//     (k ∈ [1, maxAddend]).
//   - Targets: drawn uniformly among the other actors (or all actors with
//     selfThrows); IfTrue and IfFalse differ whenever more than one
//     candidate exists.
//
// Complexity:
//   - Time: O(n + I).  Space: O(n + I).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/keepaway/actor"
)

const methodRandomTroop = "randomTroop"

func randomTroop(n int, cfg builderConfig) ([]actor.Actor[uint64], error) {
	minActors := 2
	if cfg.selfThrows {
		minActors = 1
	}
	if n < minActors {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTroop, n, minActors, ErrTooFewActors)
	}

	rng := cfg.rng
	troop := make([]actor.Actor[uint64], n)
	for i := range troop {
		a := &troop[i]

		count := cfg.minItems + rng.Intn(cfg.maxItems-cfg.minItems+1)
		a.Items = make([]uint64, count)
		for j := range a.Items {
			a.Items[j] = 1 + rng.Uint64()%cfg.maxWorry
		}

		a.Op = randomOperation(rng, cfg)
		a.DivisibleBy = cfg.divisors[rng.Intn(len(cfg.divisors))]
		a.IfTrue, a.IfFalse = randomTargets(rng, i, n, cfg.selfThrows)
	}

	return troop, nil
}

func randomOperation(rng *rand.Rand, cfg builderConfig) actor.Operation[uint64] {
	if rng.Float64() < cfg.squareWeight {
		return actor.Operation[uint64]{Operator: actor.Mul, Operand: actor.Operand[uint64]{Old: true}}
	}
	if rng.Intn(2) == 0 {
		k := 2 + rng.Uint64()%(cfg.maxFactor-1)
		return actor.Operation[uint64]{Operator: actor.Mul, Operand: actor.Operand[uint64]{Value: k}}
	}
	k := 1 + rng.Uint64()%cfg.maxAddend
	return actor.Operation[uint64]{Operator: actor.Add, Operand: actor.Operand[uint64]{Value: k}}
}

// randomTargets picks two targets for actor self among n actors.
func randomTargets(rng *rand.Rand, self, n int, selfThrows bool) (int, int) {
	candidates := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != self || selfThrows {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], candidates[0]
	}

	t := rng.Intn(len(candidates))
	f := rng.Intn(len(candidates) - 1)
	if f >= t {
		f++
	}

	return candidates[t], candidates[f]
}
