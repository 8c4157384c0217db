// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Public factories are declared here, implemented in impl_*.go.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same n/options/seed ⇒ identical troops and text.

package builder

import (
	"fmt"

	"github.com/katalvlaran/keepaway/actor"
)

// RandomTroop returns n seeded random actors with uint64 items.
//
// Errors:
//   - ErrTooFewActors if n < 2 (n < 1 with WithSelfThrows).
//
// Complexity: O(n + I) for I generated items.
func RandomTroop(n int, opts ...BuilderOption) ([]actor.Actor[uint64], error) {
	cfg := newBuilderConfig(opts...)
	troop, err := randomTroop(n, cfg)
	if err != nil {
		return nil, fmt.Errorf("RandomTroop: %w", err)
	}

	return troop, nil
}

// RandomInput is RandomTroop rendered with actor.FormatAll.
func RandomInput(n int, opts ...BuilderOption) (string, error) {
	troop, err := RandomTroop(n, opts...)
	if err != nil {
		return "", err
	}

	return actor.FormatAll(troop), nil
}

// Sample returns a fresh copy of the canonical four-actor troop.
func Sample() []actor.Actor[uint64] {
	return sampleTroop()
}
