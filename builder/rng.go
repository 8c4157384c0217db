// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// rng.go: deterministic random sources.
//
// Policy:
//   • No time-based seeds anywhere; seed==0 maps to defaultRNGSeed.
//   • math/rand.Rand is not goroutine-safe; one troop build owns one source.

package builder

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or none.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
