// Package builder produces deterministic keep-away troops for tests,
// benchmarks, examples and the CLI "generate" command.
//
// The package offers the following key components:
//
//   - Fixtures:
//     – SampleInput / Sample: the canonical four-actor troop.
//     – RandomTroop:          a seeded random troop of n actors.
//     – RandomInput:          RandomTroop rendered in the input grammar.
//   - Configuration primitives:
//     – BuilderOption:        a function that mutates builderConfig before use.
//     – builderConfig:        RNG, inventory sizes, worry range, divisor pool,
//     operation mix and self-throw policy.
//
// Guarantees:
//
//   - Determinism: the same n, options and seed give the same troop.
//   - Every generated troop is valid input for simulate.New and parses back
//     through actor.ParseAll to an equal troop.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; runtime errors are sentinel values from errors.go.
package builder
