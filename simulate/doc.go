// Package simulate plays the round-robin keep-away game over a troop of
// actors and reports their "monkey business".
//
// What:
//
//   - Simulation[N] owns a copy of the troop, one inbox per actor and one
//     activity counter per actor.
//   - Round plays every actor's turn in index order; Run plays many rounds.
//   - MonkeyBusiness multiplies the two highest activity levels.
//   - RunDivision / RunModulus / Solve are the text-in, number-out entry points.
//
// Worry policies:
//
//   - PolicyDivision: items are uint32, every value is floored by 3 after
//     its operation (worry.DivideByThree).
//   - PolicyModulus: items are uint64, every value is reduced modulo the LCM
//     of all divisors (worry.Modulus), which leaves every routing test
//     unchanged and bounds magnitudes for any number of rounds.
//
// The engine itself is policy agnostic: any worry.Reducer over any unsigned
// width can be injected through New.
//
// Invariants:
//
//   - Items only move: ItemCount is the same before and after every round.
//   - Identical troop, reducer and round count give identical counters.
//   - An item thrown by actor i to actor j is inspected again in the same
//     round iff j > i.
//
// Complexity:
//
//   - Round: O(A + I) for A actors and I items. Memory: O(A + I).
//
// Errors:
//
//   - ErrEmptyInput, ErrNilReducer, ErrInvalidActor: rejected by New.
//   - ErrNegativeRounds: Run with rounds < 0.
//   - ErrWorryOverflow: an operation exceeded the item width.
//   - ErrProductOverflow: the answer does not fit 64 bits.
//   - ErrUnknownPolicy: Solve / ParsePolicy with an unknown name.
package simulate
