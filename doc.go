// Package keepaway simulates the round-robin keep-away game: actors pass
// worry-valued items to each other according to fixed arithmetic and
// divisibility rules, and the answer is the product of the two busiest
// actors' inspection counts ("monkey business").
//
// Under the hood, everything is organized under small subpackages:
//
//	actor/        Actor, Operation and the fixed-grammar parser / formatter
//	worry/        worry-reduction strategies (divide, modulus) and exact GCD/LCM
//	simulate/     the round engine, MonkeyBusiness and the RunDivision / RunModulus entry points
//	builder/      the canonical sample troop and seeded random troops
//	cmd/keepaway command line: "run" and "generate"
//
// Quick example:
//
//	mb, err := simulate.RunModulus(input, 10000)
//
// The engine is generic over the unsigned item width and takes the worry
// policy as an injected worry.Reducer, so both classic variants share one
// implementation.
package keepaway
