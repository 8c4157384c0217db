package simulate

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/keepaway/actor"
	"github.com/katalvlaran/keepaway/worry"
)

// RunDivision parses input with uint32 items, plays rounds rounds under the
// divide-by-three policy and returns the monkey business.
//
// Errors: any actor parse error, ErrEmptyInput, ErrNegativeRounds,
// ErrWorryOverflow, ErrProductOverflow.
func RunDivision(input string, rounds int, opts ...Option) (uint64, error) {
	actors, err := actor.ParseAll[uint32](input)
	if err != nil {
		return 0, err
	}

	return play(actors, worry.DivideByThree[uint32](), rounds, opts)
}

// RunModulus parses input with uint64 items, plays rounds rounds reducing
// every value modulo the LCM of all divisors, and returns the monkey
// business. The LCM is computed once before the first round.
//
// Errors: as RunDivision, plus worry.ErrOverflow when the LCM does not fit.
func RunModulus(input string, rounds int, opts ...Option) (uint64, error) {
	actors, err := actor.ParseAll[uint64](input)
	if err != nil {
		return 0, err
	}
	lcm, err := worry.LCMOf(actor.Divisors(actors))
	if err != nil {
		return 0, fmt.Errorf("simulate: modulus policy: %w", err)
	}

	return play(actors, worry.Modulus(lcm), rounds, opts)
}

// Solve dispatches to RunDivision or RunModulus by policy.
func Solve(input string, rounds int, p Policy, opts ...Option) (uint64, error) {
	switch p {
	case PolicyDivision:
		return RunDivision(input, rounds, opts...)
	case PolicyModulus:
		return RunModulus(input, rounds, opts...)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(p))
	}
}

func play[N constraints.Unsigned](actors []actor.Actor[N], reduce worry.Reducer[N], rounds int, opts []Option) (uint64, error) {
	if rounds < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeRounds, rounds)
	}
	sim, err := New(actors, reduce, opts...)
	if err != nil {
		return 0, err
	}
	activity, err := sim.Run(rounds)
	if err != nil {
		return 0, err
	}

	return MonkeyBusiness(activity)
}
