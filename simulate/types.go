// Package simulate defines options, policies and sentinel errors for the
// round-robin keep-away engine.
package simulate

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/keepaway/actor"
)

// Sentinel errors for simulation runs.
var (
	// ErrEmptyInput is returned when there are no actors to simulate.
	ErrEmptyInput = actor.ErrEmptyInput

	// ErrNilReducer is returned when New receives a nil worry.Reducer.
	ErrNilReducer = errors.New("simulate: reducer is nil")

	// ErrNegativeRounds is returned for a negative round count.
	ErrNegativeRounds = errors.New("simulate: round count cannot be negative")

	// ErrInvalidActor is returned when an actor has a zero divisor or a
	// throw target outside the troop.
	ErrInvalidActor = errors.New("simulate: invalid actor")

	// ErrWorryOverflow is returned when an operation exceeds the item width.
	ErrWorryOverflow = errors.New("simulate: worry value overflows item width")

	// ErrProductOverflow is returned when the two highest activity levels
	// multiply beyond 64 bits.
	ErrProductOverflow = errors.New("simulate: monkey business overflows uint64")

	// ErrUnknownPolicy is returned by ParsePolicy and Solve.
	ErrUnknownPolicy = errors.New("simulate: unknown worry policy")
)

// Policy names a worry-reduction strategy together with its item width.
type Policy string

const (
	// PolicyDivision floors every value by 3 and models items as uint32.
	PolicyDivision Policy = "division"
	// PolicyModulus reduces modulo the LCM of all divisors and models items as uint64.
	PolicyModulus Policy = "modulus"
)

// DefaultRounds returns the customary round count for p: 20 for
// PolicyDivision, 10000 for PolicyModulus.
func (p Policy) DefaultRounds() int {
	if p == PolicyModulus {
		return 10000
	}
	return 20
}

// ParsePolicy maps a case-insensitive name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyDivision, PolicyModulus:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Snapshot is the state handed to an OnRound hook after a round completes.
// Holdings lists, per actor, every item it will inspect next round in
// arrival order. Slices are copies owned by the hook.
type Snapshot struct {
	Round    int
	Activity []uint64
	Holdings [][]uint64
}

// Option configures a Simulation via functional arguments.
type Option func(*Options)

// Options holds the hooks that observe a run. The engine never depends on
// them for its results.
type Options struct {
	// OnRound is called after every completed round.
	OnRound func(Snapshot)

	// Logger receives debug records for run start, rounds and completion.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		OnRound: nil,
		Logger:  slog.New(discardHandler{}),
	}
}

// WithOnRound registers a per-round hook. A nil fn is ignored.
func WithOnRound(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
