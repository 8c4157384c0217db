package simulate

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/keepaway/actor"
	"github.com/katalvlaran/keepaway/worry"
)

// Simulation runs keep-away rounds over an owned copy of a troop.
//
// Each actor has an inbox: items thrown to it are staged there and drained
// into its inventory at the start of its own turn. Items thrown to a
// higher-indexed actor are therefore inspected in the same round; items
// thrown to a lower-indexed actor or to the thrower itself wait for the
// next round.
//
// A Simulation is not safe for concurrent use.
type Simulation[N constraints.Unsigned] struct {
	actors   []actor.Actor[N]
	inbox    [][]N
	pending  []throw[N]
	activity []uint64
	reduce   worry.Reducer[N]
	round    int
	err      error
	opts     Options
}

// throw is one inspected item waiting for its turn to commit.
type throw[N constraints.Unsigned] struct {
	to    int
	value N
}

// New validates actors and returns a Simulation over a deep copy of them,
// so the same parsed troop can back any number of runs.
//
// Errors:
//   - ErrEmptyInput if actors is empty.
//   - ErrNilReducer if reduce is nil.
//   - ErrInvalidActor for a zero divisor, an unknown operator or an
//     out-of-range target.
//
// Complexity: O(A + I) for A actors holding I items.
func New[N constraints.Unsigned](actors []actor.Actor[N], reduce worry.Reducer[N], opts ...Option) (*Simulation[N], error) {
	if len(actors) == 0 {
		return nil, ErrEmptyInput
	}
	if reduce == nil {
		return nil, ErrNilReducer
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	owned := make([]actor.Actor[N], len(actors))
	for i, a := range actors {
		if a.DivisibleBy == 0 {
			return nil, fmt.Errorf("%w: actor %d: zero divisor", ErrInvalidActor, i)
		}
		if !a.Op.Operator.Valid() {
			return nil, fmt.Errorf("%w: actor %d: unknown operator %s", ErrInvalidActor, i, a.Op.Operator)
		}
		for _, t := range [2]int{a.IfTrue, a.IfFalse} {
			if t < 0 || t >= len(actors) {
				return nil, fmt.Errorf("%w: actor %d: target %d outside [0,%d)", ErrInvalidActor, i, t, len(actors))
			}
		}
		owned[i] = a.Clone()
	}

	return &Simulation[N]{
		actors:   owned,
		inbox:    make([][]N, len(actors)),
		activity: make([]uint64, len(actors)),
		reduce:   reduce,
		opts:     o,
	}, nil
}

// Round plays one full round: every actor, in index order, takes its turn.
//
// A turn:
//  1. Drain the actor's inbox into its inventory.
//  2. Skip if the inventory is empty.
//  3. For each item in order: apply the operation, reduce and test.
//  4. Add the inventory size to the actor's activity, append every result
//     to its target's inbox and clear the inventory.
//
// A turn commits only once every item has been inspected, so on
// ErrWorryOverflow the failing actor still holds all of its items and
// ItemCount is unchanged. The error is sticky: later calls to Round and
// Run return it without playing.
// Complexity: O(A + I).
func (s *Simulation[N]) Round() error {
	if s.err != nil {
		return s.err
	}

	next := s.round + 1
	for i := range s.actors {
		a := &s.actors[i]
		a.Items = append(a.Items, s.inbox[i]...)
		s.inbox[i] = s.inbox[i][:0]

		if len(a.Items) == 0 {
			continue
		}

		s.pending = s.pending[:0]
		for _, old := range a.Items {
			v, ok := a.Op.CheckedApply(old)
			if !ok {
				s.err = fmt.Errorf("%w: round %d actor %d: %s with old = %d",
					ErrWorryOverflow, next, i, a.Op, uint64(old))
				return s.err
			}
			v = s.reduce(v)
			s.pending = append(s.pending, throw[N]{to: a.Target(v), value: v})
		}

		s.activity[i] += uint64(len(a.Items))
		for _, p := range s.pending {
			s.inbox[p.to] = append(s.inbox[p.to], p.value)
		}
		a.Items = a.Items[:0]
	}
	s.round = next

	if s.opts.OnRound != nil {
		s.opts.OnRound(s.snapshot())
	}

	return nil
}

// Run plays rounds more rounds and returns the activity counters.
// rounds == 0 leaves every item where it is.
//
// Errors: ErrNegativeRounds, ErrWorryOverflow.
// Complexity: O(rounds · (A + I)).
func (s *Simulation[N]) Run(rounds int) ([]uint64, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRounds, rounds)
	}

	log := s.opts.Logger
	ctx := context.Background()
	log.DebugContext(ctx, "simulation start",
		slog.Int("actors", len(s.actors)),
		slog.Int("items", s.ItemCount()),
		slog.Int("rounds", rounds))

	for r := 0; r < rounds; r++ {
		if err := s.Round(); err != nil {
			log.DebugContext(ctx, "simulation aborted", slog.Int("round", s.round+1), slog.Any("error", err))
			return nil, err
		}
	}

	log.DebugContext(ctx, "simulation done",
		slog.Int("round", s.round),
		slog.Any("activity", s.activity))

	return s.Activity(), nil
}

// Rounds returns the number of completed rounds.
func (s *Simulation[N]) Rounds() int { return s.round }

// Err returns the error that stopped the simulation, or nil.
func (s *Simulation[N]) Err() error { return s.err }

// Activity returns a copy of the per-actor inspection counters.
func (s *Simulation[N]) Activity() []uint64 {
	return slices.Clone(s.activity)
}

// ItemCount returns the number of items held or staged across all actors.
// It is constant for the lifetime of the Simulation.
// Complexity: O(A).
func (s *Simulation[N]) ItemCount() int {
	n := 0
	for i, a := range s.actors {
		n += len(a.Items) + len(s.inbox[i])
	}
	return n
}

// Holdings returns, per actor, its inventory followed by its staged items.
// Complexity: O(A + I).
func (s *Simulation[N]) Holdings() [][]N {
	out := make([][]N, len(s.actors))
	for i, a := range s.actors {
		h := make([]N, 0, len(a.Items)+len(s.inbox[i]))
		h = append(h, a.Items...)
		out[i] = append(h, s.inbox[i]...)
	}
	return out
}

func (s *Simulation[N]) snapshot() Snapshot {
	held := s.Holdings()
	wide := make([][]uint64, len(held))
	for i, h := range held {
		wide[i] = make([]uint64, len(h))
		for j, v := range h {
			wide[i][j] = uint64(v)
		}
	}

	return Snapshot{Round: s.round, Activity: s.Activity(), Holdings: wide}
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
