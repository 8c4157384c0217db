// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// impl_sample.go - the canonical four-actor troop.
//
// Known answers:
//   - divide-by-three, 20 rounds:  activity 101, 95, 7, 105 → 10605.
//   - modulus LCM, 10000 rounds:   activity 52166, 47830, 1938, 52013 → 2713310158.

package builder

import "github.com/katalvlaran/keepaway/actor"

// SampleInput is the canonical troop in the input grammar.
const SampleInput = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func sampleTroop() []actor.Actor[uint64] {
	mul := func(v uint64) actor.Operation[uint64] {
		return actor.Operation[uint64]{Operator: actor.Mul, Operand: actor.Operand[uint64]{Value: v}}
	}
	add := func(v uint64) actor.Operation[uint64] {
		return actor.Operation[uint64]{Operator: actor.Add, Operand: actor.Operand[uint64]{Value: v}}
	}
	square := actor.Operation[uint64]{Operator: actor.Mul, Operand: actor.Operand[uint64]{Old: true}}

	return []actor.Actor[uint64]{
		{Items: []uint64{79, 98}, Op: mul(19), DivisibleBy: 23, IfTrue: 2, IfFalse: 3},
		{Items: []uint64{54, 65, 75, 74}, Op: add(6), DivisibleBy: 19, IfTrue: 2, IfFalse: 0},
		{Items: []uint64{79, 60, 97}, Op: square, DivisibleBy: 13, IfTrue: 1, IfFalse: 3},
		{Items: []uint64{74}, Op: add(3), DivisibleBy: 17, IfTrue: 0, IfFalse: 1},
	}
}
