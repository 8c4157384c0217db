package actor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Operator is the arithmetic applied by an Operation.
type Operator int

const (
	// Add computes old + operand.
	Add Operator = iota
	// Mul computes old * operand.
	Mul
)

// Valid reports whether o is Add or Mul.
func (o Operator) Valid() bool { return o == Add || o == Mul }

// String returns the operator symbol used by the grammar.
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Mul:
		return "*"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Operand is the right-hand side of an Operation: either the old value
// itself (Old == true) or the fixed constant Value.
type Operand[N constraints.Unsigned] struct {
	Old   bool
	Value N
}

// String renders "old" or the decimal constant.
func (o Operand[N]) String() string {
	if o.Old {
		return "old"
	}
	return strconv.FormatUint(uint64(o.Value), 10)
}

// Operation is the rule new = old <Operator> <Operand>. Immutable after parse.
type Operation[N constraints.Unsigned] struct {
	Operator Operator
	Operand  Operand[N]
}

// CheckedApply computes the new worry value and reports false when the
// result does not fit N or the operator is not Add or Mul.
// Complexity: O(1).
func (op Operation[N]) CheckedApply(old N) (N, bool) {
	rhs := op.Operand.Value
	if op.Operand.Old {
		rhs = old
	}
	switch op.Operator {
	case Mul:
		r := old * rhs
		if old != 0 && r/old != rhs {
			return r, false
		}
		return r, true
	case Add:
		r := old + rhs
		return r, r >= old
	default:
		return 0, false
	}
}

// String renders the operation as it appears after "Operation: ".
func (op Operation[N]) String() string {
	return fmt.Sprintf("new = old %s %s", op.Operator, op.Operand)
}

// Actor is one participant of the simulation. Its identity is its index in
// the slice it belongs to. Only Items changes while a simulation runs.
type Actor[N constraints.Unsigned] struct {
	// Items is the ordered inventory of worry values.
	Items []N
	// Op transforms every inspected item.
	Op Operation[N]
	// DivisibleBy is the routing test divisor, always > 0 after parse.
	DivisibleBy N
	// IfTrue receives items whose value is divisible by DivisibleBy.
	IfTrue int
	// IfFalse receives every other item.
	IfFalse int
}

// Target returns the index of the actor that receives an item of worry v.
// Complexity: O(1).
func (a Actor[N]) Target(v N) int {
	if v%a.DivisibleBy == 0 {
		return a.IfTrue
	}
	return a.IfFalse
}

// Clone returns a copy whose inventory does not alias a.Items.
func (a Actor[N]) Clone() Actor[N] {
	c := a
	c.Items = slices.Clone(a.Items)
	return c
}

// Format renders a as block number index using the "Monkey" keyword.
// The output has no trailing newline and parses back to an equal Actor.
func (a Actor[N]) Format(index int) string {
	return a.format(index, keywordMonkey)
}

func (a Actor[N]) format(index int, kw keyword) string {
	items := make([]string, len(a.Items))
	for i, v := range a.Items {
		items[i] = strconv.FormatUint(uint64(v), 10)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d:\n", kw.header, index)
	sb.WriteString(strings.TrimRight(prefixItems+strings.Join(items, itemSep), " "))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "%s%s\n", prefixOperation, a.Op)
	fmt.Fprintf(&sb, "%s%d\n", prefixTest, uint64(a.DivisibleBy))
	fmt.Fprintf(&sb, "%s%s %d\n", prefixIfTrue, kw.throw, a.IfTrue)
	fmt.Fprintf(&sb, "%s%s %d", prefixIfFalse, kw.throw, a.IfFalse)

	return sb.String()
}

// FormatAll renders actors as blank-line separated blocks, followed by a
// single trailing newline. ParseAll(FormatAll(a)) reproduces a.
func FormatAll[N constraints.Unsigned](actors []Actor[N]) string {
	blocks := make([]string, len(actors))
	for i, a := range actors {
		blocks[i] = a.Format(i)
	}
	return strings.Join(blocks, blockSep) + "\n"
}

// Divisors returns the routing divisors of actors in index order.
func Divisors[N constraints.Unsigned](actors []Actor[N]) []N {
	out := make([]N, len(actors))
	for i, a := range actors {
		out[i] = a.DivisibleBy
	}
	return out
}
