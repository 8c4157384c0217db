// Package worry provides the reduction strategies applied to a worry value
// after an actor's operation, plus the exact integer helpers they need.
//
// What:
//
//   - Reducer is a pure function from the transformed value to the reduced one.
//   - Divide(by) floors the value by a constant (DivideByThree is the classic policy).
//   - Modulus(m) keeps the value below m; with m = LCM of every divisor the
//     result of each routing test is unchanged.
//   - None leaves values untouched.
//
// Everything is integer-exact and generic over constraints.Unsigned;
// no floating point is involved.
//
// Errors:
//
//   - ErrEmptySet: LCMOf over no divisors.
//   - ErrZeroDivisor: a zero divisor was supplied.
//   - ErrOverflow: the LCM does not fit the integer width.
package worry

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptySet indicates LCMOf was called without divisors.
	ErrEmptySet = errors.New("worry: lcm of an empty set is undefined")

	// ErrZeroDivisor indicates a zero divisor.
	ErrZeroDivisor = errors.New("worry: divisor must be positive")

	// ErrOverflow indicates the LCM exceeds the integer width.
	ErrOverflow = errors.New("worry: lcm overflows integer width")
)

// Reducer maps a freshly transformed worry value to its reduced form.
type Reducer[N constraints.Unsigned] func(N) N

// Divide returns a Reducer computing floor(v / by).
// Panics if by == 0.
func Divide[N constraints.Unsigned](by N) Reducer[N] {
	if by == 0 {
		panic("worry: Divide(0)")
	}
	return func(v N) N { return v / by }
}

// DivideByThree is the relief policy applied after every inspection.
func DivideByThree[N constraints.Unsigned]() Reducer[N] {
	return Divide[N](3)
}

// Modulus returns a Reducer computing v mod m.
// Panics if m == 0.
func Modulus[N constraints.Unsigned](m N) Reducer[N] {
	if m == 0 {
		panic("worry: Modulus(0)")
	}
	return func(v N) N { return v % m }
}

// None returns the identity Reducer.
func None[N constraints.Unsigned]() Reducer[N] {
	return func(v N) N { return v }
}

// GCD returns the greatest common divisor of a and b (Euclid).
// GCD(0, 0) == 0.
// Complexity: O(log min(a, b)).
func GCD[N constraints.Unsigned](a, b N) N {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
// Complexity: O(log min(a, b)).
func LCM[N constraints.Unsigned](a, b N) (N, error) {
	if a == 0 || b == 0 {
		return 0, ErrZeroDivisor
	}
	q := a / GCD(a, b)
	l := q * b
	if l/b != q {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrOverflow, uint64(a), uint64(b))
	}

	return l, nil
}

// LCMOf folds LCM over divisors. The result is computed once per run and
// is constant for it.
// Complexity: O(k · log max) for k divisors.
func LCMOf[N constraints.Unsigned](divisors []N) (N, error) {
	if len(divisors) == 0 {
		return 0, ErrEmptySet
	}

	acc := divisors[0]
	if acc == 0 {
		return 0, ErrZeroDivisor
	}
	for _, d := range divisors[1:] {
		var err error
		if acc, err = LCM(acc, d); err != nil {
			return 0, err
		}
	}

	return acc, nil
}
