package worry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keepaway/worry"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, uint64(6), worry.GCD[uint64](54, 24))
	assert.Equal(t, uint64(1), worry.GCD[uint64](23, 19))
	assert.Equal(t, uint64(7), worry.GCD[uint64](0, 7))
	assert.Equal(t, uint64(0), worry.GCD[uint64](0, 0))
}

func TestLCM(t *testing.T) {
	l, err := worry.LCM[uint64](4, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), l)

	_, err = worry.LCM[uint64](0, 6)
	require.ErrorIs(t, err, worry.ErrZeroDivisor)

	_, err = worry.LCM[uint8](16, 17)
	require.ErrorIs(t, err, worry.ErrOverflow)
}

// TestLCMOf_Sample uses the divisors of the canonical four-actor input.
func TestLCMOf_Sample(t *testing.T) {
	l, err := worry.LCMOf([]uint64{23, 19, 13, 17})
	require.NoError(t, err)
	assert.Equal(t, uint64(96577), l)

	l, err = worry.LCMOf([]uint64{4, 6, 8})
	require.NoError(t, err)
	assert.Equal(t, uint64(24), l)
}

func TestLCMOf_Errors(t *testing.T) {
	_, err := worry.LCMOf[uint64](nil)
	require.ErrorIs(t, err, worry.ErrEmptySet)

	_, err = worry.LCMOf([]uint64{0})
	require.ErrorIs(t, err, worry.ErrZeroDivisor)

	_, err = worry.LCMOf([]uint64{3, 0})
	require.ErrorIs(t, err, worry.ErrZeroDivisor)

	_, err = worry.LCMOf([]uint32{math.MaxUint32, math.MaxUint32 - 1})
	require.ErrorIs(t, err, worry.ErrOverflow)
}

func TestReducers(t *testing.T) {
	assert.Equal(t, uint32(500), worry.DivideByThree[uint32]()(1501))
	assert.Equal(t, uint32(0), worry.Divide[uint32](3)(2))
	assert.Equal(t, uint64(4), worry.Modulus[uint64](96577)(96581))
	assert.Equal(t, uint64(96581), worry.None[uint64]()(96581))

	assert.Panics(t, func() { worry.Divide[uint32](0) })
	assert.Panics(t, func() { worry.Modulus[uint64](0) })
}

// TestModulus_PreservesDivisibility checks that reducing by the LCM keeps
// every routing test result for every divisor.
func TestModulus_PreservesDivisibility(t *testing.T) {
	divs := []uint64{23, 19, 13, 17}
	l, err := worry.LCMOf(divs)
	require.NoError(t, err)
	reduce := worry.Modulus(l)

	for v := uint64(0); v < 5*l; v += 7919 {
		r := reduce(v)
		require.Less(t, r, l)
		for _, d := range divs {
			require.Equal(t, v%d == 0, r%d == 0, "v=%d d=%d", v, d)
		}
	}
}
