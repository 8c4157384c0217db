package simulate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keepaway/simulate"
)

func TestMonkeyBusiness(t *testing.T) {
	cases := []struct {
		name     string
		activity []uint64
		want     uint64
	}{
		{"Sample", []uint64{101, 95, 7, 105}, 10605},
		{"Tie", []uint64{5, 9, 9, 1}, 81},
		{"Ordered", []uint64{1, 2, 3, 4}, 12},
		{"Reversed", []uint64{4, 3, 2, 1}, 12},
		{"Two", []uint64{6, 7}, 42},
		{"Single", []uint64{13}, 13},
		{"Zeros", []uint64{0, 0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := simulate.MonkeyBusiness(tc.activity)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMonkeyBusiness_Errors(t *testing.T) {
	_, err := simulate.MonkeyBusiness(nil)
	require.ErrorIs(t, err, simulate.ErrEmptyInput)

	_, err = simulate.MonkeyBusiness([]uint64{math.MaxUint32 + 1, math.MaxUint32 + 1})
	require.ErrorIs(t, err, simulate.ErrProductOverflow)

	got, err := simulate.MonkeyBusiness([]uint64{math.MaxUint32, math.MaxUint32})
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint32)*uint64(math.MaxUint32), got)
}
