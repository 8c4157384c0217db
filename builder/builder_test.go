package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keepaway/actor"
	"github.com/katalvlaran/keepaway/builder"
)

// TestSample matches the canonical text.
func TestSample(t *testing.T) {
	parsed, err := actor.ParseAll[uint64](builder.SampleInput)
	require.NoError(t, err)
	assert.Equal(t, builder.Sample(), parsed)
	assert.Equal(t, builder.SampleInput, actor.FormatAll(builder.Sample()))
}

// TestSample_FreshCopy returns independent inventories.
func TestSample_FreshCopy(t *testing.T) {
	a := builder.Sample()
	a[0].Items[0] = 1
	assert.Equal(t, uint64(79), builder.Sample()[0].Items[0])
}

// TestRandomTroop_Deterministic builds the same troop for the same seed.
func TestRandomTroop_Deterministic(t *testing.T) {
	a, err := builder.RandomTroop(8, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.RandomTroop(8, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.RandomTroop(8, builder.WithSeed(100))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestRandomTroop_Bounds respects every configured range.
func TestRandomTroop_Bounds(t *testing.T) {
	troop, err := builder.RandomTroop(20,
		builder.WithSeed(5),
		builder.WithItemsPerActor(2, 4),
		builder.WithMaxWorry(10),
		builder.WithDivisors(3, 7),
		builder.WithMaxFactor(4),
		builder.WithMaxAddend(2),
	)
	require.NoError(t, err)
	require.Len(t, troop, 20)

	for i, a := range troop {
		assert.GreaterOrEqual(t, len(a.Items), 2)
		assert.LessOrEqual(t, len(a.Items), 4)
		for _, v := range a.Items {
			assert.GreaterOrEqual(t, v, uint64(1))
			assert.LessOrEqual(t, v, uint64(10))
		}
		assert.Contains(t, []uint64{3, 7}, a.DivisibleBy)
		if !a.Op.Operand.Old {
			switch a.Op.Operator {
			case actor.Mul:
				assert.GreaterOrEqual(t, a.Op.Operand.Value, uint64(2))
				assert.LessOrEqual(t, a.Op.Operand.Value, uint64(4))
			case actor.Add:
				assert.GreaterOrEqual(t, a.Op.Operand.Value, uint64(1))
				assert.LessOrEqual(t, a.Op.Operand.Value, uint64(2))
			}
		}
		assert.NotEqual(t, i, a.IfTrue)
		assert.NotEqual(t, i, a.IfFalse)
		assert.Less(t, a.IfTrue, 20)
		assert.Less(t, a.IfFalse, 20)
	}
}

// TestRandomTroop_NoSquares honours a zero square weight.
func TestRandomTroop_NoSquares(t *testing.T) {
	troop, err := builder.RandomTroop(50, builder.WithSeed(1), builder.WithSquareWeight(0))
	require.NoError(t, err)
	for _, a := range troop {
		assert.False(t, a.Op.Operand.Old)
	}
}

// TestRandomTroop_TooFew rejects undersized troops.
func TestRandomTroop_TooFew(t *testing.T) {
	_, err := builder.RandomTroop(1)
	require.ErrorIs(t, err, builder.ErrTooFewActors)

	_, err = builder.RandomTroop(0, builder.WithSelfThrows())
	require.ErrorIs(t, err, builder.ErrTooFewActors)

	troop, err := builder.RandomTroop(1, builder.WithSelfThrows())
	require.NoError(t, err)
	assert.Equal(t, 0, troop[0].IfTrue)
}

// TestRandomInput parses back to the generated troop.
func TestRandomInput(t *testing.T) {
	text, err := builder.RandomInput(6, builder.WithSeed(11), builder.WithItemsPerActor(0, 3))
	require.NoError(t, err)

	parsed, err := actor.ParseAll[uint64](text)
	require.NoError(t, err)

	want, err := builder.RandomTroop(6, builder.WithSeed(11), builder.WithItemsPerActor(0, 3))
	require.NoError(t, err)
	require.Len(t, parsed, len(want))
	for i := range want {
		assert.Equal(t, want[i].Op, parsed[i].Op)
		assert.Equal(t, want[i].DivisibleBy, parsed[i].DivisibleBy)
		assert.Equal(t, want[i].IfTrue, parsed[i].IfTrue)
		assert.Equal(t, want[i].IfFalse, parsed[i].IfFalse)
		assert.ElementsMatch(t, want[i].Items, parsed[i].Items)
	}
}
