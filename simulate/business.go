package simulate

import (
	"fmt"
	"math/bits"
)

// MonkeyBusiness returns the product of the two highest activity levels.
// Ties are irrelevant to the product. A single actor yields its own count.
//
// Errors:
//   - ErrEmptyInput for an empty slice.
//   - ErrProductOverflow if the product does not fit 64 bits.
//
// Complexity: O(A).
func MonkeyBusiness(activity []uint64) (uint64, error) {
	switch len(activity) {
	case 0:
		return 0, ErrEmptyInput
	case 1:
		return activity[0], nil
	}

	var first, second uint64
	for _, a := range activity {
		switch {
		case a > first:
			first, second = a, first
		case a > second:
			second = a
		}
	}

	hi, lo := bits.Mul64(first, second)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d × %d", ErrProductOverflow, first, second)
	}

	return lo, nil
}
