package actor_test

import (
	"fmt"

	"github.com/katalvlaran/keepaway/actor"
)

// ExampleParse reads one block and applies its operation and routing test.
func ExampleParse() {
	a, err := actor.Parse[uint64](`Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, old := range a.Items {
		v, ok := a.Op.CheckedApply(old)
		if !ok {
			fmt.Println("overflow")
			return
		}
		v /= 3
		fmt.Printf("%d -> %d -> monkey %d\n", old, v, a.Target(v))
	}
	fmt.Println(a.Op)

	// Output:
	// 79 -> 500 -> monkey 3
	// 98 -> 620 -> monkey 3
	// new = old * 19
}

// ExampleOperation_CheckedApply shows overflow detection on a narrow width.
func ExampleOperation_CheckedApply() {
	square := actor.Operation[uint8]{Operator: actor.Mul, Operand: actor.Operand[uint8]{Old: true}}

	v, ok := square.CheckedApply(15)
	fmt.Println(v, ok)
	_, ok = square.CheckedApply(16)
	fmt.Println(ok)

	// Output:
	// 225 true
	// false
}
