package permute_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/scramble/permute"
)

// ExamplePermute shows that a whole pass over [0, n) visits every
// position exactly once — the image, sorted, is the identity.
func ExamplePermute() {
	const (
		length = 10
		seed   = 42
	)
	out := make([]uint32, 0, length)
	for i := uint32(0); i < length; i++ {
		v, err := permute.Permute(i, length, seed)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		out = append(out, v)
	}

	sorted := append([]uint32(nil), out...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
	fmt.Println(sorted)
	// Output:
	// [0 1 2 3 4 5 6 7 8 9]
}

// ExampleUnpermute demonstrates the round trip: Unpermute recovers the
// original index from its permuted position.
func ExampleUnpermute() {
	const (
		length = 100
		seed   = 7
	)
	pos, _ := permute.Permute(17, length, seed)
	idx, _ := permute.Unpermute(pos, length, seed)
	fmt.Println("recovered:", idx)
	// Output:
	// recovered: 17
}

// ExampleGenerator streams a permutation without materializing it and
// verifies the single-element degenerate case in passing.
func ExampleGenerator() {
	gen, _ := permute.NewGenerator(1, 12345)
	v, ok := gen.Next()
	fmt.Println(v, ok)
	_, ok = gen.Next()
	fmt.Println(ok)
	// Output:
	// 0 true
	// false
}
