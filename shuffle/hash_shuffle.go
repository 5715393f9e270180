package shuffle

import (
	"github.com/katalvlaran/scramble/bitrev"
	"github.com/katalvlaran/scramble/internal/parallel"
)

// laineKarras applies the Laine–Karras permutation: a seeded bijection
// on 32 bits in which every output bit depends only on input bits at
// or below it (addition and x ^= x*even both carry information upward
// only). That one-directional dependence is what makes the surrounding
// bit-reversal sandwich an Owen scramble rather than a plain hash.
func laineKarras(x, seed uint32) uint32 {
	x += seed
	x ^= x * 0x6c50b47c
	x ^= x * 0xb82f1e52
	x ^= x * 0xc7afe638
	x ^= x * 0x8d22f6e6

	return x
}

// HashShuffle — Method 1: hashed Owen-scramble shuffle
//
// Description:
//
//	HashShuffle returns a shuffled index array for a power-of-two
//	length, derived purely from seed — it consumes no random draws,
//	so the same (length, seed) pair always rebuilds the same array.
//
// Algorithm Outline:
//  1. Reverse the bits of i: the log2(length) significant bits land
//     at the top of the 32-bit word.
//  2. Apply the Laine–Karras permutation keyed by seed. Its upward-
//     only bit dependence means equal high-bit prefixes stay equal,
//     which is exactly the nested (Owen) scrambling property.
//  3. Reverse back and reduce modulo length. The reduction keeps the
//     bits that carried the index, and the prefix property guarantees
//     distinct indices stay distinct — the output is a permutation
//     for every seed, structurally.
//
// Complexity:
//
//	Time   = O(length), independent per index — parallel across
//	         workers when WithWorkers is supplied.
//	Memory = O(1) beyond the output array.
//
// Errors:
//   - ErrZeroLength      — length == 0.
//   - ErrNotPowerOfTwo   — length not a power of two.
//   - ErrOptionViolation — invalid Option supplied.
func HashShuffle(length, seed uint32, opts ...Option) ([]uint32, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateLength(length); err != nil {
		return nil, err
	}

	out := make([]uint32, length)
	parallel.For(0, int(length), o.Workers, func(i int) {
		out[i] = bitrev.Reverse32(laineKarras(bitrev.Reverse32(uint32(i)), seed)) % length
	})

	return out, nil
}
