package permute

import (
	"github.com/katalvlaran/scramble/bitrev"
)

// Hash — seeded bijective bit-mixer over a power-of-two domain
//
// Description:
//
//	Hash maps [0, mask] onto itself, one-to-one, for every fixed seed.
//	mask must be an all-ones value (2^m - 1, see bitrev.Mask); x is
//	expected to lie in [0, mask] already.
//
// Why it is a bijection:
//
//	The pipeline composes only operations invertible modulo 2^m:
//	  • XOR with a constant or seed-derived value
//	  • multiplication by an odd constant
//	  • x ^= (x & mask) >> s, whose xor operand depends on strictly
//	    higher bits of the masked value than the bits it flips
//	Each step permutes [0, mask]; the composition therefore does too.
//	Any even multiplier, or any step collapsing two inputs, would break
//	the permutation contract — that is a correctness invariant, not a
//	tuning choice.
//
// The constant sequence is Kensler's (Correlated Multi-Jittered
// Sampling, 2013). Mixing quality affects how uniform the resulting
// permutation family looks, never whether it is a permutation.
func Hash(x, mask, seed uint32) uint32 {
	x ^= seed
	x *= 0xe170893d
	x ^= seed >> 16
	x ^= (x & mask) >> 4
	x ^= seed >> 8
	x *= 0x0929eb3f
	x ^= seed >> 23
	x ^= (x & mask) >> 1
	x *= 1 | seed>>27
	x *= 0x6935fa69
	x ^= (x & mask) >> 11
	x *= 0x74dcb303
	x ^= (x & mask) >> 2
	x *= 0x9e501cc3
	x ^= (x & mask) >> 2
	x *= 0xc860a3df
	x &= mask
	x ^= x >> 5

	return x
}

// Permute — stateless pseudorandom permutation for arbitrary lengths
//
// Description:
//
//	Permute returns the position of idx under the permutation of
//	[0, length) selected by seed, without materializing anything.
//	For fixed (length, seed) the mapping is a bijection on [0, length).
//
// Algorithm Outline (cycle-walking):
//  1. mask = bitrev.Mask(length): smallest all-ones value with
//     mask >= length-1, so [0, length) ⊆ [0, mask].
//  2. Apply Hash over [0, mask] repeatedly until the value drops
//     below length. Hash is a bijection on a finite domain, so the
//     orbit of idx revisits [0, length) infinitely often — the walk
//     terminates, and distinct start points reach distinct landings.
//  3. Add seed modulo length: a fixed additive shift, itself a
//     bijection, decorrelating permutations whose walks coincide.
//
// Complexity:
//
//	Time   = amortized O(1): the domain is < 2*length, so each hash
//	         application lands inside [0, length) with probability
//	         > 1/2 — expected applications < 2.
//	Memory = O(1), no allocations.
//
// Errors:
//   - ErrZeroLength      — length == 0.
//   - ErrIndexOutOfRange — idx >= length.
func Permute(idx, length, seed uint32) (uint32, error) {
	if length == 0 {
		return 0, ErrZeroLength
	}
	if idx >= length {
		return 0, ErrIndexOutOfRange
	}

	mask := bitrev.Mask(length)
	x := idx
	for {
		x = Hash(x, mask, seed)
		if x < length {
			break
		}
	}

	// 64-bit addition keeps the shift a true rotation of [0, length)
	// even when length crowds the top of the uint32 range.
	return uint32((uint64(x) + uint64(seed%length)) % uint64(length)), nil
}
