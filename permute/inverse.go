package permute

import (
	"github.com/katalvlaran/scramble/bitrev"
)

// Modular inverses of Hash's fixed odd multipliers, mod 2^32.
// Computed once at package init; the seed-dependent multiplier's
// inverse is derived per call.
var (
	invC860A3DF = modInverse32(0xc860a3df)
	inv9E501CC3 = modInverse32(0x9e501cc3)
	inv74DCB303 = modInverse32(0x74dcb303)
	inv6935FA69 = modInverse32(0x6935fa69)
	inv0929EB3F = modInverse32(0x0929eb3f)
	invE170893D = modInverse32(0xe170893d)
)

// modInverse32 returns the multiplicative inverse of an odd a mod 2^32
// by Newton iteration: each step doubles the number of correct low
// bits, and (3a)^2 seeds five of them.
func modInverse32(a uint32) uint32 {
	x := (a * 3) ^ 2
	x *= 2 - a*x
	x *= 2 - a*x
	x *= 2 - a*x

	return x
}

// unshift inverts y = x ^ ((x & mask) >> s) on the masked domain.
// The top s masked bits of y already equal x's; each fixpoint
// iteration recovers the next s bits below, so ~32/s rounds suffice.
func unshift(y, mask, s uint32) uint32 {
	x := y
	for sh := s; sh < 32; sh += s {
		x = y ^ ((x & mask) >> s)
	}

	return x & mask
}

// Unhash — exact inverse of Hash on [0, mask]
//
// Description:
//
//	Unhash(Hash(x, mask, seed), mask, seed) == x for every x in
//	[0, mask]. The forward pipeline's effect on the low bits depends
//	only on the low bits (XOR constants, odd multiplies mod 2^m,
//	masked xor-shifts), so running the inverse steps in reverse order
//	entirely within the masked domain reconstructs the input:
//	  • odd multiplies   → multiply by the modular inverse
//	  • XOR constants    → XOR again
//	  • masked xor-shift → fixpoint unshift
func Unhash(x, mask, seed uint32) uint32 {
	x &= mask
	x = unshift(x, mask, 5)
	x = (x * invC860A3DF) & mask
	x = unshift(x, mask, 2)
	x = (x * inv9E501CC3) & mask
	x = unshift(x, mask, 2)
	x = (x * inv74DCB303) & mask
	x = unshift(x, mask, 11)
	x = (x * inv6935FA69) & mask
	x = (x * modInverse32(1|seed>>27)) & mask
	x = unshift(x, mask, 1)
	x = (x ^ (seed >> 23)) & mask
	x = (x * inv0929EB3F) & mask
	x = (x ^ (seed >> 8)) & mask
	x = unshift(x, mask, 4)
	x = (x ^ (seed >> 16)) & mask
	x = (x * invE170893D) & mask
	x = (x ^ seed) & mask

	return x
}

// Unpermute — inverse of Permute
//
// Description:
//
//	Unpermute(Permute(idx, length, seed), length, seed) == idx.
//	Undo the additive shift, then cycle-walk backwards with Unhash
//	until the value re-enters [0, length): the backward walk retraces
//	the forward orbit, landing exactly on the original index.
//
// Complexity: amortized O(1), same argument as Permute.
//
// Errors:
//   - ErrZeroLength      — length == 0.
//   - ErrIndexOutOfRange — idx >= length.
func Unpermute(idx, length, seed uint32) (uint32, error) {
	if length == 0 {
		return 0, ErrZeroLength
	}
	if idx >= length {
		return 0, ErrIndexOutOfRange
	}

	mask := bitrev.Mask(length)
	x := uint32((uint64(idx) + uint64(length) - uint64(seed%length)) % uint64(length))
	for {
		x = Unhash(x, mask, seed)
		if x < length {
			break
		}
	}

	return x, nil
}
