package bitrev

import (
	"errors"
	"math/bits"
)

// ErrNotPow2 is returned by Indices when n is not a power of two.
var ErrNotPow2 = errors.New("bitrev: length must be a power of two")

// Reverse32 mirrors all 32 bits of x, so bit 0 becomes bit 31 and
// vice versa. It is an involution: Reverse32(Reverse32(x)) == x.
func Reverse32(x uint32) uint32 {
	return bits.Reverse32(x)
}

// reverse32Generic is the portable equivalent of Reverse32, one bit per
// iteration. Kept as the reference implementation for platforms (and
// tests) that want to validate the intrinsic-backed path.
func reverse32Generic(x uint32) uint32 {
	var r uint32
	for i := 0; i < 32; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}

	return r
}

// Mask returns the smallest value of the form 2^m - 1 such that
// Mask(n) >= n-1, i.e. an unbroken run of 1-bits covering [0, n).
// Mask(0) == 0; callers validating lengths must reject zero first.
//
// The OR-folding smears the highest set bit of n-1 down through every
// lower position, which is exactly the all-ones envelope of n-1.
func Mask(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	w := n - 1
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16

	return w
}

// IsPow2 reports whether n is a power of two. Zero is not.
func IsPow2(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2 returns the exact base-2 logarithm of n. The result is only
// meaningful when n is a power of two; for other inputs it is the
// position of the highest set bit.
func Log2(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	return uint32(bits.Len32(n) - 1)
}

// Indices returns the bit-reversal permutation table of [0, n) for a
// power-of-two n: entry i holds i with its low Log2(n) bits mirrored.
// The table is an involution — applying it twice restores the identity —
// which is the property StochasticInversionShuffle's composition step
// relies on.
//
// Returns ErrNotPow2 when n is zero or not a power of two.
func Indices(n uint32) ([]uint32, error) {
	if !IsPow2(n) {
		return nil, ErrNotPow2
	}

	shift := 32 - Log2(n)
	table := make([]uint32, n)
	for i := uint32(0); i < n; i++ {
		table[i] = Reverse32(i) >> shift
	}

	return table, nil
}
