package shuffle

import "github.com/katalvlaran/scramble/urand"

// StochasticInversionShuffle — Method 3: stratified-sequence inversion
//
// Description:
//
//	StochasticInversionShuffle composes two dyadic-subdivision
//	sequences into a permutation. The unrandomized sequence is the
//	bit-reversal ordering of [0, length); the randomized one is built
//	by the same subdivision with fresh random offsets inside each
//	interval. Reindexing the randomized sequence through the
//	unrandomized one inverts the stratified ordering back into a
//	shuffled index array.
//
// Algorithm Outline:
//  1. Both sequences start with entry 0 = 0. For each processed
//     prefix of size p (1, 2, 4, ... length/2), append p entries:
//     entry p+i mirrors entry i into the opposite half-interval of
//     width length/(2p) — XOR with the interval width — and the
//     randomized sequence additionally XORs a fresh uniform draw
//     masked to width-1.
//  2. final[i] = randomized[unrandomized[i]].
//
// Why this is a permutation: the unrandomized sequence is exactly the
// bit-reversal permutation of [0, length), and the randomized sequence
// is a bijection level by level (each interval receives exactly one
// entry). Composing a permutation with a bijective relabeling yields a
// permutation.
//
// Complexity:
//
//	Time   = O(length); each subdivision level is independent work,
//	         but levels depend on earlier ones.
//	Memory = O(length) auxiliary for the two sequences — the cost
//	         disadvantage relative to Methods 1 and 2.
//
// Errors:
//   - ErrZeroLength      — length == 0.
//   - ErrNotPowerOfTwo   — length not a power of two.
//   - ErrOptionViolation — invalid Option supplied.
func StochasticInversionShuffle(length uint32, opts ...Option) ([]uint32, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateLength(length); err != nil {
		return nil, err
	}

	unrandomized, randomized := stratifiedSequences(length, o.Source)
	out := make([]uint32, length)
	for i := uint32(0); i < length; i++ {
		out[i] = randomized[unrandomized[i]]
	}

	return out, nil
}

// stratifiedSequences builds the parallel dyadic-subdivision sequences
// for a power-of-two length: the unrandomized bit-reversal ordering
// and its randomized counterpart.
func stratifiedSequences(length uint32, src urand.Source) (unrandomized, randomized []uint32) {
	unrandomized = make([]uint32, length)
	randomized = make([]uint32, length)
	for p := uint32(1); p < length; p <<= 1 {
		width := length / (2 * p)
		for i := uint32(0); i < p; i++ {
			unrandomized[p+i] = unrandomized[i] ^ width
			randomized[p+i] = randomized[i] ^ width ^ src.UniformUint32(0, width-1)
		}
	}

	return unrandomized, randomized
}
