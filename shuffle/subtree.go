package shuffle

// SubtreePermuteShuffle — Method 2: sequential subtree-permute shuffle
//
// Description:
//
//	SubtreePermuteShuffle builds the shuffled array one entry at a
//	time, deriving each value from the previous one plus a small
//	amount of fresh randomness. Indices that share a tree ancestor
//	keep identical high bits after shuffling, so only the subtree
//	below the lowest point of divergence needs new random bits.
//
// Algorithm Outline:
//  1. output[0] = one uniform draw on [0, length).
//  2. For each i from 1 upward, let d be the lowest set bit of i —
//     the unique bit where i holds a 1 and i-1 a 0. Flip that bit in
//     output[i-1].
//  3. When d > 1, the step crossed d's subtree boundary: overwrite
//     the bits below d with a fresh uniform draw on [0, d).
//
//	Step 2's bit position follows a geometric distribution (half the
//	steps have d == 1, a quarter d == 2, ...), so the shuffle draws
//	about one random value per two entries on top of the flips.
//
// Complexity:
//
//	Time   = O(length) total; the pass is strictly sequential — each
//	         entry depends on the one before it.
//	Memory = O(1) carried state beyond the output array; the method
//	         can stream entries without materializing future ones.
//
// Errors:
//   - ErrZeroLength      — length == 0.
//   - ErrNotPowerOfTwo   — length not a power of two.
//   - ErrOptionViolation — invalid Option supplied.
func SubtreePermuteShuffle(length uint32, opts ...Option) ([]uint32, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateLength(length); err != nil {
		return nil, err
	}

	out := make([]uint32, length)
	out[0] = o.Source.UniformUint32(0, length-1)
	for i := uint32(1); i < length; i++ {
		// lowest set bit of i: where i diverges from i-1 in the tree
		d := i & -i
		v := out[i-1] ^ d
		if d > 1 {
			v = (v &^ (d - 1)) | o.Source.UniformUint32(0, d-1)
		}
		out[i] = v
	}

	return out, nil
}
