// Package permute maps single indices to pseudorandom positions in
// O(1) memory, for any length — no table, no precomputation, one seed
// per permutation.
//
// 🚀 What is permute?
//
//	A stateless permutation family built from two ingredients:
//	  • Hash — a seeded bijection on [0, mask] composed purely of
//	    invertible steps (XOR, odd multiply, masked xor-shift)
//	  • cycle-walking — re-hash until the value lands below the target
//	    length, which restricts the bijection to [0, length)
//
//	Because every step is invertible, the package also ships the exact
//	inverses: Unhash and Unpermute.
//
// ✨ Key features:
//   - Permute(idx, length, seed): bijective on [0, length) for any length ≥ 1
//   - amortized O(1) per query — expected < 2 hash applications
//   - Unpermute recovers the original index, same cost
//   - Generator streams a whole permutation in constant space
//   - pure functions of their arguments: safe to call concurrently
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scramble/permute"
//
//	pos, err := permute.Permute(17, 100, seed) // where does 17 land?
//	idx, err := permute.Unpermute(pos, 100, seed) // back to 17
//
//	gen, _ := permute.NewGenerator(100, seed)
//	for v, ok := gen.Next(); ok; v, ok = gen.Next() {
//		// each value in [0,100) exactly once, permuted order
//	}
//
// Performance:
//
//   - Time:   amortized O(1) per Permute/Unpermute call
//   - Memory: O(1), zero allocations
//
// The bit-mixing sequence reproduces Kensler's reference constants
// (Correlated Multi-Jittered Sampling, Pixar 2013); any hash meeting
// the bijection contract would be conformant, but these constants keep
// outputs compatible with the published permutation family.
package permute
