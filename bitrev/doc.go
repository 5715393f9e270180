// Package bitrev provides the bit-level primitives every scramble
// component builds on: full 32-bit reversal, power-of-two masks,
// and bit-reversal index tables.
//
// 🚀 What is bitrev?
//
//	Tiny, total, allocation-free helpers over uint32:
//	  • Reverse32  — mirror all 32 bits (an involution)
//	  • Mask       — smallest all-ones value covering [0, n)
//	  • IsPow2     — power-of-two predicate
//	  • Log2       — exact base-2 logarithm of a power of two
//	  • Indices    — the bit-reversal permutation table of [0, n)
//
// ✨ Key properties:
//   - Reverse32(Reverse32(x)) == x for all x
//   - Mask(n)&(Mask(n)+1) == 0, Mask(n) >= n-1, Mask(n) < 2n for n >= 1
//   - Indices(n) is its own inverse as a permutation of [0, n)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scramble/bitrev"
//
//	m := bitrev.Mask(100)        // 127
//	r := bitrev.Reverse32(1)     // 0x80000000
//	t := bitrev.Indices(8)       // [0 4 2 6 1 5 3 7]
//
// Performance: every function is O(1) except Indices, which is O(n).
// Reverse32 uses the math/bits intrinsic; a portable shift-loop
// equivalent is kept under test alongside it.
package bitrev
