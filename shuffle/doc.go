// Package shuffle materializes full pseudorandom permutations of
// power-of-two index ranges, three different ways — all equivalent in
// what they guarantee, different in how they spend time, memory, and
// randomness.
//
// 🚀 What is shuffle?
//
//	Three O(n) constructions of a shuffled index array:
//	  • HashShuffle — bit-reverse, Laine–Karras scramble, bit-reverse
//	    back; seed-driven, zero random draws, trivially parallel
//	  • SubtreePermuteShuffle — streaming and sequential; one fresh
//	    random draw per tree-ancestor divergence, O(1) carried state
//	  • StochasticInversionShuffle — dyadic stratified sequences
//	    composed by reindexing; O(n) auxiliary memory
//
// ✨ Choosing a method:
//
//   - Need parallelism or replay from a bare seed? HashShuffle.
//   - Need streaming output with minimal state? SubtreePermuteShuffle.
//   - Building stratified sequences anyway? StochasticInversionShuffle.
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/scramble/shuffle"
//		"github.com/katalvlaran/scramble/urand"
//	)
//
//	out, err := shuffle.HashShuffle(1024, seed, shuffle.WithWorkers(0))
//	out, err = shuffle.SubtreePermuteShuffle(1024,
//		shuffle.WithSource(urand.New(42)))
//
// Every method returns a permutation of [0, length) for every seed and
// source — the bijection property is structural, not statistical.
// Lengths must be powers of two; for arbitrary lengths use the
// stateless permute package instead.
package shuffle
