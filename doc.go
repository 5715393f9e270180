// Package scramble is your toolbox for pseudorandom index permutations —
// from stateless single-index queries to full Owen-scrambled shuffles of
// power-of-two arrays.
//
// 🚀 What is scramble?
//
//	A small, focused library that brings together:
//		• Invertible hashing: bijective bit-mixing over any power-of-two domain
//		• Cycle-walking: stateless O(1)-memory permutation of arbitrary lengths
//		• Hash shuffles: bit-reverse + Laine–Karras scramble, trivially parallel
//		• Subtree shuffles: streaming, one random draw per tree divergence
//		• Stochastic inversion: dyadic stratified sequences composed into shuffles
//
// ✨ Why choose scramble?
//
//   - Stateless – Permute(idx, length, seed) needs no table, no allocation
//   - Provably bijective – every operation composes only invertible steps
//   - Reproducible – all randomness flows through an explicit urand.Source
//   - Extensible – plug your own Source, tune worker counts per shuffle
//
// Under the hood, everything is organized under four subpackages:
//
//	bitrev/  — 32-bit reversal, power-of-two masks, bit-reversal index tables
//	urand/   — the uniform-random boundary: Source interface + PCG32 default
//	permute/ — invertible hash, cycle-walk Permute/Unpermute, streaming Generator
//	shuffle/ — HashShuffle, SubtreePermuteShuffle, StochasticInversionShuffle
//
// Quick ASCII example:
//
//	    indices   0 1 2 3 4 5 6 7
//	              │ │ │ │ │ │ │ │   Permute(·, 8, seed)
//	    shuffled  5 2 7 0 3 6 1 4
//
//	one seed selects one permutation out of the whole family.
//
// Dive into the per-package docs for algorithm outlines, complexity notes,
// and worked examples.
//
//	go get github.com/katalvlaran/scramble
package scramble
