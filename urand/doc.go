// Package urand defines the uniform-random boundary consumed by every
// randomized scramble component, plus a fast default generator.
//
// 🚀 What is urand?
//
//	The single point where nondeterminism enters the library:
//	  • Source — an interface yielding uniform uint32 draws on [min, max],
//	    inclusive of both bounds
//	  • PCG    — a PCG-XSH-RR 64/32 generator implementing Source
//
// ✨ Why an explicit Source?
//
//   - Reproducibility – seed a PCG, replay any shuffle bit-for-bit
//   - Testability – swap in a fixed or scripted source in tests
//   - No hidden globals – randomness is always threaded through arguments
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scramble/urand"
//
//	src := urand.New(42)
//	v := src.UniformUint32(0, 9) // uniform on {0,...,9}
//
// Bounded draws are debiased with the multiply-shift technique plus
// rejection, so every value in [min, max] is exactly equally likely.
//
// A Source implementation need not be safe for concurrent use; callers
// sharing one generator across goroutines must isolate or synchronize
// their streams.
package urand
