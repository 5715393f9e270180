package permute_test

import (
	"testing"

	"github.com/katalvlaran/scramble/permute"
)

// BenchmarkPermute_PowerOfTwo measures the best case: the walk domain
// equals the length, so the first hash always lands.
func BenchmarkPermute_PowerOfTwo(b *testing.B) {
	const length = 1 << 16
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = permute.Permute(uint32(i)&(length-1), length, 12345)
	}
}

// BenchmarkPermute_WorstFit measures a length just above a power of
// two, where cycle-walking rejects nearly half the hash outputs.
func BenchmarkPermute_WorstFit(b *testing.B) {
	const length = (1 << 15) + 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = permute.Permute(uint32(i)%length, length, 12345)
	}
}

// BenchmarkUnpermute mirrors the forward worst-fit benchmark.
func BenchmarkUnpermute(b *testing.B) {
	const length = (1 << 15) + 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = permute.Unpermute(uint32(i)%length, length, 12345)
	}
}

// BenchmarkGenerator streams full passes over a mid-sized permutation.
func BenchmarkGenerator(b *testing.B) {
	const length = 1024
	gen, _ := permute.NewGenerator(length, 99)
	b.ReportAllocs()
	b.SetBytes(length)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Reset()
		for _, ok := gen.Next(); ok; _, ok = gen.Next() {
		}
	}
}
