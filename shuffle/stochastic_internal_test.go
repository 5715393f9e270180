package shuffle

import (
	"testing"

	"github.com/katalvlaran/scramble/bitrev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns the lower bound on every draw, silencing the
// randomized sequence for phase-level inspection.
type stubSource struct{}

func (stubSource) UniformUint32(min, _ uint32) uint32 { return min }

// TestStratifiedSequences_UnrandomizedSixteen pins phase 1 for
// length 16: the unrandomized dyadic-subdivision sequence must be the
// bit-reversal ordering.
func TestStratifiedSequences_UnrandomizedSixteen(t *testing.T) {
	unrandomized, randomized := stratifiedSequences(16, stubSource{})
	want := []uint32{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
	assert.Equal(t, want, unrandomized)
	assert.Equal(t, want, randomized, "zero randomness must collapse both sequences")
}

// TestStratifiedSequences_MatchesBitrevTable cross-checks phase 1
// against bitrev.Indices for several sizes.
func TestStratifiedSequences_MatchesBitrevTable(t *testing.T) {
	for _, n := range []uint32{1, 2, 4, 8, 64, 1024} {
		unrandomized, _ := stratifiedSequences(n, stubSource{})
		table, err := bitrev.Indices(n)
		require.NoError(t, err)
		assert.Equal(t, table, unrandomized, "length %d", n)
	}
}

// TestStratifiedSequences_RandomizedStratification verifies each level
// of the randomized sequence keeps one entry per dyadic interval: the
// first 2^k entries cover distinct intervals of width length/2^k.
func TestStratifiedSequences_RandomizedStratification(t *testing.T) {
	const length = 256
	_, randomized := stratifiedSequences(length, fixedPatternSource{})
	for prefix := uint32(1); prefix <= length; prefix <<= 1 {
		width := length / prefix
		seen := make(map[uint32]bool, prefix)
		for i := uint32(0); i < prefix; i++ {
			interval := randomized[i] / width
			require.False(t, seen[interval],
				"prefix %d: interval %d occupied twice", prefix, interval)
			seen[interval] = true
		}
	}
}

// fixedPatternSource returns a mid-range value per draw, enough to
// perturb low bits without needing a real generator in a unit test.
type fixedPatternSource struct{}

func (fixedPatternSource) UniformUint32(min, max uint32) uint32 {
	return min + (max-min)/2
}
