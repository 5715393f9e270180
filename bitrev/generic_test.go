package bitrev

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReverse32_MatchesGeneric checks the intrinsic-backed path against
// the portable shift-loop reference on a spread of values.
func TestReverse32_MatchesGeneric(t *testing.T) {
	samples := []uint32{0, 1, 5, 0xFF, 0x12345678, 0x89ABCDEF, math.MaxUint32}
	for _, x := range samples {
		assert.Equal(t, reverse32Generic(x), Reverse32(x), "portable and intrinsic reversal must agree on %#x", x)
	}
}

// TestReverse32Generic_Involution covers the fallback on its own.
func TestReverse32Generic_Involution(t *testing.T) {
	for _, x := range []uint32{0, 1, 0x55555555, math.MaxUint32} {
		assert.Equal(t, x, reverse32Generic(reverse32Generic(x)))
	}
}
