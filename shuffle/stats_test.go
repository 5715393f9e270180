package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/scramble/shuffle"
	"github.com/katalvlaran/scramble/urand"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestShuffles_MeanDisplacement sanity-checks that each method really
// moves indices around: for a well-mixed permutation of [0, n) the
// mean absolute displacement concentrates near n/3. The bounds are
// deliberately loose — this guards against near-identity degeneration,
// not against subtle bias.
func TestShuffles_MeanDisplacement(t *testing.T) {
	const length = 4096
	for _, m := range methods {
		t.Run(m.name, func(t *testing.T) {
			out, err := m.run(length, shuffle.WithSource(urand.New(2026)))
			require.NoError(t, err)

			displacement := make([]float64, length)
			for i, v := range out {
				d := float64(v) - float64(i)
				if d < 0 {
					d = -d
				}
				displacement[i] = d
			}

			mean := stat.Mean(displacement, nil)
			require.Greater(t, mean, float64(length)/6,
				"mean displacement %.1f suspiciously small", mean)
			require.Less(t, mean, float64(length)/2,
				"mean displacement %.1f suspiciously large", mean)
		})
	}
}
