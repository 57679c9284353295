package neighbour_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpgen/neighbour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func diffPositions(a, b []float64) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

func TestSwapBasisPair_ChangesTwoPositions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		beta := []float64{1, 0, 0, 1, 1, 0, 0}
		before := append([]float64(nil), beta...)
		neighbour.SwapBasisPair()(beta, rng)

		assert.Equal(t, 2, diffPositions(before, beta))
		ones := 0
		for _, b := range beta {
			ones += int(b)
		}
		assert.Equal(t, 3, ones)
	}
}

func TestSwapBasisPair_NoOpWhenUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	allOnes := []float64{1, 1, 1}
	neighbour.SwapBasisPair()(allOnes, rng)
	assert.Equal(t, []float64{1, 1, 1}, allOnes)

	allZeros := []float64{0, 0}
	neighbour.SwapBasisPair()(allZeros, rng)
	assert.Equal(t, []float64{0, 0}, allZeros)
}

func TestScaleVectorEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	v := []float64{1, 2, 3, 4}
	neighbour.ScaleVectorEntry(0, 1, neighbour.LogNormal)(v, rng)

	changed := 0
	for i, x := range v {
		if x != float64(i+1) {
			changed++
			assert.Greater(t, x, 0.0, "lognormal factor keeps sign")
		}
	}
	assert.Equal(t, 1, changed)

	// empty vector is a no-op
	neighbour.ScaleVectorEntry(0, 1, neighbour.Normal)(nil, rng)
}

func TestScaleVectorEntry_Panics(t *testing.T) {
	assert.Panics(t, func() { neighbour.ScaleVectorEntry(0, -1, neighbour.Normal) })
	assert.Panics(t, func() { neighbour.ScaleVectorEntry(0, 1, neighbour.Dist(9)) })
}

func TestRepeat(t *testing.T) {
	calls := 0
	count := neighbour.Modifier[[]float64](func([]float64, *rand.Rand) { calls++ })

	neighbour.Repeat(count, 4)(nil, nil)
	assert.Equal(t, 4, calls)

	calls = 0
	neighbour.Repeat(count, 0)(nil, nil)
	assert.Zero(t, calls)

	assert.Panics(t, func() { neighbour.Repeat(count, -1) })
	assert.Panics(t, func() { neighbour.Repeat[[]float64](nil, 1) })
}

func nonzeros(a *mat.Dense) int {
	r, c := a.Dims()
	n := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if a.At(i, j) != 0 {
				n++
			}
		}
	}
	return n
}

func TestMatrixEntryModifiers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := mat.NewDense(2, 3, []float64{1, 0, 2, 0, 0, 3})

	neighbour.RemoveMatrixEntry()(a, rng)
	assert.Equal(t, 2, nonzeros(a))

	neighbour.AddMatrixEntry(5, 0.1)(a, rng)
	assert.Equal(t, 3, nonzeros(a))

	before := mat.DenseCopyOf(a)
	neighbour.ScaleMatrixEntry(0, 1)(a, rng)
	assert.Equal(t, 3, nonzeros(a))
	assert.False(t, mat.Equal(before, a))
}

func TestMatrixEntryModifiers_NoOps(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	zero := mat.NewDense(2, 2, nil)
	neighbour.RemoveMatrixEntry()(zero, rng)
	neighbour.ScaleMatrixEntry(0, 1)(zero, rng)
	require.Zero(t, nonzeros(zero))

	full := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	neighbour.AddMatrixEntry(0, 1)(full, rng)
	assert.True(t, mat.Equal(full, mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
}
