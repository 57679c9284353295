// Package builder_test contains unit tests for the CoeffFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpgen/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestCoeffFnConstructors verifies that CoeffFn constructors panic on invalid
// parameters according to their documented contracts.
func TestCoeffFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.CoeffFn
	}{
		{"NormalCoeffFn_negativeScale", func() builder.CoeffFn { return builder.NormalCoeffFn(0, -0.1) }},
		{"NormalCoeffFn_NaNLoc", func() builder.CoeffFn { return builder.NormalCoeffFn(math.NaN(), 1) }},
		{"ConstantCoeffFn_Inf", func() builder.CoeffFn { return builder.ConstantCoeffFn(math.Inf(1)) }},
		{"UniformCoeffFn_maxLessThanMin", func() builder.CoeffFn { return builder.UniformCoeffFn(5, 4) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestCoeffFnBehavior covers the runtime behavior of each CoeffFn.
func TestCoeffFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, 7.0, builder.ConstantCoeffFn(7)(rng))
	assert.Equal(t, 3.0, builder.UniformCoeffFn(3, 3)(rng))

	u := builder.UniformCoeffFn(-1, 2)
	for i := 0; i < 100; i++ {
		v := u(rng)
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 2.0)
	}

	// sample moments of N(5, 0.5²)
	n := builder.NormalCoeffFn(5, 0.5)
	xs := make([]float64, 4000)
	for i := range xs {
		xs[i] = n(rng)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 5, mean, 0.05)
	assert.InDelta(t, 0.5, std, 0.05)

	// same seed, same stream
	a := builder.NormalCoeffFn(0, 1)(rand.New(rand.NewSource(9)))
	b := builder.NormalCoeffFn(0, 1)(rand.New(rand.NewSource(9)))
	assert.Equal(t, a, b)
}
