// SPDX-License-Identifier: MIT
// Package: lpgen/builder

// Package builder provides coefficient samplers for the constraint matrix.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// CoeffFn produces the value of one nonzero cell of A from rng.
// It must draw only from rng so that a fixed seed fixes the matrix.
type CoeffFn func(rng *rand.Rand) float64

// NormalCoeffFn samples N(loc, scale²). This is the default sampler with
// loc=DefaultCoeffLoc, scale=DefaultCoeffScale.
// Panics if loc is not finite or scale < 0.
// Complexity: O(1) per draw.
func NormalCoeffFn(loc, scale float64) CoeffFn {
	if math.IsNaN(loc) || math.IsInf(loc, 0) {
		panic(fmt.Sprintf("NormalCoeffFn: loc must be finite, got %g", loc))
	}
	if !(scale >= 0) || math.IsInf(scale, 0) {
		panic(fmt.Sprintf("NormalCoeffFn: scale must be finite and ≥ 0, got %g", scale))
	}

	return func(rng *rand.Rand) float64 {
		return distuv.Normal{Mu: loc, Sigma: scale, Src: rng}.Rand()
	}
}

// ConstantCoeffFn always yields value (0/1 incidence-like matrices, fixtures).
// Panics if value is not finite.
func ConstantCoeffFn(value float64) CoeffFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantCoeffFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCoeffFn samples uniformly in [min, max).
// Panics if max < min or either bound is not finite.
func UniformCoeffFn(min, max float64) CoeffFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformCoeffFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		return distuv.Uniform{Min: min, Max: max, Src: rng}.Rand()
	}
}

// WithCoefficients sets coefficients ∼ N(loc, scale²) via NormalCoeffFn.
func WithCoefficients(loc, scale float64) BuilderOption {
	return WithCoeffFn(NormalCoeffFn(loc, scale))
}

// WithConstantCoefficient sets every nonzero cell to value.
func WithConstantCoefficient(value float64) BuilderOption {
	return WithCoeffFn(ConstantCoeffFn(value))
}

// WithUniformCoefficients sets coefficients ∼ U[min, max).
func WithUniformCoefficients(min, max float64) BuilderOption {
	return WithCoeffFn(UniformCoeffFn(min, max))
}
