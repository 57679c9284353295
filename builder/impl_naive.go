// SPDX-License-Identifier: MIT
// Package: lpgen/builder

// Package builder provides the "naive" direct samplers for b and c, used to
// build unsolved instances without a known solution.
package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// normalVector returns size draws of N(mean, std²).
// Complexity: O(size).
func normalVector(size int, mean, std float64, rng *rand.Rand) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: rng}
	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// GenerateRhs draws b ∈ ℝ^m with independent N(mean, std²) entries.
func GenerateRhs(m int, mean, std float64, rng *rand.Rand) ([]float64, error) {
	if err := validateNormal(MethodGenerateRhs, m, mean, std, rng); err != nil {
		return nil, err
	}

	return normalVector(m, mean, std, rng), nil
}

// GenerateObjective draws c ∈ ℝ^n with independent N(mean, std²) entries.
func GenerateObjective(n int, mean, std float64, rng *rand.Rand) ([]float64, error) {
	if err := validateNormal(MethodGenerateObjective, n, mean, std, rng); err != nil {
		return nil, err
	}

	return normalVector(n, mean, std, rng), nil
}

func validateNormal(method string, size int, mean, std float64, rng *rand.Rand) error {
	if err := validateMin(method, "size", size, MinDimension); err != nil {
		return err
	}
	if err := validateFinite(method, "mean", mean); err != nil {
		return err
	}
	if err := validateScale(method, "std", std); err != nil {
		return err
	}

	return validateRand(method, rng)
}
