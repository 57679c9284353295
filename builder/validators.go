// SPDX-License-Identifier: MIT
// Package: lpgen/builder

// Package builder provides validation helpers to enforce parameter contracts
// of the generators.
//
// Each function returns a sentinel-wrapped error via builderErrorf when its
// precondition is violated.
package builder

import (
	"math"
	"math/rand"
)

// validateMin ensures that got ≥ min.
// Returns "<Method>: <name> must be ≥ <min>, got <got>: builder: invalid size".
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "%s must be ≥ %d, got %d", name, min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN is rejected.
// Complexity: O(1) time and space.
func validateProbability(method, name string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"%s must be in [%.1f,%.1f], got %g", name, MinProbability, MaxProbability, p)
	}

	return nil
}

// validateScale enforces a finite, non-negative distribution scale.
// Complexity: O(1) time and space.
func validateScale(method, name string, sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return builderErrorf(method, ErrInvalidParameter, "%s must be finite and ≥ 0, got %g", name, sigma)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf location parameters.
func validateFinite(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return builderErrorf(method, ErrInvalidParameter, "%s must be finite, got %g", name, v)
	}

	return nil
}

// validateRand requires a non-nil RNG for stochastic routines.
func validateRand(method string, rng *rand.Rand) error {
	if rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "nil *rand.Rand")
	}

	return nil
}
