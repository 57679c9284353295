// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` and the method name.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Classes:
//   • Precondition violations (caller bugs): ErrBadSize, ErrInvalidProbability,
//     ErrNeedRandSource, ErrDegreeCapacity, ErrUnbalancedDegrees.
//   • Degenerate sampling (data-dependent): ErrNoEligibleVertex.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a count parameter (variables, constraints, vertices,
// edges) below its allowed minimum.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates that a probability-like value (density,
// skew parameter, basis split, violation fraction) lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidParameter indicates a distribution parameter that cannot be
// sampled from (negative scale, non-positive shape, NaN).
var ErrInvalidParameter = errors.New("builder: invalid distribution parameter")

// ErrNeedRandSource indicates that a stochastic routine was called without a
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDegreeCapacity indicates a degree request that cannot fit:
// edges > vertices·maxDegree.
var ErrDegreeCapacity = errors.New("builder: edges exceed vertex degree capacity")

// ErrUnbalancedDegrees indicates two degree sequences whose sums differ by
// more than the balance tolerance.
var ErrUnbalancedDegrees = errors.New("builder: degree sequences are unbalanced")

// ErrNoEligibleVertex indicates that the isolated-vertex repair step found no
// vertex below capacity to pair a leftover with. The wrapping error carries
// both degree sequences.
var ErrNoEligibleVertex = errors.New("builder: no eligible vertex to pair")

// builderErrorf wraps a sentinel with the method context and a formatted
// detail: "<Method>: <detail>: <sentinel>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
