// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes GenerateLHS by mutating a builderConfig before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches NewRand(seed) (seed 0 maps to the fixed default).
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = NewRand(seed)
	}
}

// WithDensity sets the target fraction of nonzero cells. Panics unless
// density ∈ [0,1]. At least one edge per vertex is always produced, so the
// realised density is bounded below by max(n, m)/(n·m).
func WithDensity(density float64) BuilderOption {
	if !probabilityOK(density) {
		panic(fmt.Sprintf("builder: WithDensity(%g) not in [0,1]", density))
	}
	return func(c *builderConfig) {
		c.density = density
	}
}

// WithSkew sets the preferential-attachment weight for the variable (pv) and
// constraint (pc) degree sequences. 0 gives near-uniform degrees, 1 a
// rich-get-richer concentration. Panics unless both lie in [0,1].
func WithSkew(pv, pc float64) BuilderOption {
	if !probabilityOK(pv) || !probabilityOK(pc) {
		panic(fmt.Sprintf("builder: WithSkew(%g, %g) not in [0,1]", pv, pc))
	}
	return func(c *builderConfig) {
		c.pv, c.pc = pv, pc
	}
}

// WithCoeffFn overrides the per-edge coefficient sampler. Panics on nil.
func WithCoeffFn(fn CoeffFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCoeffFn(nil)")
	}
	return func(c *builderConfig) {
		c.coeffFn = fn
	}
}

func probabilityOK(p float64) bool {
	return !math.IsNaN(p) && p >= MinProbability && p <= MaxProbability
}
