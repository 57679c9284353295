// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for matrix-generation knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng      = nil                    (stochastic routines require WithSeed/WithRand)
//   • density  = DefaultDensity         (0.5)
//   • pv, pc   = DefaultSkew            (0.5 each)
//   • coeffFn  = NormalCoeffFn(0, 1)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by GenerateLHS.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "not configured".
	rng *rand.Rand

	// Target fraction of nonzero cells in A, in [0,1].
	density float64
	// Preferential-attachment weights for variable (pv) and constraint (pc)
	// degree sequences, each in [0,1].
	pv, pc float64

	// Coefficient sampler for every nonzero cell.
	coeffFn CoeffFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		density: DefaultDensity,
		pv:      DefaultSkew,
		pc:      DefaultSkew,
		coeffFn: NormalCoeffFn(DefaultCoeffLoc, DefaultCoeffScale),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
