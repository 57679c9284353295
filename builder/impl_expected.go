// SPDX-License-Identifier: MIT
// Package: lpgen/builder
//
// impl_expected.go — Chung-Lu style expected-degree bipartite sampler.
//
// Model:
//   • One independent Bernoulli trial per pair (i, j) with success
//     probability d1[i]·d2[j]/Σd1 (values above 1 always succeed).
//
// Contract:
//   • |Σd1 − Σd2| ≤ DegreeBalanceTol (else ErrUnbalancedDegrees).
//   • Negative degrees are rejected (ErrBadSize).
//   • rng non-nil (else ErrNeedRandSource).
//   • Σd1 == 0 yields no edges and consumes no randomness.
//
// Complexity:
//   • Time: O(n1·n2) trials; this is the generation bottleneck and is meant
//     for tens to low hundreds of vertices per side.
//   • Space: O(accepted edges).
//
// Determinism:
//   • Stable trial order: i asc, then j asc; exactly one rng.Float64 per pair.

package builder

import (
	"math"
	"math/rand"
)

// ExpectedBipartiteDegree returns the accepted (variable, constraint) pairs in
// trial order.
func ExpectedBipartiteDegree(d1, d2 []int, rng *rand.Rand) ([]Edge, error) {
	for _, side := range [][]int{d1, d2} {
		for i, d := range side {
			if d < 0 {
				return nil, builderErrorf(MethodExpectedBipartiteDegree, ErrBadSize, "degree[%d]=%d < 0", i, d)
			}
		}
	}
	s1, s2 := sumInts(d1), sumInts(d2)
	if math.Abs(float64(s1-s2)) > DegreeBalanceTol {
		return nil, builderErrorf(MethodExpectedBipartiteDegree, ErrUnbalancedDegrees, "Σd1=%d, Σd2=%d", s1, s2)
	}
	if err := validateRand(MethodExpectedBipartiteDegree, rng); err != nil {
		return nil, err
	}
	if s1 == 0 {
		return nil, nil
	}

	rho := 1 / float64(s1)
	edges := make([]Edge, 0, s1)

	var (
		i, j   int
		di, dj int
	)
	for i, di = range d1 {
		for j, dj = range d2 {
			if rng.Float64() < float64(di)*float64(dj)*rho {
				edges = append(edges, Edge{Variable: i, Constraint: j})
			}
		}
	}

	return edges, nil
}
